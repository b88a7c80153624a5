package http

import (
	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Submissions  *SubmissionHandler
	Applications *ApplicationHandler
	Jobs         *JobHandler
	Auth         *AuthHandler
	Dashboard    *DashboardHandler
}

// NewRouter wires the public and admin API surfaces. Everything under
// /api/v1/admin except login goes through the auth middleware.
func NewRouter(h *Handlers, authMW *AuthMiddleware) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	// Public surface
	api.HandleFunc("/jobs", h.Jobs.ListOpen).Methods("GET")
	api.HandleFunc("/jobs/{id:[0-9]+}", h.Jobs.Get).Methods("GET")
	api.HandleFunc("/jobs/{id:[0-9]+}/requirements", h.Submissions.Requirements).Methods("GET")
	api.HandleFunc("/jobs/{id:[0-9]+}/applications", h.Submissions.Submit).Methods("POST")
	api.HandleFunc("/admin/login", h.Auth.Login).Methods("POST")

	// Admin surface
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMW.Middleware)

	admin.HandleFunc("/dashboard", h.Dashboard.Stats).Methods("GET")

	admin.HandleFunc("/applications", h.Applications.List).Methods("GET")
	admin.HandleFunc("/applications/{id:[0-9]+}", h.Applications.Get).Methods("GET")
	admin.HandleFunc("/applications/{id:[0-9]+}/status", h.Applications.UpdateStatus).Methods("PUT")
	admin.HandleFunc("/applications/{id:[0-9]+}", h.Applications.Delete).Methods("DELETE")
	admin.HandleFunc("/applications/{id:[0-9]+}/export", h.Applications.Export).Methods("GET")

	admin.HandleFunc("/documents/{id:[0-9]+}/view", h.Applications.ViewDocument).Methods("GET")
	admin.HandleFunc("/documents/{id:[0-9]+}/download", h.Applications.DownloadDocument).Methods("GET")

	admin.HandleFunc("/jobs", h.Jobs.ListAll).Methods("GET")
	admin.HandleFunc("/jobs", h.Jobs.Create).Methods("POST")
	admin.HandleFunc("/jobs/{id:[0-9]+}", h.Jobs.Update).Methods("PUT")
	admin.HandleFunc("/jobs/{id:[0-9]+}/archive", h.Jobs.Archive).Methods("POST")
	admin.HandleFunc("/jobs/{id:[0-9]+}/restore", h.Jobs.Restore).Methods("POST")

	return router
}
