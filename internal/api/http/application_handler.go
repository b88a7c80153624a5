package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/logger"
	"jobportal-backend/internal/repository"
	"jobportal-backend/internal/service"
)

type ApplicationHandler struct {
	applications service.ApplicationService
}

func NewApplicationHandler(applications service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

type applicationListResponse struct {
	Applications []domain.ApplicationSummary `json:"applications"`
	Total        int32                       `json:"total"`
	Page         int32                       `json:"page"`
	PageSize     int32                       `json:"page_size"`
}

// List handles GET /api/v1/admin/applications with status, search, job and
// pagination query parameters.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repository.ApplicationFilter{
		Status:   domain.ApplicationStatus(q.Get("status")),
		Search:   q.Get("search"),
		Page:     parseQueryInt(q.Get("page"), 1),
		PageSize: parseQueryInt(q.Get("page_size"), 20),
	}
	if jobID := q.Get("job_id"); jobID != "" {
		filter.JobID = parseQueryInt(jobID, 0)
	}

	apps, total, err := h.applications.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if apps == nil {
		apps = []domain.ApplicationSummary{}
	}
	writeJSON(w, http.StatusOK, applicationListResponse{
		Applications: apps,
		Total:        total,
		Page:         filter.Page,
		PageSize:     filter.PageSize,
	})
}

type applicationDetailResponse struct {
	Application *domain.Application          `json:"application"`
	Documents   []domain.ApplicationDocument `json:"documents"`
}

// Get handles GET /api/v1/admin/applications/{id}. Opening the detail fires
// the one-time Unread->Viewed transition.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid application id"})
		return
	}

	app, docs, err := h.applications.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if docs == nil {
		docs = []domain.ApplicationDocument{}
	}
	writeJSON(w, http.StatusOK, applicationDetailResponse{Application: app, Documents: docs})
}

type statusUpdateRequest struct {
	Status domain.ApplicationStatus `json:"status"`
}

// UpdateStatus handles PUT /api/v1/admin/applications/{id}/status.
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid application id"})
		return
	}

	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	app, err := h.applications.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	if claims, ok := AdminFromContext(r.Context()); ok {
		logger.Info("Application status updated", "application_id", id, "status", app.Status, "admin", claims.Username)
	}
	writeJSON(w, http.StatusOK, app)
}

// Delete handles DELETE /api/v1/admin/applications/{id}: the irreversible
// purge of the application, its document rows, and their blobs.
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid application id"})
		return
	}

	if err := h.applications.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	if claims, ok := AdminFromContext(r.Context()); ok {
		logger.Info("Application deleted", "application_id", id, "admin", claims.Username)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /api/v1/admin/applications/{id}/export, streaming a zip
// of all stored documents named after the applicant.
func (h *ApplicationHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid application id"})
		return
	}

	// Buffered so a mid-archive failure can still produce a clean error
	// response instead of a truncated download.
	var buf bytes.Buffer
	applicantName, err := h.applications.ExportArchive(r.Context(), id, &buf)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("application_%s.zip", sanitizeFilename(applicantName))
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := io.Copy(w, &buf); err != nil {
		logger.Error("Failed to stream archive", "application_id", id, "error", err)
	}
}

// ViewDocument handles GET /api/v1/admin/documents/{id}/view (inline).
func (h *ApplicationHandler) ViewDocument(w http.ResponseWriter, r *http.Request) {
	h.serveDocument(w, r, "inline")
}

// DownloadDocument handles GET /api/v1/admin/documents/{id}/download.
func (h *ApplicationHandler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	h.serveDocument(w, r, "attachment")
}

func (h *ApplicationHandler) serveDocument(w http.ResponseWriter, r *http.Request, disposition string) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid document id"})
		return
	}

	doc, rc, err := h.applications.OpenDocument(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentTypeFor(doc.FileName))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`%s; filename="%s"`, disposition, sanitizeFilename(doc.FileName)))
	if doc.FileSize > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(doc.FileSize, 10))
	}
	if _, err := io.Copy(w, rc); err != nil {
		logger.Error("Failed to stream document", "document_id", id, "error", err)
	}
}

func contentTypeFor(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._ -]`)

func sanitizeFilename(name string) string {
	clean := unsafeFilenameChars.ReplaceAllString(name, "_")
	if clean == "" {
		return "file"
	}
	return clean
}

func parseQueryInt(value string, fallback int32) int32 {
	if value == "" {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil || n < 0 {
		return fallback
	}
	return int32(n)
}
