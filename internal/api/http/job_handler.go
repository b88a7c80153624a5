package http

import (
	"encoding/json"
	"net/http"
	"time"

	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/service"
)

type JobHandler struct {
	jobs service.JobService
}

func NewJobHandler(jobs service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobListResponse struct {
	Jobs  []domain.Job `json:"jobs"`
	Total int32        `json:"total"`
}

// ListOpen handles GET /api/v1/jobs, the public vacancy listing.
func (h *JobHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := parseQueryInt(q.Get("page"), 1)
	pageSize := parseQueryInt(q.Get("page_size"), 20)

	jobs, total, err := h.jobs.ListOpen(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	writeJSON(w, http.StatusOK, jobListResponse{Jobs: jobs, Total: total})
}

// Get handles GET /api/v1/jobs/{id}.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid job id"})
		return
	}

	job, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// ListAll handles GET /api/v1/admin/jobs with an optional status filter.
func (h *JobHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := domain.JobStatus(q.Get("status"))
	page := parseQueryInt(q.Get("page"), 1)
	pageSize := parseQueryInt(q.Get("page_size"), 20)

	jobs, total, err := h.jobs.ListAll(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	writeJSON(w, http.StatusOK, jobListResponse{Jobs: jobs, Total: total})
}

type jobRequest struct {
	PositionTitle  string `json:"position_title"`
	Department     string `json:"department"`
	JobDescription string `json:"job_description"`
	Qualifications string `json:"qualifications"`
	SalaryGrade    string `json:"salary_grade"`
	Deadline       string `json:"deadline"` // YYYY-MM-DD
}

func (req *jobRequest) toDomain() (*domain.Job, error) {
	deadline, err := time.Parse("2006-01-02", req.Deadline)
	if err != nil {
		return nil, err
	}
	return &domain.Job{
		PositionTitle:  req.PositionTitle,
		Department:     req.Department,
		JobDescription: req.JobDescription,
		Qualifications: req.Qualifications,
		SalaryGrade:    req.SalaryGrade,
		Deadline:       deadline,
	}, nil
}

// Create handles POST /api/v1/admin/jobs.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.PositionTitle == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "position_title is required"})
		return
	}

	job, err := req.toDomain()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "deadline must be YYYY-MM-DD"})
		return
	}
	if err := h.jobs.Create(r.Context(), job); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

// Update handles PUT /api/v1/admin/jobs/{id}.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid job id"})
		return
	}

	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	job, err := req.toDomain()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "deadline must be YYYY-MM-DD"})
		return
	}
	job.ID = id

	existing, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	job.Status = existing.Status

	if err := h.jobs.Update(r.Context(), job); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// Archive handles POST /api/v1/admin/jobs/{id}/archive.
func (h *JobHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid job id"})
		return
	}
	if err := h.jobs.Archive(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Restore handles POST /api/v1/admin/jobs/{id}/restore.
func (h *JobHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid job id"})
		return
	}
	if err := h.jobs.Restore(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
