package http

import (
	"io"
	"net/http"
	"strconv"

	"jobportal-backend/internal/service"

	"github.com/gorilla/mux"
)

// maxSubmissionBytes caps one multipart submission. Per-document ceilings are
// enforced by the validator; this is a transport-level backstop.
const maxSubmissionBytes = 128 << 20

// multipartMemoryBytes is how much of a parsed form stays in memory before
// spilling to temp files.
const multipartMemoryBytes = 16 << 20

type SubmissionHandler struct {
	submissions service.SubmissionService
}

func NewSubmissionHandler(submissions service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

type submissionResponse struct {
	ApplicationID int32  `json:"application_id"`
	Message       string `json:"message"`
}

// Submit handles POST /api/v1/jobs/{id}/applications. It lifts the untyped
// multipart form into a typed payload at this boundary; business logic never
// touches raw request data.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid job id"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxSubmissionBytes)
	if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}

	reqs, err := h.submissions.Requirements(r.Context(), jobID)
	if err != nil {
		writeError(w, err)
		return
	}

	input := &service.SubmissionInput{
		FullName:    r.FormValue("full_name"),
		Email:       r.FormValue("email"),
		PhoneNumber: r.FormValue("phone_number"),
		Address:     r.FormValue("address"),
		Documents:   make(map[string]*service.DocumentUpload, len(reqs)),
	}
	for _, req := range reqs {
		headers := r.MultipartForm.File[req.FieldKey]
		if len(headers) == 0 {
			continue
		}
		header := headers[0]
		input.Documents[req.FieldKey] = &service.DocumentUpload{
			FileName: header.Filename,
			Size:     header.Size,
			Open: func() (io.ReadCloser, error) {
				return header.Open()
			},
		}
	}

	app, err := h.submissions.Submit(r.Context(), jobID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, submissionResponse{
		ApplicationID: app.ID,
		Message:       "Your application has been submitted successfully! We will review your application and contact you soon.",
	})
}

// Requirements handles GET /api/v1/jobs/{id}/requirements so the form can be
// rendered from the same catalog the validator enforces.
func (h *SubmissionHandler) Requirements(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid job id"})
		return
	}

	reqs, err := h.submissions.Requirements(r.Context(), jobID)
	if err != nil {
		writeError(w, err)
		return
	}

	type requirement struct {
		Type         string   `json:"type"`
		FieldKey     string   `json:"field_key"`
		Extensions   []string `json:"extensions"`
		MaxSizeBytes int64    `json:"max_size_bytes"`
	}
	out := make([]requirement, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, requirement{
			Type:         req.TypeName,
			FieldKey:     req.FieldKey,
			Extensions:   req.AcceptedExtensions,
			MaxSizeBytes: req.MaxSizeBytes,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func pathID(r *http.Request, name string) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}
