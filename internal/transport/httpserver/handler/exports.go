package handler

import (
	"net/http"

	exportsdomain "campus-finance-go/internal/domain/exports"
	"campus-finance-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type exportTaskRequest struct {
	ExportType string         `json:"export_type" validate:"required"`
	Format     string         `json:"format" validate:"required"`
	StartDate  string         `json:"start_date"`
	EndDate    string         `json:"end_date"`
	Filters    map[string]any `json:"filters"`
}

func (h *Handlers) ListExportTasks(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	limit, err := parseIntParam(r.URL.Query().Get("limit"), 50)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit", "validation_error")
		return
	}

	tasks, err := h.Exports.List(r.Context(), ownerID, limit)
	if err != nil {
		h.writeDomainError(w, "exports.list", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "success", tasks)
}

func (h *Handlers) CreateExportTask(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	var req exportTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	startDate, err := parseDateParam(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date", "validation_error")
		return
	}
	endDate, err := parseDateParam(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date", "validation_error")
		return
	}

	task, err := h.Exports.Create(r.Context(), exportsdomain.CreateInput{
		OwnerID:    ownerID,
		ExportType: exportsdomain.ExportType(req.ExportType),
		Format:     exportsdomain.Format(req.Format),
		StartDate:  startDate,
		EndDate:    endDate,
		Filters:    req.Filters,
	})
	if err != nil {
		h.writeDomainError(w, "exports.create", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusCreated, "created", task)
}

func (h *Handlers) GetExportTask(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	task, err := h.Exports.Get(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, "exports.get", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "success", task)
}

func (h *Handlers) RetryExportTask(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	task, err := h.Exports.Retry(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, "exports.retry", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "retry scheduled", task)
}

func (h *Handlers) DownloadExportTask(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	info, err := h.Exports.Download(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, "exports.download", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "success", info)
}

func (h *Handlers) ExportStatistics(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	stats, err := h.Exports.Statistics(r.Context(), ownerID)
	if err != nil {
		h.writeDomainError(w, "exports.statistics", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "success", stats)
}

func (h *Handlers) ExportOptions(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, "success", h.Exports.Options())
}
