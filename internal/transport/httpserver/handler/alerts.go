package handler

import (
	"net/http"

	alertsdomain "campus-finance-go/internal/domain/alerts"
	"campus-finance-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

func (h *Handlers) ListAlerts(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	query := r.URL.Query()
	limit, err := parseIntParam(query.Get("limit"), 50)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit", "validation_error")
		return
	}
	offset, err := parseIntParam(query.Get("offset"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid offset", "validation_error")
		return
	}

	alerts, err := h.Alerts.List(r.Context(), ownerID, alertsdomain.ListFilter{
		UnreadOnly: query.Get("unread") == "true",
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		h.writeDomainError(w, "alerts.list", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "success", alerts)
}

func (h *Handlers) UnreadAlerts(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	alerts, err := h.Alerts.Unread(r.Context(), ownerID)
	if err != nil {
		h.writeDomainError(w, "alerts.unread", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "success", alerts)
}

func (h *Handlers) MarkAlertRead(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	if err := h.Alerts.MarkRead(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "alerts.mark_read", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "marked as read", nil)
}

func (h *Handlers) MarkAllAlertsRead(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	updated, err := h.Alerts.MarkAllRead(r.Context(), ownerID)
	if err != nil {
		h.writeDomainError(w, "alerts.mark_all_read", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "marked as read", map[string]int64{"updated_count": updated})
}

func (h *Handlers) DeactivateAlert(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	if err := h.Alerts.Deactivate(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "alerts.deactivate", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "deactivated", nil)
}

func (h *Handlers) AlertStatistics(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	stats, err := h.Alerts.Statistics(r.Context(), ownerID)
	if err != nil {
		h.writeDomainError(w, "alerts.statistics", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "success", stats)
}
