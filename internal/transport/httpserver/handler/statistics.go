package handler

import (
	"net/http"
	"time"

	txdomain "campus-finance-go/internal/domain/transactions"
	"campus-finance-go/internal/transport/httpserver/middleware"
)

func (h *Handlers) StatisticsSummary(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	query := r.URL.Query()
	startDate, err := parseDateParam(query.Get("start_date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date", "validation_error")
		return
	}
	endDate, err := parseDateParam(query.Get("end_date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date", "validation_error")
		return
	}

	summary, err := h.Statistics.Summary(r.Context(), ownerID, startDate, endDate)
	if err != nil {
		h.writeDomainError(w, "statistics.summary", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "success", summary)
}

func (h *Handlers) StatisticsCategories(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	query := r.URL.Query()
	now := time.Now().UTC()

	year, err := parseIntParam(query.Get("year"), now.Year())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year", "validation_error")
		return
	}
	month, err := parseIntParam(query.Get("month"), int(now.Month()))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month", "validation_error")
		return
	}

	kindParam := query.Get("type")
	if kindParam == "" {
		kindParam = query.Get("kind")
	}
	kind := txdomain.Kind(kindParam)
	if kind == "" {
		kind = txdomain.KindExpense
	}
	if !kind.Valid() {
		writeError(w, http.StatusBadRequest, "invalid kind", "validation_error")
		return
	}

	breakdown, err := h.Statistics.Categories(r.Context(), ownerID, year, month, kind)
	if err != nil {
		h.writeDomainError(w, "statistics.categories", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "success", breakdown)
}

func (h *Handlers) StatisticsTrend(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	trend, err := h.Statistics.Trend(r.Context(), ownerID, r.URL.Query().Get("range"))
	if err != nil {
		h.writeDomainError(w, "statistics.trend", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "success", trend)
}

func (h *Handlers) PlanningPrediction(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	months, err := parseIntParam(r.URL.Query().Get("months"), 3)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid months", "validation_error")
		return
	}

	prediction, err := h.Statistics.Prediction(r.Context(), ownerID, months)
	if err != nil {
		h.writeDomainError(w, "planning.prediction", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "success", prediction)
}

func (h *Handlers) PlanningRecommendations(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	recommendations, err := h.Statistics.Recommendations(r.Context(), ownerID)
	if err != nil {
		h.writeDomainError(w, "planning.recommendations", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "success", recommendations)
}
