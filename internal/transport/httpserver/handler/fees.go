package handler

import (
	"net/http"
	"time"

	feesdomain "campus-finance-go/internal/domain/fees"
	"campus-finance-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type feeCategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" validate:"required"`
}

type feeRecordRequest struct {
	StudentID   string  `json:"student_id" validate:"required,uuid"`
	CategoryID  string  `json:"category_id" validate:"required,uuid"`
	Amount      float64 `json:"amount" validate:"required"`
	DueDate     string  `json:"due_date" validate:"required"`
	Description string  `json:"description"`
}

type feePaymentRequest struct {
	FeeRecordID   string  `json:"fee_record_id" validate:"required,uuid"`
	Amount        float64 `json:"amount" validate:"required"`
	Method        string  `json:"method" validate:"required"`
	TransactionID string  `json:"transaction_id"`
	Notes         string  `json:"notes"`
}

func (h *Handlers) ListFeeCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Fees.ListCategories(r.Context())
	if err != nil {
		h.writeDomainError(w, "fees.categories.list", err)
		return
	}

	writeData(w, http.StatusOK, "success", categories)
}

func (h *Handlers) CreateFeeCategory(w http.ResponseWriter, r *http.Request) {
	var req feeCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category, err := h.Fees.CreateCategory(r.Context(), feesdomain.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		h.writeDomainError(w, "fees.categories.create", err)
		return
	}

	writeData(w, http.StatusCreated, "created", category)
}

func (h *Handlers) DeleteFeeCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Fees.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "fees.categories.delete", err)
		return
	}

	writeData(w, http.StatusOK, "deleted", nil)
}

func (h *Handlers) ListFeeRecords(w http.ResponseWriter, r *http.Request) {
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

	records, total, err := h.Fees.ListRecords(r.Context(), feesdomain.RecordListFilter{
		StudentID:  query.Get("student_id"),
		CategoryID: query.Get("category_id"),
		Status:     feesdomain.RecordStatus(query.Get("status")),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		h.writeDomainError(w, "fees.records.list", err)
		return
	}

	writeData(w, http.StatusOK, "success", listResponse{Items: records, Total: total})
}

func (h *Handlers) GetFeeRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.Fees.GetRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, "fees.records.get", err)
		return
	}

	writeData(w, http.StatusOK, "success", record)
}

func (h *Handlers) CreateFeeRecord(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req feeRecordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid due_date", "validation_error")
		return
	}

	record, err := h.Fees.CreateRecord(r.Context(), feesdomain.CreateRecordInput{
		StudentID:   req.StudentID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		DueDate:     dueDate,
		Description: req.Description,
		CreatedBy:   userID,
	})
	if err != nil {
		h.writeDomainError(w, "fees.records.create", err, "user_id", userID)
		return
	}

	writeData(w, http.StatusCreated, "created", record)
}

func (h *Handlers) RecordFeePayment(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req feePaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	payment, err := h.Fees.RecordPayment(r.Context(), feesdomain.RecordPaymentInput{
		FeeRecordID:   req.FeeRecordID,
		Amount:        req.Amount,
		Method:        feesdomain.PaymentMethod(req.Method),
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
		ProcessedBy:   userID,
	})
	if err != nil {
		h.writeDomainError(w, "fees.payments.create", err, "user_id", userID)
		return
	}

	writeData(w, http.StatusCreated, "payment recorded", payment)
}

func (h *Handlers) ListFeePayments(w http.ResponseWriter, r *http.Request) {
	feeRecordID := r.URL.Query().Get("fee_record_id")
	if feeRecordID == "" {
		writeError(w, http.StatusBadRequest, "fee_record_id is required", "validation_error")
		return
	}

	payments, err := h.Fees.ListPayments(r.Context(), feeRecordID)
	if err != nil {
		h.writeDomainError(w, "fees.payments.list", err)
		return
	}

	writeData(w, http.StatusOK, "success", payments)
}

func (h *Handlers) FeeStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Fees.Statistics(r.Context())
	if err != nil {
		h.writeDomainError(w, "fees.statistics", err)
		return
	}

	writeData(w, http.StatusOK, "success", stats)
}
