package handler

import (
	"net/http"
	"time"

	txdomain "campus-finance-go/internal/domain/transactions"
	"campus-finance-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type transactionRequest struct {
	CategoryID  string  `json:"category_id" validate:"required,uuid"`
	Amount      float64 `json:"amount" validate:"required"`
	Kind        string  `json:"kind" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Description string  `json:"description"`
}

type categoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Kind  string `json:"kind"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type categoryUpdateRequest struct {
	Name     string `json:"name" validate:"required"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	IsActive *bool  `json:"is_active"`
}

type budgetRequest struct {
	CategoryID string  `json:"category_id" validate:"required,uuid"`
	Amount     float64 `json:"amount" validate:"required"`
	Period     string  `json:"period" validate:"required"`
	StartDate  string  `json:"start_date" validate:"required"`
	EndDate    string  `json:"end_date" validate:"required"`
	IsActive   *bool   `json:"is_active"`
}

type goalRequest struct {
	Name          string  `json:"name" validate:"required"`
	GoalType      string  `json:"goal_type"`
	TargetAmount  float64 `json:"target_amount" validate:"required"`
	CurrentAmount float64 `json:"current_amount"`
	Deadline      string  `json:"deadline"`
	IsActive      *bool   `json:"is_active"`
}

type goalResponse struct {
	txdomain.Goal
	ProgressPercentage float64 `json:"progress_percentage"`
}

type listResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
}

func (h *Handlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	query := r.URL.Query()
	from, err := parseDateParam(query.Get("start_date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date", "validation_error")
		return
	}
	to, err := parseDateParam(query.Get("end_date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date", "validation_error")
		return
	}
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

	filter := txdomain.ListFilter{
		From:       from,
		To:         to,
		CategoryID: query.Get("category_id"),
		Kind:       txdomain.Kind(query.Get("kind")),
		Limit:      limit,
		Offset:     offset,
	}

	items, total, err := h.Transactions.ListTransactions(r.Context(), ownerID, filter)
	if err != nil {
		h.writeDomainError(w, "transactions.list", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "success", listResponse{Items: items, Total: total})
}

func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", "validation_error")
		return
	}

	transaction, err := h.Transactions.CreateTransaction(r.Context(), txdomain.CreateTransactionInput{
		OwnerID:     ownerID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Kind:        txdomain.Kind(req.Kind),
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		h.writeDomainError(w, "transactions.create", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusCreated, "created", transaction)
}

func (h *Handlers) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", "validation_error")
		return
	}

	transaction, err := h.Transactions.UpdateTransaction(r.Context(), txdomain.UpdateTransactionInput{
		ID:          chi.URLParam(r, "id"),
		OwnerID:     ownerID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Kind:        txdomain.Kind(req.Kind),
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		h.writeDomainError(w, "transactions.update", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "updated", transaction)
}

func (h *Handlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	if err := h.Transactions.DeleteTransaction(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "transactions.delete", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "deleted", nil)
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	categories, err := h.Transactions.ListCategories(r.Context(), ownerID)
	if err != nil {
		h.writeDomainError(w, "categories.list", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "success", categories)
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category, err := h.Transactions.CreateCategory(r.Context(), txdomain.CreateCategoryInput{
		OwnerID: ownerID,
		Name:    req.Name,
		Kind:    txdomain.Kind(req.Kind),
		Icon:    req.Icon,
		Color:   req.Color,
	})
	if err != nil {
		h.writeDomainError(w, "categories.create", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusCreated, "created", category)
}

func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	var req categoryUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category, err := h.Transactions.UpdateCategory(r.Context(), txdomain.UpdateCategoryInput{
		ID:       chi.URLParam(r, "id"),
		OwnerID:  ownerID,
		Name:     req.Name,
		Icon:     req.Icon,
		Color:    req.Color,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.writeDomainError(w, "categories.update", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "updated", category)
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	if err := h.Transactions.DeleteCategory(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "categories.delete", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "deleted", nil)
}

func (h *Handlers) ListBudgets(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	budgets, err := h.Transactions.ListBudgets(r.Context(), ownerID)
	if err != nil {
		h.writeDomainError(w, "budgets.list", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "success", budgets)
}

func (h *Handlers) CreateBudget(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	var req budgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date", "validation_error")
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date", "validation_error")
		return
	}

	budget, err := h.Transactions.CreateBudget(r.Context(), txdomain.CreateBudgetInput{
		OwnerID:    ownerID,
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Period:     txdomain.Period(req.Period),
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		h.writeDomainError(w, "budgets.create", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusCreated, "created", budget)
}

func (h *Handlers) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	var req budgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date", "validation_error")
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date", "validation_error")
		return
	}

	budget, err := h.Transactions.UpdateBudget(r.Context(), txdomain.UpdateBudgetInput{
		ID:        chi.URLParam(r, "id"),
		OwnerID:   ownerID,
		Amount:    req.Amount,
		Period:    txdomain.Period(req.Period),
		StartDate: startDate,
		EndDate:   endDate,
		IsActive:  req.IsActive,
	})
	if err != nil {
		h.writeDomainError(w, "budgets.update", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "updated", budget)
}

func (h *Handlers) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	if err := h.Transactions.DeleteBudget(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "budgets.delete", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "deleted", nil)
}

func (h *Handlers) ListGoals(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	goals, err := h.Transactions.ListGoals(r.Context(), ownerID)
	if err != nil {
		h.writeDomainError(w, "goals.list", err, "owner_id", ownerID)
		return
	}

	responses := make([]goalResponse, 0, len(goals))
	for _, goal := range goals {
		responses = append(responses, goalResponse{Goal: goal, ProgressPercentage: goal.ProgressPercentage()})
	}

	writeData(w, http.StatusOK, "success", responses)
}

func (h *Handlers) CreateGoal(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	var req goalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	deadline, err := parseDateParam(req.Deadline)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deadline", "validation_error")
		return
	}

	goal, err := h.Transactions.CreateGoal(r.Context(), txdomain.CreateGoalInput{
		OwnerID:      ownerID,
		Name:         req.Name,
		GoalType:     txdomain.GoalType(req.GoalType),
		TargetAmount: req.TargetAmount,
		Deadline:     deadline,
	})
	if err != nil {
		h.writeDomainError(w, "goals.create", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusCreated, "created", goalResponse{Goal: *goal, ProgressPercentage: goal.ProgressPercentage()})
}

func (h *Handlers) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	var req goalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	deadline, err := parseDateParam(req.Deadline)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deadline", "validation_error")
		return
	}

	goal, err := h.Transactions.UpdateGoal(r.Context(), txdomain.UpdateGoalInput{
		ID:            chi.URLParam(r, "id"),
		OwnerID:       ownerID,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      deadline,
		IsActive:      req.IsActive,
	})
	if err != nil {
		h.writeDomainError(w, "goals.update", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "updated", goalResponse{Goal: *goal, ProgressPercentage: goal.ProgressPercentage()})
}

func (h *Handlers) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.UserIDFromContext(r.Context())

	if err := h.Transactions.DeleteGoal(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "goals.delete", err, "owner_id", ownerID)
		return
	}

	writeData(w, http.StatusOK, "deleted", nil)
}
