package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	alertsdomain "campus-finance-go/internal/domain/alerts"
	exportsdomain "campus-finance-go/internal/domain/exports"
	feesdomain "campus-finance-go/internal/domain/fees"
	studentsdomain "campus-finance-go/internal/domain/students"
	txdomain "campus-finance-go/internal/domain/transactions"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// envelope is the shared response shape of every endpoint.
type envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func writeData(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, envelope{Code: status, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string, errs interface{}) {
	writeJSON(w, status, envelope{Code: status, Message: message, Errors: errs})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

// writeDomainError maps domain sentinels onto the error taxonomy: validation
// and state errors become 4xx with a typed body, expiry gets its own code,
// unknown errors stay generic so internals never leak.
func (h *Handlers) writeDomainError(w http.ResponseWriter, op string, err error, logArgs ...any) {
	switch {
	case errors.Is(err, txdomain.ErrValidation),
		errors.Is(err, exportsdomain.ErrValidation),
		errors.Is(err, feesdomain.ErrValidation),
		errors.Is(err, studentsdomain.ErrValidation):
		h.log.BusinessError(op+": validation failed", err, logArgs...)
		writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
	case errors.Is(err, exportsdomain.ErrIllegalTransition),
		errors.Is(err, exportsdomain.ErrTaskNotCompleted),
		errors.Is(err, exportsdomain.ErrFileMissing),
		errors.Is(err, feesdomain.ErrRecordClosed):
		h.log.BusinessError(op+": state rejected", err, logArgs...)
		writeError(w, http.StatusConflict, err.Error(), "state_error")
	case errors.Is(err, exportsdomain.ErrLinkExpired):
		h.log.BusinessError(op+": link expired", err, logArgs...)
		writeError(w, http.StatusGone, err.Error(), "expired_error")
	case errors.Is(err, txdomain.ErrTransactionNotFound),
		errors.Is(err, txdomain.ErrCategoryNotFound),
		errors.Is(err, txdomain.ErrBudgetNotFound),
		errors.Is(err, txdomain.ErrGoalNotFound),
		errors.Is(err, alertsdomain.ErrAlertNotFound),
		errors.Is(err, exportsdomain.ErrTaskNotFound),
		errors.Is(err, feesdomain.ErrCategoryNotFound),
		errors.Is(err, feesdomain.ErrRecordNotFound),
		errors.Is(err, studentsdomain.ErrStudentNotFound):
		h.log.BusinessError(op+": not found", err, logArgs...)
		writeError(w, http.StatusNotFound, err.Error(), "not_found")
	case errors.Is(err, studentsdomain.ErrStudentNumberTaken):
		h.log.BusinessError(op+": duplicate", err, logArgs...)
		writeError(w, http.StatusConflict, err.Error(), "state_error")
	default:
		h.log.InternalError(op+": failed", err, logArgs...)
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
	}
}
