package handler

import (
	"net/http"

	studentsdomain "campus-finance-go/internal/domain/students"
	"campus-finance-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type studentCreateRequest struct {
	StudentNumber  string `json:"student_number" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Gender         string `json:"gender" validate:"required"`
	BirthDate      string `json:"birth_date"`
	Phone          string `json:"phone"`
	Email          string `json:"email" validate:"omitempty,email"`
	Address        string `json:"address"`
	Major          string `json:"major"`
	Grade          string `json:"grade"`
	ClassName      string `json:"class_name"`
	EnrollmentDate string `json:"enrollment_date"`
}

type studentUpdateRequest struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	Address   string `json:"address"`
	Major     string `json:"major"`
	Grade     string `json:"grade"`
	ClassName string `json:"class_name"`
	Status    string `json:"status"`
}

func (h *Handlers) ListStudents(w http.ResponseWriter, r *http.Request) {
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

	students, total, err := h.Students.List(r.Context(), studentsdomain.ListFilter{
		Search: query.Get("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.writeDomainError(w, "students.list", err)
		return
	}

	writeData(w, http.StatusOK, "success", listResponse{Items: students, Total: total})
}

func (h *Handlers) GetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := h.Students.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, "students.get", err)
		return
	}

	writeData(w, http.StatusOK, "success", student)
}

// CurrentStudent resolves the profile bound to the authenticated user.
func (h *Handlers) CurrentStudent(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	student, err := h.Students.GetByUser(r.Context(), userID)
	if err != nil {
		h.writeDomainError(w, "students.me", err, "user_id", userID)
		return
	}

	writeData(w, http.StatusOK, "success", student)
}

func (h *Handlers) CreateStudent(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req studentCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	birthDate, err := parseDateParam(req.BirthDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid birth_date", "validation_error")
		return
	}
	enrollmentDate, err := parseDateParam(req.EnrollmentDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid enrollment_date", "validation_error")
		return
	}

	student, err := h.Students.Create(r.Context(), studentsdomain.CreateInput{
		UserID:         userID,
		StudentNumber:  req.StudentNumber,
		Name:           req.Name,
		Gender:         studentsdomain.Gender(req.Gender),
		BirthDate:      birthDate,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		Major:          req.Major,
		Grade:          req.Grade,
		ClassName:      req.ClassName,
		EnrollmentDate: enrollmentDate,
	})
	if err != nil {
		h.writeDomainError(w, "students.create", err, "user_id", userID)
		return
	}

	writeData(w, http.StatusCreated, "created", student)
}

func (h *Handlers) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	var req studentUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	student, err := h.Students.Update(r.Context(), studentsdomain.UpdateInput{
		ID:        chi.URLParam(r, "id"),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		Major:     req.Major,
		Grade:     req.Grade,
		ClassName: req.ClassName,
		Status:    req.Status,
	})
	if err != nil {
		h.writeDomainError(w, "students.update", err)
		return
	}

	writeData(w, http.StatusOK, "updated", student)
}

func (h *Handlers) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	if err := h.Students.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "students.delete", err)
		return
	}

	writeData(w, http.StatusOK, "deleted", nil)
}
