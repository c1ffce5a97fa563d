package handler

import (
	"net/http"

	alertsdomain "campus-finance-go/internal/domain/alerts"
	exportsdomain "campus-finance-go/internal/domain/exports"
	feesdomain "campus-finance-go/internal/domain/fees"
	statsdomain "campus-finance-go/internal/domain/statistics"
	studentsdomain "campus-finance-go/internal/domain/students"
	txdomain "campus-finance-go/internal/domain/transactions"
	"campus-finance-go/pkg/logger"
)

type Handlers struct {
	Transactions *txdomain.Service
	Alerts       *alertsdomain.Service
	Exports      *exportsdomain.Service
	Statistics   *statsdomain.Service
	Students     *studentsdomain.Service
	Fees         *feesdomain.Service
	log          logger.Logger
}

func New(
	transactions *txdomain.Service,
	alerts *alertsdomain.Service,
	exports *exportsdomain.Service,
	statistics *statsdomain.Service,
	students *studentsdomain.Service,
	fees *feesdomain.Service,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Transactions: transactions,
		Alerts:       alerts,
		Exports:      exports,
		Statistics:   statistics,
		Students:     students,
		Fees:         fees,
		log:          log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, "ok", nil)
}
