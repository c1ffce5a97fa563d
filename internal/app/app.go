package app

import (
	"net/http"

	"campus-finance-go/internal/config"
	"campus-finance-go/internal/db"
	alertsdomain "campus-finance-go/internal/domain/alerts"
	exportsdomain "campus-finance-go/internal/domain/exports"
	feesdomain "campus-finance-go/internal/domain/fees"
	statsdomain "campus-finance-go/internal/domain/statistics"
	studentsdomain "campus-finance-go/internal/domain/students"
	txdomain "campus-finance-go/internal/domain/transactions"
	alertsrepo "campus-finance-go/internal/repository/postgres/alerts"
	exportsrepo "campus-finance-go/internal/repository/postgres/exports"
	feesrepo "campus-finance-go/internal/repository/postgres/fees"
	statsrepo "campus-finance-go/internal/repository/postgres/statistics"
	studentsrepo "campus-finance-go/internal/repository/postgres/students"
	txrepo "campus-finance-go/internal/repository/postgres/transactions"
	"campus-finance-go/internal/transport/httpserver"
	"campus-finance-go/internal/transport/httpserver/handler"
	"campus-finance-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	transactionRepo := txrepo.NewPostgres(dbConn)
	alertRepo := alertsrepo.NewPostgres(dbConn)
	exportRepo := exportsrepo.NewPostgres(dbConn)
	statisticsRepo := statsrepo.NewPostgres(dbConn)
	studentRepo := studentsrepo.NewPostgres(dbConn)
	feeRepo := feesrepo.NewPostgres(dbConn)

	// The alert engine reads budgets through the transactions repository and
	// is invoked by the transactions service after each persisted write.
	alertService := alertsdomain.NewService(alertRepo, transactionRepo, log)
	transactionService := txdomain.NewService(transactionRepo, alertService, log)
	exportService := exportsdomain.NewService(exportRepo, log)
	statisticsService := statsdomain.NewService(statisticsRepo)
	studentService := studentsdomain.NewService(studentRepo)
	feeService := feesdomain.NewService(feeRepo)

	handlers := handler.New(
		transactionService,
		alertService,
		exportService,
		statisticsService,
		studentService,
		feeService,
		log,
	)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
