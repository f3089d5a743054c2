package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bank-backoffice-api/config"
	"bank-backoffice-api/db"
	"bank-backoffice-api/exchange"
	"bank-backoffice-api/handler"
	"bank-backoffice-api/logger"
	"bank-backoffice-api/mailer"
	"bank-backoffice-api/repository"
	"bank-backoffice-api/router"
	"bank-backoffice-api/service"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Warnf("Redis unavailable, exchange rates will not be cached: %v", err)
		redisClient = nil
	}

	exchangeCfg := config.AppConfig.Exchange
	feed := exchange.NewFeedClient(exchangeCfg.FeedURL, exchangeCfg.Timeout)
	rates := exchange.NewService(feed, redisClient, exchangeCfg.BaseCurrency, exchangeCfg.CacheTTL)

	clientRepo := repository.NewClientRepository(database)
	accountRepo := repository.NewAccountRepository(database)
	transactionRepo := repository.NewTransactionRepository(database)
	branchRepo := repository.NewBranchRepository(database)
	employeeRepo := repository.NewEmployeeRepository(database)

	mailCfg := config.AppConfig.Mail
	mail := mailer.NewSMTPMailer(mailCfg.Host, mailCfg.Port)

	clientService := service.NewClientService(database, clientRepo, accountRepo)
	accountService := service.NewAccountService(accountRepo)
	transactionService := service.NewTransactionService(transactionRepo)
	transferService := service.NewTransferService(database, accountRepo, rates)
	notificationService := service.NewNotificationService(accountRepo, clientRepo, mail, mailCfg.From)
	coordinator := service.NewTransferCoordinator(transferService, transactionService, notificationService)
	branchService := service.NewBranchService(branchRepo)
	employeeService := service.NewEmployeeService(employeeRepo, branchRepo)

	clientHandler := handler.NewClientHandler(clientService)
	accountHandler := handler.NewAccountHandler(accountService)
	transferHandler := handler.NewTransferHandler(coordinator)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	branchHandler := handler.NewBranchHandler(branchService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	r := router.NewRouter(clientHandler, accountHandler, transferHandler, transactionHandler, branchHandler, employeeHandler)

	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
