// Package main is the entry point for the ZenFinance API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/zen-finance/backend/config"
	"github.com/zen-finance/backend/internal/application/adapter"
	"github.com/zen-finance/backend/internal/application/usecase/auth"
	"github.com/zen-finance/backend/internal/application/usecase/category"
	"github.com/zen-finance/backend/internal/application/usecase/expense"
	"github.com/zen-finance/backend/internal/application/usecase/goal"
	"github.com/zen-finance/backend/internal/application/usecase/receipt"
	"github.com/zen-finance/backend/internal/application/usecase/report"
	"github.com/zen-finance/backend/internal/infra/db"
	"github.com/zen-finance/backend/internal/infra/server/router"
	"github.com/zen-finance/backend/internal/integration/adapters"
	"github.com/zen-finance/backend/internal/integration/cache"
	"github.com/zen-finance/backend/internal/integration/email"
	"github.com/zen-finance/backend/internal/integration/email/templates"
	"github.com/zen-finance/backend/internal/integration/entrypoint/controller"
	"github.com/zen-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/zen-finance/backend/internal/integration/persistence"
	"github.com/zen-finance/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting ZenFinance API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.CategoryModel{},
		&model.ExpenseModel{},
		&model.GoalModel{},
		&model.EmailQueueModel{},
		&model.ReceiptExtractionModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	healthController := controller.NewHealthController(database.HealthCheck)

	// Redis is optional: without it summaries are computed from the
	// database on every request.
	var summaryCache adapter.SummaryCache
	if redisOpts, err := redis.ParseURL(cfg.Redis.URL); err != nil {
		slog.Warn("Invalid Redis URL, running without summary cache", "error", err)
	} else {
		if cfg.Redis.Password != "" {
			redisOpts.Password = cfg.Redis.Password
		}
		redisClient := redis.NewClient(redisOpts)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Warn("Redis unreachable, running without summary cache", "error", err)
		} else {
			summaryCache = cache.NewSummaryCache(redisClient)
			slog.Info("Summary cache initialized")
		}
	}

	// Repositories
	userRepo := persistence.NewUserRepository(database.DB())
	tokenRepo := persistence.NewTokenRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	expenseRepo := persistence.NewExpenseRepository(database.DB())
	goalRepo := persistence.NewGoalRepository(database.DB())
	emailQueueRepo := persistence.NewEmailQueueRepository(database.DB())
	extractionRepo := persistence.NewReceiptExtractionRepository(database.DB())

	// Adapters and services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	receiptExtractor := adapters.NewGeminiReceiptExtractor(cfg.Gemini.APIKey)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, summaryCache)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, summaryCache)
	monthlySummaryUseCase := expense.NewMonthlySummaryUseCase(expenseRepo, summaryCache)

	// Category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, expenseRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Receipt intake use cases
	processReceiptUseCase := receipt.NewProcessReceiptUseCase(receiptExtractor, extractionRepo)
	confirmReceiptUseCase := receipt.NewConfirmReceiptUseCase(expenseRepo, summaryCache)

	// Report use case
	monthlyReportUseCase := report.NewRequestMonthlyReportUseCase(userRepo, expenseRepo, goalRepo, emailQueueRepo)

	// Controllers
	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase, logoutUseCase)
	expenseController := controller.NewExpenseController(createExpenseUseCase, listExpensesUseCase, deleteExpenseUseCase, monthlySummaryUseCase)
	categoryController := controller.NewCategoryController(createCategoryUseCase, listCategoriesUseCase, deleteCategoryUseCase)
	goalController := controller.NewGoalController(createGoalUseCase, listGoalsUseCase, deleteGoalUseCase)
	receiptController := controller.NewReceiptController(processReceiptUseCase, confirmReceiptUseCase)
	reportController := controller.NewReportController(monthlyReportUseCase)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Email worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if cfg.Email.WorkerEnabled {
		renderer, err := templates.NewRenderer()
		if err != nil {
			slog.Error("Failed to initialize email templates", "error", err)
			os.Exit(1)
		}

		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		worker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
		go worker.Start(workerCtx)
		slog.Info("Email worker started", "poll_interval", cfg.Email.PollInterval)
	} else {
		slog.Info("Email worker disabled")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		categoryController,
		goalController,
		receiptController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
