package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"salesdashboard/config"
	_ "salesdashboard/docs"
	"salesdashboard/logger"
	"salesdashboard/mockdata"
	"salesdashboard/sales"
	"salesdashboard/store"
)

// Shared handler state, set once at startup (and by the test harness).
var (
	dataStore      *store.Store
	appLog         = zap.NewNop()
	maxUploadBytes int64
)

// @title Sales Dashboard API
// @version 1.0
// @description Transaction service backing the sales dashboard: filtered, sorted, paginated transaction queries with aggregate statistics and CSV import.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	appLog = logger.New(cfg.Log)
	defer appLog.Sync()

	maxUploadBytes = cfg.Upload.MaxSizeMB << 20

	baseDate := mockdata.DefaultBaseDate()
	if cfg.Mock.BaseDate != "" {
		// Validated by config.Load.
		baseDate, _ = sales.ParseDate(cfg.Mock.BaseDate)
	}
	dataStore = store.New(mockdata.Generate(cfg.Mock.Records, cfg.Mock.Seed, baseDate))
	appLog.Info("seeded in-memory dataset",
		zap.Int("records", dataStore.Count()),
		zap.Int64("seed", cfg.Mock.Seed),
		zap.String("base_date", baseDate.String()),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(logger.GinMiddleware(appLog))
	r.Use(logger.Recovery(appLog))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	registerRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTP.IdleTimeoutSeconds) * time.Second,
	}

	go func() {
		appLog.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error("forced shutdown", zap.Error(err))
	}
}

// registerRoutes mounts the transaction service endpoints.
func registerRoutes(r *gin.Engine) {
	r.GET("/api/health", healthCheck)
	r.GET("/api/transactions", listTransactions)
	r.GET("/api/transactions/stats", getStats)
	r.GET("/api/transactions/filters", getFilterOptions)
	r.POST("/api/transactions/upload", uploadTransactions)
	r.GET("/api/transactions/uploads", getUploadHistory)
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
