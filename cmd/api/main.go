package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "docflow-backend/internal/adapter/http"
	mw "docflow-backend/internal/adapter/middleware"
	"docflow-backend/internal/adapter/repository/mysql"
	"docflow-backend/internal/config"
	"docflow-backend/internal/infrastructure/cache"
	"docflow-backend/internal/infrastructure/db"
	"docflow-backend/internal/notify"
	documentuc "docflow-backend/internal/usecase/document"
	workflowuc "docflow-backend/internal/usecase/workflow"
	"docflow-backend/pkg/logger"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		zlog.Fatal("mysql connect failed", zap.Error(err))
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		zlog.Fatal("redis connect failed", zap.Error(err))
	}

	var dispatcher notify.Dispatcher
	if cfg.SMTPHost != "" {
		dispatcher = notify.NewSMTPDispatcher(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, zlog)
	} else {
		dispatcher = notify.NewLogDispatcher(zlog)
	}

	userRepo := mysql.NewUserRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	docUC := documentuc.NewUsecase(tx, zlog)
	wfUC := workflowuc.NewUsecase(tx, dispatcher, zlog,
		time.Duration(cfg.ReviewDeadlineHours)*time.Hour, cfg.RetentionYears)

	h := httpadp.NewHandler()
	docH := httpadp.NewDocumentHandler(docUC)
	wfH := httpadp.NewWorkflowHandler(wfUC)
	archH := httpadp.NewArchiveHandler(docUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	e.GET("/health", h.Health)

	api := e.Group("/api",
		mw.Actor(userRepo),
		mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, zlog),
	)

	api.POST("/documents", docH.Create)
	api.GET("/documents", docH.List)
	api.GET("/documents/:document_id", docH.Get)
	api.PUT("/documents/:document_id", docH.Update)
	api.DELETE("/documents/:document_id", docH.Delete)

	api.POST("/documents/:document_id/submit", wfH.Submit)
	api.POST("/documents/:document_id/review", wfH.Review)
	api.POST("/documents/:document_id/approve", wfH.Approve)
	api.POST("/documents/:document_id/sign", wfH.Sign)
	api.POST("/documents/:document_id/comments", wfH.Comment)
	api.GET("/documents/:document_id/signatures", wfH.Signatures)

	api.GET("/archive", archH.List)
	api.GET("/archive/statistics", archH.Statistics)

	addr := ":" + cfg.AppPort
	zlog.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
