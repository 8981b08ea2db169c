package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadp "assettrack/internal/adapter/http"
	mw "assettrack/internal/adapter/middleware"
	"assettrack/internal/adapter/repository/mysql"
	"assettrack/internal/config"
	"assettrack/internal/domain/permission"
	"assettrack/internal/infrastructure/cache"
	"assettrack/internal/infrastructure/db"
	"assettrack/internal/usecase/assetsync"
	ucTx "assettrack/internal/usecase/transaction"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	txRepo := mysql.NewTransactionRepository(gdb)
	assetRepo := mysql.NewAssetRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)

	sync := assetsync.New(assetRepo)
	uc := ucTx.NewUsecase(txRepo, assetRepo, userRepo, permission.DefaultPolicy(), sync)

	h := httpadp.NewHandler()
	th := httpadp.NewTransactionHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	idempTTL := time.Duration(cfg.IdempTTLSecs) * time.Second
	tx := e.Group("/api/v1/transactions", mw.Actor(), mw.Idempotency(rdb, idempTTL))
	tx.POST("", th.Create)
	tx.GET("", th.List)
	tx.GET("/:transaction_id", th.Get)
	tx.PATCH("/:transaction_id", th.Update)
	tx.DELETE("/:transaction_id", th.Delete)
	tx.PATCH("/:transaction_id/status", th.ChangeStatus)
	tx.PATCH("/:transaction_id/accept", th.Accept)
	tx.PATCH("/:transaction_id/reject", th.Reject)
	tx.PATCH("/:transaction_id/complete", th.Complete)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
