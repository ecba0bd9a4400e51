package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "suremotor-backend/internal/adapter/http"
	"suremotor-backend/internal/adapter/middleware"
	"suremotor-backend/internal/adapter/repository/mysql"
	"suremotor-backend/internal/config"
	claimDomain "suremotor-backend/internal/domain/claim"
	policyDomain "suremotor-backend/internal/domain/policy"
	quoteDomain "suremotor-backend/internal/domain/quote"
	"suremotor-backend/internal/event"
	"suremotor-backend/internal/infrastructure/cache"
	"suremotor-backend/internal/infrastructure/db"
	"suremotor-backend/internal/reconcile"
	claimUC "suremotor-backend/internal/usecase/claim"
	policyUC "suremotor-backend/internal/usecase/policy"
	quoteUC "suremotor-backend/internal/usecase/quote"
	reportUC "suremotor-backend/internal/usecase/report"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&quoteDomain.Quote{}, &policyDomain.Policy{}, &claimDomain.Claim{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	events := event.NewRedisPublisher(rdb, cfg.EventChannel)

	quotes := mysql.NewQuoteRepository(gdb)
	policies := mysql.NewPolicyRepository(gdb)
	claims := mysql.NewClaimRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	quoteUsecase := quoteUC.NewUsecase(quotes, events)
	policyUsecase := policyUC.NewUsecase(policies, uow, events)
	claimUsecase := claimUC.NewUsecase(claims, policies, events)
	reportUsecase := reportUC.NewUsecase(quotes, policies, claims)

	h := httpadp.NewHandler()
	qh := httpadp.NewQuoteHandler(quoteUsecase)
	ph := httpadp.NewPolicyHandler(policyUsecase)
	ch := httpadp.NewClaimHandler(claimUsecase)
	rh := httpadp.NewReportHandler(reportUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// owner-facing mutations sit behind the idempotency layer; the admin
	// routes carry no Ax-Owner-Id and stay outside it
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)

	quotesG := e.Group("/quotes", idemp)
	quotesG.POST("", qh.CreateQuote)
	quotesG.GET("", qh.ListQuotes)
	quotesG.GET("/stats", qh.QuoteStats)
	quotesG.GET("/:quote_id", qh.GetQuote)
	quotesG.PUT("/:quote_id", qh.UpdateQuote)
	quotesG.DELETE("/:quote_id", qh.DeleteQuote)
	quotesG.POST("/:quote_id/purchase", ph.PurchaseQuote)

	policiesG := e.Group("/policies", idemp)
	policiesG.GET("", ph.ListPolicies)
	policiesG.GET("/stats", ph.PolicyStats)
	policiesG.GET("/:policy_id", ph.GetPolicy)
	policiesG.POST("/:policy_id/cancel", ph.CancelPolicy)

	claimsG := e.Group("/claims", idemp)
	claimsG.POST("", ch.CreateClaim)
	claimsG.GET("", ch.ListClaims)
	claimsG.GET("/stats", ch.ClaimStats)
	claimsG.GET("/:claim_id", ch.GetClaim)
	claimsG.DELETE("/:claim_id", ch.DeleteClaim)

	e.GET("/dashboard", rh.Dashboard)
	e.GET("/analytics", rh.Analytics)

	e.GET("/admin/overview", rh.AdminOverview)
	e.PATCH("/admin/claims/:claim_id/status", ch.UpdateClaimStatus)

	if cfg.ReconcileSpec != "" {
		sweeper := reconcile.NewSweeper(quotes, policies)
		if err := sweeper.Start(cfg.ReconcileSpec); err != nil {
			log.Fatalf("reconcile: %v", err)
		}
		defer sweeper.Stop()
	}

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
