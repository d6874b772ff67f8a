package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	apirest "github.com/minerco/server/api/rest"
	"github.com/minerco/server/audit"
	"github.com/minerco/server/cache"
	"github.com/minerco/server/config"
	dbadapter "github.com/minerco/server/db"
	"github.com/minerco/server/game/catalog"
	"github.com/minerco/server/game/economy"
	mw "github.com/minerco/server/middleware"
	"github.com/minerco/server/model"
	"github.com/minerco/server/scheduler"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	cfgPath := "config/config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---- Logger ----
	var logger *zap.Logger
	var logErr error
	if cfg.Server.Debug {
		logger, logErr = zap.NewDevelopment()
	} else {
		logger, logErr = zap.NewProduction()
	}
	if logErr != nil {
		log.Fatalf("logger: %v", logErr)
	}
	defer logger.Sync()

	// Warn loudly if admin endpoints will be disabled.
	if cfg.Security.AdminKey == "" {
		logger.Warn("security.admin_key is not set; admin endpoints are disabled")
	}

	// ---- Database ----
	db, err := dbadapter.Open(cfg.Database)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	logger.Info("DB initialized")

	// ---- Audit ----
	auditSvc := audit.New(db, logger)
	defer auditSvc.Stop(context.Background())

	// ---- Cache ----
	c, err := cache.NewCache(cache.CacheConfig{
		RedisAddr:       cfg.Cache.RedisAddr,
		RedisPassword:   cfg.Cache.RedisPassword,
		RedisDB:         cfg.Cache.RedisDB,
		LocalGCInterval: cfg.Cache.LocalGCInterval,
	})
	if err != nil {
		log.Fatalf("cache: %v", err)
	}
	logger.Info("Cache initialized")

	// ---- Game Engine ----
	cat := catalog.Default()
	engine := economy.New(cat)
	logger.Info("Catalog loaded",
		zap.Int("ores", len(cat.Ores)),
		zap.Int("pets", len(cat.Pets)),
		zap.Int("codes", len(cat.Codes)),
	)

	// ---- Scheduler ----
	sched := scheduler.New(logger)
	defer sched.Stop()

	// ---- Gin HTTP Server ----
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(mw.TraceID(), mw.Logger(logger), mw.Recovery(logger))
	r.Use(mw.RateLimit(rate.Limit(cfg.Security.RateLimitRPS), cfg.Security.RateLimitBurst))

	// Health check
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	// ---- REST API routes ----
	authH := apirest.NewAuthHandler(db, c, cfg.Security)
	gameH := apirest.NewGameHandler(db, engine, auditSvc, logger)
	rankH := apirest.NewRankingHandler(db, c, logger, cfg.Game.RankingTop)
	adminH := apirest.NewAdminHandler(db, gameH, sched, cfg.Security.AdminKey, logger)

	// Periodic leaderboard rebuild.
	sched.AddTicker("ranking_refresh", time.Duration(cfg.Game.RankingRefreshS)*time.Second, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := rankH.Refresh(ctx); err != nil {
			logger.Warn("ranking refresh failed", zap.Error(err))
		}
	})

	api := r.Group("/api")
	{
		authG := api.Group("/auth")
		authG.POST("/login", authH.Login)
		authG.POST("/logout", mw.Auth(cfg.Security, c), authH.Logout)
		authG.POST("/refresh", mw.Auth(cfg.Security, c), authH.Refresh)

		playG := api.Group("")
		playG.Use(mw.Auth(cfg.Security, c))
		playG.GET("/player", gameH.GetPlayer)
		playG.POST("/mine", gameH.Mine)
		playG.POST("/sell", gameH.SellAll)
		playG.POST("/shop/pickaxe", gameH.BuyPickaxe)
		playG.POST("/shop/sword", gameH.BuySword)
		playG.POST("/shop/powerup", gameH.BuyPowerup)
		playG.POST("/pets/spin", gameH.SpinPet)
		playG.POST("/codes/redeem", gameH.RedeemCode)
		playG.POST("/daily/claim", gameH.ClaimDaily)
		playG.POST("/admin/unlock", adminH.Unlock)
		playG.POST("/admin/silver", adminH.GrantSilver)
		playG.POST("/admin/powerups", adminH.GrantPowerups)

		rankG := api.Group("/ranking")
		rankG.GET("/silver", rankH.TopSilver)

		// Operator endpoints: shared key, optionally pinned to known IPs.
		adminG := api.Group("/ops")
		adminG.Use(apirest.AdminAuth(cfg.Security.AdminKey))
		if len(cfg.Security.AdminIPWhitelist) > 0 {
			adminG.Use(mw.IPWhitelist(cfg.Security.AdminIPWhitelist))
		}
		adminG.POST("/accounts/:id/ban", adminH.BanAccount)
		adminG.POST("/ranking/refresh", rankH.RefreshRanking)
		adminG.GET("/scheduler", adminH.ListSchedulerTasks)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
