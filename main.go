package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"tahfidz_backend/internals/configs"
	database "tahfidz_backend/internals/databases"
	refService "tahfidz_backend/internals/features/quran/reference/service"
	"tahfidz_backend/internals/features/quran/targets/scheduler"
	targetService "tahfidz_backend/internals/features/quran/targets/service"
	"tahfidz_backend/internals/features/quran/targets/store"
	helper "tahfidz_backend/internals/helpers"
	middlewares "tahfidz_backend/internals/middlewares"
	routes "tahfidz_backend/internals/route"
	"tahfidz_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	// tabel referensi dicek sekali saat start; rusak = jangan jalan
	index := refService.MustNewIndex()
	planner := targetService.NewPlanner(index, targetService.WithDefaultDailyPace(configs.TargetDailyPace))

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// recover, request-id, compress, etag, cors, logger, limiter
	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + migrasi
	database.ConnectDB()
	database.TunePool()
	database.Migrate()
	database.WarmUpQueries()

	if configs.GetEnvBool("RUN_SEEDS", false) {
		seeds.RunAllSeeds(database.DB)
	}

	targetStore := store.NewGormStore(database.DB)

	// ⏱ scheduler setelah DB siap
	reaper, err := scheduler.StartTargetReaperCron(targetStore, scheduler.ReaperConfig{
		Schedule:      configs.TargetReaperCron,
		RetentionDays: configs.TargetRetentionDays,
	})
	if err != nil {
		log.Fatalf("[TARGET-REAPER] %v", err)
	}

	routes.SetupRoutes(app, routes.Deps{
		Index:     index,
		Planner:   planner,
		Store:     targetStore,
		JWTSecret: configs.JWTSecret,
		Pinger:    database.Ping,
	})

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + stop cron + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	<-reaper.Stop().Done()

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
