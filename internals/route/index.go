package routes

import (
	"log"
	"time"

	refService "tahfidz_backend/internals/features/quran/reference/service"
	targetCtl "tahfidz_backend/internals/features/quran/targets/controller"
	targetService "tahfidz_backend/internals/features/quran/targets/service"
	authMiddleware "tahfidz_backend/internals/middlewares/auth"
	routeDetails "tahfidz_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
)

var startTime time.Time

// Deps = semua yang dibutuhkan route; dibangun sekali di main.
type Deps struct {
	Index     *refService.Index
	Planner   *targetService.Planner
	Store     targetCtl.Store
	JWTSecret string
	Pinger    func() error
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, d.Pinger)

	// ===================== GROUPS =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u", authMiddleware.AuthJWT(d.JWTSecret))

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Quran routes...")
	routeDetails.QuranPublicRoutes(public, d.Index, d.Planner)
	routeDetails.QuranUserRoutes(private, d.Index, d.Planner, d.Store)
}
