package details

import (
	refService "tahfidz_backend/internals/features/quran/reference/service"
	refRoutes "tahfidz_backend/internals/features/quran/reference/route"
	targetCtl "tahfidz_backend/internals/features/quran/targets/controller"
	targetRoutes "tahfidz_backend/internals/features/quran/targets/route"
	targetService "tahfidz_backend/internals/features/quran/targets/service"
	rateLimiter "tahfidz_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
)

// Publik (tanpa login): data referensi + preview rencana
func QuranPublicRoutes(public fiber.Router, index *refService.Index, planner *targetService.Planner) {
	refRoutes.QuranReferencePublicRoutes(public, index)

	targetRoutes.QuranTargetPublicRoutes(public, index, planner, rateLimiter.PlanPreviewRateLimiter())
}

// User login: target tersimpan + hafalan
func QuranUserRoutes(user fiber.Router, index *refService.Index, planner *targetService.Planner, st targetCtl.Store) {
	targetRoutes.QuranTargetUserRoutes(user, index, planner, st)
}
