package routes

import (
	refService "tahfidz_backend/internals/features/quran/reference/service"
	targetCtl "tahfidz_backend/internals/features/quran/targets/controller"
	"tahfidz_backend/internals/features/quran/targets/service"

	"github.com/gofiber/fiber/v2"
)

// Publik: preview rencana tanpa data hafalan
//   - /quran/targets/plan?juz=1,2,3
// mw dipasang hanya di /plan (mis. rate limiter khusus).
func QuranTargetPublicRoutes(r fiber.Router, index *refService.Index, planner *service.Planner, mw ...fiber.Handler) {
	ctl := targetCtl.NewQuranTargetController(index, planner, nil)

	grp := r.Group("/quran/targets")
	grp.Get("/plan", append(mw, ctl.PreviewPlan)...)
}

// User login (JWT): target tersimpan + hafalan
func QuranTargetUserRoutes(r fiber.Router, index *refService.Index, planner *service.Planner, st targetCtl.Store) {
	ctl := targetCtl.NewQuranTargetController(index, planner, st)

	tgt := r.Group("/quran/targets")
	tgt.Get("/plan", ctl.PreviewMyPlan)
	tgt.Get("/", ctl.GetMyTarget)
	tgt.Post("/", ctl.SaveMyTarget)
	tgt.Delete("/", ctl.DeleteMyTarget)

	mem := r.Group("/quran/memorizations")
	mem.Get("/", ctl.ListMyMemorizations)
	mem.Put("/", ctl.UpsertMyMemorizations)
}
