package routes

import (
	refCtl "tahfidz_backend/internals/features/quran/reference/controller"
	refService "tahfidz_backend/internals/features/quran/reference/service"

	"github.com/gofiber/fiber/v2"
)

//   - /quran/surahs, /quran/surahs/:number, /quran/juz/:juz
func QuranReferencePublicRoutes(r fiber.Router, index *refService.Index) {
	ctl := refCtl.NewQuranReferenceController(index)

	grp := r.Group("/quran")
	grp.Get("/surahs", ctl.ListSurahs)
	grp.Get("/surahs/:number", ctl.GetSurah)
	grp.Get("/juz/:juz", ctl.GetJuz)
}
