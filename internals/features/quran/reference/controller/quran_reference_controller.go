package controller

import (
	"errors"
	"log"

	"tahfidz_backend/internals/features/quran/reference/dto"
	"tahfidz_backend/internals/features/quran/reference/model"
	"tahfidz_backend/internals/features/quran/reference/service"
	helper "tahfidz_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type QuranReferenceController struct {
	Index *service.Index
}

func NewQuranReferenceController(index *service.Index) *QuranReferenceController {
	return &QuranReferenceController{Index: index}
}

// GET /quran/surahs?page=&per_page=
func (ctl *QuranReferenceController) ListSurahs(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, model.SurahCount, model.SurahCount)

	all := ctl.Index.Surahs()
	start := min(p.Offset, len(all))
	end := min(start+p.Limit, len(all))

	out := make([]dto.SuratResponse, 0, end-start)
	for _, s := range all[start:end] {
		juz, err := ctl.Index.JuzForSurah(s.Number)
		if err != nil {
			return ctl.internal(err)
		}
		out = append(out, dto.NewSuratResponse(s, juz))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPagination(int64(len(all)), p, len(out)))
}

// GET /quran/surahs/:number
func (ctl *QuranReferenceController) GetSurah(c *fiber.Ctx) error {
	n, err := c.ParamsInt("number")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Nomor surat tidak valid")
	}
	s, err := ctl.Index.SurahByNumber(n)
	if errors.Is(err, service.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Surat tidak ditemukan (1-114)")
	}
	if err != nil {
		return ctl.internal(err)
	}
	juz, err := ctl.Index.JuzForSurah(n)
	if err != nil {
		return ctl.internal(err)
	}
	return helper.JsonOK(c, "ok", dto.NewSuratResponse(s, juz))
}

// GET /quran/juz/:juz
func (ctl *QuranReferenceController) GetJuz(c *fiber.Ctx) error {
	n, err := c.ParamsInt("juz")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Nomor juz tidak valid")
	}
	j, err := ctl.Index.Juz(n)
	if errors.Is(err, service.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Juz tidak ditemukan (1-30)")
	}
	if err != nil {
		return ctl.internal(err)
	}

	surahOf := func(num int) model.Surah {
		s, _ := ctl.Index.SurahByNumber(num)
		return s
	}
	return helper.JsonOK(c, "ok", dto.NewJuzResponse(j, surahOf))
}

func (ctl *QuranReferenceController) internal(err error) error {
	log.Printf("[FATAL] quran reference defect: %v", err)
	return fiber.NewError(fiber.StatusInternalServerError, "Data referensi Al-Qur'an bermasalah")
}
