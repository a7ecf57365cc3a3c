// internals/features/quran/targets/controller/quran_target_controller.go
package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	refService "tahfidz_backend/internals/features/quran/reference/service"
	"tahfidz_backend/internals/features/quran/targets/dto"
	"tahfidz_backend/internals/features/quran/targets/model"
	"tahfidz_backend/internals/features/quran/targets/service"
	"tahfidz_backend/internals/features/quran/targets/store"
	helper "tahfidz_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Store = bagian persistence yang dipakai controller (GormStore di produksi).
type Store interface {
	GetTarget(ctx context.Context, userID uuid.UUID) (*model.UserQuranTargetModel, error)
	SaveTarget(ctx context.Context, userID uuid.UUID, juz []int, dailyPace *int, summary datatypes.JSON) (*model.UserQuranTargetModel, error)
	DeleteTarget(ctx context.Context, userID uuid.UUID) error
	ListMemorizations(ctx context.Context, userID uuid.UUID) ([]model.UserQuranMemorizationModel, error)
	MemorizedMap(ctx context.Context, userID uuid.UUID) (map[int]int, error)
	UpsertMemorizations(ctx context.Context, userID uuid.UUID, memorized map[int]int) error
}

type QuranTargetController struct {
	Index     *refService.Index
	Planner   *service.Planner
	Store     Store
	Validator *validator.Validate
}

// store boleh nil untuk route publik (preview tanpa hafalan).
func NewQuranTargetController(index *refService.Index, planner *service.Planner, st Store) *QuranTargetController {
	return &QuranTargetController{
		Index:     index,
		Planner:   planner,
		Store:     st,
		Validator: newValidator(),
	}
}

// nama field di pesan validasi pakai tag json/query
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// ===============================
// Handlers (public)
// ===============================

// GET /quran/targets/plan?juz=1,2,3&daily_pace=10
func (ctl *QuranTargetController) PreviewPlan(c *fiber.Ctx) error {
	var q dto.PlanQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validator.Struct(&q); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsMap(err))
	}
	juz, err := dto.ParseJuzList(q.Juz)
	if err != nil {
		return planError(err)
	}

	plan, err := ctl.Planner.Generate(service.PlanInput{Juz: juz, DailyPace: q.DailyPace})
	if err != nil {
		return planError(err)
	}
	return helper.JsonOK(c, "Rencana hafalan berhasil dibuat", dto.NewPlanResponse(plan))
}

// ===============================
// Handlers (user)
// ===============================

// GET /quran/targets/plan?juz=... (pakai hafalan user)
func (ctl *QuranTargetController) PreviewMyPlan(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.PlanQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validator.Struct(&q); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsMap(err))
	}
	juz, err := dto.ParseJuzList(q.Juz)
	if err != nil {
		return planError(err)
	}

	memorized, err := ctl.Store.MemorizedMap(c.UserContext(), userID)
	if err != nil {
		return storeError(err)
	}

	plan, err := ctl.Planner.Generate(service.PlanInput{Juz: juz, Memorized: memorized, DailyPace: q.DailyPace})
	if err != nil {
		return planError(err)
	}
	return helper.JsonOK(c, "Rencana hafalan berhasil dibuat", dto.NewPlanResponse(plan))
}

// GET /quran/targets
func (ctl *QuranTargetController) GetMyTarget(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	m, err := ctl.Store.GetTarget(ctx, userID)
	if err != nil {
		return storeError(err)
	}
	memorized, err := ctl.Store.MemorizedMap(ctx, userID)
	if err != nil {
		return storeError(err)
	}

	in := service.PlanInput{Juz: m.JuzInts(), Memorized: memorized}
	if m.UserQuranTargetDailyPace != nil {
		in.DailyPace = *m.UserQuranTargetDailyPace
	}
	plan, err := ctl.Planner.Generate(in)
	if err != nil {
		return planError(err)
	}
	return helper.JsonOK(c, "ok", dto.NewQuranTargetResponse(m, dto.NewPlanResponse(plan)))
}

// POST /quran/targets
func (ctl *QuranTargetController) SaveMyTarget(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SaveTargetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsMap(err))
	}

	ctx := c.UserContext()
	memorized, err := ctl.Store.MemorizedMap(ctx, userID)
	if err != nil {
		return storeError(err)
	}

	plan, err := ctl.Planner.Generate(service.PlanInput{Juz: req.Juz, Memorized: memorized, DailyPace: req.PaceOrZero()})
	if err != nil {
		return planError(err)
	}
	snap, err := dto.SummarySnapshot(plan)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	m, err := ctl.Store.SaveTarget(ctx, userID, plan.Juz, req.DailyPace, snap)
	if err != nil {
		return storeError(err)
	}
	log.Printf("[INFO] quran target saved user=%s juz=%v", userID, plan.Juz)

	return helper.JsonCreated(c, "Target hafalan berhasil disimpan", dto.NewQuranTargetResponse(m, dto.NewPlanResponse(plan)))
}

// DELETE /quran/targets
func (ctl *QuranTargetController) DeleteMyTarget(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if err := ctl.Store.DeleteTarget(c.UserContext(), userID); err != nil {
		return storeError(err)
	}
	log.Printf("[INFO] quran target deleted user=%s", userID)
	return helper.JsonDeleted(c, "Target hafalan berhasil dihapus", nil)
}

// GET /quran/memorizations
func (ctl *QuranTargetController) ListMyMemorizations(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	return ctl.respondMemorizations(c, userID, "ok")
}

// PUT /quran/memorizations
func (ctl *QuranTargetController) UpsertMyMemorizations(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertMemorizationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsMap(err))
	}

	memorized := req.ToMap()
	for n, verses := range memorized {
		surah, err := ctl.Index.SurahByNumber(n)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if verses > surah.Verses {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("memorized verses for surah %d (%s) exceed its %d verses (got %d)", n, surah.Name, surah.Verses, verses))
		}
	}

	if err := ctl.Store.UpsertMemorizations(c.UserContext(), userID, memorized); err != nil {
		return storeError(err)
	}
	return ctl.respondMemorizations(c, userID, "Hafalan berhasil diperbarui")
}

func (ctl *QuranTargetController) respondMemorizations(c *fiber.Ctx, userID uuid.UUID, msg string) error {
	rows, err := ctl.Store.ListMemorizations(c.UserContext(), userID)
	if err != nil {
		return storeError(err)
	}
	out := make([]dto.MemorizationResponse, 0, len(rows))
	for _, r := range rows {
		surah, err := ctl.Index.SurahByNumber(r.UserQuranMemorizationSurahNumber)
		if err != nil {
			log.Printf("[WARN] memorization row with unknown surah %d user=%s", r.UserQuranMemorizationSurahNumber, userID)
			continue
		}
		out = append(out, dto.NewMemorizationResponse(r, surah))
	}
	return helper.JsonOK(c, msg, out)
}

// ===============================
// Error mapping
// ===============================

func planError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, refService.ErrNotFound):
		// lookup gagal padahal input sudah tervalidasi -> tabel referensi rusak
		log.Printf("[FATAL] quran reference defect: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Data referensi Al-Qur'an bermasalah")
	default:
		log.Printf("[ERROR] generate plan: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat rencana hafalan")
	}
}

func storeError(err error) error {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe
	case errors.Is(err, store.ErrTargetNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Target hafalan belum dibuat")
	case errors.Is(err, store.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, "Target hafalan sedang diperbarui, coba lagi")
	case errors.Is(err, store.ErrConstraint):
		return fiber.NewError(fiber.StatusBadRequest, "Data hafalan tidak valid")
	default:
		log.Printf("[ERROR] quran target store: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengakses data hafalan")
	}
}
