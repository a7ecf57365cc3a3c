// internals/features/quran/targets/dto/quran_target_dto.go
package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	refModel "tahfidz_backend/internals/features/quran/reference/model"
	"tahfidz_backend/internals/features/quran/targets/model"
	"tahfidz_backend/internals/features/quran/targets/service"
)

/* ===================== REQUESTS ===================== */

// GET .../targets/plan?juz=1,2,3&daily_pace=10
type PlanQuery struct {
	Juz       string `query:"juz"`
	DailyPace int    `query:"daily_pace" validate:"omitempty,min=1,max=1000"`
}

// ParseJuzList: "1, 2,3" -> [1 2 3]. Token kosong (mis. koma di akhir) dilewati;
// token non-angka / di luar 1..30 menggagalkan seluruh request.
func ParseJuzList(raw string) ([]int, error) {
	out := make([]int, 0, refModel.JuzCount)
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: juz %q is not a number", service.ErrInvalidInput, tok)
		}
		if n < 1 || n > refModel.JuzCount {
			return nil, fmt.Errorf("%w: juz %q out of range (1-%d)", service.ErrInvalidInput, tok, refModel.JuzCount)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: at least one Juz required", service.ErrInvalidInput)
	}
	return out, nil
}

// POST /targets
// Isi juz (kosong / di luar 1..30) divalidasi Planner -> ErrInvalidInput (400).
type SaveTargetRequest struct {
	Juz       []int `json:"juz" validate:"max=100"`
	DailyPace *int  `json:"daily_pace" validate:"omitempty,min=1,max=1000"`
}

func (r SaveTargetRequest) PaceOrZero() int {
	if r.DailyPace == nil {
		return 0
	}
	return *r.DailyPace
}

type MemorizationItem struct {
	SurahNumber     int `json:"surah_number" validate:"required,min=1,max=114"`
	MemorizedVerses int `json:"memorized_verses" validate:"min=0"`
}

// PUT /memorizations
type UpsertMemorizationRequest struct {
	Items []MemorizationItem `json:"items" validate:"required,min=1,max=114,dive"`
}

// ToMap: item terakhir menang kalau surat yang sama dikirim dua kali.
func (r UpsertMemorizationRequest) ToMap() map[int]int {
	out := make(map[int]int, len(r.Items))
	for _, it := range r.Items {
		out[it.SurahNumber] = it.MemorizedVerses
	}
	return out
}

/* ===================== RESPONSES (plan) ===================== */

type RentangAyat struct {
	Mulai   int `json:"mulai"`
	Selesai int `json:"selesai"`
}

type SuratTargetResponse struct {
	NomorSurat       int           `json:"nomorSurat"`
	NamaSurat        string        `json:"namaSurat"`
	TotalAyat        int           `json:"totalAyat"`
	AyatTarget       int           `json:"ayatTarget"`
	RentangAyat      []RentangAyat `json:"rentangAyat"`
	Juz              []int         `json:"juz"`
	Lengkap          bool          `json:"lengkap"`
	PersentaseTarget int           `json:"persentaseTarget"`
	AyatHafal        int           `json:"ayatHafal"`
	Progress         int           `json:"progress"`
}

type StatistikResponse struct {
	TotalJuz            int    `json:"totalJuz"`
	TotalSurat          int    `json:"totalSurat"`
	TotalAyatTarget     int    `json:"totalAyatTarget"`
	SuratLengkap        int    `json:"suratLengkap"`
	SuratSebagian       int    `json:"suratSebagian"`
	EstimasiWaktu       string `json:"estimasiWaktu"`
	EstimasiHari        int    `json:"estimasiHari"`
	TargetHarian        int    `json:"targetHarian"`
	TotalAyatHafal      int    `json:"totalAyatHafal"`
	SisaAyat            int    `json:"sisaAyat"`
	EstimasiSisaHari    int    `json:"estimasiSisaHari"`
	ProgressKeseluruhan int    `json:"progressKeseluruhan"`
}

type RencanaHafalanResponse struct {
	Urutan     int    `json:"urutan"`
	NomorSurat int    `json:"nomorSurat"`
	NamaSurat  string `json:"namaSurat"`
	Target     string `json:"target"`
	Prioritas  int    `json:"prioritas"`
	Juz        []int  `json:"juz"`
	Progress   int    `json:"progress"`
}

type PlanResponse struct {
	TargetJuz      []int                    `json:"targetJuz"`
	SuratTarget    []SuratTargetResponse    `json:"suratTarget"`
	Statistik      StatistikResponse        `json:"statistik"`
	RencanaHafalan []RencanaHafalanResponse `json:"rencanaHafalan"`
	LastGenerated  time.Time                `json:"lastGenerated"`
}

func NewStatistikResponse(s service.Summary) StatistikResponse {
	return StatistikResponse{
		TotalJuz:            s.JuzCount,
		TotalSurat:          s.SurahCount,
		TotalAyatTarget:     s.TotalTargetVerses,
		SuratLengkap:        s.FullyCovered,
		SuratSebagian:       s.PartiallyCovered,
		EstimasiWaktu:       s.EstimatedDuration(),
		EstimasiHari:        s.EstimatedDays,
		TargetHarian:        s.DailyPace,
		TotalAyatHafal:      s.MemorizedVerses,
		SisaAyat:            s.RemainingVerses,
		EstimasiSisaHari:    s.EstimatedRemainingDays,
		ProgressKeseluruhan: s.OverallProgress,
	}
}

// Factory
func NewPlanResponse(p *service.Plan) *PlanResponse {
	if p == nil {
		return nil
	}

	out := &PlanResponse{
		TargetJuz:      append([]int{}, p.Juz...),
		SuratTarget:    make([]SuratTargetResponse, 0, len(p.Targets)),
		Statistik:      NewStatistikResponse(p.Summary),
		RencanaHafalan: make([]RencanaHafalanResponse, 0, len(p.Entries)),
		LastGenerated:  p.GeneratedAt,
	}

	for _, t := range p.Targets {
		ranges := make([]RentangAyat, 0, len(t.Ranges))
		for _, r := range t.Ranges {
			ranges = append(ranges, RentangAyat{Mulai: r.Start, Selesai: r.End})
		}
		out.SuratTarget = append(out.SuratTarget, SuratTargetResponse{
			NomorSurat:       t.Surah,
			NamaSurat:        t.Name,
			TotalAyat:        t.TotalVerses,
			AyatTarget:       t.TargetedVerses,
			RentangAyat:      ranges,
			Juz:              append([]int{}, t.Juz...),
			Lengkap:          t.FullyCovered(),
			PersentaseTarget: t.CoveragePercent,
			AyatHafal:        t.MemorizedVerses,
			Progress:         t.ProgressPercent,
		})
	}

	for _, e := range p.Entries {
		out.RencanaHafalan = append(out.RencanaHafalan, RencanaHafalanResponse{
			Urutan:     e.Sequence,
			NomorSurat: e.Surah,
			NamaSurat:  e.Name,
			Target:     e.Description,
			Prioritas:  e.Priority,
			Juz:        append([]int{}, e.Juz...),
			Progress:   e.ProgressPercent,
		})
	}
	return out
}

// SummarySnapshot: statistik plan -> JSONB untuk kolom user_quran_target_summary.
func SummarySnapshot(p *service.Plan) (datatypes.JSON, error) {
	if p == nil {
		return nil, nil
	}
	b, err := json.Marshal(NewStatistikResponse(p.Summary))
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

/* ===================== RESPONSES (records) ===================== */

type QuranTargetResponse struct {
	UserQuranTargetID        uuid.UUID     `json:"user_quran_target_id"`
	UserQuranTargetUserID    uuid.UUID     `json:"user_quran_target_user_id"`
	UserQuranTargetJuz       []int         `json:"user_quran_target_juz"`
	UserQuranTargetDailyPace *int          `json:"user_quran_target_daily_pace,omitempty"`
	UserQuranTargetCreatedAt time.Time     `json:"user_quran_target_created_at"`
	UserQuranTargetUpdatedAt time.Time     `json:"user_quran_target_updated_at"`
	Plan                     *PlanResponse `json:"plan,omitempty"`
}

func NewQuranTargetResponse(m *model.UserQuranTargetModel, plan *PlanResponse) *QuranTargetResponse {
	if m == nil {
		return nil
	}
	return &QuranTargetResponse{
		UserQuranTargetID:        m.UserQuranTargetID,
		UserQuranTargetUserID:    m.UserQuranTargetUserID,
		UserQuranTargetJuz:       m.JuzInts(),
		UserQuranTargetDailyPace: m.UserQuranTargetDailyPace,
		UserQuranTargetCreatedAt: m.UserQuranTargetCreatedAt,
		UserQuranTargetUpdatedAt: m.UserQuranTargetUpdatedAt,
		Plan:                     plan,
	}
}

type MemorizationResponse struct {
	SurahNumber     int       `json:"surah_number"`
	SurahName       string    `json:"surah_name"`
	TotalVerses     int       `json:"total_verses"`
	MemorizedVerses int       `json:"memorized_verses"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewMemorizationResponse(m model.UserQuranMemorizationModel, surah refModel.Surah) MemorizationResponse {
	return MemorizationResponse{
		SurahNumber:     m.UserQuranMemorizationSurahNumber,
		SurahName:       surah.Name,
		TotalVerses:     surah.Verses,
		MemorizedVerses: m.UserQuranMemorizationMemorizedVerses,
		UpdatedAt:       m.UserQuranMemorizationUpdatedAt,
	}
}
