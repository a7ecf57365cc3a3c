package service

import (
	"fmt"
	"math"
	"sort"

	refModel "tahfidz_backend/internals/features/quran/reference/model"
)

// ApplyProgress mengisi MemorizedVerses & ProgressPercent tiap target dari
// peta {nomor surat -> jumlah ayat yang sudah dihafal}. Peta nil = belum ada
// hafalan sama sekali (progress 0). Slice input tidak diubah.
func ApplyProgress(targets []SurahTarget, memorized map[int]int) ([]SurahTarget, error) {
	if err := validateMemorized(memorized); err != nil {
		return nil, err
	}

	out := make([]SurahTarget, len(targets))
	for i, t := range targets {
		t.MemorizedVerses = 0
		if m, ok := memorized[t.Surah]; ok {
			t.MemorizedVerses = min(m, t.TargetedVerses)
		}
		t.ProgressPercent = percent(t.MemorizedVerses, t.TargetedVerses)
		out[i] = t
	}
	return out, nil
}

func validateMemorized(memorized map[int]int) error {
	keys := make([]int, 0, len(memorized))
	for k := range memorized {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, surah := range keys {
		if surah < 1 || surah > refModel.SurahCount {
			return fmt.Errorf("%w: unknown surah %d in memorization state", ErrInvalidInput, surah)
		}
		if n := memorized[surah]; n < 0 {
			return fmt.Errorf("%w: memorized verses for surah %d must not be negative (got %d)", ErrInvalidInput, surah, n)
		}
	}
	return nil
}

// percent = round(100*part/whole), clamp 0..100.
func percent(part, whole int) int {
	if whole <= 0 || part <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(part) / float64(whole)))
	return max(0, min(100, p))
}

// coveragePercent hanya boleh 100 kalau surat tercakup penuh; 285/286 tetap 99.
func coveragePercent(t SurahTarget) int {
	p := percent(t.TargetedVerses, t.TotalVerses)
	if p == 100 && t.TargetedVerses < t.TotalVerses {
		return 99
	}
	return p
}
