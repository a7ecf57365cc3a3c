package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	refModel "tahfidz_backend/internals/features/quran/reference/model"
	refService "tahfidz_backend/internals/features/quran/reference/service"
)

// VerseRange = rentang ayat inklusif di dalam satu surat.
type VerseRange struct {
	Start int
	End   int
}

func (r VerseRange) Len() int {
	return r.End - r.Start + 1
}

// SurahTarget = target hafalan untuk satu surat yang tersentuh seleksi juz.
type SurahTarget struct {
	Surah          int
	Name           string
	TotalVerses    int
	TargetedVerses int
	Ranges         []VerseRange // hasil merge, urut, tidak overlap/bersebelahan
	Juz            []int        // juz yang menyumbang ke surat ini, ascending

	CoveragePercent int
	MemorizedVerses int
	ProgressPercent int
}

// FullyCovered: satu rentang [1, TotalVerses].
func (t SurahTarget) FullyCovered() bool {
	return len(t.Ranges) == 1 && t.Ranges[0].Start == 1 && t.Ranges[0].End == t.TotalVerses
}

// Resolution = hasil Resolve: juz ternormalisasi + target urut nomor surat.
type Resolution struct {
	Juz     []int
	Targets []SurahTarget
}

// Resolver memetakan juz ke rentang ayat per surat lewat QuranIndex.
type Resolver struct {
	index *refService.Index
}

func NewResolver(index *refService.Index) *Resolver {
	return &Resolver{index: index}
}

// NormalizeSelection: validasi 1..juzCount, buang duplikat, urutkan.
func NormalizeSelection(selection []int, juzCount int) ([]int, error) {
	if len(selection) == 0 {
		return nil, fmt.Errorf("%w: at least one Juz required", ErrInvalidInput)
	}

	var bad []string
	seen := make(map[int]struct{}, len(selection))
	out := make([]int, 0, len(selection))
	for _, j := range selection {
		if j < 1 || j > juzCount {
			bad = append(bad, strconv.Itoa(j))
			continue
		}
		if _, ok := seen[j]; ok {
			continue
		}
		seen[j] = struct{}{}
		out = append(out, j)
	}
	if len(bad) > 0 {
		return nil, fmt.Errorf("%w: juz out of range (1-%d): %s", ErrInvalidInput, juzCount, strings.Join(bad, ", "))
	}

	sort.Ints(out)
	return out, nil
}

// Resolve mengubah seleksi juz menjadi target per surat, urut nomor surat.
func (r *Resolver) Resolve(selection []int) (*Resolution, error) {
	juz, err := NormalizeSelection(selection, r.index.JuzCount())
	if err != nil {
		return nil, err
	}

	ranges := make(map[int][]VerseRange)
	covering := make(map[int][]int)
	for _, j := range juz {
		segs, err := r.index.SegmentsForJuz(j)
		if err != nil {
			return nil, fmt.Errorf("resolve juz %d: %w", j, err)
		}
		for _, seg := range segs {
			ranges[seg.Surah] = append(ranges[seg.Surah], VerseRange{Start: seg.VerseStart, End: seg.VerseEnd})
			covering[seg.Surah] = appendUnique(covering[seg.Surah], j)
		}
	}

	surahs := make([]int, 0, len(ranges))
	for s := range ranges {
		surahs = append(surahs, s)
	}
	sort.Ints(surahs)

	targets := make([]SurahTarget, 0, len(surahs))
	for _, n := range surahs {
		surah, err := r.index.SurahByNumber(n)
		if err != nil {
			return nil, fmt.Errorf("resolve surah %d: %w", n, err)
		}
		targets = append(targets, newSurahTarget(surah, MergeRanges(ranges[n]), covering[n]))
	}

	return &Resolution{Juz: juz, Targets: targets}, nil
}

func newSurahTarget(surah refModel.Surah, merged []VerseRange, juz []int) SurahTarget {
	sort.Ints(juz)
	t := SurahTarget{
		Surah:       surah.Number,
		Name:        surah.Name,
		TotalVerses: surah.Verses,
		Ranges:      merged,
		Juz:         juz,
	}
	for _, r := range merged {
		t.TargetedVerses += r.Len()
	}
	t.CoveragePercent = coveragePercent(t)
	return t
}

// MergeRanges: sort-and-sweep. Rentang yang overlap atau bersebelahan
// (start berikutnya <= end + 1) digabung jadi satu.
func MergeRanges(in []VerseRange) []VerseRange {
	if len(in) == 0 {
		return nil
	}
	sorted := append([]VerseRange(nil), in...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	out := []VerseRange{sorted[0]}
	for _, r := range sorted[1:] {
		cur := &out[len(out)-1]
		if r.Start <= cur.End+1 {
			if r.End > cur.End {
				cur.End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

func appendUnique(list []int, v int) []int {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
