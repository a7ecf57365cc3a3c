package service

import (
	"errors"
	"fmt"

	"tahfidz_backend/internals/features/quran/reference/model"
)

// ErrNotFound: lookup di luar tabel referensi. Kalau ini muncul dari resolver,
// berarti data referensinya yang rusak, bukan input user.
var ErrNotFound = errors.New("quran reference not found")

// Index = tabel referensi surat & juz. Dibangun sekali saat startup lalu
// di-inject ke service lain; read-only, aman dipakai banyak goroutine.
type Index struct {
	surahs     []model.Surah
	juz        []model.Juz
	juzBySurah [][]int
}

// NewIndex membangun index dari tabel baku di package model.
func NewIndex() (*Index, error) {
	return NewIndexFrom(model.Surahs[:], model.JuzStarts[:])
}

// MustNewIndex untuk main.go: data referensi rusak = tidak boleh jalan.
func MustNewIndex() *Index {
	idx, err := NewIndex()
	if err != nil {
		panic(err)
	}
	return idx
}

// NewIndexFrom membangun index dari daftar surat dan titik awal tiap juz.
// Segmen tiap juz diturunkan dari titik awal juz berikutnya.
func NewIndexFrom(surahs []model.Surah, starts []model.VerseRef) (*Index, error) {
	if len(surahs) == 0 || len(starts) == 0 {
		return nil, errors.New("quran index: empty reference table")
	}

	total := 0
	for i, s := range surahs {
		if s.Number != i+1 {
			return nil, fmt.Errorf("quran index: surah at position %d has number %d", i+1, s.Number)
		}
		if s.Verses <= 0 {
			return nil, fmt.Errorf("quran index: surah %d has no verses", s.Number)
		}
		total += s.Verses
	}

	if starts[0] != (model.VerseRef{Surah: 1, Verse: 1}) {
		return nil, fmt.Errorf("quran index: first juz must start at 1:1, got %d:%d", starts[0].Surah, starts[0].Verse)
	}
	for i, st := range starts {
		if st.Surah < 1 || st.Surah > len(surahs) || st.Verse < 1 || st.Verse > surahs[st.Surah-1].Verses {
			return nil, fmt.Errorf("quran index: juz %d starts at invalid verse %d:%d", i+1, st.Surah, st.Verse)
		}
		if i > 0 && !before(starts[i-1], st) {
			return nil, fmt.Errorf("quran index: juz %d does not start after juz %d", i+1, i)
		}
	}

	idx := &Index{
		surahs:     append([]model.Surah(nil), surahs...),
		juz:        make([]model.Juz, len(starts)),
		juzBySurah: make([][]int, len(surahs)),
	}

	last := model.VerseRef{Surah: len(surahs), Verse: surahs[len(surahs)-1].Verses}
	covered := 0
	for i, st := range starts {
		end := last
		if i+1 < len(starts) {
			end = idx.prevVerse(starts[i+1])
		}

		j := model.Juz{Number: i + 1}
		for s := st.Surah; s <= end.Surah; s++ {
			seg := model.JuzSegment{Surah: s, VerseStart: 1, VerseEnd: surahs[s-1].Verses}
			if s == st.Surah {
				seg.VerseStart = st.Verse
			}
			if s == end.Surah {
				seg.VerseEnd = end.Verse
			}
			j.Segments = append(j.Segments, seg)
			idx.juzBySurah[s-1] = append(idx.juzBySurah[s-1], j.Number)
			covered += seg.Len()
		}
		idx.juz[i] = j
	}

	if covered != total {
		return nil, fmt.Errorf("quran index: juz segments cover %d verses, surahs have %d", covered, total)
	}
	return idx, nil
}

func before(a, b model.VerseRef) bool {
	if a.Surah != b.Surah {
		return a.Surah < b.Surah
	}
	return a.Verse < b.Verse
}

func (idx *Index) prevVerse(v model.VerseRef) model.VerseRef {
	if v.Verse > 1 {
		return model.VerseRef{Surah: v.Surah, Verse: v.Verse - 1}
	}
	prev := idx.surahs[v.Surah-2]
	return model.VerseRef{Surah: prev.Number, Verse: prev.Verses}
}

func (idx *Index) SurahCount() int { return len(idx.surahs) }

func (idx *Index) JuzCount() int { return len(idx.juz) }

// SurahByNumber mengembalikan surat ke-n (1-indexed).
func (idx *Index) SurahByNumber(n int) (model.Surah, error) {
	if n < 1 || n > len(idx.surahs) {
		return model.Surah{}, fmt.Errorf("%w: surah %d", ErrNotFound, n)
	}
	return idx.surahs[n-1], nil
}

// SegmentsForJuz mengembalikan salinan segmen juz ke-j, urut mushaf.
func (idx *Index) SegmentsForJuz(j int) ([]model.JuzSegment, error) {
	if j < 1 || j > len(idx.juz) {
		return nil, fmt.Errorf("%w: juz %d", ErrNotFound, j)
	}
	return append([]model.JuzSegment(nil), idx.juz[j-1].Segments...), nil
}

func (idx *Index) Juz(j int) (model.Juz, error) {
	segs, err := idx.SegmentsForJuz(j)
	if err != nil {
		return model.Juz{}, err
	}
	return model.Juz{Number: j, Segments: segs}, nil
}

// JuzForSurah: nomor-nomor juz yang memuat sebagian/seluruh surat ke-n.
func (idx *Index) JuzForSurah(n int) ([]int, error) {
	if n < 1 || n > len(idx.surahs) {
		return nil, fmt.Errorf("%w: surah %d", ErrNotFound, n)
	}
	return append([]int(nil), idx.juzBySurah[n-1]...), nil
}

func (idx *Index) Surahs() []model.Surah {
	return append([]model.Surah(nil), idx.surahs...)
}
