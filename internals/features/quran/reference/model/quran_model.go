package model

const (
	SurahCount  = 114
	JuzCount    = 30
	TotalVerses = 6236
)

// Surah = satu surat beserta jumlah ayatnya (mushaf standar Hafs, 6236 ayat).
type Surah struct {
	Number int
	Name   string
	Verses int
}

// JuzSegment = potongan satu surat di dalam satu juz. Ayat 1-indexed, inklusif.
type JuzSegment struct {
	Surah      int
	VerseStart int
	VerseEnd   int
}

func (s JuzSegment) Len() int {
	return s.VerseEnd - s.VerseStart + 1
}

type Juz struct {
	Number   int
	Segments []JuzSegment
}

func (j Juz) TotalVerses() int {
	n := 0
	for _, s := range j.Segments {
		n += s.Len()
	}
	return n
}

// VerseRef = alamat satu ayat (surat:ayat).
type VerseRef struct {
	Surah int
	Verse int
}
