package dto

import "tahfidz_backend/internals/features/quran/reference/model"

type SuratResponse struct {
	NomorSurat int    `json:"nomorSurat"`
	NamaSurat  string `json:"namaSurat"`
	JumlahAyat int    `json:"jumlahAyat"`
	Juz        []int  `json:"juz"`
}

func NewSuratResponse(s model.Surah, juz []int) SuratResponse {
	if juz == nil {
		juz = []int{}
	}
	return SuratResponse{
		NomorSurat: s.Number,
		NamaSurat:  s.Name,
		JumlahAyat: s.Verses,
		Juz:        juz,
	}
}

type SegmenJuzResponse struct {
	NomorSurat  int    `json:"nomorSurat"`
	NamaSurat   string `json:"namaSurat"`
	AyatMulai   int    `json:"ayatMulai"`
	AyatSelesai int    `json:"ayatSelesai"`
	Lengkap     bool   `json:"lengkap"`
}

type JuzResponse struct {
	NomorJuz  int                 `json:"nomorJuz"`
	TotalAyat int                 `json:"totalAyat"`
	Segmen    []SegmenJuzResponse `json:"segmen"`
}

// surahOf dipakai untuk mengisi nama & status lengkap tiap segmen.
func NewJuzResponse(j model.Juz, surahOf func(int) model.Surah) JuzResponse {
	out := JuzResponse{
		NomorJuz:  j.Number,
		TotalAyat: j.TotalVerses(),
		Segmen:    make([]SegmenJuzResponse, 0, len(j.Segments)),
	}
	for _, seg := range j.Segments {
		s := surahOf(seg.Surah)
		out.Segmen = append(out.Segmen, SegmenJuzResponse{
			NomorSurat:  seg.Surah,
			NamaSurat:   s.Name,
			AyatMulai:   seg.VerseStart,
			AyatSelesai: seg.VerseEnd,
			Lengkap:     seg.VerseStart == 1 && seg.VerseEnd == s.Verses,
		})
	}
	return out
}
