package memorizations

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	refService "tahfidz_backend/internals/features/quran/reference/service"
	"tahfidz_backend/internals/features/quran/targets/store"
)

type MemorizationSeed struct {
	UserID uuid.UUID `json:"user_id"`
	Items  []struct {
		SurahNumber     int `json:"surah_number"`
		MemorizedVerses int `json:"memorized_verses"`
	} `json:"items"`
}

// SeedMemorizationsFromJSON: data hafalan demo per user (upsert, aman dijalankan ulang).
func SeedMemorizationsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	seeds, err := ParseMemorizationSeeds(file, refService.MustNewIndex())
	if err != nil {
		log.Fatalf("❌ Data seed hafalan tidak valid: %v", err)
	}

	st := store.NewGormStore(db)
	ctx := context.Background()
	for userID, memorized := range seeds {
		if err := st.UpsertMemorizations(ctx, userID, memorized); err != nil {
			log.Fatalf("❌ Gagal upsert hafalan user %s: %v", userID, err)
		}
		log.Printf("✅ Hafalan user %s: %d surat", userID, len(memorized))
	}
}

// ParseMemorizationSeeds memvalidasi nomor surat & jumlah ayat terhadap index.
func ParseMemorizationSeeds(raw []byte, index *refService.Index) (map[uuid.UUID]map[int]int, error) {
	var seeds []MemorizationSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	out := make(map[uuid.UUID]map[int]int, len(seeds))
	for i, s := range seeds {
		if s.UserID == uuid.Nil {
			return nil, fmt.Errorf("seed #%d: user_id kosong", i)
		}
		m := out[s.UserID]
		if m == nil {
			m = map[int]int{}
			out[s.UserID] = m
		}
		for _, it := range s.Items {
			surah, err := index.SurahByNumber(it.SurahNumber)
			if err != nil {
				return nil, fmt.Errorf("seed #%d: %w", i, err)
			}
			if it.MemorizedVerses < 0 || it.MemorizedVerses > surah.Verses {
				return nil, fmt.Errorf("seed #%d: surat %d hanya %d ayat (got %d)", i, it.SurahNumber, surah.Verses, it.MemorizedVerses)
			}
			m[it.SurahNumber] = it.MemorizedVerses
		}
	}
	return out, nil
}
