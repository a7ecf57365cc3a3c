package seeds

import (
	memorizations "tahfidz_backend/internals/seeds/quran/memorizations"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	//* Quran
	memorizations.SeedMemorizationsFromJSON(db, "internals/seeds/quran/memorizations/data_memorizations.json")
}
