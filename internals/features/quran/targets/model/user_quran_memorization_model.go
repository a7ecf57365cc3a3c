package model

import (
	"time"

	"github.com/google/uuid"
)

// Jumlah ayat yang sudah dihafal user per surat. Satu baris per (user, surat).
type UserQuranMemorizationModel struct {
	UserQuranMemorizationID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_quran_memorization_id" json:"user_quran_memorization_id"`
	UserQuranMemorizationUserID          uuid.UUID `gorm:"type:uuid;not null;column:user_quran_memorization_user_id;uniqueIndex:uq_uqm_user_surah,priority:1" json:"user_quran_memorization_user_id"`
	UserQuranMemorizationSurahNumber     int       `gorm:"not null;column:user_quran_memorization_surah_number;uniqueIndex:uq_uqm_user_surah,priority:2;check:user_quran_memorization_surah_number BETWEEN 1 AND 114" json:"user_quran_memorization_surah_number"`
	UserQuranMemorizationMemorizedVerses int       `gorm:"not null;default:0;column:user_quran_memorization_memorized_verses;check:user_quran_memorization_memorized_verses >= 0" json:"user_quran_memorization_memorized_verses"`

	UserQuranMemorizationCreatedAt time.Time `gorm:"column:user_quran_memorization_created_at;autoCreateTime" json:"user_quran_memorization_created_at"`
	UserQuranMemorizationUpdatedAt time.Time `gorm:"column:user_quran_memorization_updated_at;autoUpdateTime" json:"user_quran_memorization_updated_at"`
}

func (UserQuranMemorizationModel) TableName() string {
	return "user_quran_memorizations"
}
