package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Selaras dengan tabel user_quran_targets:
// - satu target aktif per user (unique user_id, soft delete via deleted_at)
// - juz disimpan sebagai int[] (urut, tanpa duplikat)
// - summary = snapshot statistik terakhir (JSONB), hanya untuk tampilan cepat;
//   statistik selalu dihitung ulang saat plan diminta
type UserQuranTargetModel struct {
	UserQuranTargetID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_quran_target_id" json:"user_quran_target_id"`
	UserQuranTargetUserID    uuid.UUID      `gorm:"type:uuid;not null;column:user_quran_target_user_id;uniqueIndex:uq_uqt_user_alive,where:user_quran_target_deleted_at IS NULL" json:"user_quran_target_user_id"`
	UserQuranTargetJuz       pq.Int64Array  `gorm:"type:int[];not null;column:user_quran_target_juz" json:"user_quran_target_juz"`
	UserQuranTargetDailyPace *int           `gorm:"column:user_quran_target_daily_pace" json:"user_quran_target_daily_pace,omitempty"`
	UserQuranTargetSummary   datatypes.JSON `gorm:"type:jsonb;column:user_quran_target_summary" json:"user_quran_target_summary,omitempty"`

	UserQuranTargetCreatedAt time.Time      `gorm:"column:user_quran_target_created_at;autoCreateTime" json:"user_quran_target_created_at"`
	UserQuranTargetUpdatedAt time.Time      `gorm:"column:user_quran_target_updated_at;autoUpdateTime" json:"user_quran_target_updated_at"`
	UserQuranTargetDeletedAt gorm.DeletedAt `gorm:"column:user_quran_target_deleted_at;index" json:"user_quran_target_deleted_at,omitempty"`
}

func (UserQuranTargetModel) TableName() string {
	return "user_quran_targets"
}

// JuzInts: pq.Int64Array -> []int untuk dipakai planner.
func (m *UserQuranTargetModel) JuzInts() []int {
	out := make([]int, 0, len(m.UserQuranTargetJuz))
	for _, j := range m.UserQuranTargetJuz {
		out = append(out, int(j))
	}
	return out
}

func JuzToPQ(in []int) pq.Int64Array {
	if len(in) == 0 {
		return pq.Int64Array{}
	}
	out := make(pq.Int64Array, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}
