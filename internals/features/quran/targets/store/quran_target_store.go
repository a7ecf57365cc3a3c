package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tahfidz_backend/internals/features/quran/targets/model"
)

var (
	ErrTargetNotFound = errors.New("quran target not found")
	ErrConflict       = errors.New("quran target conflict")
	ErrConstraint     = errors.New("quran target violates a constraint")
)

// GormStore menyimpan target juz & hafalan per user. Planner sendiri tidak
// pernah menulis ke DB; hanya controller yang memanggil store ini.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// GetTarget: target aktif (belum soft delete) milik user.
func (s *GormStore) GetTarget(ctx context.Context, userID uuid.UUID) (*model.UserQuranTargetModel, error) {
	var m model.UserQuranTargetModel
	err := s.DB.WithContext(ctx).
		Where("user_quran_target_user_id = ?", userID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTargetNotFound
	}
	if err != nil {
		return nil, mapPGError(err)
	}
	return &m, nil
}

// SaveTarget: upsert target aktif user (unique partial index user_id WHERE deleted_at IS NULL).
func (s *GormStore) SaveTarget(ctx context.Context, userID uuid.UUID, juz []int, dailyPace *int, summary datatypes.JSON) (*model.UserQuranTargetModel, error) {
	m := model.UserQuranTargetModel{
		UserQuranTargetUserID:    userID,
		UserQuranTargetJuz:       model.JuzToPQ(juz),
		UserQuranTargetDailyPace: dailyPace,
		UserQuranTargetSummary:   summary,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_quran_target_user_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "user_quran_target_deleted_at IS NULL"},
			}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_quran_target_juz",
				"user_quran_target_daily_pace",
				"user_quran_target_summary",
				"user_quran_target_updated_at",
			}),
		}).Create(&m).Error; err != nil {
			return err
		}
		return tx.Where("user_quran_target_user_id = ?", userID).First(&m).Error
	})
	if err != nil {
		return nil, mapPGError(err)
	}
	return &m, nil
}

// DeleteTarget: soft delete; ErrTargetNotFound kalau tidak ada target aktif.
func (s *GormStore) DeleteTarget(ctx context.Context, userID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("user_quran_target_user_id = ?", userID).
		Delete(&model.UserQuranTargetModel{})
	if res.Error != nil {
		return mapPGError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrTargetNotFound
	}
	return nil
}

// PurgeDeletedTargets: hard delete baris soft-deleted yang lebih tua dari cutoff.
func (s *GormStore) PurgeDeletedTargets(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.DB.WithContext(ctx).Unscoped().
		Where("user_quran_target_deleted_at IS NOT NULL AND user_quran_target_deleted_at < ?", cutoff).
		Delete(&model.UserQuranTargetModel{})
	if res.Error != nil {
		return 0, mapPGError(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormStore) ListMemorizations(ctx context.Context, userID uuid.UUID) ([]model.UserQuranMemorizationModel, error) {
	var rows []model.UserQuranMemorizationModel
	if err := s.DB.WithContext(ctx).
		Where("user_quran_memorization_user_id = ?", userID).
		Order("user_quran_memorization_surah_number ASC").
		Find(&rows).Error; err != nil {
		return nil, mapPGError(err)
	}
	return rows, nil
}

// MemorizedMap: {nomor surat -> ayat hafal}, bentuk yang dipakai planner.
func (s *GormStore) MemorizedMap(ctx context.Context, userID uuid.UUID) (map[int]int, error) {
	rows, err := s.ListMemorizations(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make(map[int]int, len(rows))
	for _, r := range rows {
		out[r.UserQuranMemorizationSurahNumber] = r.UserQuranMemorizationMemorizedVerses
	}
	return out, nil
}

// UpsertMemorizations menulis semua item dalam satu statement.
func (s *GormStore) UpsertMemorizations(ctx context.Context, userID uuid.UUID, memorized map[int]int) error {
	if len(memorized) == 0 {
		return nil
	}

	surahs := make([]int, 0, len(memorized))
	for n := range memorized {
		surahs = append(surahs, n)
	}
	sort.Ints(surahs)

	rows := make([]model.UserQuranMemorizationModel, 0, len(surahs))
	for _, n := range surahs {
		rows = append(rows, model.UserQuranMemorizationModel{
			UserQuranMemorizationUserID:          userID,
			UserQuranMemorizationSurahNumber:     n,
			UserQuranMemorizationMemorizedVerses: memorized[n],
		})
	}

	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_quran_memorization_user_id"},
			{Name: "user_quran_memorization_surah_number"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_quran_memorization_memorized_verses",
			"user_quran_memorization_updated_at",
		}),
	}).Create(&rows).Error
	if err != nil {
		return mapPGError(err)
	}
	return nil
}

// --- PG error mapping (pgx/libpq) ---
func mapPGError(err error) error {
	code := ""
	var pgxErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgxErr):
		code = pgxErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	}

	switch code {
	case "23505":
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case "23503", "23514":
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	default:
		return err
	}
}
