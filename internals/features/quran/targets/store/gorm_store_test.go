package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewGormStore(db), mock
}

var targetColumns = []string{
	"user_quran_target_id",
	"user_quran_target_user_id",
	"user_quran_target_juz",
	"user_quran_target_daily_pace",
	"user_quran_target_summary",
	"user_quran_target_created_at",
	"user_quran_target_updated_at",
	"user_quran_target_deleted_at",
}

func TestGormStore_GetTarget(t *testing.T) {
	st, mock := newMockStore(t)
	userID := uuid.New()
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "user_quran_targets" WHERE user_quran_target_user_id = \$1 AND "user_quran_targets"."user_quran_target_deleted_at" IS NULL`).
		WillReturnRows(sqlmock.NewRows(targetColumns).
			AddRow(id.String(), userID.String(), "{29,30}", 20, []byte(`{"totalJuz":2}`), now, now, nil))

	m, err := st.GetTarget(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, id, m.UserQuranTargetID)
	assert.Equal(t, []int{29, 30}, m.JuzInts())
	require.NotNil(t, m.UserQuranTargetDailyPace)
	assert.Equal(t, 20, *m.UserQuranTargetDailyPace)
	assert.JSONEq(t, `{"totalJuz":2}`, string(m.UserQuranTargetSummary))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_GetTarget_NotFound(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "user_quran_targets"`).
		WillReturnRows(sqlmock.NewRows(targetColumns))

	_, err := st.GetTarget(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrTargetNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_SaveTarget(t *testing.T) {
	st, mock := newMockStore(t)
	userID := uuid.New()
	id := uuid.New()
	now := time.Now()
	pace := 15

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "user_quran_targets" .* ON CONFLICT \("user_quran_target_user_id"\)\s+WHERE user_quran_target_deleted_at IS NULL\s+DO UPDATE SET`).
		WillReturnRows(sqlmock.NewRows([]string{"user_quran_target_id"}).AddRow(id.String()))
	mock.ExpectQuery(`SELECT \* FROM "user_quran_targets"`).
		WillReturnRows(sqlmock.NewRows(targetColumns).
			AddRow(id.String(), userID.String(), "{1,2}", pace, []byte(`{}`), now, now, nil))
	mock.ExpectCommit()

	m, err := st.SaveTarget(context.Background(), userID, []int{1, 2}, &pace, datatypes.JSON(`{}`))
	require.NoError(t, err)
	assert.Equal(t, id, m.UserQuranTargetID)
	assert.Equal(t, []int{1, 2}, m.JuzInts())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_SaveTarget_Conflict(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "user_quran_targets"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	_, err := st.SaveTarget(context.Background(), uuid.New(), []int{1}, nil, nil)
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteTarget(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectExec(`UPDATE "user_quran_targets" SET "user_quran_target_deleted_at"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, st.DeleteTarget(context.Background(), uuid.New()))

	mock.ExpectExec(`UPDATE "user_quran_targets" SET "user_quran_target_deleted_at"=`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, st.DeleteTarget(context.Background(), uuid.New()), ErrTargetNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_PurgeDeletedTargets(t *testing.T) {
	st, mock := newMockStore(t)
	cutoff := time.Now().Add(-30 * 24 * time.Hour)

	mock.ExpectExec(`DELETE FROM "user_quran_targets" WHERE user_quran_target_deleted_at IS NOT NULL AND user_quran_target_deleted_at < \$1`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := st.PurgeDeletedTargets(context.Background(), cutoff)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_MemorizedMap(t *testing.T) {
	st, mock := newMockStore(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "user_quran_memorizations" WHERE user_quran_memorization_user_id = \$1 ORDER BY user_quran_memorization_surah_number ASC`).
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{
			"user_quran_memorization_id",
			"user_quran_memorization_user_id",
			"user_quran_memorization_surah_number",
			"user_quran_memorization_memorized_verses",
		}).
			AddRow(uuid.NewString(), userID.String(), 1, 7).
			AddRow(uuid.NewString(), userID.String(), 2, 50))

	got, err := st.MemorizedMap(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 7, 2: 50}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_UpsertMemorizations(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO "user_quran_memorizations" .* ON CONFLICT \("user_quran_memorization_user_id","user_quran_memorization_surah_number"\)\s+DO UPDATE SET`).
		WillReturnRows(sqlmock.NewRows([]string{"user_quran_memorization_id"}).
			AddRow(uuid.NewString()).
			AddRow(uuid.NewString()))

	err := st.UpsertMemorizations(context.Background(), uuid.New(), map[int]int{2: 10, 1: 7})
	require.NoError(t, err)

	// kosong = no-op, tidak ada query
	require.NoError(t, st.UpsertMemorizations(context.Background(), uuid.New(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_UpsertMemorizations_CheckViolation(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO "user_quran_memorizations"`).
		WillReturnError(&pgconn.PgError{Code: "23514"})

	err := st.UpsertMemorizations(context.Background(), uuid.New(), map[int]int{1: 7})
	assert.ErrorIs(t, err, ErrConstraint)
	assert.NoError(t, mock.ExpectationsWereMet())
}
