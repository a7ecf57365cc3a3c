package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gormLogger "gorm.io/gorm/logger"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TAHFIDZ_X", "abc")
	assert.Equal(t, "abc", GetEnv("TAHFIDZ_X", "def"))
	assert.Equal(t, "def", GetEnv("TAHFIDZ_MISSING", "def"))
	assert.Equal(t, "", GetEnv("TAHFIDZ_MISSING"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TAHFIDZ_N", " 25 ")
	assert.Equal(t, 25, GetEnvInt("TAHFIDZ_N", 10))

	t.Setenv("TAHFIDZ_N", "dua")
	assert.Equal(t, 10, GetEnvInt("TAHFIDZ_N", 10))
	assert.Equal(t, 7, GetEnvInt("TAHFIDZ_MISSING", 7))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TAHFIDZ_B", "Yes")
	assert.True(t, GetEnvBool("TAHFIDZ_B", false))
	t.Setenv("TAHFIDZ_B", "0")
	assert.False(t, GetEnvBool("TAHFIDZ_B", true))
	assert.True(t, GetEnvBool("TAHFIDZ_MISSING", true))
}

func TestLoadEnv_PaceFallback(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("TARGET_DAILY_PACE", "0")
	LoadEnv()
	assert.Equal(t, 10, TargetDailyPace)

	t.Setenv("TARGET_DAILY_PACE", "20")
	LoadEnv()
	assert.Equal(t, 20, TargetDailyPace)
}

func TestNewGormLogger_Level(t *testing.T) {
	t.Setenv("DB_LOG_LEVEL", "info")
	l := NewGormLogger().(*GormLogger)
	assert.Equal(t, gormLogger.Info, l.LogLevel)

	silent := l.LogMode(gormLogger.Silent).(*GormLogger)
	assert.Equal(t, gormLogger.Silent, silent.LogLevel)
	assert.Equal(t, gormLogger.Info, l.LogLevel)
}
