package database

import (
	"embed"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tahfidz_backend/internals/configs"
	targetModel "tahfidz_backend/internals/features/quran/targets/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// Catatan: kalau pakai PgBouncer, arahkan host/port ke PgBouncer dan biarkan PreferSimpleProtocol=true
	dsn := configs.GetEnv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=tahfidz&options=-c statement_timeout=3000",
			configs.GetEnv("DB_USER"),
			configs.GetEnv("DB_PASSWORD"),
			configs.GetEnv("DB_HOST", "localhost"),
			configs.GetEnv("DB_PORT", "5432"),
			configs.GetEnv("DB_NAME"),
			configs.GetEnv("DB_SSLMODE", "require"),
		)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate: DB_MIGRATOR=goose (default, file SQL di migrations/) | gorm (AutoMigrate) | off
func Migrate() {
	switch mode := strings.ToLower(configs.GetEnv("DB_MIGRATOR", "goose")); mode {
	case "off":
		log.Println("[INFO] DB_MIGRATOR=off, skip migrasi")
	case "gorm":
		if err := AutoMigrate(DB); err != nil {
			log.Fatalf("❌ AutoMigrate gagal: %v", err)
		}
		log.Println("✅ AutoMigrate selesai.")
	case "goose":
		if err := GooseUp(DB); err != nil {
			log.Fatalf("❌ Migrasi goose gagal: %v", err)
		}
		log.Println("✅ Migrasi goose selesai.")
	default:
		log.Fatalf("❌ DB_MIGRATOR=%q tidak dikenal (goose|gorm|off)", mode)
	}
}

// AutoMigrate hanya untuk tabel milik fitur quran.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&targetModel.UserQuranTargetModel{},
		&targetModel.UserQuranMemorizationModel{},
	)
}

func GooseUp(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(sqlDB, "migrations")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func Ping() error {
	if DB == nil {
		return fmt.Errorf("database belum terkoneksi")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
