package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
)

var DB *gorm.DB

// Config memegang parameter koneksi DB. Dibuat eksplisit (bukan ambil ENV
// langsung di Open) supaya test bisa mengarahkan kode yang sama ke DSN
// container.
type Config struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
}

func FromEnv() Config {
	return Config{
		User:     configs.GetEnv("DB_USER"),
		Password: configs.GetEnv("DB_PASSWORD"),
		Host:     configs.GetEnv("DB_HOST"),
		Port:     configs.GetEnv("DB_PORT"),
		Name:     configs.GetEnv("DB_NAME"),
		SSLMode:  configs.GetEnv("DB_SSLMODE", "require"),
	}
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sekolahku&options=-c statement_timeout=3000",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Open membuka koneksi GORM baru dari Config.
func Open(cfg Config) (*gorm.DB, error) {
	return OpenDSN(cfg.DSN())
}

func OpenDSN(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
}

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	db, err := Open(FromEnv())
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
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
