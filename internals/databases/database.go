package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tuitionpay_backend/internals/configs"
	model "tuitionpay_backend/internals/features/payment/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=tuitionpay&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 plays nice with PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
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

// Migrate creates the payments table and the partial unique index that backs
// the one-active-payment-per-(month, student) rule. The application still
// pre-checks before saving; the index is the authoritative guard.
func Migrate() {
	if err := DB.AutoMigrate(&model.PaymentModel{}); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_payments_month_student_active
		ON payments (payment_month, payment_student_id)
		WHERE payment_is_deleted = false
	`).Error; err != nil {
		log.Fatalf("❌ Creating unique payment index failed: %v", err)
	}

	log.Println("✅ Migration done.")
}

func WarmUpQueries() {
	// light-touch so the pool is filled and ready before real traffic
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
