package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/MITHLESH24364/fee-management-system-educo/app/ledger"
)

type Config struct {
	DB          *sql.DB
	Port        string
	Institution ledger.Institution
}

var AppConfig *Config

// Load reads .env (if present) and environment variables, opens the
// PostgreSQL pool and fills AppConfig.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "educo"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{
		DB:   db,
		Port: getEnv("PORT", "8080"),
		Institution: ledger.Institution{
			Name:    getEnv("INSTITUTION_NAME", "MKS Educational Institute"),
			Address: getEnv("INSTITUTION_ADDRESS", "Lalitpur, Nepal"),
			Contact: getEnv("INSTITUTION_CONTACT", "9841157918"),
		},
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetPort() string {
	return AppConfig.Port
}

// GetInstitution returns the letterhead used on receipts and bills.
func GetInstitution() ledger.Institution {
	return AppConfig.Institution
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
