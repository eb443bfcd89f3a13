package dsn

import (
	"fmt"
	"os"
)

// FromEnv returns the PostgreSQL connection string. DATABASE_URL wins;
// otherwise it is assembled from DB_HOST, DB_PORT, DB_USER, DB_PASS, DB_NAME
// and DB_SSLMODE.
func FromEnv() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		env("DB_HOST", "localhost"),
		env("DB_PORT", "5432"),
		env("DB_USER", "postgres"),
		env("DB_PASS", ""),
		env("DB_NAME", "harbormaster"),
		env("DB_SSLMODE", "disable"),
	)
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
