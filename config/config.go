package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file, trying the same
// locations the deployment scripts use.
func LoadEnv() error {
	possiblePaths := []string{
		".env",
		"../.env",
		os.Getenv("VANACHITRA_ENV"),
	}

	for _, path := range possiblePaths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			log.Printf("Loading environment variables from %s", path)
			return godotenv.Load(path)
		}
	}
	// No .env is fine when the environment is already configured.
	return nil
}

// Data file locations. The serving layer reads pre-generated files from the
// data directory; the repository ships a scheme catalog under static/.

func DataDir() string {
	return getEnvWithDefault("DATA_DIR", "output")
}

func StaticDir() string {
	return getEnvWithDefault("STATIC_DIR", "static")
}

func ReactBuildDir() string {
	return getEnvWithDefault("REACT_BUILD_DIR", "react_build")
}

func ClaimsFile() string {
	return filepath.Join(DataDir(), "telangana_fra_realistic.geojson")
}

func AnalyticsFile() string {
	return filepath.Join(DataDir(), "fra_analytics.json")
}

func PolygonAttributesFile() string {
	return filepath.Join(DataDir(), "polygon_attributes.json")
}

func SchemesFile() string {
	return filepath.Join(StaticDir(), "schemes.json")
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func Port() string {
	return getEnvWithDefault("PORT", "8080")
}

func DBConnectAttempts() int {
	return getEnvAsInt("DB_CONNECT_ATTEMPTS", 5)
}

func CORSDebug() bool {
	return getEnvAsBool("CORS_DEBUG", false)
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
