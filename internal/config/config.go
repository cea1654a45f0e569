package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DatasetSourceFile  = "file"
	DatasetSourceMongo = "mongo"
)

type Config struct {
	Port        string
	Environment string
	AppId       string
	CORSOrigins string

	// Dataset
	DatasetPath     string // CSV or XLSX file read by the loader
	DatasetSource   string // "file" or "mongo"
	MongoURI        string
	DBName          string
	MongoCollection string

	// Chart display region
	ChartWidth  int
	ChartHeight int

	// Static page content
	DashboardTitle   string
	AboutName        string
	AboutInstitute   string
	AboutProgram     string
	AboutReference   string
	ContactEmail     string
	ContactPhone     string
	ContactYouTube   string
	ContactInstagram string
	ContactLinkedIn  string
	ContactGitHub    string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		AppId:       getEnv("APP_ID", "hr-dashboard"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000, http://localhost:8080"),

		DatasetPath:     getEnv("DATASET_PATH", "Hr_cleaned_dataset.csv"),
		DatasetSource:   getEnv("DATASET_SOURCE", DatasetSourceFile),
		MongoURI:        getEnv("MONGO_URI", ""),
		DBName:          getEnv("DB_NAME", "hr"),
		MongoCollection: getEnv("MONGO_COLLECTION", "employees"),

		ChartWidth:  getEnvInt("CHART_WIDTH", 700),
		ChartHeight: getEnvInt("CHART_HEIGHT", 400),

		DashboardTitle:   getEnv("DASHBOARD_TITLE", "HR Dashboard"),
		AboutName:        getEnv("ABOUT_NAME", "HR Analytics Team"),
		AboutInstitute:   getEnv("ABOUT_INSTITUTE", ""),
		AboutProgram:     getEnv("ABOUT_PROGRAM", ""),
		AboutReference:   getEnv("ABOUT_REFERENCE", ""),
		ContactEmail:     getEnv("CONTACT_EMAIL", "hr-analytics@example.com"),
		ContactPhone:     getEnv("CONTACT_PHONE", ""),
		ContactYouTube:   getEnv("CONTACT_YOUTUBE", ""),
		ContactInstagram: getEnv("CONTACT_INSTAGRAM", ""),
		ContactLinkedIn:  getEnv("CONTACT_LINKEDIN", "https://linkedin.com"),
		ContactGitHub:    getEnv("CONTACT_GITHUB", ""),
	}, nil
}

// IsProduction reports whether the service runs with production logging.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("Invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}
