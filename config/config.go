package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RazorpayKey    string
	RazorpaySecret string

	SendGridKey string
	EmailSender string
	SenderName  string

	CloudinaryCloudName string
	CloudinaryPreset    string
	FolderName          string

	FrontendURL string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "4000"),
		JWTKey:    getEnv("JWT_SECRET", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "studynotion"),
		DBPort:     getEnv("DB_PORT", "5432"),

		RazorpayKey:    getEnv("RAZORPAY_KEY", ""),
		RazorpaySecret: getEnv("RAZORPAY_SECRET", ""),

		SendGridKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender: getEnv("MAIL_SENDER", "noreply@studynotion.in"),
		SenderName:  getEnv("MAIL_SENDER_NAME", "StudyNotion"),

		CloudinaryCloudName: getEnv("CLOUD_NAME", ""),
		CloudinaryPreset:    getEnv("CLOUD_UPLOAD_PRESET", ""),
		FolderName:          getEnv("FOLDER_NAME", "StudyNotion"),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET. Update it in your environment.")
	}
	if AppConfig.RazorpaySecret == "" {
		log.Println("Warning: RAZORPAY_SECRET is empty. Payment verification will reject everything.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
