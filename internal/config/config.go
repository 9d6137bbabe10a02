package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	JWTExpire   string
	FrontendURL string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Wards the portal serves. Reports, announcements and users are all
	// scoped to one of these.
	Wards []string
}

// The default ward list matches the pilot deployment. Override with the
// WARDS env var (comma separated).
var defaultWards = []string{
	"kati", "magharibi", "mashariki", "kaskazini", "kusini",
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "jirani"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		JWTExpire:   getEnv("JWT_EXPIRE_HOURS", "24"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),

		Wards: getWards(),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getWards() []string {
	raw := os.Getenv("WARDS")
	if raw == "" {
		return defaultWards
	}

	var wards []string
	for _, w := range strings.Split(raw, ",") {
		w = strings.TrimSpace(strings.ToLower(w))
		if w != "" {
			wards = append(wards, w)
		}
	}
	if len(wards) == 0 {
		return defaultWards
	}
	return wards
}
