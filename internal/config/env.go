package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr   string
	GinMode   string
	JWTSecret string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	CORSOrigins []string

	PSGCBaseURL    string
	GeocodeBaseURL string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	origins := []string{}
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return Env{
		AppAddr:        appAddr,
		GinMode:        ginMode,
		JWTSecret:      secret,
		DBUser:         envOr("DB_USER", "root"),
		DBPass:         os.Getenv("DB_PASS"),
		DBHost:         envOr("DB_HOST", "127.0.0.1:3306"),
		DBName:         envOr("DB_NAME", "bestaccord"),
		CORSOrigins:    origins,
		PSGCBaseURL:    envOr("PSGC_BASE_URL", "https://psgc.gitlab.io/api"),
		GeocodeBaseURL: envOr("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
	}
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
