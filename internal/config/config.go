package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppPort    string
	AppEnv     string
	AppBaseURL string

	BackendURL    string
	BackendAPIKey string
	DBDSN         string
	AutoMigrate   bool

	StorageBucket string
	StorageDriver string
	UploadsDir    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret      string
	JWTExpiresMin  int
	LoginRateLimit int

	// CacheIdleMin evicts cache entries nobody read for that long; 0 keeps them.
	CacheIdleMin int

	CORSOrigins     string
	DefaultLanguage string

	GoogleClientID  string
	GoogleSecret    string
	GoogleRedirect  string
	FrontendBaseURL string
}

// Load reads the environment. Missing backend settings abort startup.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	var missing []string
	must := func(k string) string {
		v := strings.TrimSpace(getenv(k))
		if v == "" {
			missing = append(missing, k)
		}
		return v
	}
	get := func(k, def string) string {
		v := strings.TrimSpace(getenv(k))
		if v == "" {
			return def
		}
		return v
	}
	getInt := func(k string, def int) int {
		n, err := strconv.Atoi(get(k, ""))
		if err != nil {
			return def
		}
		return n
	}
	getBool := func(k string, def bool) bool {
		b, err := strconv.ParseBool(get(k, ""))
		if err != nil {
			return def
		}
		return b
	}

	cfg := Config{
		AppPort:    get("APP_PORT", "8080"),
		AppEnv:     get("APP_ENV", "dev"),
		AppBaseURL: get("APP_BASE_URL", "http://localhost:8080"),

		BackendURL:    strings.TrimRight(must("BACKEND_URL"), "/"),
		BackendAPIKey: must("BACKEND_API_KEY"),
		DBDSN:         must("DB_DSN"),
		AutoMigrate:   getBool("AUTO_MIGRATE", false),

		StorageBucket: get("STORAGE_BUCKET", "job-applications"),
		StorageDriver: get("STORAGE_DRIVER", "remote"),
		UploadsDir:    get("UPLOADS_DIR", "./uploads"),

		RedisAddr:     get("REDIS_ADDR", "localhost:6379"),
		RedisPassword: get("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),

		JWTSecret:      must("JWT_SECRET"),
		JWTExpiresMin:  getInt("JWT_EXPIRES_MIN", 10080),
		LoginRateLimit: getInt("LOGIN_RATE_LIMIT", 10),
		CacheIdleMin:   getInt("CACHE_IDLE_MIN", 30),

		CORSOrigins:     get("CORS_ORIGINS", "http://127.0.0.1:5173, http://localhost:5173"),
		DefaultLanguage: get("DEFAULT_LANGUAGE", "en"),

		GoogleClientID:  get("GOOGLE_CLIENT_ID", ""),
		GoogleSecret:    get("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirect:  get("GOOGLE_REDIRECT_URL", ""),
		FrontendBaseURL: get("FRONTEND_BASE_URL", "http://localhost:5173"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing env: %s", strings.Join(missing, ", "))
	}
	if cfg.StorageDriver != "remote" && cfg.StorageDriver != "local" {
		return Config{}, fmt.Errorf("STORAGE_DRIVER must be remote or local, got %q", cfg.StorageDriver)
	}
	return cfg, nil
}

func (c Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleSecret != "" && c.GoogleRedirect != ""
}
