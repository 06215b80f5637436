package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port             string   `yaml:"port"`
	CORSAllowOrigin  []string `yaml:"cors_allow_origins"`
	ObjectStoreType  string   `yaml:"object_store"`
	LocalStoreDir    string   `yaml:"local_store_dir"`
	AWSRegion        string   `yaml:"aws_region"`
	S3Bucket         string   `yaml:"s3_bucket"`
	S3Prefix         string   `yaml:"s3_prefix"`
	SSEKMSKeyID      string   `yaml:"sse_kms_key_id"`
	DatabaseURL      string   `yaml:"database_url"`
	Env              string   `yaml:"env"`
	MaxUploadMB      int      `yaml:"max_upload_mb"`
	ResumeCheckRate  float64  `yaml:"resume_check_rate"`
	ResumeCheckBurst int      `yaml:"resume_check_burst"`

	JWTSecret string        `yaml:"jwt_secret"`
	JWTTTL    time.Duration `yaml:"jwt_ttl"`

	DBMaxOpenConns    int           `yaml:"db_max_open_conns"`
	DBMaxIdleConns    int           `yaml:"db_max_idle_conns"`
	DBConnMaxLifetime time.Duration `yaml:"db_conn_max_lifetime"`
	DBConnMaxIdleTime time.Duration `yaml:"db_conn_max_idle_time"`
	DBPingTimeout     time.Duration `yaml:"db_ping_timeout"`
}

// ErrJWTSecretRequired is returned by Validate when a non-dev environment has
// no token signing secret.
var ErrJWTSecretRequired = errors.New("config: JWT_SECRET is required outside dev")

// Load reads configuration from an optional YAML file and environment variables.
// Environment variables take precedence over file values.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	var file Config
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		loaded, err := loadFile(path)
		if err != nil {
			log.Printf("config: ignoring %s: %v", path, err)
		} else {
			file = loaded
		}
	}

	env := normalizeEnv(getEnv("ENV", orDefault(file.Env, "dev")))
	dbURL := getEnv("DATABASE_URL", file.DatabaseURL)

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	origins := strings.Join(file.CORSAllowOrigin, ",")
	return Config{
		Port:             getEnv("PORT", orDefault(file.Port, "8080")),
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", orDefault(origins, "http://localhost:5173"))),
		ObjectStoreType:  normalizeStoreType(getEnv("OBJECT_STORE", orDefault(file.ObjectStoreType, "local"))),
		LocalStoreDir:    getEnv("LOCAL_STORE_DIR", orDefault(file.LocalStoreDir, "./data")),
		AWSRegion:        getEnv("AWS_REGION", file.AWSRegion),
		S3Bucket:         getEnv("S3_BUCKET", file.S3Bucket),
		S3Prefix:         getEnv("S3_PREFIX", file.S3Prefix),
		SSEKMSKeyID:      getEnv("SSE_KMS_KEY_ID", file.SSEKMSKeyID),
		DatabaseURL:      dbURL,
		Env:              env,
		MaxUploadMB:      getEnvInt("MAX_UPLOAD_MB", orDefaultInt(file.MaxUploadMB, 10)),
		ResumeCheckRate:  getEnvFloat("RESUME_CHECK_RATE", orDefaultFloat(file.ResumeCheckRate, 0.2)),
		ResumeCheckBurst: getEnvInt("RESUME_CHECK_BURST", orDefaultInt(file.ResumeCheckBurst, 5)),

		JWTSecret: strings.TrimSpace(getEnv("JWT_SECRET", file.JWTSecret)),
		JWTTTL:    getEnvDuration("JWT_TTL", file.JWTTTL),

		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", file.DBMaxOpenConns),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", file.DBMaxIdleConns),
		DBConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", file.DBConnMaxLifetime),
		DBConnMaxIdleTime: getEnvDuration("DB_CONN_MAX_IDLE_TIME", file.DBConnMaxIdleTime),
		DBPingTimeout:     getEnvDuration("DB_PING_TIMEOUT", file.DBPingTimeout),
	}
}

// IsDevLike reports whether in-memory fallbacks are acceptable.
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

// Validate reports settings the service must not start without.
func (c Config) Validate() error {
	if !c.IsDevLike() && strings.TrimSpace(c.JWTSecret) == "" {
		return ErrJWTSecretRequired
	}
	return nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: %s invalid int: %v", key, err)
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config: %s invalid float: %v", key, err)
		return def
	}
	return val
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config: %s invalid duration: %v", key, err)
		return def
	}
	return val
}

func orDefault(val, def string) string {
	if strings.TrimSpace(val) == "" {
		return def
	}
	return val
}

func orDefaultInt(val, def int) int {
	if val <= 0 {
		return def
	}
	return val
}

func orDefaultFloat(val, def float64) float64 {
	if val <= 0 {
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
