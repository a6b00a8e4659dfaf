package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// actual environment variables
var MONGO_URI string
var MONGO_DATABASE string
var STORE string
var REDIS_ADDR string
var REDIS_PASSWORD string
var REDIS_DB int
var CACHE_TTL time.Duration
var CORS_ORIGINS []string
var LOG_LEVEL string
var PREFORK bool

// this is required
var VERSION string

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Init loads <envRoot>/.env over the process environment and reads every
// setting. A missing .env file is not an error; a malformed value is.
func Init(envRoot string, appVersion string) error {
	if err := loadEnv(envRoot); err != nil {
		return err
	}
	if err := loadVersion(appVersion); err != nil {
		return err
	}

	var err error

	PREFORK, _ = strconv.ParseBool(os.Getenv("PREFORK"))
	MONGO_URI = getDefault("MONGO_URI", "mongodb://localhost:27017")
	MONGO_DATABASE = getDefault("MONGO_DATABASE", "github_webhooks")
	STORE = strings.ToLower(getDefault("STORE", StoreMongo))
	REDIS_ADDR = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	REDIS_PASSWORD = os.Getenv("REDIS_PASSWORD")
	LOG_LEVEL = strings.TrimSpace(os.Getenv("LOG_LEVEL"))

	if REDIS_DB, err = strconv.Atoi(getDefault("REDIS_DB", "0")); err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	if CACHE_TTL, err = time.ParseDuration(getDefault("CACHE_TTL", "15s")); err != nil {
		return fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	CORS_ORIGINS = splitList(getDefault("CORS_ORIGINS", "*"))

	switch STORE {
	case StoreMongo, StoreMemory:
	default:
		return fmt.Errorf("invalid STORE %q: want %s or %s", STORE, StoreMongo, StoreMemory)
	}

	return nil
}

func loadEnv(envRoot string) error {
	if envRoot == "" {
		envRoot = repoRoot()
	}

	path := path.Join(envRoot, ".env")
	if err := godotenv.Overload(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	return nil
}

func loadVersion(appVersion string) error {
	if appVersion != "" {
		VERSION = appVersion
		return nil
	}

	data, err := os.ReadFile(filepath.Join(repoRoot(), "VERSION"))
	if err != nil {
		return fmt.Errorf("failed to read version file from repo root: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed != "" {
		VERSION = trimmed
	} else {
		VERSION = "unknown"
	}

	return nil
}

func getDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func repoRoot() string {
	_, b, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(b), "../..")
}
