package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AppConfig holds environment driven configuration values.
// Sensitive data should never have defaults inside code and must be provided via config files or the environment.
type AppConfig struct {
	AppPort   string
	BaseURL   string // public origin, e.g. https://test.sportsmockery.com
	JWTSecret string
	// Gin framework configuration
	GinMode string
	GinPath string
	// Database
	DatabaseURI string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	// Redis for caching and counters
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	// LLM backing /api/ask-ai and GM trade grading
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMRPM     int
	// OAuth login (external auth collaborator)
	OAuthClientID     string
	OAuthClientSecret string
	OAuthAuthURL      string
	OAuthTokenURL     string
	OAuthRedirectBase string
	// Request shaping
	RateLimitPerMinute int
	AllowedOrigins     []string
	// Static sports data files (rosters, schedules, prospects)
	DataDir string
	// Feed behavior
	FeedCacheTTLSec    int
	TrendingWindowDays int
	// Mobile app feature flags and ad configuration
	ChatEnabled       bool
	GMEnabled         bool
	MockDraftEnabled  bool
	AudioEnabled      bool
	AdsEnabled        bool
	AdUnitBanner      string
	AdUnitInterstitial string
	MinAppVersion     string
	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration. It should be called once during boot.
// Precedence: config/config.json -> defaults -> environment variable overrides.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	_ = loadJSONConfig(filepath.Join("config", "config.json"), &cfg)
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set in environment variables")
	}

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// loadJSONConfig reads JSON file into cfg if present. Returns error only for invalid JSON.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil // silently ignore missing file
	}
	defer f.Close()

	var raw map[string]any
	dec := json.NewDecoder(f)
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	getString := func(m map[string]any, key string) string {
		if v, ok := m[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
		return ""
	}
	getInt := func(m map[string]any, key string) int {
		if v, ok := m[key]; ok {
			switch t := v.(type) {
			case float64:
				return int(t)
			case int:
				return t
			case json.Number:
				i, _ := t.Int64()
				return int(i)
			}
		}
		return 0
	}
	getBool := func(m map[string]any, key string) bool {
		if v, ok := m[key]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
		return false
	}
	getStringSlice := func(m map[string]any, key string) []string {
		if v, ok := m[key]; ok {
			if arr, ok := v.([]any); ok {
				res := make([]string, 0, len(arr))
				for _, it := range arr {
					if s, ok := it.(string); ok {
						res = append(res, s)
					}
				}
				return res
			}
		}
		return nil
	}

	if app, ok := raw["app"].(map[string]any); ok {
		out.AppPort = getString(app, "AppPort")
		out.BaseURL = getString(app, "BaseURL")
		out.JWTSecret = getString(app, "JWTSecret")
		out.DataDir = getString(app, "DataDir")
		if v := getInt(app, "RateLimitPerMinute"); v != 0 {
			out.RateLimitPerMinute = v
		}
		if list := getStringSlice(app, "AllowedOrigins"); len(list) > 0 {
			out.AllowedOrigins = list
		}
	}

	if dbs, ok := raw["database"].(map[string]any); ok {
		out.DatabaseURI = getString(dbs, "DatabaseURI")
		out.DBHost = getString(dbs, "DBHost")
		out.DBPort = getString(dbs, "DBPort")
		out.DBUser = getString(dbs, "DBUser")
		out.DBPassword = getString(dbs, "DBPassword")
		out.DBName = getString(dbs, "DBName")
	}

	if rds, ok := raw["redis"].(map[string]any); ok {
		out.RedisHost = getString(rds, "RedisHost")
		if v := getInt(rds, "RedisPort"); v != 0 {
			out.RedisPort = v
		}
		if v := getInt(rds, "RedisDB"); v != 0 {
			out.RedisDB = v
		}
		out.RedisPassword = getString(rds, "RedisPassword")
	}

	if llm, ok := raw["llm"].(map[string]any); ok {
		out.LLMBaseURL = getString(llm, "BaseURL")
		out.LLMAPIKey = getString(llm, "APIKey")
		out.LLMModel = getString(llm, "Model")
		if v := getInt(llm, "RPM"); v != 0 {
			out.LLMRPM = v
		}
	}

	if oa, ok := raw["oauth"].(map[string]any); ok {
		out.OAuthClientID = getString(oa, "ClientID")
		out.OAuthClientSecret = getString(oa, "ClientSecret")
		out.OAuthAuthURL = getString(oa, "AuthURL")
		out.OAuthTokenURL = getString(oa, "TokenURL")
		out.OAuthRedirectBase = getString(oa, "RedirectBase")
	}

	if fd, ok := raw["feed"].(map[string]any); ok {
		if v := getInt(fd, "CacheTTLSec"); v != 0 {
			out.FeedCacheTTLSec = v
		}
		if v := getInt(fd, "TrendingWindowDays"); v != 0 {
			out.TrendingWindowDays = v
		}
	}

	if mb, ok := raw["mobile"].(map[string]any); ok {
		out.ChatEnabled = getBool(mb, "ChatEnabled")
		out.GMEnabled = getBool(mb, "GMEnabled")
		out.MockDraftEnabled = getBool(mb, "MockDraftEnabled")
		out.AudioEnabled = getBool(mb, "AudioEnabled")
		out.AdsEnabled = getBool(mb, "AdsEnabled")
		out.AdUnitBanner = getString(mb, "AdUnitBanner")
		out.AdUnitInterstitial = getString(mb, "AdUnitInterstitial")
		out.MinAppVersion = getString(mb, "MinAppVersion")
	}

	if lg, ok := raw["log"].(map[string]any); ok {
		if v := getString(lg, "Level"); v != "" {
			out.LogLevel = v
		}
		if v := getString(lg, "Path"); v != "" {
			out.LogPath = v
		}
		if v := getString(lg, "GinMode"); v != "" {
			out.GinMode = v
		}
		if v := getString(lg, "GinPath"); v != "" {
			out.GinPath = v
		}
		if v := getInt(lg, "MaxSizeMB"); v != 0 {
			out.LogMaxSizeMB = v
		}
		if v := getInt(lg, "MaxBackups"); v != 0 {
			out.LogMaxBackups = v
		}
		if v := getInt(lg, "MaxAgeDays"); v != 0 {
			out.LogMaxAgeDays = v
		}
		out.LogCompress = getBool(lg, "Compress")
	}

	return nil
}

func applyDefaults(out *AppConfig) {
	if out.AppPort == "" {
		out.AppPort = "8080"
	}
	if out.BaseURL == "" {
		out.BaseURL = "https://test.sportsmockery.com"
	}
	if out.GinMode == "" {
		out.GinMode = "release"
	}
	if out.GinPath == "" {
		out.GinPath = "logs/gin.log"
	}
	if out.DBHost == "" {
		out.DBHost = "127.0.0.1"
	}
	if out.DBPort == "" {
		out.DBPort = "3306"
	}
	if out.DBUser == "" {
		out.DBUser = "sportsmockery"
	}
	if out.DBName == "" {
		out.DBName = "sportsmockery"
	}
	if out.RedisHost == "" {
		out.RedisHost = "127.0.0.1"
	}
	if out.RedisPort == 0 {
		out.RedisPort = 6379
	}
	if out.LLMModel == "" {
		out.LLMModel = "gpt-4o-mini"
	}
	if out.LLMRPM == 0 {
		out.LLMRPM = 30
	}
	if out.RateLimitPerMinute == 0 {
		out.RateLimitPerMinute = 60
	}
	if len(out.AllowedOrigins) == 0 {
		out.AllowedOrigins = []string{"*"}
	}
	if out.DataDir == "" {
		out.DataDir = "data"
	}
	if out.FeedCacheTTLSec == 0 {
		out.FeedCacheTTLSec = 300
	}
	if out.TrendingWindowDays == 0 {
		out.TrendingWindowDays = 3
	}
	if out.LogLevel == "" {
		out.LogLevel = "info"
	}
	if out.LogPath == "" {
		out.LogPath = "logs/app.log"
	}
	if out.LogMaxSizeMB == 0 {
		out.LogMaxSizeMB = 100
	}
	if out.LogMaxBackups == 0 {
		out.LogMaxBackups = 3
	}
	if out.LogMaxAgeDays == 0 {
		out.LogMaxAgeDays = 7
	}
	if out.MinAppVersion == "" {
		out.MinAppVersion = "1.0.0"
	}
}

func applyEnvOverrides(out *AppConfig) {
	out.AppPort = getEnv("APP_PORT", out.AppPort)
	out.BaseURL = getEnv("BASE_URL", out.BaseURL)
	out.JWTSecret = getEnv("JWT_SECRET", out.JWTSecret)
	out.GinMode = getEnv("GIN_MODE", out.GinMode)
	out.GinPath = getEnv("GIN_LOG_PATH", out.GinPath)

	out.DatabaseURI = getEnv("DATABASE_URI", out.DatabaseURI)
	out.DBHost = getEnv("DB_HOST", out.DBHost)
	out.DBPort = getEnv("DB_PORT", out.DBPort)
	out.DBUser = getEnv("DB_USER", out.DBUser)
	out.DBPassword = getEnv("DB_PASSWORD", out.DBPassword)
	out.DBName = getEnv("DB_NAME", out.DBName)

	out.RedisHost = getEnv("REDIS_HOST", out.RedisHost)
	if v := os.Getenv("REDIS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			out.RedisPort = n
		}
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			out.RedisDB = n
		}
	}
	out.RedisPassword = getEnv("REDIS_PASSWORD", out.RedisPassword)

	out.LLMBaseURL = getEnv("LLM_BASE_URL", out.LLMBaseURL)
	out.LLMAPIKey = getEnv("LLM_API_KEY", out.LLMAPIKey)
	out.LLMModel = getEnv("LLM_MODEL", out.LLMModel)
	if v := os.Getenv("LLM_RPM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			out.LLMRPM = n
		}
	}

	out.OAuthClientID = getEnv("OAUTH_CLIENT_ID", out.OAuthClientID)
	out.OAuthClientSecret = getEnv("OAUTH_CLIENT_SECRET", out.OAuthClientSecret)
	out.OAuthAuthURL = getEnv("OAUTH_AUTH_URL", out.OAuthAuthURL)
	out.OAuthTokenURL = getEnv("OAUTH_TOKEN_URL", out.OAuthTokenURL)
	out.OAuthRedirectBase = getEnv("OAUTH_REDIRECT_BASE", out.OAuthRedirectBase)

	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			out.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				origins = append(origins, s)
			}
		}
		if len(origins) > 0 {
			out.AllowedOrigins = origins
		}
	}

	out.DataDir = getEnv("DATA_DIR", out.DataDir)
	out.LogLevel = getEnv("LOG_LEVEL", out.LogLevel)
	out.LogPath = getEnv("LOG_PATH", out.LogPath)
}
