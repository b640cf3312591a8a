package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// 推薦データの取得元
const (
	SourceMemory    = "memory"
	SourcePostgres  = "postgres"
	SourceSupabase  = "supabase"
	SourceFirestore = "firestore"
)

// Config アプリケーションの設定
type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	RecommendationSource string
	SeedPath             string // 空の場合は組み込みのシードデータを使用

	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseDBPassword string

	FirestoreProjectID string
	CredentialsFile    string

	GeminiAPIKey string

	WeatherSeed    uint64
	HasWeatherSeed bool

	SessionTTL time.Duration // 0の場合はアシスタントのセッションを破棄しない
}

// DefaultSessionTTL はSESSION_TTLが未指定の場合の値
const DefaultSessionTTL = 30 * time.Minute

// Load は.envファイル（存在する場合）と環境変数から設定を読み込む
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv は環境変数から設定を組み立てる
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		GinMode:              getEnv("GIN_MODE", "release"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "json"),
		RecommendationSource: strings.ToLower(getEnv("RECOMMENDATION_SOURCE", SourceMemory)),
		SeedPath:             os.Getenv("SEED_PATH"),
		SupabaseURL:          os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:      os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseDBPassword:   os.Getenv("SUPABASE_DB_PASSWORD"),
		FirestoreProjectID:   os.Getenv("FIRESTORE_PROJECT_ID"),
		CredentialsFile:      os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
	}

	if raw := strings.TrimSpace(os.Getenv("WEATHER_SEED")); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("WEATHER_SEEDの解析に失敗: %w", err)
		}
		cfg.WeatherSeed = seed
		cfg.HasWeatherSeed = true
	}

	cfg.SessionTTL = DefaultSessionTTL
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL")); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("SESSION_TTLの解析に失敗: %w", err)
		}
		if ttl < 0 {
			return nil, fmt.Errorf("SESSION_TTLは0以上を指定してください: %s", raw)
		}
		cfg.SessionTTL = ttl
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は選択された取得元に必要な設定が揃っているか確認する
func (c *Config) Validate() error {
	switch c.RecommendationSource {
	case SourceMemory:
		return nil
	case SourcePostgres:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL環境変数が設定されていません")
		}
		if c.SupabaseDBPassword == "" {
			return fmt.Errorf("SUPABASE_DB_PASSWORD環境変数が設定されていません")
		}
	case SourceSupabase:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL環境変数が設定されていません")
		}
		if c.SupabaseAnonKey == "" {
			return fmt.Errorf("SUPABASE_ANON_KEY環境変数が設定されていません")
		}
	case SourceFirestore:
		if c.FirestoreProjectID == "" {
			return fmt.Errorf("FIRESTORE_PROJECT_ID環境変数が設定されていません")
		}
	default:
		return fmt.Errorf("対応していないRECOMMENDATION_SOURCEです: %s", c.RecommendationSource)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
