package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT", "RECOMMENDATION_SOURCE", "SEED_PATH",
		"SUPABASE_URL", "SUPABASE_ANON_KEY", "SUPABASE_DB_PASSWORD",
		"FIRESTORE_PROJECT_ID", "GOOGLE_APPLICATION_CREDENTIALS", "GEMINI_API_KEY", "WEATHER_SEED", "SESSION_TTL",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, SourceMemory, cfg.RecommendationSource)
	assert.False(t, cfg.HasWeatherSeed)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestFromEnvSessionTTL(t *testing.T) {
	clearEnv(t)

	t.Run("有効な値", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "2h")
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	})

	t.Run("0は無期限", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "0s")
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), cfg.SessionTTL)
	})

	t.Run("不正な値", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "soon")
		_, err := FromEnv()
		assert.Error(t, err)
	})

	t.Run("負の値", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "-1m")
		_, err := FromEnv()
		assert.Error(t, err)
	})
}

func TestFromEnvWeatherSeed(t *testing.T) {
	clearEnv(t)

	t.Run("有効なシード", func(t *testing.T) {
		t.Setenv("WEATHER_SEED", "42")
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.True(t, cfg.HasWeatherSeed)
		assert.Equal(t, uint64(42), cfg.WeatherSeed)
	})

	t.Run("不正なシード", func(t *testing.T) {
		t.Setenv("WEATHER_SEED", "abc")
		_, err := FromEnv()
		assert.Error(t, err)
	})
}

func TestValidateSources(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory", Config{RecommendationSource: SourceMemory}, false},
		{"postgres 資格情報あり", Config{RecommendationSource: SourcePostgres, SupabaseURL: "https://x.supabase.co", SupabaseDBPassword: "pw"}, false},
		{"postgres パスワードなし", Config{RecommendationSource: SourcePostgres, SupabaseURL: "https://x.supabase.co"}, true},
		{"supabase キーなし", Config{RecommendationSource: SourceSupabase, SupabaseURL: "https://x.supabase.co"}, true},
		{"firestore プロジェクトなし", Config{RecommendationSource: SourceFirestore}, true},
		{"firestore", Config{RecommendationSource: SourceFirestore, FirestoreProjectID: "p"}, false},
		{"未対応", Config{RecommendationSource: "redis"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
