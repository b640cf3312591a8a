package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"TravelCompanion-App/internal/config"
	"TravelCompanion-App/internal/domain/repository"
	"TravelCompanion-App/internal/domain/service"
	"TravelCompanion-App/internal/handler"
	"TravelCompanion-App/internal/infrastructure/ai"
	"TravelCompanion-App/internal/infrastructure/database"
	firestoreinfra "TravelCompanion-App/internal/infrastructure/firestore"
	"TravelCompanion-App/internal/logging"
	infraRepo "TravelCompanion-App/internal/repository"
	"TravelCompanion-App/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("設定の読み込みに失敗")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	repo, cleanup, err := newRecommendationsRepository(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Str("source", cfg.RecommendationSource).Msg("推薦データリポジトリの初期化に失敗")
	}
	defer cleanup()
	logging.Info().Str("source", cfg.RecommendationSource).Msg("✅ 推薦データリポジトリを初期化しました")

	var responder service.AssistantResponder = service.StubResponder{}
	if cfg.GeminiAPIKey != "" {
		responder = ai.NewGeminiResponder(ai.NewGeminiClient(cfg.GeminiAPIKey))
		logging.Info().Msg("🤖 Geminiによるアシスタント返答を有効化")
	}

	weatherSeed := uint64(time.Now().UnixNano())
	if cfg.HasWeatherSeed {
		weatherSeed = cfg.WeatherSeed
	}

	recommendationUseCase := usecase.NewRecommendationUseCase(
		repo,
		service.NewRecommendationPresenter(service.NewDistanceEstimator()),
	)

	sessions := service.NewAssistantSessionStore(responder, cfg.SessionTTL)
	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go sessions.Run(janitorCtx, time.Minute)

	router := handler.NewRouter(
		handler.NewRecommendationHandler(recommendationUseCase),
		handler.NewWeatherHandler(service.NewSeededWeatherSimulator(weatherSeed)),
		handler.NewAssistantHandler(sessions),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("port", cfg.Port).Msg("🚀 TravelCompanion-App server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("サーバーの起動に失敗")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("🛑 サーバーを停止しています")
	stopJanitor()
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("サーバーの停止に失敗")
	}
}

// newRecommendationsRepository は設定された取得元のリポジトリと後処理を作成する
func newRecommendationsRepository(ctx context.Context, cfg *config.Config) (repository.RecommendationsRepository, func(), error) {
	noop := func() {}

	switch cfg.RecommendationSource {
	case config.SourcePostgres:
		client, err := database.NewPostgreSQLClient(ctx, cfg.SupabaseURL, cfg.SupabaseDBPassword)
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logging.Warn().Err(err).Msg("⚠️ PostgreSQL接続のクローズに失敗")
			}
		}
		if err := client.HealthCheck(ctx); err != nil {
			cleanup()
			return nil, noop, fmt.Errorf("PostgreSQLヘルスチェック失敗: %w", err)
		}
		return infraRepo.NewPostgresRecommendationsRepository(client), cleanup, nil

	case config.SourceSupabase:
		client, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			return nil, noop, err
		}
		if err := client.HealthCheck(infraRepo.SupabaseRecommendationsTable); err != nil {
			return nil, noop, fmt.Errorf("Supabaseヘルスチェック失敗: %w", err)
		}
		return infraRepo.NewSupabaseRecommendationsRepository(client), noop, nil

	case config.SourceFirestore:
		client, err := firestoreinfra.NewFirestoreClient(ctx, cfg.FirestoreProjectID, cfg.CredentialsFile)
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logging.Warn().Err(err).Msg("⚠️ Firestoreクライアントのクローズに失敗")
			}
		}
		return infraRepo.NewFirestoreRecommendationsRepository(client.GetClient()), cleanup, nil

	default:
		repo, err := infraRepo.NewMemoryRecommendationsRepositoryFromSeed(cfg.SeedPath)
		if err != nil {
			return nil, noop, err
		}
		return repo, noop, nil
	}
}
