package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"TravelCompanion-App/internal/domain/helper"
	"TravelCompanion-App/internal/domain/model"
	"TravelCompanion-App/internal/domain/repository"
)

//go:embed seed/recommendations.json
var defaultSeed []byte

// MemoryRecommendationsRepository シードデータをメモリ上に保持するリポジトリ
// 読み込み順を保持し、呼び出し元には常にコピーを返す
type MemoryRecommendationsRepository struct {
	recommendations []model.Recommendation
}

// NewMemoryRecommendationsRepository 与えられたスポットでリポジトリを作成する
func NewMemoryRecommendationsRepository(recs []model.Recommendation) (*MemoryRecommendationsRepository, error) {
	if err := validateRecommendations(recs); err != nil {
		return nil, err
	}
	copied := make([]model.Recommendation, len(recs))
	copy(copied, recs)
	return &MemoryRecommendationsRepository{recommendations: copied}, nil
}

// NewMemoryRecommendationsRepositoryFromSeed シードファイルからリポジトリを作成する
// pathが空の場合は組み込みのシードデータを使用する
func NewMemoryRecommendationsRepositoryFromSeed(path string) (*MemoryRecommendationsRepository, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("シードファイルの読み込みに失敗: %w", err)
		}
		data = b
	}

	var recs []model.Recommendation
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("シードデータのJSONアンマーシャル失敗: %w", err)
	}
	return NewMemoryRecommendationsRepository(recs)
}

var _ repository.RecommendationsRepository = (*MemoryRecommendationsRepository)(nil)

func (r *MemoryRecommendationsRepository) GetAll(ctx context.Context) ([]model.Recommendation, error) {
	result := make([]model.Recommendation, len(r.recommendations))
	copy(result, r.recommendations)
	return result, nil
}

func (r *MemoryRecommendationsRepository) GetByID(ctx context.Context, id string) (*model.Recommendation, error) {
	for _, rec := range r.recommendations {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, fmt.Errorf("スポットID %s: %w", id, repository.ErrRecommendationNotFound)
}

func (r *MemoryRecommendationsRepository) GetByCategory(ctx context.Context, category string) ([]model.Recommendation, error) {
	return helper.FilterByCategory(r.recommendations, category), nil
}
