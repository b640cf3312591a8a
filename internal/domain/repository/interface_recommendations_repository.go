package repository

import (
	"context"
	"errors"

	"TravelCompanion-App/internal/domain/model"
)

// ErrRecommendationNotFound は指定されたIDのスポットが存在しないことを表す
var ErrRecommendationNotFound = errors.New("スポットが見つかりません")

// RecommendationsRepository は推薦スポットを読み出すリポジトリ（読み取り専用）
type RecommendationsRepository interface {
	GetAll(ctx context.Context) ([]model.Recommendation, error)
	GetByID(ctx context.Context, id string) (*model.Recommendation, error)
	GetByCategory(ctx context.Context, category string) ([]model.Recommendation, error)
}
