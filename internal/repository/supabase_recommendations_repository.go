package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"TravelCompanion-App/internal/domain/model"
	"TravelCompanion-App/internal/domain/repository"
	"TravelCompanion-App/internal/infrastructure/database"
)

// SupabaseRecommendationsTable 推薦スポットを保持するテーブル名
const SupabaseRecommendationsTable = "recommendations"

type SupabaseRecommendationsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseRecommendationsRepository(client *database.SupabaseClient) repository.RecommendationsRepository {
	return &SupabaseRecommendationsRepository{
		client: client,
	}
}

// supabaseRecommendationRow PostgRESTが返す行（locationはGeoJSON）
type supabaseRecommendationRow struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Rating      float64   `json:"rating"`
	CrowdLevel  string    `json:"crowd_level"`
	BestTime    string    `json:"best_time"`
	Category    string    `json:"category"`
	Location    *GeoPoint `json:"location"`
}

// decodeSupabaseRows PostgRESTのレスポンスをmodel.Recommendationに変換
func decodeSupabaseRows(data []byte) ([]model.Recommendation, error) {
	var rows []supabaseRecommendationRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	recs := make([]model.Recommendation, 0, len(rows))
	for _, row := range rows {
		location, err := GeoPointToCoordinate(row.Location)
		if err != nil {
			return nil, fmt.Errorf("スポット %s: %w", row.ID, err)
		}
		recs = append(recs, model.Recommendation{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Image:       row.Image,
			Rating:      row.Rating,
			CrowdLevel:  row.CrowdLevel,
			BestTime:    row.BestTime,
			Category:    row.Category,
			Location:    location,
		})
	}

	if err := validateRecommendations(recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *SupabaseRecommendationsRepository) GetAll(ctx context.Context) ([]model.Recommendation, error) {
	data, _, err := r.client.GetClient().From(SupabaseRecommendationsTable).Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	return decodeSupabaseRows(data)
}

func (r *SupabaseRecommendationsRepository) GetByID(ctx context.Context, id string) (*model.Recommendation, error) {
	data, _, err := r.client.GetClient().From(SupabaseRecommendationsTable).Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}

	recs, err := decodeSupabaseRows(data)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("スポットID %s: %w", id, repository.ErrRecommendationNotFound)
	}
	return &recs[0], nil
}

func (r *SupabaseRecommendationsRepository) GetByCategory(ctx context.Context, category string) ([]model.Recommendation, error) {
	data, _, err := r.client.GetClient().From(SupabaseRecommendationsTable).Select("*", "exact", false).Eq("category", category).Execute()
	if err != nil {
		return nil, fmt.Errorf("カテゴリ %s のスポットデータ取得失敗: %w", category, err)
	}
	return decodeSupabaseRows(data)
}
