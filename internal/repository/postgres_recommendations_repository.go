package repository

import (
	"TravelCompanion-App/internal/domain/model"
	"TravelCompanion-App/internal/domain/repository"
	"TravelCompanion-App/internal/infrastructure/database"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const recommendationColumns = `id, name, description, image, rating, crowd_level, best_time, category, location`

type PostgresRecommendationsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresRecommendationsRepository(client *database.PostgreSQLClient) repository.RecommendationsRepository {
	return &PostgresRecommendationsRepository{
		client: client,
	}
}

// recommendationResult クエリ結果を受け取るための構造体
type recommendationResult struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Image       sql.NullString `db:"image"`
	Rating      float64        `db:"rating"`
	CrowdLevel  sql.NullString `db:"crowd_level"`
	BestTime    sql.NullString `db:"best_time"`
	Category    sql.NullString `db:"category"`
	Location    []byte         `db:"location"` // JSONB (GeoJSON Point)
}

// ToRecommendation recommendationResultをmodel.Recommendationに変換
func (rr *recommendationResult) ToRecommendation() (*model.Recommendation, error) {
	location, err := parseGeoPointJSON(rr.Location)
	if err != nil {
		return nil, fmt.Errorf("スポット %s: %w", rr.ID, err)
	}
	if err := location.Validate(); err != nil {
		return nil, fmt.Errorf("スポット %s の位置情報が不正です: %w", rr.ID, err)
	}

	return &model.Recommendation{
		ID:          rr.ID,
		Name:        rr.Name,
		Description: rr.Description.String,
		Image:       rr.Image.String,
		Rating:      rr.Rating,
		CrowdLevel:  rr.CrowdLevel.String,
		BestTime:    rr.BestTime.String,
		Category:    rr.Category.String,
		Location:    location,
	}, nil
}

func (r *PostgresRecommendationsRepository) GetAll(ctx context.Context) ([]model.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM recommendations ORDER BY id`
	return r.queryList(ctx, query)
}

func (r *PostgresRecommendationsRepository) GetByID(ctx context.Context, id string) (*model.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM recommendations WHERE id = $1`

	var result recommendationResult
	if err := r.client.DB.GetContext(ctx, &result, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("スポットID %s: %w", id, repository.ErrRecommendationNotFound)
		}
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	return result.ToRecommendation()
}

func (r *PostgresRecommendationsRepository) GetByCategory(ctx context.Context, category string) ([]model.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM recommendations WHERE lower(category) = lower($1) ORDER BY id`
	return r.queryList(ctx, query, category)
}

func (r *PostgresRecommendationsRepository) queryList(ctx context.Context, query string, args ...any) ([]model.Recommendation, error) {
	var results []recommendationResult
	if err := r.client.DB.SelectContext(ctx, &results, query, args...); err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}

	recs := make([]model.Recommendation, 0, len(results))
	for i := range results {
		rec, err := results[i].ToRecommendation()
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, nil
}
