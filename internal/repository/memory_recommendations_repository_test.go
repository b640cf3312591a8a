package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"TravelCompanion-App/internal/domain/model"
	"TravelCompanion-App/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRecommendationsRepository_DefaultSeed(t *testing.T) {
	repo, err := NewMemoryRecommendationsRepositoryFromSeed("")
	require.NoError(t, err)

	ctx := context.Background()
	recs, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.Equal(t, "fushimi-inari", recs[0].ID)

	t.Run("返したスライスを変更しても内部状態は変わらない", func(t *testing.T) {
		recs[0].Name = "changed"
		again, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Fushimi Inari Taisha", again[0].Name)
	})

	t.Run("IDで取得", func(t *testing.T) {
		rec, err := repo.GetByID(ctx, "gion")
		require.NoError(t, err)
		assert.Equal(t, "Gion", rec.Name)
	})

	t.Run("存在しないID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrRecommendationNotFound)
	})

	t.Run("カテゴリで絞り込み（大文字小文字を区別しない）", func(t *testing.T) {
		temples, err := repo.GetByCategory(ctx, "temple")
		require.NoError(t, err)
		require.Len(t, temples, 2)
		assert.Equal(t, "kiyomizu-dera", temples[0].ID)
		assert.Equal(t, "kinkaku-ji", temples[1].ID)
	})
}

func TestMemoryRecommendationsRepository_SeedFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("正常なシードファイル", func(t *testing.T) {
		path := filepath.Join(dir, "ok.json")
		content := `[{"id":"a","name":"A","location":{"latitude":35.0,"longitude":135.0}}]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		repo, err := NewMemoryRecommendationsRepositoryFromSeed(path)
		require.NoError(t, err)
		recs, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, recs, 1)
	})

	t.Run("位置情報が範囲外のスポットは拒否する", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		content := `[{"id":"a","name":"A","location":{"latitude":95.0,"longitude":135.0}}]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, err := NewMemoryRecommendationsRepositoryFromSeed(path)
		assert.ErrorIs(t, err, model.ErrInvalidCoordinate)
	})

	t.Run("存在しないファイル", func(t *testing.T) {
		_, err := NewMemoryRecommendationsRepositoryFromSeed(filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})
}

func TestNewMemoryRecommendationsRepository_DuplicateID(t *testing.T) {
	recs := []model.Recommendation{
		{ID: "a", Location: model.Coordinate{Latitude: 1, Longitude: 1}},
		{ID: "a", Location: model.Coordinate{Latitude: 2, Longitude: 2}},
	}
	_, err := NewMemoryRecommendationsRepository(recs)
	assert.Error(t, err)
}
