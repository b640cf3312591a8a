package repository

import (
	"TravelCompanion-App/internal/domain/model"
	"TravelCompanion-App/internal/domain/repository"
	"TravelCompanion-App/internal/logging"
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const firestoreRecommendationsCollection = "recommendations"

// FirestoreRecommendationsRepository Firestoreを使用した推薦スポットリポジトリ
type FirestoreRecommendationsRepository struct {
	client *firestore.Client
}

// NewFirestoreRecommendationsRepository 新しいFirestoreRecommendationsRepositoryインスタンスを作成
func NewFirestoreRecommendationsRepository(client *firestore.Client) repository.RecommendationsRepository {
	return &FirestoreRecommendationsRepository{
		client: client,
	}
}

func (r *FirestoreRecommendationsRepository) GetAll(ctx context.Context) ([]model.Recommendation, error) {
	iter := r.client.Collection(firestoreRecommendationsCollection).Documents(ctx)
	return r.collect(iter)
}

func (r *FirestoreRecommendationsRepository) GetByID(ctx context.Context, id string) (*model.Recommendation, error) {
	doc, err := r.client.Collection(firestoreRecommendationsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("スポットID %s: %w", id, repository.ErrRecommendationNotFound)
		}
		return nil, fmt.Errorf("スポットの取得に失敗しました: %w", err)
	}

	rec, err := documentToRecommendation(doc)
	if err != nil {
		return nil, err
	}
	if err := rec.Location.Validate(); err != nil {
		return nil, fmt.Errorf("スポット %s の位置情報が不正です: %w", rec.ID, err)
	}
	return rec, nil
}

func (r *FirestoreRecommendationsRepository) GetByCategory(ctx context.Context, category string) ([]model.Recommendation, error) {
	iter := r.client.Collection(firestoreRecommendationsCollection).Where("category", "==", category).Documents(ctx)
	return r.collect(iter)
}

func (r *FirestoreRecommendationsRepository) collect(iter *firestore.DocumentIterator) ([]model.Recommendation, error) {
	defer iter.Stop()

	recs := make([]model.Recommendation, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("スポットの取得に失敗しました: %w", err)
		}

		rec, err := documentToRecommendation(doc)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}

	if err := validateRecommendations(recs); err != nil {
		return nil, err
	}
	logging.Debug().Int("count", len(recs)).Msg("✅ Firestoreからスポットを取得")
	return recs, nil
}

// documentToRecommendation ドキュメントをmodel.Recommendationに変換する（idフィールドがなければドキュメントIDを使用）
func documentToRecommendation(doc *firestore.DocumentSnapshot) (*model.Recommendation, error) {
	var rec model.Recommendation
	if err := doc.DataTo(&rec); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}
	if rec.ID == "" {
		rec.ID = doc.Ref.ID
	}
	return &rec, nil
}
