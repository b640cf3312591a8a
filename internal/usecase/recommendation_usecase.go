package usecase

import (
	"TravelCompanion-App/internal/domain/helper"
	"TravelCompanion-App/internal/domain/model"
	"TravelCompanion-App/internal/domain/repository"
	"TravelCompanion-App/internal/domain/service"
	"TravelCompanion-App/internal/logging"
	"context"
	"fmt"
	"strings"
)

// SortByDistance はクエリで距離順の並べ替えを指定する値
const SortByDistance = "distance"

// RecommendationQuery はスポット一覧取得の条件
type RecommendationQuery struct {
	Origin   *model.Coordinate // nil可（現在地不明）
	Mode     string
	Locale   string
	Category string // 空の場合は全カテゴリ
	Sort     string
}

type RecommendationUseCase interface {
	// ListRecommendations はリポジトリのスポットを表示用に整形して返す
	ListRecommendations(ctx context.Context, q RecommendationQuery) (*model.PresentedList, error)

	// GetRecommendation は指定されたIDのスポットを表示用に整形して返す
	GetRecommendation(ctx context.Context, id string, q RecommendationQuery) (*model.PresentedRecommendation, error)

	// PresentRecommendations は呼び出し元が渡したスポット一覧を表示用に整形する
	PresentRecommendations(ctx context.Context, req *model.PresentRecommendationsRequest) (*model.PresentedList, error)
}

// recommendationUseCaseImpl はRecommendationUseCaseの実装
type recommendationUseCaseImpl struct {
	repo      repository.RecommendationsRepository
	presenter service.RecommendationPresenter
}

// NewRecommendationUseCase は新しいRecommendationUseCaseインスタンスを作成
func NewRecommendationUseCase(repo repository.RecommendationsRepository, presenter service.RecommendationPresenter) RecommendationUseCase {
	return &recommendationUseCaseImpl{
		repo:      repo,
		presenter: presenter,
	}
}

func (u *recommendationUseCaseImpl) ListRecommendations(ctx context.Context, q RecommendationQuery) (*model.PresentedList, error) {
	if err := validateOrigin(q.Origin); err != nil {
		return nil, err
	}

	var (
		recs []model.Recommendation
		err  error
	)
	if strings.TrimSpace(q.Category) != "" {
		recs, err = u.repo.GetByCategory(ctx, strings.TrimSpace(q.Category))
	} else {
		recs, err = u.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("スポットの取得に失敗: %w", err)
	}

	list := u.present(recs, q.Origin, q.Mode, q.Locale, q.Sort)
	logging.Ctx(ctx).Debug().
		Int("count", len(list.Items)).
		Str("locale", string(list.Locale)).
		Str("mode", string(list.TransportMode)).
		Bool("has_origin", q.Origin != nil).
		Msg("✅ スポット一覧を整形")
	return &list, nil
}

func (u *recommendationUseCaseImpl) GetRecommendation(ctx context.Context, id string, q RecommendationQuery) (*model.PresentedRecommendation, error) {
	if err := validateOrigin(q.Origin); err != nil {
		return nil, err
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("スポットの取得に失敗: %w", err)
	}

	list := u.present([]model.Recommendation{*rec}, q.Origin, q.Mode, q.Locale, "")
	return &list.Items[0], nil
}

func (u *recommendationUseCaseImpl) PresentRecommendations(ctx context.Context, req *model.PresentRecommendationsRequest) (*model.PresentedList, error) {
	if err := validateOrigin(req.Origin); err != nil {
		return nil, err
	}
	for i, rec := range req.Recommendations {
		if err := rec.Location.Validate(); err != nil {
			return nil, fmt.Errorf("recommendations[%d].location: %w", i, err)
		}
	}

	list := u.present(req.Recommendations, req.Origin, req.Mode, req.Locale, req.Sort)
	return &list, nil
}

// present はPresenterで整形し、指定された場合のみ距離順に並べ替える（Presenter自体は順序を保つ）
func (u *recommendationUseCaseImpl) present(recs []model.Recommendation, origin *model.Coordinate, mode, locale, sortKey string) model.PresentedList {
	list := u.presenter.Present(recs, origin, model.ParseTransportMode(mode), locale)
	if strings.EqualFold(strings.TrimSpace(sortKey), SortByDistance) {
		helper.SortPresentedByDistance(list.Items)
	}
	return list
}

func validateOrigin(origin *model.Coordinate) error {
	if origin == nil {
		return nil
	}
	if err := origin.Validate(); err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	return nil
}
