package service

import (
	"TravelCompanion-App/internal/domain/helper"
	"TravelCompanion-App/internal/domain/model"
)

// RecommendationPresenter はスポット一覧に距離とラベルを付与して表示用に整形する
type RecommendationPresenter interface {
	// Present は入力の順序と件数を保ったまま各スポットを注釈する
	// originがnilの場合、距離は省略される（0として扱わない）
	Present(list []model.Recommendation, origin *model.Coordinate, mode model.TransportMode, locale string) model.PresentedList
}

type recommendationPresenter struct {
	estimator DistanceEstimator
}

// NewRecommendationPresenter は新しいRecommendationPresenterを作成する
func NewRecommendationPresenter(estimator DistanceEstimator) RecommendationPresenter {
	if estimator == nil {
		estimator = NewDistanceEstimator()
	}
	return &recommendationPresenter{
		estimator: estimator,
	}
}

// Present は状態を持たないため、複数の呼び出し元から同時に使用できる
func (p *recommendationPresenter) Present(list []model.Recommendation, origin *model.Coordinate, mode model.TransportMode, locale string) model.PresentedList {
	resolved := model.ParseLocale(locale)
	labels := resolved.Labels()
	fieldLabels := model.FieldLabels{
		CrowdLevel: labels.CrowdLevel,
		BestTime:   labels.BestTime,
		Category:   labels.Category,
		Distance:   labels.Distance,
	}

	items := make([]model.PresentedRecommendation, 0, len(list))
	for _, rec := range list {
		item := model.PresentedRecommendation{
			Recommendation: rec,
			Labels:         fieldLabels,
		}

		if origin != nil {
			distanceKm := p.estimator.Estimate(*origin, rec.Location, mode)
			formatted := helper.FormatDistance(distanceKm)
			eta := etaMinutes(p.estimator.EstimateDuration(distanceKm, mode))

			item.DistanceKm = &distanceKm
			item.Distance = &formatted
			item.ETAMinutes = &eta
		}

		items = append(items, item)
	}

	return model.PresentedList{
		Locale:        resolved,
		Heading:       labels.NearbyAttractions,
		TransportMode: mode,
		Items:         items,
	}
}
