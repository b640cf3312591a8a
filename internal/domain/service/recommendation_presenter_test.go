package service

import (
	"sync"
	"testing"

	"TravelCompanion-App/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kyotoSpots() []model.Recommendation {
	return []model.Recommendation{
		{ID: "fushimi-inari", Name: "Fushimi Inari Taisha", Category: "Shrine", Location: model.Coordinate{Latitude: 34.9671, Longitude: 135.7727}},
		{ID: "kiyomizu-dera", Name: "Kiyomizu-dera", Category: "Temple", Location: model.Coordinate{Latitude: 34.9949, Longitude: 135.785}},
		{ID: "gion", Name: "Gion", Category: "Historic District", Location: model.Coordinate{Latitude: 35.0037, Longitude: 135.7788}},
	}
}

func TestRecommendationPresenter_Present(t *testing.T) {
	presenter := NewRecommendationPresenter(nil)
	gion := &model.Coordinate{Latitude: 35.0037, Longitude: 135.7788}

	t.Run("現在地ありの場合は距離を付与し順序を保つ", func(t *testing.T) {
		list := presenter.Present(kyotoSpots(), gion, model.TransportDriving, "en")

		require.Len(t, list.Items, 3)
		assert.Equal(t, model.LocaleEnglish, list.Locale)
		assert.Equal(t, "Nearby Attractions", list.Heading)
		assert.Equal(t, model.TransportDriving, list.TransportMode)

		assert.Equal(t, "fushimi-inari", list.Items[0].ID)
		assert.Equal(t, "kiyomizu-dera", list.Items[1].ID)
		assert.Equal(t, "gion", list.Items[2].ID)

		require.True(t, list.Items[0].HasDistance())
		assert.Equal(t, "4.1km", *list.Items[0].Distance)
		assert.Equal(t, "1.1km", *list.Items[1].Distance)
		assert.Equal(t, "0m", *list.Items[2].Distance)
		assert.Equal(t, 0, *list.Items[2].ETAMinutes)
		assert.Equal(t, "Distance", list.Items[0].Labels.Distance)
	})

	t.Run("現在地なしの場合は距離を省略する", func(t *testing.T) {
		list := presenter.Present(kyotoSpots(), nil, model.TransportWalking, "de")

		require.Len(t, list.Items, 3)
		assert.Equal(t, model.LocaleGerman, list.Locale)
		assert.Equal(t, "Attraktionen in der Nähe", list.Heading)
		for _, item := range list.Items {
			assert.False(t, item.HasDistance())
			assert.Nil(t, item.Distance)
			assert.Nil(t, item.DistanceKm)
			assert.Nil(t, item.ETAMinutes)
			assert.Equal(t, "Entfernung", item.Labels.Distance)
		}
	})

	t.Run("未対応の言語は英語", func(t *testing.T) {
		list := presenter.Present(kyotoSpots(), nil, model.TransportDriving, "ja-JP")
		assert.Equal(t, model.LocaleEnglish, list.Locale)
		assert.Equal(t, "Nearby Attractions", list.Heading)
		assert.Equal(t, "Crowd Level", list.Items[0].Labels.CrowdLevel)
	})

	t.Run("空のリスト", func(t *testing.T) {
		list := presenter.Present(nil, gion, model.TransportDriving, "fr")
		assert.NotNil(t, list.Items)
		assert.Empty(t, list.Items)
		assert.Equal(t, "Attractions à Proximité", list.Heading)
	})

	t.Run("入力のスライスを変更しない", func(t *testing.T) {
		spots := kyotoSpots()
		_ = presenter.Present(spots, gion, model.TransportWalking, "es")
		assert.Equal(t, kyotoSpots(), spots)
	})

	t.Run("移動手段による補正", func(t *testing.T) {
		driving := presenter.Present(kyotoSpots(), gion, model.TransportDriving, "en")
		walking := presenter.Present(kyotoSpots(), gion, model.TransportWalking, "en")
		for i := range driving.Items {
			assert.GreaterOrEqual(t, *walking.Items[i].DistanceKm, *driving.Items[i].DistanceKm)
		}
	})
}

func TestRecommendationPresenter_ConcurrentUse(t *testing.T) {
	presenter := NewRecommendationPresenter(nil)
	gion := &model.Coordinate{Latitude: 35.0037, Longitude: 135.7788}
	modes := []model.TransportMode{model.TransportDriving, model.TransportCycling, model.TransportWalking}
	locales := []string{"en", "es", "fr", "de", "ja"}

	spots := kyotoSpots()
	want := make(map[string]model.PresentedList)
	for _, mode := range modes {
		for _, locale := range locales {
			want[string(mode)+"/"+locale] = presenter.Present(spots, gion, mode, locale)
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mode := modes[i%len(modes)]
			locale := locales[i%len(locales)]
			for j := 0; j < 50; j++ {
				got := presenter.Present(spots, gion, mode, locale)
				assert.Equal(t, want[string(mode)+"/"+locale], got)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, kyotoSpots(), spots)
}
