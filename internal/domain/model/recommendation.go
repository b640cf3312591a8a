package model

// Recommendation 推薦パネルに表示するスポット
// 距離は閲覧者の現在地に依存するため保持しない
type Recommendation struct {
	ID          string     `json:"id" db:"id" firestore:"id"`                            // ユニークなスポットID
	Name        string     `json:"name" db:"name" firestore:"name"`                      // スポット名
	Description string     `json:"description" db:"description" firestore:"description"` // 説明
	Image       string     `json:"image" db:"image" firestore:"image"`                   // 画像URL
	Rating      float64    `json:"rating" db:"rating" firestore:"rating"`                // 評価値
	CrowdLevel  string     `json:"crowd_level" db:"crowd_level" firestore:"crowd_level"` // 混雑度
	BestTime    string     `json:"best_time" db:"best_time" firestore:"best_time"`       // おすすめの時間帯
	Category    string     `json:"category" db:"category" firestore:"category"`          // カテゴリ
	Location    Coordinate `json:"location" db:"location" firestore:"location"`          // 位置情報
}

// FieldLabels 各スポットに付与する見出しラベル
type FieldLabels struct {
	CrowdLevel string `json:"crowd_level"`
	BestTime   string `json:"best_time"`
	Category   string `json:"category"`
	Distance   string `json:"distance"`
}

// PresentedRecommendation 表示用に注釈を付けたスポット
// 現在地が不明な場合、距離関連のフィールドは省略される（0ではない）
type PresentedRecommendation struct {
	Recommendation
	Labels     FieldLabels `json:"labels"`
	Distance   *string     `json:"distance,omitempty"`    // 整形済みの距離（例: "500m", "1.2km"）
	DistanceKm *float64    `json:"distance_km,omitempty"` // 移動手段で補正した距離 (km)
	ETAMinutes *int        `json:"eta_minutes,omitempty"` // 到着までの推定時間（分）
}

// HasDistance 距離が計算済みかどうか
func (p *PresentedRecommendation) HasDistance() bool {
	return p.DistanceKm != nil
}

// PresentedList 表示用のスポット一覧
type PresentedList struct {
	Locale        Locale                    `json:"locale"`
	Heading       string                    `json:"heading"`
	TransportMode TransportMode             `json:"transport_mode"`
	Items         []PresentedRecommendation `json:"items"`
}

// PresentRecommendationsRequest 呼び出し側が渡したスポット一覧を表示用に整形するリクエスト
type PresentRecommendationsRequest struct {
	Recommendations []Recommendation `json:"recommendations"`
	Origin          *Coordinate      `json:"origin"` // null可（現在地不明）
	Mode            string           `json:"mode"`
	Locale          string           `json:"locale"`
	Sort            string           `json:"sort"` // "distance" の場合のみ距離順に並べ替える
}
