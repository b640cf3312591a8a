package handler

import (
	"net/http"

	"TravelCompanion-App/internal/domain/model"
	"TravelCompanion-App/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler は推薦パネルAPIのハンドラー
type RecommendationHandler struct {
	useCase usecase.RecommendationUseCase
}

// NewRecommendationHandler は新しいRecommendationHandlerインスタンスを作成
func NewRecommendationHandler(useCase usecase.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{
		useCase: useCase,
	}
}

// ListRecommendations GET /recommendations - 現在地からの距離付きでスポット一覧を取得
func (h *RecommendationHandler) ListRecommendations(c *gin.Context) {
	origin, err := parseOriginQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	list, err := h.useCase.ListRecommendations(c.Request.Context(), usecase.RecommendationQuery{
		Origin:   origin,
		Mode:     c.Query("mode"),
		Locale:   c.Query("locale"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetRecommendation GET /recommendations/:id - スポットの詳細を取得
func (h *RecommendationHandler) GetRecommendation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondError(c, &ValidationError{Field: "id", Message: "スポットIDは必須です"})
		return
	}

	origin, err := parseOriginQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	item, err := h.useCase.GetRecommendation(c.Request.Context(), id, usecase.RecommendationQuery{
		Origin: origin,
		Mode:   c.Query("mode"),
		Locale: c.Query("locale"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// PresentRecommendations POST /recommendations/present - 渡されたスポット一覧を表示用に整形
func (h *RecommendationHandler) PresentRecommendations(c *gin.Context) {
	var req model.PresentRecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	list, err := h.useCase.PresentRecommendations(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
