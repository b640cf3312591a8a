package handler

import (
	"net/http"

	"TravelCompanion-App/internal/domain/model"
	"TravelCompanion-App/internal/domain/service"

	"github.com/gin-gonic/gin"
)

// AssistantHandler はアシスタントウィジェットAPIのハンドラー
type AssistantHandler struct {
	store *service.AssistantSessionStore
}

// NewAssistantHandler は新しいAssistantHandlerインスタンスを作成
func NewAssistantHandler(store *service.AssistantSessionStore) *AssistantHandler {
	return &AssistantHandler{
		store: store,
	}
}

// CreateSession POST /assistant/sessions - セッションを作成
func (h *AssistantHandler) CreateSession(c *gin.Context) {
	session := h.store.Create()
	c.JSON(http.StatusCreated, session.Snapshot())
}

// GetSession GET /assistant/sessions/:id - セッションの状態を取得
func (h *AssistantHandler) GetSession(c *gin.Context) {
	session, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

// Expand POST /assistant/sessions/:id/expand
func (h *AssistantHandler) Expand(c *gin.Context) {
	h.transition(c, (*service.AssistantSession).Expand)
}

// Collapse POST /assistant/sessions/:id/collapse
func (h *AssistantHandler) Collapse(c *gin.Context) {
	h.transition(c, (*service.AssistantSession).Collapse)
}

// Toggle POST /assistant/sessions/:id/toggle
func (h *AssistantHandler) Toggle(c *gin.Context) {
	h.transition(c, (*service.AssistantSession).Toggle)
}

func (h *AssistantHandler) transition(c *gin.Context, apply func(*service.AssistantSession) model.AssistantSnapshot) {
	session, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apply(session))
}

// SendMessage POST /assistant/sessions/:id/messages - メッセージを送信してボットの返答を受け取る
func (h *AssistantHandler) SendMessage(c *gin.Context) {
	session, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	snapshot, err := session.Send(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
