package model

import "time"

// AssistantState アシスタントウィジェットの表示状態
type AssistantState string

const (
	AssistantCollapsed AssistantState = "collapsed"
	AssistantExpanded  AssistantState = "expanded"
)

// MessageSender メッセージの送信者
type MessageSender string

const (
	SenderBot  MessageSender = "bot"
	SenderUser MessageSender = "user"
)

// AssistantMessage チャットのメッセージ
type AssistantMessage struct {
	ID     string        `json:"id"`
	Sender MessageSender `json:"sender"`
	Text   string        `json:"text"`
	SentAt time.Time     `json:"sent_at"`
}

// AssistantSnapshot セッションのある時点の状態
type AssistantSnapshot struct {
	SessionID string             `json:"session_id"`
	State     AssistantState     `json:"state"`
	Typing    bool               `json:"typing"`
	Messages  []AssistantMessage `json:"messages"`
}

// SendMessageRequest メッセージ送信リクエスト
type SendMessageRequest struct {
	Text string `json:"text"`
}
