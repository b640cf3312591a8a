package logging

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// GenerateRequestID は新しいリクエストIDを生成する
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID はリクエストIDを持つコンテキストを返す
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext はコンテキストからリクエストIDを取得する。存在しない場合は空文字列
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
