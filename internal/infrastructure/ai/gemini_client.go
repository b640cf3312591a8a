package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"

// GeminiClient はGemini APIとの通信を担当するクライアント
type GeminiClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewGeminiClient は新しいGeminiClientインスタンスを作成
func NewGeminiClient(apiKey string) *GeminiClient {
	return NewGeminiClientWithEndpoint(apiKey, defaultGeminiEndpoint, &http.Client{Timeout: 30 * time.Second})
}

// NewGeminiClientWithEndpoint は接続先とHTTPクライアントを指定してGeminiClientを作成
func NewGeminiClientWithEndpoint(apiKey, endpoint string, httpClient *http.Client) *GeminiClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &GeminiClient{
		apiKey:     apiKey,
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// GeminiRequest はGemini APIへのリクエスト構造体
type GeminiRequest struct {
	SystemInstruction *Content  `json:"systemInstruction,omitempty"`
	Contents          []Content `json:"contents"`
}

// Content はリクエストの内容（roleは "user" または "model"）
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part はテキスト部分
type Part struct {
	Text string `json:"text"`
}

// GeminiResponse はGemini APIからのレスポンス構造体
type GeminiResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate は生成された候補
type Candidate struct {
	Content Content `json:"content"`
}

// GenerateContent はGemini APIを使ってコンテンツを生成する
func (c *GeminiClient) GenerateContent(ctx context.Context, req GeminiRequest) (string, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("リクエストのシリアライズに失敗: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("HTTPリクエストの作成に失敗: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("レスポンスの読み取りに失敗: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API呼び出しエラー (status: %d): %s", resp.StatusCode, string(body))
	}

	var geminiResp GeminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("レスポンスのパースに失敗: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("有効なレスポンスが生成されませんでした")
	}

	var sb strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("有効なレスポンスが生成されませんでした")
	}
	return text, nil
}
