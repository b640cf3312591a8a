package ai

import (
	"context"

	"TravelCompanion-App/internal/domain/model"
)

const travelAssistantInstruction = "You are a friendly travel companion. Answer briefly and help the traveler " +
	"with nearby attractions, the best time to visit, and how to get around."

// maxHistoryMessages はプロンプトに含める直近のメッセージ数
const maxHistoryMessages = 20

// GeminiResponder はGemini APIを使ってアシスタントの返答を生成する
type GeminiResponder struct {
	client *GeminiClient
}

// NewGeminiResponder は新しいGeminiResponderを作成
func NewGeminiResponder(client *GeminiClient) *GeminiResponder {
	return &GeminiResponder{client: client}
}

// Reply は会話履歴（最後のユーザーメッセージを含む）から返答を生成する
func (r *GeminiResponder) Reply(ctx context.Context, history []model.AssistantMessage, text string) (string, error) {
	return r.client.GenerateContent(ctx, buildAssistantRequest(history, text))
}

// buildAssistantRequest は会話履歴をGeminiのcontentsに変換する
// 最初のユーザーメッセージより前のボットの発言（挨拶）は含めない
func buildAssistantRequest(history []model.AssistantMessage, text string) GeminiRequest {
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}

	contents := make([]Content, 0, len(history)+1)
	for _, msg := range history {
		role := "user"
		if msg.Sender == model.SenderBot {
			if len(contents) == 0 {
				continue
			}
			role = "model"
		}
		contents = append(contents, Content{Role: role, Parts: []Part{{Text: msg.Text}}})
	}

	last := len(contents) - 1
	if last < 0 || contents[last].Role != "user" || contents[last].Parts[0].Text != text {
		contents = append(contents, Content{Role: "user", Parts: []Part{{Text: text}}})
	}

	return GeminiRequest{
		SystemInstruction: &Content{Parts: []Part{{Text: travelAssistantInstruction}}},
		Contents:          contents,
	}
}
