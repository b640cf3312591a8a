package firestore

import (
	"context"
	"fmt"
	"os"

	"TravelCompanion-App/internal/logging"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient はFirestoreクライアントを作成する
// 認証情報ファイルが指定されていない、または存在しない場合はデフォルト認証を使用する
func NewFirestoreClient(ctx context.Context, projectID, credentialsFile string) (*FirestoreClient, error) {
	if projectID == "" {
		return nil, fmt.Errorf("FIRESTORE_PROJECT_IDが設定されていません")
	}

	var opts []option.ClientOption
	isCloudRun := os.Getenv("K_SERVICE") != ""

	switch {
	case isCloudRun:
		logging.Info().Msg("☁️ Cloud Run環境: デフォルト認証を使用")
	case credentialsFile == "":
		logging.Info().Msg("⚠️ 認証情報ファイルが指定されていないため、デフォルト認証を使用")
	default:
		if _, err := os.Stat(credentialsFile); err != nil {
			logging.Warn().Str("file", credentialsFile).Msg("⚠️ 認証情報ファイルが見つからないため、デフォルト認証を使用")
		} else {
			logging.Info().Str("file", credentialsFile).Msg("📄 認証情報ファイルを使用")
			opts = append(opts, option.WithCredentialsFile(credentialsFile))
		}
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	logging.Info().Str("project_id", projectID).Msg("✅ Firestore client initialized")

	return &FirestoreClient{client: client}, nil
}

func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
