package database

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient Supabaseクライアントのラッパー
type SupabaseClient struct {
	Client *supabase.Client
}

// NewSupabaseClient 新しいSupabaseクライアントを作成
func NewSupabaseClient(supabaseURL, supabaseAnonKey string) (*SupabaseClient, error) {
	if supabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URLが設定されていません")
	}
	if supabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEYが設定されていません")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseAnonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("Supabaseクライアントの初期化に失敗: %w", err)
	}

	return &SupabaseClient{
		Client: client,
	}, nil
}

// GetClient Supabaseクライアントを取得
func (sc *SupabaseClient) GetClient() *supabase.Client {
	return sc.Client
}

// HealthCheck 指定したテーブルから1行取得して接続とキーを確認する
func (sc *SupabaseClient) HealthCheck(table string) error {
	if sc.Client == nil {
		return fmt.Errorf("Supabaseクライアントが初期化されていません")
	}
	if _, _, err := sc.Client.From(table).Select("id", "", false).Limit(1, "").Execute(); err != nil {
		return fmt.Errorf("テーブル %s への問い合わせに失敗: %w", table, err)
	}
	return nil
}
