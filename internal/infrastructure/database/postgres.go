package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgreSQLClient PostgreSQL直接接続クライアント
type PostgreSQLClient struct {
	DB *sqlx.DB
}

// BuildConnString SupabaseのURLとパスワードから接続文字列を組み立てる（ポート6543を使用）
func BuildConnString(supabaseURL, password string) (string, error) {
	host := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(supabaseURL, "https://"), "http://"), "/")
	if host == "" {
		return "", fmt.Errorf("SUPABASE_URLからホスト名を取得できません: %q", supabaseURL)
	}
	if password == "" {
		return "", fmt.Errorf("SUPABASE_DB_PASSWORDが設定されていません")
	}
	return fmt.Sprintf(
		"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
		host, password,
	), nil
}

// NewPostgreSQLClient 新しいPostgreSQLクライアントを作成
func NewPostgreSQLClient(ctx context.Context, supabaseURL, password string) (*PostgreSQLClient, error) {
	connStr, err := BuildConnString(supabaseURL, password)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL接続の初期化に失敗: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("PostgreSQLへの接続に失敗: %w", err)
	}

	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// Close データベース接続を閉じる
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck データベース接続のヘルスチェック
func (pc *PostgreSQLClient) HealthCheck(ctx context.Context) error {
	if pc.DB == nil {
		return fmt.Errorf("PostgreSQLクライアントが初期化されていません")
	}
	return pc.DB.PingContext(ctx)
}
