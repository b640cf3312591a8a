package service

import (
	"TravelCompanion-App/internal/domain/model"
	"TravelCompanion-App/internal/logging"
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// GreetingMessage はセッション開始時のボットの挨拶
	GreetingMessage = "Hi! I'm your travel buddy. How can I help you today? 😊"
	// StubReplyMessage は応答生成を行わない場合（または失敗した場合）のボットの返答
	StubReplyMessage = "I'm processing your request! 🌟"

	// MaxSessionMessages は1セッションが保持できるメッセージ数の上限（挨拶を含む）
	MaxSessionMessages = 200
	// DefaultSessionTTL は最後の操作からセッションを破棄するまでの時間
	DefaultSessionTTL = 30 * time.Minute
)

var (
	ErrEmptyMessage     = errors.New("メッセージが空です")
	ErrSessionCollapsed = errors.New("アシスタントが折りたたまれています")
	ErrSessionNotFound  = errors.New("セッションが見つかりません")
	ErrMessageLimit     = errors.New("セッションのメッセージ数が上限に達しました")
)

// AssistantResponder はユーザーのメッセージに対するボットの返答を生成する
type AssistantResponder interface {
	Reply(ctx context.Context, history []model.AssistantMessage, text string) (string, error)
}

// StubResponder は常に固定の返答を返す
type StubResponder struct{}

func (StubResponder) Reply(ctx context.Context, history []model.AssistantMessage, text string) (string, error) {
	return StubReplyMessage, nil
}

// AssistantSession はアシスタントウィジェットの状態機械 {collapsed, expanded}
// メッセージ履歴は追記のみで、順序は送信順に保たれる
type AssistantSession struct {
	mu        sync.Mutex
	id        string
	state     model.AssistantState
	pending   int // 返答待ちのメッセージ数（タイピング表示）
	messages  []model.AssistantMessage
	responder AssistantResponder
	now       func() time.Time
	lastSeen  time.Time
}

// NewAssistantSession は折りたたみ状態で挨拶メッセージを持つ新しいセッションを作成する
func NewAssistantSession(responder AssistantResponder) *AssistantSession {
	return newAssistantSession(responder, time.Now)
}

func newAssistantSession(responder AssistantResponder, now func() time.Time) *AssistantSession {
	if responder == nil {
		responder = StubResponder{}
	}
	s := &AssistantSession{
		id:        uuid.New().String(),
		state:     model.AssistantCollapsed,
		responder: responder,
		now:       now,
		lastSeen:  now(),
	}
	s.messages = append(s.messages, s.newMessage(model.SenderBot, GreetingMessage))
	return s
}

// ID セッションIDを取得
func (s *AssistantSession) ID() string {
	return s.id
}

// Expand ウィジェットを展開する
func (s *AssistantSession) Expand() model.AssistantSnapshot {
	return s.transition(func(model.AssistantState) model.AssistantState { return model.AssistantExpanded })
}

// Collapse ウィジェットを折りたたむ
func (s *AssistantSession) Collapse() model.AssistantSnapshot {
	return s.transition(func(model.AssistantState) model.AssistantState { return model.AssistantCollapsed })
}

// Toggle 展開・折りたたみを切り替える
func (s *AssistantSession) Toggle() model.AssistantSnapshot {
	return s.transition(func(current model.AssistantState) model.AssistantState {
		if current == model.AssistantExpanded {
			return model.AssistantCollapsed
		}
		return model.AssistantExpanded
	})
}

func (s *AssistantSession) transition(next func(model.AssistantState) model.AssistantState) model.AssistantSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = next(s.state)
	s.lastSeen = s.now()
	return s.snapshotLocked()
}

// Send はユーザーのメッセージを追加し、ボットの返答を待って追加する
// 返答生成に失敗した場合は固定の返答を追加し、セッションは継続する
func (s *AssistantSession) Send(ctx context.Context, text string) (model.AssistantSnapshot, error) {
	if strings.TrimSpace(text) == "" {
		return s.Snapshot(), ErrEmptyMessage
	}

	s.mu.Lock()
	if s.state != model.AssistantExpanded {
		snapshot := s.snapshotLocked()
		s.mu.Unlock()
		return snapshot, ErrSessionCollapsed
	}
	// ユーザーとボットの2件分の空きが必要
	if len(s.messages)+2*(s.pending+1) > MaxSessionMessages {
		snapshot := s.snapshotLocked()
		s.mu.Unlock()
		return snapshot, ErrMessageLimit
	}
	s.lastSeen = s.now()
	s.messages = append(s.messages, s.newMessage(model.SenderUser, text))
	s.pending++
	history := make([]model.AssistantMessage, len(s.messages))
	copy(history, s.messages)
	s.mu.Unlock()

	reply, err := s.responder.Reply(ctx, history, text)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("session_id", s.id).Msg("⚠️ 返答の生成に失敗したため固定の返答を使用します")
		reply = StubReplyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, s.newMessage(model.SenderBot, reply))
	s.pending--
	s.lastSeen = s.now()
	return s.snapshotLocked(), nil
}

// Snapshot 現在の状態のコピーを取得
func (s *AssistantSession) Snapshot() model.AssistantSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *AssistantSession) snapshotLocked() model.AssistantSnapshot {
	messages := make([]model.AssistantMessage, len(s.messages))
	copy(messages, s.messages)
	return model.AssistantSnapshot{
		SessionID: s.id,
		State:     s.state,
		Typing:    s.pending > 0,
		Messages:  messages,
	}
}

func (s *AssistantSession) touch(at time.Time) {
	s.mu.Lock()
	s.lastSeen = at
	s.mu.Unlock()
}

// idleSince は最後の操作からの経過時間を返す。返答待ちのセッションは0
func (s *AssistantSession) idleSince(at time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending > 0 {
		return 0
	}
	return at.Sub(s.lastSeen)
}

func (s *AssistantSession) newMessage(sender model.MessageSender, text string) model.AssistantMessage {
	return model.AssistantMessage{
		ID:     uuid.New().String(),
		Sender: sender,
		Text:   text,
		SentAt: s.now(),
	}
}

// AssistantSessionStore はメモリ上でセッションを管理する
// ttlを超えて操作されていないセッションは破棄される（ttl <= 0 の場合は破棄しない）
type AssistantSessionStore struct {
	mu        sync.RWMutex
	sessions  map[string]*AssistantSession
	responder AssistantResponder
	ttl       time.Duration
	now       func() time.Time
}

// NewAssistantSessionStore は新しいAssistantSessionStoreを作成する
func NewAssistantSessionStore(responder AssistantResponder, ttl time.Duration) *AssistantSessionStore {
	return &AssistantSessionStore{
		sessions:  make(map[string]*AssistantSession),
		responder: responder,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Create は新しいセッションを作成して登録する
func (st *AssistantSessionStore) Create() *AssistantSession {
	session := newAssistantSession(st.responder, st.now)

	st.mu.Lock()
	st.sessions[session.ID()] = session
	st.mu.Unlock()

	return session
}

// Get はIDからセッションを取得し、最終操作時刻を更新する
// 期限切れのセッションはその場で破棄してErrSessionNotFoundを返す
func (st *AssistantSessionStore) Get(id string) (*AssistantSession, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := st.now()
	if st.expired(session, now) {
		delete(st.sessions, id)
		return nil, ErrSessionNotFound
	}
	session.touch(now)
	return session, nil
}

// Len は保持しているセッション数を返す
func (st *AssistantSessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// PurgeExpired は期限切れのセッションを破棄し、破棄した件数を返す
func (st *AssistantSessionStore) PurgeExpired() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	purged := 0
	for id, session := range st.sessions {
		if st.expired(session, now) {
			delete(st.sessions, id)
			purged++
		}
	}
	return purged
}

// Run はctxがキャンセルされるまで一定間隔で期限切れのセッションを破棄する
func (st *AssistantSessionStore) Run(ctx context.Context, interval time.Duration) {
	if st.ttl <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if purged := st.PurgeExpired(); purged > 0 {
				logging.Ctx(ctx).Info().Int("purged", purged).Dur("ttl", st.ttl).Msg("🧹 期限切れのセッションを破棄")
			}
		}
	}
}

func (st *AssistantSessionStore) expired(session *AssistantSession, now time.Time) bool {
	return st.ttl > 0 && session.idleSince(now) > st.ttl
}
