package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"TravelCompanion-App/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoResponder struct {
	history []model.AssistantMessage
}

func (r *echoResponder) Reply(ctx context.Context, history []model.AssistantMessage, text string) (string, error) {
	r.history = history
	return "echo: " + text, nil
}

type failingResponder struct{}

func (failingResponder) Reply(ctx context.Context, history []model.AssistantMessage, text string) (string, error) {
	return "", errors.New("upstream unavailable")
}

func TestAssistantSession_Transitions(t *testing.T) {
	session := NewAssistantSession(nil)

	snapshot := session.Snapshot()
	assert.Equal(t, model.AssistantCollapsed, snapshot.State)
	assert.False(t, snapshot.Typing)
	require.Len(t, snapshot.Messages, 1)
	assert.Equal(t, model.SenderBot, snapshot.Messages[0].Sender)
	assert.Equal(t, GreetingMessage, snapshot.Messages[0].Text)
	assert.Equal(t, session.ID(), snapshot.SessionID)

	assert.Equal(t, model.AssistantExpanded, session.Toggle().State)
	assert.Equal(t, model.AssistantCollapsed, session.Toggle().State)
	assert.Equal(t, model.AssistantExpanded, session.Expand().State)
	assert.Equal(t, model.AssistantExpanded, session.Expand().State)
	assert.Equal(t, model.AssistantCollapsed, session.Collapse().State)

	// 状態遷移はメッセージ履歴に影響しない
	assert.Len(t, session.Snapshot().Messages, 1)
}

func TestAssistantSession_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("既定では固定の返答", func(t *testing.T) {
		session := NewAssistantSession(StubResponder{})
		session.Expand()

		snapshot, err := session.Send(ctx, "Where should I eat?")
		require.NoError(t, err)
		require.Len(t, snapshot.Messages, 3)
		assert.Equal(t, model.SenderUser, snapshot.Messages[1].Sender)
		assert.Equal(t, "Where should I eat?", snapshot.Messages[1].Text)
		assert.Equal(t, model.SenderBot, snapshot.Messages[2].Sender)
		assert.Equal(t, StubReplyMessage, snapshot.Messages[2].Text)
		assert.False(t, snapshot.Typing)
	})

	t.Run("返答生成には履歴が渡される", func(t *testing.T) {
		responder := &echoResponder{}
		session := NewAssistantSession(responder)
		session.Expand()

		_, err := session.Send(ctx, "first")
		require.NoError(t, err)
		snapshot, err := session.Send(ctx, "second")
		require.NoError(t, err)

		require.Len(t, snapshot.Messages, 5)
		assert.Equal(t, "echo: second", snapshot.Messages[4].Text)
		require.Len(t, responder.history, 4)
		assert.Equal(t, "second", responder.history[3].Text)
	})

	t.Run("返答生成に失敗しても固定の返答で継続する", func(t *testing.T) {
		session := NewAssistantSession(failingResponder{})
		session.Expand()

		snapshot, err := session.Send(ctx, "hello")
		require.NoError(t, err)
		require.Len(t, snapshot.Messages, 3)
		assert.Equal(t, StubReplyMessage, snapshot.Messages[2].Text)
	})

	t.Run("空のメッセージ", func(t *testing.T) {
		session := NewAssistantSession(nil)
		session.Expand()

		snapshot, err := session.Send(ctx, "   ")
		assert.ErrorIs(t, err, ErrEmptyMessage)
		assert.Len(t, snapshot.Messages, 1)
	})

	t.Run("折りたたみ中は送信できない", func(t *testing.T) {
		session := NewAssistantSession(nil)

		snapshot, err := session.Send(ctx, "hello")
		assert.ErrorIs(t, err, ErrSessionCollapsed)
		assert.Len(t, snapshot.Messages, 1)
	})

	t.Run("スナップショットは内部状態と独立している", func(t *testing.T) {
		session := NewAssistantSession(nil)
		snapshot := session.Snapshot()
		snapshot.Messages[0].Text = "changed"
		assert.Equal(t, GreetingMessage, session.Snapshot().Messages[0].Text)
	})
}

func TestAssistantSessionStore(t *testing.T) {
	store := NewAssistantSessionStore(nil, DefaultSessionTTL)

	session := store.Create()
	got, err := store.Get(session.ID())
	require.NoError(t, err)
	assert.Same(t, session, got)

	other := store.Create()
	assert.NotEqual(t, session.ID(), other.ID())

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// fakeClock はテストから進められる時計
type fakeClock struct {
	mu      sync.Mutex
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.mu.Unlock()
}

func newStoreWithClock(ttl time.Duration) (*AssistantSessionStore, *fakeClock) {
	clock := &fakeClock{current: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)}
	store := NewAssistantSessionStore(StubResponder{}, ttl)
	store.now = clock.Now
	return store, clock
}

func TestAssistantSessionStore_Expiry(t *testing.T) {
	t.Run("期限切れのセッションは取得できず破棄される", func(t *testing.T) {
		store, clock := newStoreWithClock(30 * time.Minute)
		session := store.Create()

		clock.Advance(10 * 24 * time.Hour)

		_, err := store.Get(session.ID())
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("操作があればセッションは延長される", func(t *testing.T) {
		store, clock := newStoreWithClock(30 * time.Minute)
		session := store.Create()

		for i := 0; i < 4; i++ {
			clock.Advance(20 * time.Minute)
			_, err := store.Get(session.ID())
			require.NoError(t, err)
		}

		clock.Advance(20 * time.Minute)
		session.Expand()
		clock.Advance(20 * time.Minute)
		_, err := store.Get(session.ID())
		assert.NoError(t, err)
	})

	t.Run("PurgeExpiredは期限切れのみ破棄する", func(t *testing.T) {
		store, clock := newStoreWithClock(30 * time.Minute)
		old := store.Create()
		clock.Advance(25 * time.Minute)
		recent := store.Create()
		clock.Advance(10 * time.Minute)

		assert.Equal(t, 1, store.PurgeExpired())
		assert.Equal(t, 1, store.Len())

		_, err := store.Get(old.ID())
		assert.ErrorIs(t, err, ErrSessionNotFound)
		_, err = store.Get(recent.ID())
		assert.NoError(t, err)
	})

	t.Run("ttlが0の場合は破棄しない", func(t *testing.T) {
		store, clock := newStoreWithClock(0)
		session := store.Create()
		clock.Advance(365 * 24 * time.Hour)

		assert.Equal(t, 0, store.PurgeExpired())
		_, err := store.Get(session.ID())
		assert.NoError(t, err)
	})
}

func TestAssistantSessionStore_Run(t *testing.T) {
	store, clock := newStoreWithClock(time.Minute)
	for i := 0; i < 5; i++ {
		store.Create()
	}
	clock.Advance(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Runがキャンセル後に終了しない")
	}
}

func TestAssistantSession_MessageLimit(t *testing.T) {
	ctx := context.Background()
	session := NewAssistantSession(StubResponder{})
	session.Expand()

	exchanges := (MaxSessionMessages - 1) / 2
	for i := 0; i < exchanges; i++ {
		_, err := session.Send(ctx, "hello")
		require.NoError(t, err)
	}

	snapshot, err := session.Send(ctx, "one more")
	assert.ErrorIs(t, err, ErrMessageLimit)
	assert.Len(t, snapshot.Messages, 1+2*exchanges)
	assert.LessOrEqual(t, len(snapshot.Messages), MaxSessionMessages)
}
