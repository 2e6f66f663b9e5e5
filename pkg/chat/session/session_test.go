package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat"
	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat/provider/mock"
	"github.com/lwmacct/251221-go-pkg-chat/pkg/speech"
)

// ═══════════════════════════════════════════════════════════════════════════
// 正常流程测试
// ═══════════════════════════════════════════════════════════════════════════

func TestSession_Send(t *testing.T) {
	m := mock.New(mock.WithResponse("Is the router plugged in?"))
	sess := New(m)
	assert.NotEmpty(t, sess.ID())

	reply, err := sess.Send(context.Background(), "my wifi is down")

	require.NoError(t, err)
	assert.Equal(t, "Is the router plugged in?", reply)

	// 一次用户消息 + 一次回复，顺序保持
	turns := sess.Transcript()
	require.Len(t, turns, 2)
	assert.Equal(t, chat.Turn{Speaker: chat.SpeakerUser, Text: "my wifi is down"}, turns[0])
	assert.Equal(t, chat.Turn{Speaker: chat.SpeakerAgent, Text: "Is the router plugged in?"}, turns[1])
}

func TestSession_FirstTurnComputation(t *testing.T) {
	m := mock.New()
	sess := New(m)

	_, err := sess.Send(context.Background(), "first")
	require.NoError(t, err)
	_, err = sess.Send(context.Background(), "second")
	require.NoError(t, err)

	calls := m.Calls()
	require.Len(t, calls, 2)

	// 首轮：记录为空，历史快照为空
	assert.True(t, calls[0].FirstTurn)
	assert.Empty(t, calls[0].History)

	// 次轮：历史包含前两轮，不含本条消息
	assert.False(t, calls[1].FirstTurn)
	require.Len(t, calls[1].History, 2)
	assert.Equal(t, "first", calls[1].History[0].Text)
	assert.Equal(t, "second", calls[1].UserText)
}

func TestSession_Reset(t *testing.T) {
	m := mock.New()
	sess := New(m)

	_, err := sess.Send(context.Background(), "hi")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Transcript())

	require.NoError(t, sess.Reset())
	assert.Empty(t, sess.Transcript())

	// 重置后重新从首轮开始
	_, err = sess.Send(context.Background(), "again")
	require.NoError(t, err)
	calls := m.Calls()
	assert.True(t, calls[len(calls)-1].FirstTurn)
}

// ═══════════════════════════════════════════════════════════════════════════
// 错误入流测试
// ═══════════════════════════════════════════════════════════════════════════

func TestSession_ErrorBecomesAgentTurn(t *testing.T) {
	apiErr := chat.NewAPIError(500, "boom").WithProvider("gemini")
	m := mock.New(mock.WithError(apiErr))
	rec := &speech.Recorder{}
	sess := New(m, WithSpeaker(rec), WithVoice(true))

	reply, err := sess.Send(context.Background(), "my wifi is down")

	// 原错误返回给调用方
	require.Error(t, err)
	assert.True(t, chat.IsAPIError(err))
	assert.Empty(t, reply)

	// 错误以 "Error: ..." 客服轮次入流
	turns := sess.Transcript()
	require.Len(t, turns, 2)
	assert.Equal(t, chat.SpeakerAgent, turns[1].Speaker)
	assert.Equal(t, "Error: "+apiErr.Error(), turns[1].Text)

	// 错误文本照常播报
	require.Eventually(t, func() bool {
		return len(rec.Texts()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "Error: "+apiErr.Error(), rec.Texts()[0])
}

func TestSession_ErrorTurnStaysInHistory(t *testing.T) {
	boom := errors.New("boom")
	m := mock.New(mock.WithError(boom))
	sess := New(m)

	_, _ = sess.Send(context.Background(), "hi")

	// 错误轮次参与后续调用的历史
	m2 := mock.New()
	require.NoError(t, sess.SetResponder(m2))
	_, err := sess.Send(context.Background(), "try again")
	require.NoError(t, err)

	calls := m2.Calls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0].History, 2)
	assert.Equal(t, "Error: boom", calls[0].History[1].Text)
	assert.False(t, calls[0].FirstTurn)
}

// ═══════════════════════════════════════════════════════════════════════════
// 在途调用测试
// ═══════════════════════════════════════════════════════════════════════════

func TestSession_BusyWhilePending(t *testing.T) {
	m := mock.New(mock.WithDelay(200 * time.Millisecond))
	sess := New(m)

	done := make(chan error, 1)
	go func() {
		_, err := sess.Send(context.Background(), "slow one")
		done <- err
	}()

	// 等待调用进入在途状态
	require.Eventually(t, sess.Pending, time.Second, 5*time.Millisecond)

	_, err := sess.Send(context.Background(), "too eager")
	assert.ErrorIs(t, err, ErrBusy)
	assert.ErrorIs(t, sess.Reset(), ErrBusy)
	assert.ErrorIs(t, sess.SetResponder(mock.New()), ErrBusy)

	require.NoError(t, <-done)
	assert.False(t, sess.Pending())

	// 被拒绝的消息没有进入记录
	turns := sess.Transcript()
	require.Len(t, turns, 2)
	assert.Equal(t, "slow one", turns[0].Text)
}

// ═══════════════════════════════════════════════════════════════════════════
// 语音开关测试
// ═══════════════════════════════════════════════════════════════════════════

func TestSession_VoiceToggle(t *testing.T) {
	rec := &speech.Recorder{}
	m := mock.New(mock.WithResponse("ok"))
	sess := New(m, WithSpeaker(rec))

	// 默认关闭：不播报
	_, err := sess.Send(context.Background(), "hi")
	require.NoError(t, err)
	assert.Empty(t, rec.Texts())
	assert.False(t, sess.Voice())

	sess.SetVoice(true)
	assert.True(t, sess.Voice())

	_, err = sess.Send(context.Background(), "hi again")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return len(rec.Texts()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "ok", rec.Texts()[0])
}
