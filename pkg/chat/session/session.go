package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat"
	"github.com/lwmacct/251221-go-pkg-chat/pkg/speech"
)

// ErrBusy 上一次调用尚未完成
//
// 同一会话同时只允许一次在途调用；调用方应在调用期间禁用输入，
// 而不是并发发送。
var ErrBusy = errors.New("session: a call is already in flight")

// ═══════════════════════════════════════════════════════════════════════════
// 会话
// ═══════════════════════════════════════════════════════════════════════════

// Session 对话会话
//
// 持有对话记录和调用方策略要求的全部显式状态：
//   - 在途调用标记（输入禁用的依据，不允许并发 Send）
//   - 语音开关
//   - 当前使用的 Responder
//
// 错误入流：Responder 返回的任何错误都会转换为一条 "Error: ..." 的
// 客服轮次追加到记录中，并照常触发语音播报。错误通过聊天消息呈现，
// 不走独立的错误通道。
type Session struct {
	mu         sync.Mutex
	id         string
	responder  chat.Responder
	transcript *chat.Transcript
	speaker    speech.Speaker
	voice      bool
	pending    bool
}

// Option 配置函数
type Option func(*Session)

// WithSpeaker 设置语音播报器
func WithSpeaker(s speech.Speaker) Option {
	return func(sess *Session) { sess.speaker = s }
}

// WithVoice 设置语音开关的初始状态
func WithVoice(on bool) Option {
	return func(sess *Session) { sess.voice = on }
}

// New 创建会话
//
// responder 决定本会话使用哪个 Provider；运行中可通过
// [Session.SetResponder] 切换。
func New(responder chat.Responder, opts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		responder:  responder,
		transcript: chat.NewTranscript(),
		speaker:    speech.Noop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID 返回会话标识
func (s *Session) ID() string {
	return s.id
}

// ═══════════════════════════════════════════════════════════════════════════
// 消息发送
// ═══════════════════════════════════════════════════════════════════════════

// Send 发送一条用户消息并等待回复
//
// 流程：
//  1. 已有在途调用时返回 [ErrBusy]，不改动记录
//  2. 取记录快照（不含本条消息），据此判定是否为会话首轮
//  3. 追加用户轮次，调用 Responder
//  4. 成功：追加客服轮次并播报，返回回复文本
//  5. 失败：追加 "Error: ..." 客服轮次并照常播报，返回原错误
//
// 挂起只发生在 Responder 的网络调用边界；取消通过 ctx 传递。
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return "", ErrBusy
	}
	s.pending = true

	history := s.transcript.Snapshot()
	firstTurn := len(history) == 0
	s.transcript.Append(chat.SpeakerUser, text)
	responder := s.responder
	s.mu.Unlock()

	reply, err := responder.Respond(ctx, history, text, firstTurn)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false

	if err != nil {
		msg := "Error: " + err.Error()
		s.transcript.Append(chat.SpeakerAgent, msg)
		s.speak(msg)
		return "", err
	}

	s.transcript.Append(chat.SpeakerAgent, reply)
	s.speak(reply)
	return reply, nil
}

// speak 按语音开关播报文本（fire-and-forget）
//
// 调用方持有 s.mu。播报失败只能丢弃：没有可以回传的通道。
func (s *Session) speak(text string) {
	if !s.voice || s.speaker == nil {
		return
	}
	sp := s.speaker
	go func() { _ = sp.Speak(context.Background(), text) }()
}

// ═══════════════════════════════════════════════════════════════════════════
// 状态访问与控制
// ═══════════════════════════════════════════════════════════════════════════

// Pending 返回是否有在途调用
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Transcript 返回当前对话记录的快照
func (s *Session) Transcript() []chat.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.Snapshot()
}

// Reset 整体丢弃对话记录
//
// 在途调用期间拒绝重置，返回 [ErrBusy]。
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return ErrBusy
	}
	s.transcript.Reset()
	return nil
}

// SetResponder 切换 Provider
//
// 在途调用期间拒绝切换，返回 [ErrBusy]。
func (s *Session) SetResponder(r chat.Responder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return ErrBusy
	}
	s.responder = r
	return nil
}

// SetVoice 设置语音开关
func (s *Session) SetVoice(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voice = on
}

// Voice 返回语音开关状态
func (s *Session) Voice() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voice
}
