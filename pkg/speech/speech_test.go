package speech

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ═══════════════════════════════════════════════════════════════════════════
// CommandSpeaker 测试
// ═══════════════════════════════════════════════════════════════════════════

func TestCommandSpeaker_Argv(t *testing.T) {
	s := NewCommandSpeaker("espeak", "-s", "150")

	assert.Equal(t, []string{"espeak", "-s", "150", "hello world"}, s.Argv("hello world"))
}

func TestCommandSpeaker_EmptyTextIsNoop(t *testing.T) {
	// 空文本不执行任何命令（命令不存在也不会失败）
	s := NewCommandSpeaker("definitely-not-a-real-tts-binary")

	assert.NoError(t, s.Speak(context.Background(), ""))
}

func TestCommandSpeaker_MissingBinary(t *testing.T) {
	s := NewCommandSpeaker("definitely-not-a-real-tts-binary")

	err := s.Speak(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definitely-not-a-real-tts-binary")
}

func TestDefault(t *testing.T) {
	s := Default()
	require.NotNil(t, s)
	// 朗读文本始终是最后一个参数
	argv := s.Argv("hi")
	assert.Equal(t, "hi", argv[len(argv)-1])
}

// ═══════════════════════════════════════════════════════════════════════════
// 测试辅助类型
// ═══════════════════════════════════════════════════════════════════════════

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop{}.Speak(context.Background(), "anything"))
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}

	require.NoError(t, r.Speak(context.Background(), "one"))
	require.NoError(t, r.Speak(context.Background(), "two"))

	texts := r.Texts()
	require.Len(t, texts, 2)
	assert.Equal(t, []string{"one", "two"}, texts)

	// 返回的是副本
	texts[0] = "mutated"
	assert.Equal(t, "one", r.Texts()[0])
}
