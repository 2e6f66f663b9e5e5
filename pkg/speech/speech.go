package speech

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"sync"
)

// ═══════════════════════════════════════════════════════════════════════════
// Speaker 接口
// ═══════════════════════════════════════════════════════════════════════════

// Speaker 语音播报接口
type Speaker interface {
	// Speak 朗读一段文本
	//
	// 同步阻塞到播报完成；fire-and-forget 由调用方自行封装。
	Speak(ctx context.Context, text string) error
}

// ═══════════════════════════════════════════════════════════════════════════
// 平台 TTS
// ═══════════════════════════════════════════════════════════════════════════

// CommandSpeaker 通过平台 TTS 命令播报
//
// 朗读文本作为最后一个参数追加到 argv。
type CommandSpeaker struct {
	name string
	args []string
}

// NewCommandSpeaker 创建命令行播报器
//
//	speech.NewCommandSpeaker("espeak", "-s", "150")
func NewCommandSpeaker(name string, args ...string) *CommandSpeaker {
	return &CommandSpeaker{name: name, args: args}
}

// Default 返回当前平台的默认播报器
//
//   - darwin: say
//   - 其他: espeak
func Default() *CommandSpeaker {
	if runtime.GOOS == "darwin" {
		return NewCommandSpeaker("say")
	}
	return NewCommandSpeaker("espeak")
}

// Speak 实现 [Speaker] 接口
func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	argv := make([]string, 0, len(s.args)+1)
	argv = append(argv, s.args...)
	argv = append(argv, text)

	cmd := exec.CommandContext(ctx, s.name, argv...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("speech: %s failed: %w", s.name, err)
	}
	return nil
}

// Argv 返回将要执行的完整命令行（用于测试与诊断）
func (s *CommandSpeaker) Argv(text string) []string {
	argv := make([]string, 0, len(s.args)+2)
	argv = append(argv, s.name)
	argv = append(argv, s.args...)
	argv = append(argv, text)
	return argv
}

// ═══════════════════════════════════════════════════════════════════════════
// 测试辅助
// ═══════════════════════════════════════════════════════════════════════════

// Noop 空播报器（语音关闭时使用）
type Noop struct{}

// Speak 实现 [Speaker] 接口，不做任何事
func (Noop) Speak(context.Context, string) error { return nil }

// Recorder 记录型播报器（测试用）
type Recorder struct {
	mu    sync.Mutex
	texts []string
}

// Speak 实现 [Speaker] 接口，记录文本
func (r *Recorder) Speak(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
	return nil
}

// Texts 返回已记录文本的副本
func (r *Recorder) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.texts))
	copy(out, r.texts)
	return out
}
