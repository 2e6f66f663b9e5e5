package chat

// ═══════════════════════════════════════════════════════════════════════════
// 角色定义
// ═══════════════════════════════════════════════════════════════════════════

// Speaker 对话轮次的归属方
type Speaker string

const (
	SpeakerUser  Speaker = "user"
	SpeakerAgent Speaker = "agent"
)

// ═══════════════════════════════════════════════════════════════════════════
// 对话轮次
// ═══════════════════════════════════════════════════════════════════════════

// Turn 对话中的单条消息
//
// 追加到 [Transcript] 后不可变。顺序即时间顺序，是唯一的排序保证。
type Turn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// ═══════════════════════════════════════════════════════════════════════════
// 对话记录
// ═══════════════════════════════════════════════════════════════════════════

// Transcript 只追加的对话记录
//
// 由调用方持有，适配器只读。每条用户消息和每条回复各追加一轮，
// 会话重置时整体丢弃。
//
// Transcript 本身不做并发保护：一次用户操作对应一次逻辑调用，
// 串行化由上层（如 [pkg/chat/session]）负责。
type Transcript struct {
	turns []Turn
}

// NewTranscript 创建空的对话记录
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append 追加一轮对话
func (t *Transcript) Append(speaker Speaker, text string) {
	t.turns = append(t.turns, Turn{Speaker: speaker, Text: text})
}

// Snapshot 返回当前记录的副本
//
// 适配器基于快照构建请求体，不会反向修改记录。
func (t *Transcript) Snapshot() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len 返回已记录的轮次数
func (t *Transcript) Len() int {
	return len(t.turns)
}

// Reset 整体丢弃对话记录
func (t *Transcript) Reset() {
	t.turns = nil
}
