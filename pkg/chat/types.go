package chat

import "context"

// ═══════════════════════════════════════════════════════════════════════════
// Responder 接口
// ═══════════════════════════════════════════════════════════════════════════

// Responder 对话响应器接口
//
// 两个适配器（gemini、openai）实现同一契约：传入历史快照与新消息，
// 返回规范化后的回复文本。每次调用相互独立，适配器不在调用间保留
// 任何状态。
type Responder interface {
	// Respond 发送一轮对话并等待完整回复
	//
	// history 为调用前的对话快照（不含 userText），userText 为本轮
	// 用户输入。firstTurn 标记会话首轮，仅 Gemini 适配器使用，
	// OpenAI 适配器忽略该参数。
	//
	// 失败时返回 [ConfigError]、[HTTPError]、[APIError] 或
	// [ResponseError] 之一，均为终态，不做重试。
	Respond(ctx context.Context, history []Turn, userText string, firstTurn bool) (string, error)

	// Close 关闭连接
	Close() error
}

// ═══════════════════════════════════════════════════════════════════════════
// 人设指令
// ═══════════════════════════════════════════════════════════════════════════

// PersonaDirective 固定的人设指令
//
// 不存储在 [Transcript] 中，由适配器按各自协议注入：
// Gemini 仅在会话首轮注入，OpenAI 每次调用都前置一条 system 消息。
const PersonaDirective = "You are a friendly and patient technical support agent. " +
	"Help the user troubleshoot their problem step by step, " +
	"ask clarifying questions when needed, and keep answers short and practical."
