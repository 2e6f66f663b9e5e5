// Package openai 实现 OpenAI 兼容的对话 Provider
//
// 将调用方持有的对话记录映射为扁平的 role/content 消息数组，
// 并把 chat/completions 响应规范化为单条回复文本。
//
// # 基础使用
//
//	client, err := openai.New(&openai.Config{
//	    APIKey: "sk-xxx",
//	})
//
//	reply, err := client.Respond(ctx, history, "it's slow", false)
//
// # 消息布局
//
// 每次调用的消息数组恒为：system 人设消息 + 历史 + 本轮用户输入。
// 与 gemini 包不同，人设消息无条件前置，不区分会话首轮。
//
// # 角色映射
//
//   - chat.SpeakerUser  -> "user"
//   - chat.SpeakerAgent -> "assistant"
package openai
