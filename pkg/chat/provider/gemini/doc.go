// Package gemini 实现 Google Gemini 对话 Provider
//
// 将调用方持有的对话记录映射为 generateContent 协议的 role/parts
// 轮次数组，并把响应规范化为单条回复文本。
//
// # 基础使用
//
//	client, err := gemini.New(&gemini.Config{
//	    APIKey: "your-api-key",
//	})
//
//	reply, err := client.Respond(ctx, history, "my wifi is down", firstTurn)
//
// # 角色映射
//
//   - chat.SpeakerUser  -> "user"
//   - chat.SpeakerAgent -> "model"
//
// # 首轮行为
//
// firstTurn 为 true 时，contents 恰好包含两条 "user" 轮次：
// 人设指令和本轮输入；映射后的历史被整体丢弃。正常会话流程中
// 首轮的历史本就为空，该行为只在直接调用适配器时可观测。
//
// # 认证
//
// API key 以 URL 查询参数（?key=...）携带，不放在请求头中。
package gemini
