// Package session 实现对话会话的调用方策略
//
// [pkg/chat] 的适配器是无状态的纯转换层；本包在其上持有对话记录，
// 并落实界面层需要的全部策略：
//
//   - 在途调用标记：同一会话同时只允许一次调用（[ErrBusy]）
//   - 首轮判定：记录为空时向适配器传递 firstTurn=true
//   - 错误入流：失败转换为 "Error: ..." 客服轮次，照常播报
//   - 语音播报：fire-and-forget，由开关控制
//   - 整体重置：[Session.Reset] 丢弃全部记录
//
// # 使用示例
//
//	r, _ := provider.New(chat.FromEnv(chat.ProviderTypeGemini))
//	sess := session.New(r,
//	    session.WithSpeaker(speech.Default()),
//	    session.WithVoice(true),
//	)
//
//	reply, err := sess.Send(ctx, "my wifi is down")
package session
