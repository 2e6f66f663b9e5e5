// Package speech 提供对话回复的语音播报能力
//
// [Speaker] 是播报抽象；[CommandSpeaker] 通过平台 TTS 命令
// （darwin 上为 say，其余平台为 espeak）实现，[Noop] 和 [Recorder]
// 分别用于语音关闭和测试场景。
//
// 播报是调用方在拿到回复（或错误消息）之后触发的附带动作，
// 失败不影响对话流程。
package speech
