// Package chat 提供技术支持对话的统一抽象层
//
// 本包定义了与托管 LLM 服务进行多轮对话所需的核心类型和接口，包括：
//   - [Responder]: 统一的对话调用抽象
//   - [Turn] / [Transcript]: 对话轮次与对话记录
//   - [Config]: 显式的凭证与网络配置
//   - 错误分类：配置 / 传输 / API / 响应解析
//
// # 核心类型
//
// [Responder] 接口定义了对话服务的调用契约：传入完整的历史快照和
// 新消息，返回规范化后的单条回复文本。适配器本身无状态，对话状态
// 完全由调用方持有。
//
// [Turn] 表示对话中的单条消息，归属于 [SpeakerUser] 或 [SpeakerAgent]。
//
// [Transcript] 是调用方持有的只追加对话记录，插入顺序即时间顺序。
//
// # 凭证配置
//
// [Config] 在构造时显式传入并一次性校验，适配器内部不读取环境变量。
// 占位符凭证（如 "your_gemini_api_key_here"）视为未配置，
// 返回 [ConfigError]（见 [Config.Validate]）。
//
// 环境变量加载（按优先级）：
//
// Gemini API Key:
//   - CHAT_GEMINI_API_KEY
//   - GEMINI_API_KEY
//
// OpenAI API Key:
//   - CHAT_OPENAI_API_KEY
//   - OPENAI_API_KEY
//
// # 协议实现
//
// 具体的 Provider 实现位于子包：
//   - [pkg/chat/provider/gemini]: Gemini generateContent 协议实现
//   - [pkg/chat/provider/openai]: OpenAI chat/completions 协议实现
//   - [pkg/chat/provider/mock]: 脚本化 Mock 实现（用于测试）
//
// # 与 session 包的关系
//
// 本包是底层协议抽象，[pkg/chat/session] 包在此基础上实现调用方策略
// （对话记录持有、错误入流、语音播报）。
//
// # 包文件组织
//
//   - types.go: Responder 接口、PersonaDirective
//   - turn.go: Speaker、Turn、Transcript
//   - errors.go: 错误分类
//   - provider_type.go: ProviderType 枚举
//   - config.go: Config、环境变量加载
package chat
