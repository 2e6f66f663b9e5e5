// Package provider 提供对话 Responder 的统一工厂
//
// 使用方式：
//
//	r, err := provider.New(&chat.Config{
//	    Provider:  chat.ProviderTypeGemini,
//	    GeminiKey: "AIza...",
//	})
//
//	// 脚本化 Mock（无需凭证）
//	r, err := provider.New(&chat.Config{Provider: chat.ProviderTypeMock})
package provider

import (
	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat"
	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat/provider/gemini"
	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat/provider/mock"
	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat/provider/openai"
)

// ═══════════════════════════════════════════════════════════════════════════
// 工厂函数
// ═══════════════════════════════════════════════════════════════════════════

// New 创建 Responder
//
// 配置在此处一次性校验（[chat.Config.Validate]）：凭证缺失或为
// 占位符时返回 [chat.ConfigError]，适配器不会携带空 key 发起请求。
func New(cfg *chat.Config) (chat.Responder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case chat.ProviderTypeGemini:
		return gemini.New(&gemini.Config{
			APIKey:  cfg.GeminiKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})

	case chat.ProviderTypeOpenAI:
		return openai.New(&openai.Config{
			APIKey:  cfg.OpenAIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})

	case chat.ProviderTypeMock:
		return mock.New(), nil

	default:
		// Validate 已拒绝未知类型，此分支不可达
		return nil, chat.NewConfigError("unsupported provider type: "+cfg.Provider.String(), nil)
	}
}
