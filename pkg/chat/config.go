package chat

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ═══════════════════════════════════════════════════════════════════════════
// Provider 配置
// ═══════════════════════════════════════════════════════════════════════════

// 占位符凭证
//
// 示例配置文件中出现的字面量，等同于"未配置"，必须在调用适配器前被拒绝。
const (
	PlaceholderGeminiKey = "your_gemini_api_key_here"
	PlaceholderOpenAIKey = "your_openai_api_key_here"
)

// DefaultTimeout 默认请求超时时间
const DefaultTimeout = 120 * time.Second

// Config Provider 创建配置
//
// 凭证在构造时显式传入并通过 [Config.Validate] 一次性校验，
// 适配器内部不读取环境变量，也不会携带空 key 发起请求。
//
// 基本用法：
//
//	cfg := &chat.Config{
//	    Provider:  chat.ProviderTypeGemini,
//	    GeminiKey: "AIza...",
//	}
//	r, err := provider.New(cfg)
type Config struct {
	// Provider 类型（gemini / openai / mock）
	Provider ProviderType `mapstructure:"provider"`

	// GeminiKey Gemini API 凭证（以 URL 参数携带）
	GeminiKey string `mapstructure:"gemini-api-key"`

	// OpenAIKey OpenAI API 凭证（以 Bearer 头携带）
	OpenAIKey string `mapstructure:"openai-api-key"`

	// 可选字段（有默认值）
	BaseURL string `mapstructure:"base-url"`
	Model   string `mapstructure:"model"`

	// Timeout 请求超时时间，默认 120 秒
	Timeout time.Duration `mapstructure:"timeout"`
}

// Validate 校验配置
//
// 所选 Provider 的凭证缺失或为占位符时返回 [ConfigError]。
func (c *Config) Validate() error {
	if c == nil {
		return NewConfigError("config is required", nil)
	}
	if !c.Provider.Valid() {
		return NewConfigError(fmt.Sprintf("unsupported provider type: %q", c.Provider), nil)
	}

	switch c.Provider {
	case ProviderTypeGemini:
		if c.GeminiKey == "" || c.GeminiKey == PlaceholderGeminiKey {
			return NewConfigError("Gemini API key is not configured", nil)
		}
	case ProviderTypeOpenAI:
		if c.OpenAIKey == "" || c.OpenAIKey == PlaceholderOpenAIKey {
			return NewConfigError("OpenAI API key is not configured", nil)
		}
	case ProviderTypeMock:
		// Mock 不需要凭证
	}
	return nil
}

// APIKey 返回所选 Provider 的凭证
func (c *Config) APIKey() string {
	switch c.Provider {
	case ProviderTypeGemini:
		return c.GeminiKey
	case ProviderTypeOpenAI:
		return c.OpenAIKey
	default:
		return ""
	}
}

// Configured 判断某个 Provider 是否已配置可用凭证
func (c *Config) Configured(t ProviderType) bool {
	probe := *c
	probe.Provider = t
	return probe.Validate() == nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 环境变量加载
// ═══════════════════════════════════════════════════════════════════════════

// FromEnv 从环境变量加载配置
//
// 凭证按优先级读取：
//   - CHAT_GEMINI_API_KEY, GEMINI_API_KEY
//   - CHAT_OPENAI_API_KEY, OPENAI_API_KEY
//
// 可选覆盖：CHAT_BASE_URL、CHAT_MODEL、CHAT_TIMEOUT。
func FromEnv(t ProviderType) *Config {
	v := viper.New()
	_ = v.BindEnv("gemini-api-key", "CHAT_GEMINI_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("openai-api-key", "CHAT_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("base-url", "CHAT_BASE_URL")
	_ = v.BindEnv("model", "CHAT_MODEL")
	_ = v.BindEnv("timeout", "CHAT_TIMEOUT")
	v.SetDefault("timeout", DefaultTimeout)

	return &Config{
		Provider:  t,
		GeminiKey: v.GetString("gemini-api-key"),
		OpenAIKey: v.GetString("openai-api-key"),
		BaseURL:   v.GetString("base-url"),
		Model:     v.GetString("model"),
		Timeout:   v.GetDuration("timeout"),
	}
}
