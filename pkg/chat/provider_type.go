package chat

// ProviderType 对话 Provider 类型
type ProviderType string

const (
	// ProviderTypeGemini Google generative-language API
	ProviderTypeGemini ProviderType = "gemini"

	// ProviderTypeOpenAI OpenAI 兼容的 chat/completions API
	ProviderTypeOpenAI ProviderType = "openai"

	// ProviderTypeMock 脚本化 Mock（测试用）
	ProviderTypeMock ProviderType = "mock"
)

// String 返回字符串表示
func (t ProviderType) String() string {
	return string(t)
}

// Valid 判断是否为受支持的 Provider 类型
func (t ProviderType) Valid() bool {
	switch t {
	case ProviderTypeGemini, ProviderTypeOpenAI, ProviderTypeMock:
		return true
	default:
		return false
	}
}

// DefaultBaseURL 返回默认 Base URL
func (t ProviderType) DefaultBaseURL() string {
	switch t {
	case ProviderTypeGemini:
		return "https://generativelanguage.googleapis.com/v1beta"
	case ProviderTypeOpenAI:
		return "https://api.openai.com/v1"
	default:
		return ""
	}
}

// DefaultModel 返回默认模型
func (t ProviderType) DefaultModel() string {
	switch t {
	case ProviderTypeGemini:
		return "gemini-1.5-flash"
	case ProviderTypeOpenAI:
		return "gpt-3.5-turbo"
	default:
		return ""
	}
}
