package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ═══════════════════════════════════════════════════════════════════════════
// Validate 测试
// ═══════════════════════════════════════════════════════════════════════════

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: true,
		},
		{
			name:    "unknown provider",
			config:  &Config{Provider: "bard"},
			wantErr: true,
		},
		{
			name:    "gemini missing key",
			config:  &Config{Provider: ProviderTypeGemini},
			wantErr: true,
		},
		{
			name:    "gemini placeholder key",
			config:  &Config{Provider: ProviderTypeGemini, GeminiKey: PlaceholderGeminiKey},
			wantErr: true,
		},
		{
			name:    "gemini valid",
			config:  &Config{Provider: ProviderTypeGemini, GeminiKey: "AIza-test"},
			wantErr: false,
		},
		{
			name:    "openai missing key",
			config:  &Config{Provider: ProviderTypeOpenAI, GeminiKey: "AIza-test"},
			wantErr: true,
		},
		{
			name:    "openai placeholder key",
			config:  &Config{Provider: ProviderTypeOpenAI, OpenAIKey: PlaceholderOpenAIKey},
			wantErr: true,
		},
		{
			name:    "openai valid",
			config:  &Config{Provider: ProviderTypeOpenAI, OpenAIKey: "sk-test"},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			config:  &Config{Provider: ProviderTypeMock},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err), "expected ConfigError, got %T", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_APIKey(t *testing.T) {
	cfg := &Config{
		GeminiKey: "AIza-test",
		OpenAIKey: "sk-test",
	}

	cfg.Provider = ProviderTypeGemini
	assert.Equal(t, "AIza-test", cfg.APIKey())

	cfg.Provider = ProviderTypeOpenAI
	assert.Equal(t, "sk-test", cfg.APIKey())

	cfg.Provider = ProviderTypeMock
	assert.Equal(t, "", cfg.APIKey())
}

func TestConfig_Configured(t *testing.T) {
	cfg := &Config{
		Provider:  ProviderTypeGemini,
		GeminiKey: "AIza-test",
		OpenAIKey: PlaceholderOpenAIKey,
	}

	assert.True(t, cfg.Configured(ProviderTypeGemini))
	assert.False(t, cfg.Configured(ProviderTypeOpenAI))
	assert.True(t, cfg.Configured(ProviderTypeMock))
	// Configured 是探测，不改变自身的 Provider
	assert.Equal(t, ProviderTypeGemini, cfg.Provider)
}

// ═══════════════════════════════════════════════════════════════════════════
// FromEnv 测试
// ═══════════════════════════════════════════════════════════════════════════

func TestFromEnv(t *testing.T) {
	t.Run("读取凭证与覆盖项", func(t *testing.T) {
		t.Setenv("CHAT_GEMINI_API_KEY", "AIza-env")
		t.Setenv("OPENAI_API_KEY", "sk-env")
		t.Setenv("CHAT_MODEL", "gemini-1.5-pro")

		cfg := FromEnv(ProviderTypeGemini)

		assert.Equal(t, ProviderTypeGemini, cfg.Provider)
		assert.Equal(t, "AIza-env", cfg.GeminiKey)
		assert.Equal(t, "sk-env", cfg.OpenAIKey)
		assert.Equal(t, "gemini-1.5-pro", cfg.Model)
		assert.Equal(t, DefaultTimeout, cfg.Timeout)
	})

	t.Run("带前缀的变量优先", func(t *testing.T) {
		t.Setenv("CHAT_OPENAI_API_KEY", "sk-prefixed")
		t.Setenv("OPENAI_API_KEY", "sk-plain")

		cfg := FromEnv(ProviderTypeOpenAI)
		assert.Equal(t, "sk-prefixed", cfg.OpenAIKey)
	})

	t.Run("超时覆盖", func(t *testing.T) {
		t.Setenv("CHAT_TIMEOUT", "30s")

		cfg := FromEnv(ProviderTypeOpenAI)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})
}

// ═══════════════════════════════════════════════════════════════════════════
// ProviderType 测试
// ═══════════════════════════════════════════════════════════════════════════

func TestProviderType(t *testing.T) {
	assert.True(t, ProviderTypeGemini.Valid())
	assert.True(t, ProviderTypeOpenAI.Valid())
	assert.True(t, ProviderTypeMock.Valid())
	assert.False(t, ProviderType("bard").Valid())

	assert.Contains(t, ProviderTypeGemini.DefaultBaseURL(), "generativelanguage.googleapis.com")
	assert.Contains(t, ProviderTypeOpenAI.DefaultBaseURL(), "api.openai.com")
	assert.Equal(t, "", ProviderTypeMock.DefaultBaseURL())

	assert.Equal(t, "gpt-3.5-turbo", ProviderTypeOpenAI.DefaultModel())
	assert.Equal(t, "gemini-1.5-flash", ProviderTypeGemini.DefaultModel())
}
