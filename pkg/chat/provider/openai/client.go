package openai

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat"
	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat/core"
)

// ═══════════════════════════════════════════════════════════════════════════
// 常量定义
// ═══════════════════════════════════════════════════════════════════════════

const (
	// DefaultBaseURL OpenAI API 默认地址
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel 默认模型
	DefaultModel = "gpt-3.5-turbo"
)

// 生成参数（固定值）
const (
	temperature = 0.7
	maxTokens   = 500
)

// ═══════════════════════════════════════════════════════════════════════════
// 配置和客户端
// ═══════════════════════════════════════════════════════════════════════════

// Config 客户端配置
type Config struct {
	// APIKey API 密钥（必需，以 Bearer 头携带）
	APIKey string

	// BaseURL API 基础地址，默认 https://api.openai.com/v1
	BaseURL string

	// Model 模型名称，默认 gpt-3.5-turbo
	Model string

	// Timeout 请求超时时间，默认 120 秒
	Timeout time.Duration

	// Headers 额外的请求头
	Headers map[string]string
}

// Client OpenAI 兼容的对话客户端
//
// 实现 [chat.Responder] 接口。将对话记录映射为扁平的 role/content
// 消息数组，每次调用都前置一条 system 人设消息。
type Client struct {
	config *Config
	http   *core.HTTPClient
}

// New 创建新的 OpenAI 客户端
//
// 参数 config 必须包含 APIKey。
func New(config *Config) (*Client, error) {
	if config == nil {
		return nil, chat.NewConfigError("config is required", nil)
	}
	if config.APIKey == "" {
		return nil, chat.NewConfigError("API key is required", nil)
	}

	// 保存处理后的配置（应用默认值）
	finalConfig := *config
	if finalConfig.BaseURL == "" {
		finalConfig.BaseURL = DefaultBaseURL
	}
	if finalConfig.Model == "" {
		finalConfig.Model = DefaultModel
	}

	// 构建请求头
	headers := map[string]string{
		"Authorization": "Bearer " + finalConfig.APIKey,
	}
	for k, v := range finalConfig.Headers {
		headers[k] = v
	}

	return &Client{
		config: &finalConfig,
		http:   core.New(finalConfig.BaseURL, "openai", finalConfig.Timeout, headers),
	}, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Responder 接口实现
// ═══════════════════════════════════════════════════════════════════════════

// Respond 发送一轮对话并等待完整回复
//
// 实现 [chat.Responder] 接口。人设消息在每次调用中无条件前置，
// firstTurn 参数被忽略。
func (c *Client) Respond(ctx context.Context, history []chat.Turn, userText string, _ bool) (string, error) {
	body := c.buildRequest(history, userText)

	raw, err := c.http.PostJSON(ctx, "/chat/completions", body)
	if err != nil {
		return "", err
	}

	return parseResponse(raw)
}

// Close 关闭客户端
//
// 实现 [chat.Responder] 接口。当前实现为空操作。
func (c *Client) Close() error {
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 请求构建
// ═══════════════════════════════════════════════════════════════════════════

// buildRequest 构建 chat/completions 请求体
//
// 消息布局：system 人设消息 + 映射后的历史 + 本轮用户输入，
// 总长度恒为 len(history)+2。
// 角色映射：SpeakerAgent -> "assistant"，SpeakerUser -> "user"。
func (c *Client) buildRequest(history []chat.Turn, userText string) request {
	messages := make([]message, 0, len(history)+2)

	messages = append(messages, message{
		Role:    "system",
		Content: chat.PersonaDirective,
	})

	for _, turn := range history {
		role := "user"
		if turn.Speaker == chat.SpeakerAgent {
			role = "assistant"
		}
		messages = append(messages, message{
			Role:    role,
			Content: turn.Text,
		})
	}

	messages = append(messages, message{
		Role:    "user",
		Content: userText,
	})

	return request{
		Model:       c.config.Model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 响应解析
// ═══════════════════════════════════════════════════════════════════════════

// parseResponse 严格解析 chat/completions 响应
//
// 预期形状 choices[0].message.content；缺失或为空返回
// [chat.ResponseError]。命中的文本原样返回，不做裁剪。
func parseResponse(raw []byte) (string, error) {
	var resp response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", chat.NewResponseError("choices", err)
	}

	if len(resp.Choices) == 0 {
		return "", chat.NewResponseError("choices", nil)
	}
	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", chat.NewResponseError("choices[0].message.content", nil)
	}

	return text, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 协议类型
// ═══════════════════════════════════════════════════════════════════════════

// request chat/completions 请求体
type request struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// message 扁平的 role/content 消息
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// response chat/completions 响应体
type response struct {
	Choices []choice `json:"choices"`
}

// choice 单个生成候选
type choice struct {
	Message message `json:"message"`
}

// 确保 Client 实现了 Responder 接口
var _ chat.Responder = (*Client)(nil)
