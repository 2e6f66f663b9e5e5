package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat"
	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat/core"
)

// ═══════════════════════════════════════════════════════════════════════════
// 常量定义
// ═══════════════════════════════════════════════════════════════════════════

const (
	// DefaultBaseURL Gemini API 默认地址
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel 默认模型
	DefaultModel = "gemini-1.5-flash"
)

// 生成参数（固定值）
const (
	temperature     = 0.7
	topK            = 40
	topP            = 0.95
	maxOutputTokens = 500
)

// ═══════════════════════════════════════════════════════════════════════════
// 配置和客户端
// ═══════════════════════════════════════════════════════════════════════════

// Config 客户端配置
type Config struct {
	// APIKey Gemini API 密钥（必需，以 URL 参数携带）
	APIKey string

	// BaseURL API 基础地址，默认 https://generativelanguage.googleapis.com/v1beta
	BaseURL string

	// Model 模型名称，默认 gemini-1.5-flash
	Model string

	// Timeout 请求超时时间，默认 120 秒
	Timeout time.Duration

	// Headers 额外的请求头
	Headers map[string]string
}

// Client Gemini 对话客户端
//
// 实现 [chat.Responder] 接口。将内部对话记录映射为 generateContent
// 协议的 contents 数组，并将响应规范化为单条回复文本。
type Client struct {
	config *Config
	http   *core.HTTPClient
}

// New 创建新的 Gemini 客户端
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

	return &Client{
		config: &finalConfig,
		http:   core.New(finalConfig.BaseURL, "gemini", finalConfig.Timeout, finalConfig.Headers),
	}, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Responder 接口实现
// ═══════════════════════════════════════════════════════════════════════════

// Respond 发送一轮对话并等待完整回复
//
// 实现 [chat.Responder] 接口。
func (c *Client) Respond(ctx context.Context, history []chat.Turn, userText string, firstTurn bool) (string, error) {
	body := c.buildRequest(history, userText, firstTurn)

	endpoint := fmt.Sprintf("/models/%s:generateContent?key=%s", c.config.Model, c.config.APIKey)

	raw, err := c.http.PostJSON(ctx, endpoint, body)
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

// buildRequest 构建 generateContent 请求体
//
// 角色映射：SpeakerUser -> "user"，SpeakerAgent -> "model"；
// 文本包装为单元素 parts 列表。
//
// 首轮调用时 contents 被整体替换为恰好两条 "user" 轮次
// （人设指令 + 本轮输入），映射后的历史被丢弃。正常调用路径下
// 首轮的历史本就为空，该行为只在直接调用适配器时可观测。
func (c *Client) buildRequest(history []chat.Turn, userText string, firstTurn bool) request {
	var contents []content

	if firstTurn {
		contents = []content{
			{Role: "user", Parts: []part{{Text: chat.PersonaDirective}}},
			{Role: "user", Parts: []part{{Text: userText}}},
		}
	} else {
		contents = make([]content, 0, len(history)+1)
		for _, turn := range history {
			role := "user"
			if turn.Speaker == chat.SpeakerAgent {
				role = "model"
			}
			contents = append(contents, content{
				Role:  role,
				Parts: []part{{Text: turn.Text}},
			})
		}
		contents = append(contents, content{
			Role:  "user",
			Parts: []part{{Text: userText}},
		})
	}

	return request{
		Contents: contents,
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			TopK:            topK,
			TopP:            topP,
			MaxOutputTokens: maxOutputTokens,
		},
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 响应解析
// ═══════════════════════════════════════════════════════════════════════════

// parseResponse 严格解析 generateContent 响应
//
// 预期形状 candidates[0].content.parts[0].text；任一环节缺失或文本为空
// 都返回 [chat.ResponseError]。命中的文本原样返回，不做裁剪。
func parseResponse(raw []byte) (string, error) {
	var resp response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", chat.NewResponseError("candidates", err)
	}

	if len(resp.Candidates) == 0 {
		return "", chat.NewResponseError("candidates", nil)
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", chat.NewResponseError("candidates[0].content.parts", nil)
	}
	text := parts[0].Text
	if text == "" {
		return "", chat.NewResponseError("candidates[0].content.parts[0].text", nil)
	}

	return text, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 协议类型
// ═══════════════════════════════════════════════════════════════════════════

// request generateContent 请求体
type request struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

// content contents 数组中的一条轮次
type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

// part 轮次中的单个内容片段
type part struct {
	Text string `json:"text"`
}

// generationConfig 生成参数
type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// response generateContent 响应体
type response struct {
	Candidates []candidate `json:"candidates"`
}

// candidate 单个生成候选
type candidate struct {
	Content content `json:"content"`
}

// 确保 Client 实现了 Responder 接口
var _ chat.Responder = (*Client)(nil)
