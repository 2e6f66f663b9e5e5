package core

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat"
)

// ═══════════════════════════════════════════════════════════════════════════
// HTTPClient 基础客户端
// ═══════════════════════════════════════════════════════════════════════════

// HTTPClient 基础 HTTP 客户端
//
// 封装两个适配器共用的请求发送与错误映射逻辑：
//   - 传输层失败 → [chat.HTTPError]
//   - 非 2xx 状态码 → [chat.APIError]（不再按成功形状解析响应体）
//   - 2xx → 返回原始响应字节，由适配器做严格的类型化解码
//
// 单次调用只发出一个请求，不做重试、不做请求合并；取消和超时
// 通过 ctx 与配置的 Timeout 传递给底层传输。
type HTTPClient struct {
	resty    *resty.Client
	provider string
}

// New 创建基础客户端
//
// provider 仅用于错误标注。timeout 为 0 时使用 [chat.DefaultTimeout]。
func New(baseURL, provider string, timeout time.Duration, headers map[string]string) *HTTPClient {
	if timeout == 0 {
		timeout = chat.DefaultTimeout
	}

	r := resty.New()
	r.SetBaseURL(baseURL)
	r.SetTimeout(timeout)
	r.SetHeader("Content-Type", "application/json")
	for k, v := range headers {
		r.SetHeader(k, v)
	}

	return &HTTPClient{
		resty:    r,
		provider: provider,
	}
}

// PostJSON 发送 JSON POST 请求
//
// body 由 resty 序列化为 JSON。成功时返回原始响应体字节。
func (c *HTTPClient) PostJSON(ctx context.Context, endpoint string, body any) ([]byte, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetBody(body).
		Post(endpoint)
	if err != nil {
		return nil, chat.NewHTTPError("request failed", err)
	}

	if !resp.IsSuccess() {
		return nil, chat.NewAPIError(resp.StatusCode(), resp.String()).
			WithProvider(c.provider)
	}

	return resp.Body(), nil
}
