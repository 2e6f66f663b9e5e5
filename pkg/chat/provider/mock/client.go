package mock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat"
)

// ═══════════════════════════════════════════════════════════════════════════
// 调用记录
// ═══════════════════════════════════════════════════════════════════════════

// CallRecord 记录一次调用的详情
type CallRecord struct {
	History   []chat.Turn
	UserText  string
	FirstTurn bool
	Time      time.Time
}

// ═══════════════════════════════════════════════════════════════════════════
// Mock 客户端
// ═══════════════════════════════════════════════════════════════════════════

// Client 脚本化的 Mock Responder
//
// 实现 [chat.Responder] 接口，用于测试和离线开发场景，
// 无需真实的 API 凭证即可验证调用方策略。
type Client struct {
	mu       sync.RWMutex
	response string        // 默认响应
	delay    time.Duration // 响应延迟
	err      error         // 返回错误
	calls    []CallRecord  // 调用记录
	counter  int           // 调用计数

	scenario    *Scenario // 当前场景
	scenarioIdx int       // 场景内的轮次索引
	config      *Config
}

// Option 配置函数
type Option func(*Client)

// WithResponse 设置默认响应文本
func WithResponse(text string) Option {
	return func(c *Client) { c.response = text }
}

// WithDelay 设置响应延迟
func WithDelay(d time.Duration) Option {
	return func(c *Client) { c.delay = d }
}

// WithError 设置模拟错误
//
// 设置后每次 Respond 都返回该错误，用于验证调用方的错误入流策略。
func WithError(err error) Option {
	return func(c *Client) { c.err = err }
}

// WithConfig 使用已加载的配置
func WithConfig(cfg *Config) Option {
	return func(c *Client) { c.applyConfig(cfg) }
}

// New 创建 Mock Client
//
// 使用示例：
//
//	client := mock.New()                                  // 默认响应
//	client := mock.New(mock.WithDelay(100 * time.Millisecond))
//	client := mock.New(mock.WithError(errors.New("boom")))
func New(opts ...Option) *Client {
	c := &Client{
		response: "This is a mock response.",
		calls:    make([]CallRecord, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromFile 从 YAML 配置文件创建 Mock Client
func NewFromFile(path string) (*Client, error) {
	cfg, err := LoadConfigFile(path)
	if err != nil {
		return nil, err
	}

	c := New()
	c.applyConfig(cfg)
	return c, nil
}

func (c *Client) applyConfig(cfg *Config) {
	c.config = cfg
	if cfg.DefaultResponse != "" {
		c.response = cfg.DefaultResponse
	}
	d, err := cfg.ParseDelay()
	if err != nil {
		// 配置非法时让每次调用都暴露问题，而不是静默忽略
		c.err = err
		return
	}
	c.delay = d
	if cfg.SimulateError != "" {
		c.err = errors.New(cfg.SimulateError)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 场景控制
// ═══════════════════════════════════════════════════════════════════════════

// UseScenario 指定使用某个场景
//
// 后续的 Respond 调用依次返回场景中各轮的 Agent 文本；
// 超出场景长度后停留在最后一轮。
func (c *Client) UseScenario(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.config == nil {
		return fmt.Errorf("mock: no config loaded")
	}
	s, ok := c.config.FindScenario(name)
	if !ok {
		return fmt.Errorf("mock: scenario %q not found", name)
	}
	if len(s.Turns) == 0 {
		return fmt.Errorf("mock: scenario %q has no turns", name)
	}

	c.scenario = s
	c.scenarioIdx = 0
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Responder 接口实现
// ═══════════════════════════════════════════════════════════════════════════

// Respond 返回脚本化的响应
//
// 实现 [chat.Responder] 接口。每次调用都会被记录，可通过 [Client.Calls]
// 在测试中查验。
func (c *Client) Respond(ctx context.Context, history []chat.Turn, userText string, firstTurn bool) (string, error) {
	c.mu.Lock()

	historyCopy := make([]chat.Turn, len(history))
	copy(historyCopy, history)
	c.calls = append(c.calls, CallRecord{
		History:   historyCopy,
		UserText:  userText,
		FirstTurn: firstTurn,
		Time:      time.Now(),
	})
	c.counter++

	delay := c.delay
	err := c.err
	text := c.response
	if c.scenario != nil {
		text = c.scenario.Turns[c.scenarioIdx].Agent
		if c.scenarioIdx < len(c.scenario.Turns)-1 {
			c.scenarioIdx++
		}
	}
	c.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", chat.NewHTTPError("request failed", ctx.Err())
		}
	}

	if err != nil {
		return "", err
	}
	return text, nil
}

// Close 关闭客户端
//
// 实现 [chat.Responder] 接口。当前实现为空操作。
func (c *Client) Close() error {
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 测试查验
// ═══════════════════════════════════════════════════════════════════════════

// Calls 返回所有调用记录的副本
func (c *Client) Calls() []CallRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]CallRecord, len(c.calls))
	copy(out, c.calls)
	return out
}

// CallCount 返回调用次数
func (c *Client) CallCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counter
}

// ResetCalls 清空调用记录
func (c *Client) ResetCalls() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = c.calls[:0]
	c.counter = 0
}

// 确保 Client 实现了 Responder 接口
var _ chat.Responder = (*Client)(nil)
