package mock

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ═══════════════════════════════════════════════════════════════════════════
// 配置文件结构
// ═══════════════════════════════════════════════════════════════════════════

// Config 配置文件结构
type Config struct {
	// DefaultResponse 默认响应（当没有指定场景时使用）
	DefaultResponse string `yaml:"default_response" json:"default_response"`

	// Scenarios 场景列表（通过 name 标识，直接指定使用）
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`

	// Delay 响应延迟（如 "100ms", "1s"）
	Delay string `yaml:"delay" json:"delay"`

	// SimulateError 模拟错误消息
	SimulateError string `yaml:"simulate_error" json:"simulate_error"`
}

// Scenario 场景（通过 name 标识，支持多轮对话）
type Scenario struct {
	// Name 场景名称（必需，用于指定场景）
	Name string `yaml:"name" json:"name"`

	// Turns 对话轮次列表
	Turns []ScriptTurn `yaml:"turns" json:"turns"`
}

// ScriptTurn 单轮脚本
type ScriptTurn struct {
	// User 用户消息（可选，用于文档说明）
	User string `yaml:"user,omitempty" json:"user,omitempty"`

	// Agent 客服响应
	Agent string `yaml:"agent,omitempty" json:"agent,omitempty"`
}

// ═══════════════════════════════════════════════════════════════════════════
// 配置加载
// ═══════════════════════════════════════════════════════════════════════════

// LoadConfigFile 从 YAML 文件加载配置
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mock config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse mock config: %w", err)
	}
	return &cfg, nil
}

// ParseDelay 解析延迟配置
//
// 空字符串返回 0；非法格式返回错误。
func (c *Config) ParseDelay() (time.Duration, error) {
	if c.Delay == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Delay)
	if err != nil {
		return 0, fmt.Errorf("parse mock delay %q: %w", c.Delay, err)
	}
	return d, nil
}

// FindScenario 按名称查找场景
func (c *Config) FindScenario(name string) (*Scenario, bool) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], true
		}
	}
	return nil, false
}
