// supportchat 技术支持对话终端
//
// 将用户消息转发给 Gemini 或 OpenAI，累积对话记录，
// 并可选地通过平台 TTS 朗读回复。
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat"
	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat/provider"
	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat/session"
	"github.com/lwmacct/251221-go-pkg-chat/pkg/speech"
)

var (
	flagProvider string
	flagModel    string
	flagBaseURL  string
	flagVoice    bool
	flagConfig   string
)

var rootCmd = &cobra.Command{
	Use:   "supportchat",
	Short: "Terminal chat with a hosted LLM support agent",
	Long: `supportchat starts an interactive troubleshooting chat session.

Messages are forwarded to the selected provider (Gemini or OpenAI),
the transcript accumulates in memory for the lifetime of the session,
and replies can optionally be spoken aloud via the platform TTS command.

Keys:
  enter    send message
  ctrl+p   switch provider
  ctrl+v   toggle voice
  ctrl+r   reset the conversation
  esc      quit`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagProvider, "provider", "p", "gemini", "provider to start with (gemini|openai|mock)")
	rootCmd.Flags().StringVarP(&flagModel, "model", "m", "", "override the provider's default model")
	rootCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "override the provider's base URL")
	rootCmd.Flags().BoolVar(&flagVoice, "voice", false, "speak replies aloud")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "config file (yaml)")
}

func run(_ *cobra.Command, _ []string) error {
	start := chat.ProviderType(flagProvider)
	if !start.Valid() {
		return fmt.Errorf("unknown provider %q", flagProvider)
	}

	cfg, err := loadConfig(start)
	if err != nil {
		return err
	}

	responders, order, err := buildResponders(cfg, start)
	if err != nil {
		return err
	}
	defer func() {
		for _, r := range responders {
			_ = r.Close()
		}
	}()

	sess := session.New(responders[order[0]],
		session.WithSpeaker(speech.Default()),
		session.WithVoice(flagVoice),
	)
	log.Debug("session created", "id", sess.ID(), "provider", order[0])

	p := tea.NewProgram(initialModel(sess, responders, order), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

// loadConfig 合并环境变量、配置文件与命令行覆盖
func loadConfig(start chat.ProviderType) (*chat.Config, error) {
	cfg := chat.FromEnv(start)

	if flagConfig != "" {
		v := viper.New()
		v.SetConfigFile(flagConfig)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", flagConfig, err)
		}
		if err := v.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", flagConfig, err)
		}
		cfg.Provider = start
	}

	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	return cfg, nil
}

// buildResponders 为每个已配置凭证的 Provider 创建 Responder
//
// 启动所选的 Provider 必须可用；其余的缺失凭证只降级为不可切换。
func buildResponders(cfg *chat.Config, start chat.ProviderType) (map[chat.ProviderType]chat.Responder, []chat.ProviderType, error) {
	candidates := []chat.ProviderType{start}
	for _, t := range []chat.ProviderType{chat.ProviderTypeGemini, chat.ProviderTypeOpenAI} {
		if t != start {
			candidates = append(candidates, t)
		}
	}

	responders := make(map[chat.ProviderType]chat.Responder)
	var order []chat.ProviderType

	for _, t := range candidates {
		c := *cfg
		c.Provider = t
		if err := c.Validate(); err != nil {
			if t == start {
				return nil, nil, err
			}
			log.Debug("provider unavailable", "provider", t, "reason", err)
			continue
		}
		r, err := provider.New(&c)
		if err != nil {
			if t == start {
				return nil, nil, err
			}
			log.Warn("provider setup failed", "provider", t, "err", err)
			continue
		}
		responders[t] = r
		order = append(order, t)
	}

	return responders, order, nil
}

func main() {
	log.SetLevel(log.InfoLevel)
	if os.Getenv("SUPPORTCHAT_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
