package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat"
	"github.com/lwmacct/251221-go-pkg-chat/pkg/chat/session"
)

// ═══════════════════════════════════════════════════════════════════════════
// 样式
// ═══════════════════════════════════════════════════════════════════════════

var (
	userPrompt   = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true).Render("you> ")
	agentPrompt  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("agent> ")
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errTurnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// ═══════════════════════════════════════════════════════════════════════════
// TUI 模型
// ═══════════════════════════════════════════════════════════════════════════

// replyMsg 一次 Send 的完成事件
//
// 成功与失败都只刷新界面：错误轮次已由 session 追加到记录中。
type replyMsg struct {
	err error
}

// chatModel 对话界面模型
type chatModel struct {
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	sess       *session.Session
	responders map[chat.ProviderType]chat.Responder
	order      []chat.ProviderType
	active     int

	loading bool
	ready   bool
}

// initialModel 创建初始界面状态
func initialModel(sess *session.Session, responders map[chat.ProviderType]chat.Responder, order []chat.ProviderType) chatModel {
	ta := textarea.New()
	ta.Placeholder = "Describe your problem..."
	ta.Focus()
	ta.Prompt = "┃ "
	ta.SetHeight(3)
	ta.CharLimit = 1000
	ta.ShowLineNumbers = false
	// Enter 发送，不换行
	ta.KeyMap.InsertNewline.SetEnabled(false)

	vp := viewport.New(0, 0)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return chatModel{
		textarea:   ta,
		viewport:   vp,
		spinner:    sp,
		sess:       sess,
		responders: responders,
		order:      order,
	}
}

// Init 实现 tea.Model 接口
func (m chatModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update 实现 tea.Model 接口
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 2
		inputHeight := m.textarea.Height() + 1
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - inputHeight
		m.textarea.SetWidth(msg.Width)
		m.ready = true
		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEnter:
			text := strings.TrimSpace(m.textarea.Value())
			// 调用期间输入被禁用：不接受新消息
			if m.loading || text == "" {
				break
			}
			m.textarea.Reset()
			m.loading = true
			m.refreshViewport()
			return m, tea.Batch(m.spinner.Tick, m.sendCmd(text))

		case tea.KeyCtrlR:
			if err := m.sess.Reset(); err == nil {
				m.refreshViewport()
			}

		case tea.KeyCtrlP:
			m.switchProvider()

		case tea.KeyCtrlV:
			m.sess.SetVoice(!m.sess.Voice())
		}

	case replyMsg:
		m.loading = false
		m.refreshViewport()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, spCmd = m.spinner.Update(msg)
		}
	}

	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

// View 实现 tea.Model 接口
func (m chatModel) View() string {
	if !m.ready {
		return "loading..."
	}

	header := headerStyle.Render("supportchat") + "  " + statusStyle.Render(m.statusLine())

	input := m.textarea.View()
	if m.loading {
		input = m.spinner.View() + " waiting for the agent..."
	}

	return fmt.Sprintf("%s\n%s\n%s", header, m.viewport.View(), input)
}

// ═══════════════════════════════════════════════════════════════════════════
// 行为
// ═══════════════════════════════════════════════════════════════════════════

// sendCmd 在后台执行一次 Send
func (m chatModel) sendCmd(text string) tea.Cmd {
	sess := m.sess
	return func() tea.Msg {
		_, err := sess.Send(context.Background(), text)
		return replyMsg{err: err}
	}
}

// switchProvider 轮换到下一个可用 Provider
func (m *chatModel) switchProvider() {
	if len(m.order) < 2 {
		return
	}
	next := (m.active + 1) % len(m.order)
	if err := m.sess.SetResponder(m.responders[m.order[next]]); err != nil {
		// 在途调用期间不允许切换
		return
	}
	m.active = next
}

// refreshViewport 从会话记录重绘对话区
func (m *chatModel) refreshViewport() {
	var b strings.Builder
	for _, turn := range m.sess.Transcript() {
		switch {
		case turn.Speaker == chat.SpeakerUser:
			b.WriteString(userPrompt + turn.Text + "\n")
		case strings.HasPrefix(turn.Text, "Error: "):
			b.WriteString(agentPrompt + errTurnStyle.Render(turn.Text) + "\n")
		default:
			b.WriteString(agentPrompt + turn.Text + "\n")
		}
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// statusLine 组装头部状态栏
func (m chatModel) statusLine() string {
	voice := "voice off"
	if m.sess.Voice() {
		voice = "voice on"
	}
	return fmt.Sprintf("[%s] %s  (ctrl+p provider, ctrl+v voice, ctrl+r reset, esc quit)",
		m.order[m.active], voice)
}
