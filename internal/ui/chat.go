package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) renderChat() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render("KÊNH LIÊN LẠC: WATCHER AI") + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Tín hiệu được mã hóa • Băng thông thấp") + "\n\n")

	width := m.width - 8
	if width < 40 {
		width = 40
	}
	wrap := lipgloss.NewStyle().Width(width)
	for _, msg := range m.chatLog {
		if msg.Role == "user" {
			b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(m.theme.Text).Render("BẠN > ") + "\n")
			b.WriteString(wrap.Foreground(m.theme.Text).Render(msg.Text) + "\n\n")
			continue
		}
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(m.theme.Success).Render("WATCHER > ") + "\n")
		b.WriteString(wrap.Foreground(m.theme.Success).Render(msg.Text) + "\n\n")
	}

	if m.chatBusy {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Warning).Italic(true).Render("ĐANG XỬ LÝ DỮ LIỆU...") + "\n\n")
	}

	prompt := m.chatInput
	if prompt == "" && !m.chatBusy {
		prompt = lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Nhập tin nhắn gửi Watcher...")
	}
	input := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Accent).
		Padding(0, 1).
		Width(width).
		Render("> " + prompt)
	b.WriteString(input)
	return b.String()
}
