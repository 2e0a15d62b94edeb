package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/gkoster9x/ApocalypseLogsApps/internal/journal"
)

func (m model) renderArchive() string {
	filtered := journal.Filter(m.st.Entries, m.searchTerm)
	if m.archiveDetail && m.archiveIndex < len(filtered) {
		return m.renderArchiveDetail(filtered[m.archiveIndex], len(filtered))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render("LƯU TRỮ DỮ LIỆU") + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("TRUY XUẤT NHẬT KÝ CÁ NHÂN") + "\n\n")

	search := "Tìm kiếm dữ liệu..."
	if m.searchTerm != "" {
		search = m.searchTerm
	}
	searchBox := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Render("🔍 " + search)
	b.WriteString(searchBox + "\n\n")

	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("KHÔNG TÌM THẤY DỮ LIỆU PHÙ HỢP") + "\n")
		return b.String()
	}

	idx := m.archiveIndex
	if idx >= len(filtered) {
		idx = len(filtered) - 1
	}
	for i, e := range filtered {
		cursor := "  "
		if i == idx {
			cursor = "> "
		}
		risk := "  --"
		if e.Analysis != nil {
			risk = fmt.Sprintf("%3d%%", e.Analysis.RiskLevel)
		}
		visual := " "
		if e.ImageURL != "" {
			visual = "▣"
		}
		line := fmt.Sprintf("%s%-8s %-18s %-18s %-12s %s %s",
			cursor, e.ID, e.DateDisplay, clip(e.Location, 18), e.Mood.Label(), risk, visual)
		style := lipgloss.NewStyle().Foreground(m.theme.Text)
		if i == idx {
			style = style.Bold(true).Foreground(m.theme.Accent)
		}
		b.WriteString(style.Render(line) + "\n")
		preview := clip(strings.ReplaceAll(e.Content, "\n", " "), 80)
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("         "+preview) + "\n")
	}
	return b.String()
}

func (m model) renderArchiveDetail(e journal.Entry, total int) string {
	var b strings.Builder
	header := fmt.Sprintf("%s • %s • %s • %s (%d/%d)", e.ID, e.DateDisplay, e.Location, e.Mood.Label(), m.archiveIndex+1, total)
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render(header) + "\n\n")

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err == nil {
		if rendered, err := renderer.Render(e.Content); err == nil {
			b.WriteString(rendered)
		} else {
			b.WriteString(e.Content + "\n")
		}
	} else {
		b.WriteString(e.Content + "\n")
	}

	if e.ImageURL != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Success).Render(fmt.Sprintf("[Dữ liệu hình ảnh đã lưu: ~%d KB]", approxImageKB(e.ImageURL))) + "\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[No Visual Data]") + "\n")
	}

	if e.Analysis != nil {
		a := e.Analysis
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Muted).Render("ĐÁNH GIÁ AI") + "\n")
		b.WriteString(fmt.Sprintf("Rủi ro %d%% • %s\n", a.RiskLevel, a.Summary))
		for _, tip := range a.SurvivalTips {
			b.WriteString("  - " + tip + "\n")
		}
		if len(a.ResourcesDetected) > 0 {
			b.WriteString("Tài nguyên: " + strings.Join(a.ResourcesDetected, ", ") + "\n")
		}
	}
	b.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Enter quay về danh sách  Esc đóng"))
	return b.String()
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
