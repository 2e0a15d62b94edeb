package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gkoster9x/ApocalypseLogsApps/internal/journal"
)

func (m model) View() string {
	var body string
	switch m.view {
	case viewEditor:
		body = m.renderEditor()
	case viewArchive:
		body = m.renderArchive()
	case viewCrafting:
		body = m.renderCrafting()
	case viewChat:
		body = m.renderChat()
	default:
		body = m.renderDashboard()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTopBar(), body, m.renderBottomBar())
}

func viewLabel(view string) string {
	switch view {
	case viewDashboard:
		return "TỔNG QUAN"
	case viewEditor:
		return "GHI NHẬT KÝ"
	case viewArchive:
		return "LƯU TRỮ"
	case viewCrafting:
		return "CHẾ TẠO"
	case viewChat:
		return "TRỢ LÝ AI"
	}
	return strings.ToUpper(view)
}

func (m model) renderTopBar() string {
	left := strings.Join([]string{
		"KÝ ỨC TẬN THẾ",
		viewLabel(m.view),
	}, " • ")
	right := fmt.Sprintf("Ngày %d • HP %s %d%%", m.st.Stats.DaysSurvived, bar(m.st.Stats.HealthStatus), m.st.Stats.HealthStatus)
	w := m.width
	if w <= 0 {
		w = 100
	}
	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render(left + strings.Repeat(" ", gap) + right)
}

func (m model) renderBottomBar() string {
	var hints string
	switch m.view {
	case viewDashboard:
		hints = "[1-5/F1-F5] chuyển màn hình  [F6] đổi giao diện  [Ctrl+C] thoát"
	case viewEditor:
		hints = "[Tab] đổi ô  [Ctrl+A] phân tích  [Ctrl+G] tạo ảnh  [Ctrl+S] lưu  [Esc] về tổng quan"
	case viewArchive:
		hints = "gõ để tìm kiếm  [↑/↓] chọn  [Enter] chi tiết  [Esc] quay lại"
	case viewCrafting:
		hints = "[↑/↓] chọn tài nguyên  [Enter] đặt lên bàn  [1-3] bỏ ô  [C] chế tạo  [Esc] quay lại"
	case viewChat:
		hints = "gõ tin nhắn  [Enter] gửi  [Esc] quay lại"
	}
	line := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(hints)
	if m.status != "" {
		line += "\n" + lipgloss.NewStyle().Foreground(m.theme.Danger).Render(m.status)
	}
	return line
}

// Dashboard -------------------------------------------------------------------

func (m model) renderDashboard() string {
	var b strings.Builder
	b.WriteString(m.renderStatCards())
	b.WriteString("\n\n")
	b.WriteString(m.renderRiskChart())
	b.WriteString("\n")
	b.WriteString(m.renderMoodChart())
	b.WriteString("\n")
	b.WriteString(m.renderLatestAnalysis())
	return b.String()
}

func (m model) card(label, value, subtext string) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Width(24)
	content := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(label) + "\n" +
		lipgloss.NewStyle().Bold(true).Foreground(m.theme.Text).Render(value) + "\n" +
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(subtext)
	return style.Render(content)
}

func (m model) renderStatCards() string {
	stats := m.st.Stats
	risk := "N/A"
	if len(m.st.Entries) > 0 && m.st.Entries[0].Analysis != nil {
		risk = fmt.Sprintf("%d%%", m.st.Entries[0].Analysis.RiskLevel)
	}
	location := stats.LastLocation
	if location == "" {
		location = "Không xác định"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.card("THỜI GIAN SỐNG SÓT", fmt.Sprintf("%d Ngày", stats.DaysSurvived), "Kiên cường."),
		m.card("SỨC KHỎE", fmt.Sprintf("%d%%", stats.HealthStatus), "Cần thêm thuốc men."),
		m.card("MỨC ĐỘ ĐE DỌA", risk, "Theo nhật ký gần nhất."),
		m.card("VỊ TRÍ HIỆN TẠI", location, "Đang di chuyển."),
	)
}

func (m model) renderRiskChart() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("BIỂU ĐỒ RỦI RO (7 nhật ký gần nhất)") + "\n")
	series := journal.RiskSeries(m.st.Entries)
	if len(series) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Italic(true).Render("Chưa có dữ liệu nhật ký") + "\n")
		return b.String()
	}
	for _, p := range series {
		b.WriteString(fmt.Sprintf("%-10s %s %3d\n", p.Label, riskBar(p.Risk), p.Risk))
	}
	return b.String()
}

func (m model) renderMoodChart() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("BIẾN ĐỘNG TINH THẦN (5 nhật ký gần nhất)") + "\n")
	series := journal.MoodSeries(m.st.Entries)
	if len(series) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Italic(true).Render("Chưa có dữ liệu nhật ký") + "\n")
		return b.String()
	}
	for i, v := range series {
		b.WriteString(fmt.Sprintf("#%d %s %d/5\n", i+1, bar(v*20), v))
	}
	return b.String()
}

func (m model) renderLatestAnalysis() string {
	title := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("PHÂN TÍCH MỚI NHẤT TỪ AI")
	if len(m.st.Entries) == 0 || m.st.Entries[0].Analysis == nil {
		return title + "\n" + lipgloss.NewStyle().Foreground(m.theme.Muted).Italic(true).Render("Chưa có dữ liệu phân tích. Hãy viết nhật ký đầu tiên.")
	}
	a := m.st.Entries[0].Analysis
	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Text).Render("\""+a.Summary+"\"") + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Accent).Render("Lời khuyên sinh tồn:") + "\n")
	for _, tip := range a.SurvivalTips {
		b.WriteString("  - " + tip + "\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Success).Render("Tài nguyên phát hiện: "))
	if len(a.ResourcesDetected) == 0 {
		b.WriteString("không phát hiện")
	} else {
		b.WriteString(strings.Join(a.ResourcesDetected, ", "))
	}
	b.WriteString("\n")
	return b.String()
}

// Shared helpers --------------------------------------------------------------

func bar(v int) string {
	width := 10
	fill := int((float64(v)/100.0)*float64(width) + 0.5)
	if fill > width {
		fill = width
	}
	if fill < 0 {
		fill = 0
	}
	return strings.Repeat("█", fill) + strings.Repeat("·", width-fill)
}

func riskBar(v int) string {
	width := 30
	fill := int((float64(v)/100.0)*float64(width) + 0.5)
	if fill > width {
		fill = width
	}
	return strings.Repeat("█", fill) + strings.Repeat("·", width-fill)
}
