package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gkoster9x/ApocalypseLogsApps/internal/journal"
)

func (m model) renderEditor() string {
	var b strings.Builder
	title := fmt.Sprintf("GHI CHÉP NHẬT KÝ: LOG #%d", len(m.st.Entries)+1)
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render(title) + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render(m.now().Format("2/1/2006, 15:04")) + "\n\n")

	b.WriteString(m.fieldLabel("VỊ TRÍ HIỆN TẠI", focusLocation) + "\n")
	b.WriteString(m.fieldBox(orPlaceholder(m.edLocation, "Ví dụ: Khu tàn tích quận 7, Sài Gòn..."), focusLocation, 1) + "\n\n")

	b.WriteString(m.fieldLabel("NỘI DUNG GHI CHÉP", focusContent) + "\n")
	b.WriteString(m.fieldBox(orPlaceholder(m.edContent, "Hôm nay tôi đã tìm thấy..."), focusContent, 8) + "\n\n")

	b.WriteString(m.fieldLabel("TÂM TRẠNG", focusMood) + "\n")
	b.WriteString(m.renderMoodChips() + "\n\n")

	b.WriteString(m.renderEditorActions() + "\n")
	b.WriteString(m.renderDraftEnrichment())
	return b.String()
}

func (m model) fieldLabel(label string, slot int) string {
	style := lipgloss.NewStyle().Foreground(m.theme.Muted)
	if m.edFocus == slot {
		style = lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
		label = "> " + label
	}
	return style.Render(label)
}

func (m model) fieldBox(text string, slot, minHeight int) string {
	border := m.theme.Border
	if m.edFocus == slot {
		border = m.theme.Accent
	}
	w := m.width - 4
	if w < 40 {
		w = 60
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(w)
	if strings.Count(text, "\n")+1 < minHeight {
		text += strings.Repeat("\n", minHeight-strings.Count(text, "\n")-1)
	}
	return style.Render(text)
}

func (m model) renderMoodChips() string {
	chips := make([]string, 0, len(journal.AllMoods))
	for i, mood := range journal.AllMoods {
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.theme.Border).
			Foreground(m.theme.Muted).
			Padding(0, 1)
		if i == m.edMood {
			style = style.BorderForeground(m.theme.Accent).Foreground(m.theme.Text).Bold(true)
		}
		chips = append(chips, style.Render(mood.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m model) renderEditorActions() string {
	analyze := "[Ctrl+A] Phân tích Rủi Ro"
	if m.analyzing {
		analyze = "ĐANG PHÂN TÍCH LOG..."
	}
	image := "[Ctrl+G] Tái hiện Hình Ảnh"
	if m.imaging {
		image = "ĐANG XỬ LÝ DỮ LIỆU HÌNH ẢNH..."
	}
	save := "[Ctrl+S] LƯU GHI CHÉP"
	if m.edContent == "" {
		save = lipgloss.NewStyle().Foreground(m.theme.Muted).Render("LƯU GHI CHÉP (cần nội dung)")
	} else {
		save = lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).Render(save)
	}
	line := strings.Join([]string{analyze, image, save}, "   ")
	if m.edAlert != "" {
		line += "\n" + lipgloss.NewStyle().Foreground(m.theme.Danger).Render(m.edAlert)
	}
	return line
}

func (m model) renderDraftEnrichment() string {
	var b strings.Builder
	if m.edImage != "" {
		kb := approxImageKB(m.edImage)
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Success).Render(fmt.Sprintf("Hình ảnh sẵn sàng (~%d KB, 16:9 PNG)", kb)) + "\n")
	}
	if m.edAnalysis == nil {
		if m.edImage == "" {
			b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Italic(true).Render("Chạy phân tích để nhận đánh giá rủi ro và lời khuyên sinh tồn.") + "\n")
		}
		return b.String()
	}
	a := m.edAnalysis
	riskStyle := lipgloss.NewStyle().Foreground(m.theme.Success)
	if a.RiskLevel > 70 {
		riskStyle = lipgloss.NewStyle().Foreground(m.theme.Danger)
	} else if a.RiskLevel > 40 {
		riskStyle = lipgloss.NewStyle().Foreground(m.theme.Warning)
	}
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("ĐÁNH GIÁ AI") + "\n")
	b.WriteString("Mức độ nguy hiểm: " + riskStyle.Render(fmt.Sprintf("%d%%", a.RiskLevel)) + "\n")
	b.WriteString(a.Summary + "\n")
	for _, tip := range a.SurvivalTips {
		b.WriteString("  - " + tip + "\n")
	}
	if len(a.ResourcesDetected) > 0 {
		b.WriteString("Tài nguyên: " + strings.Join(a.ResourcesDetected, ", ") + "\n")
	}
	return b.String()
}

func orPlaceholder(text, placeholder string) string {
	if text == "" {
		return placeholder
	}
	return text
}

// approxImageKB estimates decoded size from the base64 payload length.
func approxImageKB(dataURI string) int {
	idx := strings.Index(dataURI, ",")
	if idx < 0 {
		return 0
	}
	return len(dataURI[idx+1:]) * 3 / 4 / 1024
}
