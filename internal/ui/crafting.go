package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gkoster9x/ApocalypseLogsApps/internal/journal"
)

func (m model) renderCrafting() string {
	inventory := journal.Inventory(m.st.Entries)
	left := m.renderInventoryColumn(inventory)
	middle := m.renderWorkbenchColumn()
	right := m.renderCraftedColumn()
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", middle, " ", right)
}

func (m model) renderInventoryColumn(inventory []string) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render("KHO TÀI NGUYÊN") + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Dữ liệu trích xuất từ nhật ký") + "\n\n")
	if len(inventory) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Italic(true).Render("Chưa tìm thấy tài nguyên nào từ nhật ký.") + "\n")
	}
	cursor := m.craftCursor
	if cursor >= len(inventory) {
		cursor = len(inventory) - 1
	}
	for i, item := range inventory {
		marker := "  "
		if i == cursor {
			marker = "> "
		}
		staged := ""
		style := lipgloss.NewStyle().Foreground(m.theme.Text)
		if m.isStaged(item) {
			staged = " (đang dùng)"
			style = lipgloss.NewStyle().Foreground(m.theme.Muted)
		}
		if i == cursor {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(marker+item+staged) + "\n")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Width(32).
		Render(b.String())
}

func (m model) renderWorkbenchColumn() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render("XƯỞNG CHẾ TẠO") + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("WORKBENCH_V1") + "\n\n")
	for slot := 0; slot < 3; slot++ {
		label := fmt.Sprintf("[%d] ", slot+1)
		if slot < len(m.workbench) {
			b.WriteString(label + lipgloss.NewStyle().Foreground(m.theme.Text).Render(m.workbench[slot]) + "\n")
		} else {
			b.WriteString(label + lipgloss.NewStyle().Foreground(m.theme.Muted).Render("(trống)") + "\n")
		}
	}
	b.WriteString("\n")
	switch {
	case m.crafting:
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Warning).Render("Đang xử lý...") + "\n")
	case len(m.workbench) < 2:
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Chọn ít nhất 2 nguyên liệu để thử nghiệm.") + "\n")
	default:
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).Render("[C] Tiến Hành Ghép") + "\n")
	}
	if m.craftNotice != "" {
		style := lipgloss.NewStyle().Foreground(m.theme.Danger)
		if m.craftOK {
			style = lipgloss.NewStyle().Foreground(m.theme.Success)
		}
		b.WriteString("\n" + style.Render(m.craftNotice) + "\n")
	}
	b.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Muted).Render("HƯỚNG DẪN: AI sẽ phân tích khả năng kết hợp dựa trên logic vật lý và bối cảnh sinh tồn."))
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Width(40).
		Render(b.String())
}

func (m model) renderCraftedColumn() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render("VẬT PHẨM ĐÃ TẠO") + "\n\n")
	if len(m.st.CraftedItems) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Italic(true).Render("Chưa có vật phẩm nào được chế tạo.") + "\n")
	}
	// newest first for display
	for i := len(m.st.CraftedItems) - 1; i >= 0; i-- {
		it := m.st.CraftedItems[i]
		when := time.UnixMilli(it.Timestamp).Format("2/1/2006")
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(m.theme.Text).Render(it.Name) +
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("  "+when) + "\n")
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Italic(true).Render(clip(it.Description, 36)) + "\n")
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Success).Render("Utility: "+clip(it.Utility, 30)) + "\n")
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("["+strings.Join(it.Ingredients, " + ")+"]") + "\n\n")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Width(40).
		Render(b.String())
}

func (m model) isStaged(item string) bool {
	for _, staged := range m.workbench {
		if staged == item {
			return true
		}
	}
	return false
}
