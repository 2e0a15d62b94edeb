package ui

import (
	"context"
	"testing"
	"time"

	"github.com/gkoster9x/ApocalypseLogsApps/internal/gemini"
	"github.com/gkoster9x/ApocalypseLogsApps/internal/journal"
	"github.com/gkoster9x/ApocalypseLogsApps/internal/util"
)

func testModel() model {
	st := journal.NewState()
	m := initialModel(context.Background(), &st, nil, gemini.Offline(), util.Config{Theme: "wasteland"})
	m.now = func() time.Time { return time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC) }
	return m
}

func TestWorkbenchCapsAtThreeDistinctItems(t *testing.T) {
	m := testModel()
	for _, item := range []string{"gỗ", "dây thép", "xăng", "kính vỡ"} {
		m.stageIngredient(item)
	}
	if len(m.workbench) != 3 {
		t.Fatalf("workbench len = %d, want 3", len(m.workbench))
	}
	if m.workbench[2] != "xăng" {
		t.Fatalf("third slot = %q, want xăng", m.workbench[2])
	}
}

func TestWorkbenchRejectsDuplicates(t *testing.T) {
	m := testModel()
	m.stageIngredient("gỗ")
	m.stageIngredient("gỗ")
	if len(m.workbench) != 1 {
		t.Fatalf("workbench len = %d, want 1", len(m.workbench))
	}
}

func TestCraftFailureKeepsWorkbench(t *testing.T) {
	m := testModel()
	m.stageIngredient("gỗ")
	m.stageIngredient("xăng")
	m.crafting = true

	m.handleCraftResult(craftMsg{
		res:  gemini.CraftResult{Success: false, Description: "Hai thứ này không kết hợp được."},
		used: []string{"gỗ", "xăng"},
	})
	if m.crafting {
		t.Fatal("crafting flag still set")
	}
	if len(m.st.CraftedItems) != 0 {
		t.Fatalf("crafted items = %d, want 0", len(m.st.CraftedItems))
	}
	if len(m.workbench) != 2 {
		t.Fatalf("workbench len = %d, want 2 after failed combine", len(m.workbench))
	}
	if m.craftOK || m.craftNotice != "Hai thứ này không kết hợp được." {
		t.Fatalf("notice = %q ok=%v", m.craftNotice, m.craftOK)
	}
}

func TestCraftErrorShowsSystemNotice(t *testing.T) {
	m := testModel()
	m.stageIngredient("gỗ")
	m.stageIngredient("xăng")
	m.crafting = true

	m.handleCraftResult(craftMsg{err: gemini.ErrOffline, used: []string{"gỗ", "xăng"}})
	if len(m.st.CraftedItems) != 0 {
		t.Fatalf("crafted items = %d, want 0", len(m.st.CraftedItems))
	}
	if m.craftNotice != "Hệ thống bị lỗi. Không thể chế tạo." {
		t.Fatalf("notice = %q", m.craftNotice)
	}
	if len(m.workbench) != 2 {
		t.Fatalf("workbench len = %d, want 2 after error", len(m.workbench))
	}
}

func TestCraftSuccessStoresItemAndClearsBench(t *testing.T) {
	m := testModel()
	m.stageIngredient("gỗ")
	m.stageIngredient("dây thép")
	m.crafting = true

	m.handleCraftResult(craftMsg{
		res: gemini.CraftResult{
			Success:     true,
			ItemName:    "Bẫy dây",
			Description: "Bẫy thô sơ từ gỗ và dây thép.",
			Utility:     "Bắt thú nhỏ quanh hầm trú ẩn.",
		},
		used: []string{"gỗ", "dây thép"},
	})
	if len(m.st.CraftedItems) != 1 {
		t.Fatalf("crafted items = %d, want 1", len(m.st.CraftedItems))
	}
	it := m.st.CraftedItems[0]
	if it.Name != "Bẫy dây" || len(it.Ingredients) != 2 {
		t.Fatalf("unexpected item %+v", it)
	}
	if len(m.workbench) != 0 {
		t.Fatalf("workbench not cleared: %v", m.workbench)
	}
	if !m.craftOK || m.craftNotice != "Chế tạo thành công!" {
		t.Fatalf("notice = %q ok=%v", m.craftNotice, m.craftOK)
	}
}

func TestChatTranscriptAfterExchange(t *testing.T) {
	m := testModel()
	m.view = viewChat
	m.chatInput = "  Tình hình bên ngoài thế nào?  "

	next, cmd := m.handleChatKey("enter")
	m = next.(model)
	if cmd == nil {
		t.Fatal("expected a chat command")
	}
	if !m.chatBusy {
		t.Fatal("chatBusy not set while awaiting reply")
	}
	if m.chatInput != "" {
		t.Fatalf("input not cleared: %q", m.chatInput)
	}
	if len(m.chatLog) != 2 || m.chatLog[1].Role != "user" || m.chatLog[1].Text != "Tình hình bên ngoài thế nào?" {
		t.Fatalf("transcript after send: %+v", m.chatLog)
	}

	// offline assistant always answers with the interference line
	nm, _ := m.Update(cmd())
	m = nm.(model)
	if m.chatBusy {
		t.Fatal("chatBusy still set after reply")
	}
	if len(m.chatLog) != 3 {
		t.Fatalf("transcript len = %d, want 3", len(m.chatLog))
	}
	if m.chatLog[2].Role != "model" || m.chatLog[2].Text != gemini.ChatFallback {
		t.Fatalf("reply = %+v", m.chatLog[2])
	}
}

func TestChatIgnoresEmptyAndBusySends(t *testing.T) {
	m := testModel()
	m.chatInput = "   "
	next, cmd := m.handleChatKey("enter")
	m = next.(model)
	if cmd != nil || len(m.chatLog) != 1 {
		t.Fatalf("blank send mutated transcript: %+v", m.chatLog)
	}

	m.chatBusy = true
	m.chatInput = "còn đó không?"
	next, cmd = m.handleChatKey("enter")
	m = next.(model)
	if cmd != nil || len(m.chatLog) != 1 {
		t.Fatal("busy send should be a no-op")
	}
}

func TestSaveEntrySwitchesToArchiveAndResetsForm(t *testing.T) {
	m := testModel()
	m.view = viewEditor
	m.edLocation = "Chợ Lớn"
	m.edContent = "Tìm thấy nước sạch trong tầng hầm."
	m.edMood = moodIndex(journal.MoodHopeful)
	m.edAnalysis = &journal.Analysis{RiskLevel: 35, Summary: "Khu vực tương đối an toàn."}
	m.edImage = "data:image/png;base64,aGVsbG8="

	m.saveEntry()

	if m.view != viewArchive {
		t.Fatalf("view = %q, want %q", m.view, viewArchive)
	}
	if len(m.st.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(m.st.Entries))
	}
	e := m.st.Entries[0]
	if e.ID != "LOG-001" || e.Mood != journal.MoodHopeful {
		t.Fatalf("unexpected entry %+v", e)
	}
	if e.Analysis == nil || e.Analysis.RiskLevel != 35 {
		t.Fatal("analysis not attached to saved entry")
	}
	if e.ImageURL == "" {
		t.Fatal("image not attached to saved entry")
	}
	if m.edContent != "" || m.edLocation != "" || m.edAnalysis != nil || m.edImage != "" {
		t.Fatal("draft not reset after save")
	}
	if m.edMood != moodIndex(journal.MoodNeutral) {
		t.Fatal("mood not reset to neutral")
	}
}

func TestAnalysisErrorRaisesEditorAlert(t *testing.T) {
	m := testModel()
	m.analyzing = true
	nm, _ := m.Update(analysisMsg{err: gemini.ErrNoAnalysis})
	m = nm.(model)
	if m.analyzing {
		t.Fatal("analyzing flag still set")
	}
	if m.edAlert != "Hệ thống phân tích gặp lỗi. Vui lòng thử lại." {
		t.Fatalf("alert = %q", m.edAlert)
	}
	if m.edAnalysis != nil {
		t.Fatal("failed analysis must not attach a result")
	}
}

func TestArchiveTypingResetsSelection(t *testing.T) {
	m := testModel()
	ts := m.now()
	m.st.AddEntry(journal.NewEntry(1, "nước ở chợ", "Chợ Lớn", journal.MoodNeutral, ts))
	m.st.AddEntry(journal.NewEntry(2, "đêm yên tĩnh", "Hầm 04", journal.MoodHopeful, ts))
	m.archiveIndex = 1

	next, _ := m.handleArchiveKey("n")
	m = next.(model)
	if m.searchTerm != "n" {
		t.Fatalf("searchTerm = %q", m.searchTerm)
	}
	if m.archiveIndex != 0 {
		t.Fatalf("archiveIndex = %d, want reset to 0", m.archiveIndex)
	}
}

func TestThemeCycleWraps(t *testing.T) {
	start := themeNames()[0]
	name := start
	for range themeNames() {
		name = nextThemeName(name, 1)
	}
	if name != start {
		t.Fatalf("cycling all themes should wrap, got %q", name)
	}
}
