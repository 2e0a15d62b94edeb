package ui

import (
	"context"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gkoster9x/ApocalypseLogsApps/internal/gemini"
	"github.com/gkoster9x/ApocalypseLogsApps/internal/journal"
	"github.com/gkoster9x/ApocalypseLogsApps/internal/store"
	"github.com/gkoster9x/ApocalypseLogsApps/internal/util"
)

const (
	viewDashboard = "dashboard"
	viewEditor    = "editor"
	viewArchive   = "archive"
	viewCrafting  = "crafting"
	viewChat      = "chat"
)

const chatGreeting = "Watcher AI kích hoạt. Hệ thống trực tuyến. Tôi có thể hỗ trợ gì cho việc sinh tồn của bạn hôm nay?"

// Editor focus slots.
const (
	focusLocation = iota
	focusContent
	focusMood
)

type model struct {
	ctx context.Context
	st  *journal.State
	db  *store.Store
	ai  gemini.Assistant

	view      string
	width     int
	height    int
	themeName string
	theme     palette
	status    string // transient line for write-through failures

	// editor draft
	edFocus    int
	edLocation string
	edContent  string
	edMood     int // index into journal.AllMoods
	edAnalysis *journal.Analysis
	edImage    string
	edAlert    string
	analyzing  bool
	imaging    bool

	// archive browser
	searchTerm    string
	archiveIndex  int
	archiveDetail bool

	// crafting workbench
	craftCursor int
	workbench   []string
	crafting    bool
	craftNotice string
	craftOK     bool

	// chat transcript
	chatInput string
	chatLog   []gemini.Message
	chatBusy  bool

	now func() time.Time
}

func initialModel(ctx context.Context, st *journal.State, db *store.Store, ai gemini.Assistant, cfg util.Config) model {
	m := model{
		ctx:       ctx,
		st:        st,
		db:        db,
		ai:        ai,
		view:      viewDashboard,
		themeName: cfg.Theme,
		theme:     paletteFor(cfg.Theme),
		edMood:    moodIndex(journal.MoodNeutral),
		chatLog:   []gemini.Message{{Role: "model", Text: chatGreeting}},
		now:       time.Now,
	}
	return m
}

func moodIndex(mood journal.Mood) int {
	for i, m := range journal.AllMoods {
		if m == mood {
			return i
		}
	}
	return 0
}

// Async results ---------------------------------------------------------------

type analysisMsg struct {
	result journal.Analysis
	err    error
}

type imageMsg struct {
	uri string
	err error
}

type craftMsg struct {
	res  gemini.CraftResult
	used []string
	err  error
}

type chatMsg struct {
	reply string
}

func (m *model) analyzeCmd() tea.Cmd {
	ai, ctx := m.ai, m.ctx
	entryText := m.edContent
	location := strings.TrimSpace(m.edLocation)
	if location == "" {
		location = "Không rõ"
	}
	return func() tea.Msg {
		res, err := ai.Analyze(ctx, entryText, location)
		return analysisMsg{result: res, err: err}
	}
}

func (m *model) imageCmd() tea.Cmd {
	ai, ctx := m.ai, m.ctx
	entryText := m.edContent
	return func() tea.Msg {
		uri, err := ai.GenerateImage(ctx, entryText)
		return imageMsg{uri: uri, err: err}
	}
}

func (m *model) craftCmd() tea.Cmd {
	ai, ctx := m.ai, m.ctx
	used := append([]string{}, m.workbench...)
	return func() tea.Msg {
		res, err := ai.Craft(ctx, used)
		return craftMsg{res: res, used: used, err: err}
	}
}

func (m *model) chatCmd(history []gemini.Message, message string) tea.Cmd {
	ai, ctx := m.ai, m.ctx
	return func() tea.Msg {
		return chatMsg{reply: ai.Chat(ctx, history, message)}
	}
}

// tea.Model -------------------------------------------------------------------

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case analysisMsg:
		m.analyzing = false
		if msg.err != nil {
			m.edAlert = "Hệ thống phân tích gặp lỗi. Vui lòng thử lại."
		} else {
			result := msg.result
			m.edAnalysis = &result
			m.edAlert = ""
		}
		return m, nil
	case imageMsg:
		m.imaging = false
		if msg.err != nil {
			m.edAlert = "Hệ thống tạo ảnh gặp lỗi. Vui lòng thử lại."
		} else {
			m.edImage = msg.uri
			m.edAlert = ""
		}
		return m, nil
	case craftMsg:
		m.handleCraftResult(msg)
		return m, nil
	case chatMsg:
		m.chatBusy = false
		reply := msg.reply
		if reply == "" {
			reply = "..."
		}
		m.chatLog = append(m.chatLog, gemini.Message{Role: "model", Text: reply})
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch k {
	case "ctrl+c":
		return m, tea.Quit
	case "f1":
		m.view = viewDashboard
		return m, nil
	case "f2":
		m.view = viewEditor
		return m, nil
	case "f3":
		m.view = viewArchive
		return m, nil
	case "f4":
		m.view = viewCrafting
		return m, nil
	case "f5":
		m.view = viewChat
		return m, nil
	case "f6":
		m.themeName = nextThemeName(m.themeName, 1)
		m.theme = paletteFor(m.themeName)
		return m, nil
	case "esc":
		if m.view == viewArchive && m.archiveDetail {
			m.archiveDetail = false
		} else {
			m.view = viewDashboard
		}
		return m, nil
	}

	switch m.view {
	case viewDashboard:
		return m.handleDashboardKey(k)
	case viewEditor:
		return m.handleEditorKey(k)
	case viewArchive:
		return m.handleArchiveKey(k)
	case viewCrafting:
		return m.handleCraftingKey(k)
	case viewChat:
		return m.handleChatKey(k)
	}
	return m, nil
}

func (m model) handleDashboardKey(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "1":
		m.view = viewDashboard
	case "2":
		m.view = viewEditor
	case "3":
		m.view = viewArchive
	case "4":
		m.view = viewCrafting
	case "5":
		m.view = viewChat
	}
	return m, nil
}

func (m model) handleEditorKey(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "tab":
		m.edFocus = (m.edFocus + 1) % 3
		return m, nil
	case "shift+tab":
		m.edFocus = (m.edFocus + 2) % 3
		return m, nil
	case "ctrl+a":
		if m.edContent != "" && !m.analyzing {
			m.analyzing = true
			m.edAlert = ""
			return m, m.analyzeCmd()
		}
		return m, nil
	case "ctrl+g":
		if m.edContent != "" && !m.imaging {
			m.imaging = true
			m.edAlert = ""
			return m, m.imageCmd()
		}
		return m, nil
	case "ctrl+s":
		if m.edContent != "" {
			m.saveEntry()
		}
		return m, nil
	case "left", "up":
		if m.edFocus == focusMood {
			m.edMood = (m.edMood + len(journal.AllMoods) - 1) % len(journal.AllMoods)
		}
		return m, nil
	case "right", "down":
		if m.edFocus == focusMood {
			m.edMood = (m.edMood + 1) % len(journal.AllMoods)
		}
		return m, nil
	case "enter":
		switch m.edFocus {
		case focusLocation:
			m.edFocus = focusContent
		case focusContent:
			m.edContent += "\n"
		}
		return m, nil
	case "backspace":
		switch m.edFocus {
		case focusLocation:
			m.edLocation = trimLastRune(m.edLocation)
		case focusContent:
			m.edContent = trimLastRune(m.edContent)
		}
		return m, nil
	}
	if text, ok := textInput(k); ok {
		switch m.edFocus {
		case focusLocation:
			m.edLocation += text
		case focusContent:
			m.edContent += text
		}
	}
	return m, nil
}

func (m model) handleArchiveKey(k string) (tea.Model, tea.Cmd) {
	filtered := journal.Filter(m.st.Entries, m.searchTerm)
	switch k {
	case "up":
		if m.archiveIndex > 0 {
			m.archiveIndex--
		}
		return m, nil
	case "down":
		if m.archiveIndex < len(filtered)-1 {
			m.archiveIndex++
		}
		return m, nil
	case "enter":
		if len(filtered) > 0 {
			m.archiveDetail = !m.archiveDetail
		}
		return m, nil
	case "backspace":
		m.searchTerm = trimLastRune(m.searchTerm)
		m.archiveIndex = 0
		return m, nil
	}
	if text, ok := textInput(k); ok {
		m.searchTerm += text
		m.archiveIndex = 0
	}
	return m, nil
}

func (m model) handleCraftingKey(k string) (tea.Model, tea.Cmd) {
	inventory := journal.Inventory(m.st.Entries)
	switch k {
	case "up":
		if m.craftCursor > 0 {
			m.craftCursor--
		}
	case "down":
		if m.craftCursor < len(inventory)-1 {
			m.craftCursor++
		}
	case "enter":
		if m.craftCursor < len(inventory) {
			m.stageIngredient(inventory[m.craftCursor])
		}
	case "1", "2", "3":
		idx := int(k[0] - '1')
		if idx < len(m.workbench) && !m.crafting {
			m.workbench = append(m.workbench[:idx], m.workbench[idx+1:]...)
			m.craftNotice = ""
		}
	case "c":
		if len(m.workbench) >= 2 && !m.crafting {
			m.crafting = true
			m.craftNotice = ""
			return m, m.craftCmd()
		}
	}
	return m, nil
}

func (m model) handleChatKey(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "enter":
		message := strings.TrimSpace(m.chatInput)
		if message == "" || m.chatBusy {
			return m, nil
		}
		history := append([]gemini.Message{}, m.chatLog...)
		m.chatLog = append(m.chatLog, gemini.Message{Role: "user", Text: message})
		m.chatInput = ""
		m.chatBusy = true
		return m, m.chatCmd(history, message)
	case "backspace":
		m.chatInput = trimLastRune(m.chatInput)
		return m, nil
	}
	if text, ok := textInput(k); ok && !m.chatBusy {
		m.chatInput += text
	}
	return m, nil
}

// Mutations -------------------------------------------------------------------

// stageIngredient adds an inventory item to the workbench. Already-staged
// items and a full bench are no-ops.
func (m *model) stageIngredient(item string) {
	if len(m.workbench) >= 3 || m.crafting {
		return
	}
	for _, staged := range m.workbench {
		if staged == item {
			return
		}
	}
	m.workbench = append(m.workbench, item)
	m.craftNotice = ""
}

func (m *model) handleCraftResult(msg craftMsg) {
	m.crafting = false
	if msg.err != nil {
		m.craftOK = false
		m.craftNotice = "Hệ thống bị lỗi. Không thể chế tạo."
		return
	}
	if !msg.res.Success {
		m.craftOK = false
		if msg.res.Description != "" {
			m.craftNotice = msg.res.Description
		} else {
			m.craftNotice = "Kết hợp thất bại. Không tạo ra vật phẩm hữu ích."
		}
		return
	}
	item := journal.NewCraftedItem(msg.res.ItemName, msg.res.Description, msg.res.Utility, msg.used, m.now())
	m.st.AddCraftedItem(item)
	m.persist()
	m.workbench = nil
	m.craftOK = true
	m.craftNotice = "Chế tạo thành công!"
}

// saveEntry commits the draft, clears the form and jumps to the archive.
func (m *model) saveEntry() {
	e := journal.NewEntry(len(m.st.Entries)+1, m.edContent, strings.TrimSpace(m.edLocation), journal.AllMoods[m.edMood], m.now())
	e.Analysis = m.edAnalysis
	e.ImageURL = m.edImage
	m.st.AddEntry(e)
	m.persist()
	m.edLocation = ""
	m.edContent = ""
	m.edMood = moodIndex(journal.MoodNeutral)
	m.edAnalysis = nil
	m.edImage = ""
	m.edAlert = ""
	m.edFocus = focusLocation
	m.view = viewArchive
}

func (m *model) persist() {
	if m.db == nil {
		return
	}
	if err := m.db.Save(*m.st); err != nil {
		m.status = "Lưu trữ thất bại: " + err.Error()
	} else {
		m.status = ""
	}
}

// Input helpers ---------------------------------------------------------------

// textInput reports whether the key is plain printable input. Space arrives
// as its own key name; everything multi-rune is a control key.
func textInput(k string) (string, bool) {
	if k == " " || k == "space" {
		return " ", true
	}
	runes := []rune(k)
	if len(runes) == 1 && unicode.IsPrint(runes[0]) {
		return string(runes[0]), true
	}
	return "", false
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}
