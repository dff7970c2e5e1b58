package tui

import (
	"fmt"
	"strings"

	"github.com/Only-Gg/gih/internal/app"
	"github.com/Only-Gg/gih/internal/utils"
	"github.com/Only-Gg/gih/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Editor field order: id, title, password, welcome message, final message,
// then the memory list as a pseudo-field.
const (
	editorFieldID = iota
	editorFieldTitle
	editorFieldPassword
	editorFieldWelcome
	editorFieldFinal
	editorFieldMemories
	editorFieldCount
)

type editorModel struct {
	editing bool
	pageID  string
	loading bool

	inputs  []textinput.Model
	welcome textarea.Model
	final   textarea.Model
	focus   int

	memories []models.Memory
	memIdx   int

	addingMedia bool
	mediaInputs []textinput.Model
	mediaFocus  int
	uploading   bool

	editingCaption int
	captionInput   textinput.Model

	submitting bool
	status     string
}

func newEditorModel(page *models.MemoryPage) editorModel {
	id := textinput.New()
	id.Placeholder = "auto"
	id.CharLimit = 64
	id.Width = 40

	title := textinput.New()
	title.Placeholder = "العنوان"
	title.CharLimit = 128
	title.Width = 40

	password := textinput.New()
	password.Placeholder = "كلمة المرور"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	welcome := textarea.New()
	welcome.Placeholder = "رسالة الترحيب"
	welcome.SetWidth(54)
	welcome.SetHeight(3)

	final := textarea.New()
	final.Placeholder = "الرسالة الختامية"
	final.SetWidth(54)
	final.SetHeight(3)

	m := editorModel{
		inputs:         []textinput.Model{id, title, password},
		welcome:        welcome,
		final:          final,
		editingCaption: -1,
	}

	if page != nil {
		m.editing = true
		m.pageID = page.ID
		m.populate(*page)
	}

	// The id field only exists in edit mode; new pages get a generated id
	// from the backend, so create mode starts on the title.
	if m.editing {
		m.focus = editorFieldID
	} else {
		m.focus = editorFieldTitle
	}
	m.inputs[m.focus].Focus()

	return m
}

// nextEditorField advances the focus cycle by delta, skipping the id field
// in create mode where the id is always backend-generated.
func nextEditorField(cur, delta int, editing bool) int {
	next := (cur + delta + editorFieldCount) % editorFieldCount
	if next == editorFieldID && !editing {
		next = (next + delta + editorFieldCount) % editorFieldCount
	}
	return next
}

func (m *editorModel) populate(page models.MemoryPage) {
	m.inputs[editorFieldID].SetValue(page.ID)
	m.inputs[editorFieldTitle].SetValue(page.Title)
	m.welcome.SetValue(page.WelcomeMessage)
	m.final.SetValue(page.FinalMessage)
	m.memories = page.Memories
	if m.memIdx >= len(m.memories) {
		m.memIdx = 0
	}
}

func (m editorModel) toDraft() models.MemoryPageCreate {
	return models.MemoryPageCreate{
		Title:          strings.TrimSpace(m.inputs[editorFieldTitle].Value()),
		Password:       m.inputs[editorFieldPassword].Value(),
		WelcomeMessage: m.welcome.Value(),
		Memories:       m.memories,
		FinalMessage:   m.final.Value(),
	}
}

func removeMemory(memories []models.Memory, idx int) []models.Memory {
	if idx < 0 || idx >= len(memories) {
		return memories
	}
	return append(memories[:idx], memories[idx+1:]...)
}

func moveMemory(memories []models.Memory, idx, delta int) ([]models.Memory, int) {
	target := idx + delta
	if idx < 0 || idx >= len(memories) || target < 0 || target >= len(memories) {
		return memories, idx
	}
	memories[idx], memories[target] = memories[target], memories[idx]
	return memories, target
}

func (m *editorModel) startAddMedia() {
	path := textinput.New()
	path.Placeholder = "/path/to/photo.jpg"
	path.Width = 54
	path.Focus()

	caption := textinput.New()
	caption.Placeholder = "وصف (اختياري)"
	caption.Width = 54

	m.mediaInputs = []textinput.Model{path, caption}
	m.mediaFocus = 0
	m.addingMedia = true
}

func (m *editorModel) startEditCaption() {
	if m.memIdx < 0 || m.memIdx >= len(m.memories) {
		return
	}

	caption := textinput.New()
	caption.Placeholder = "وصف"
	caption.Width = 54
	caption.SetValue(m.memories[m.memIdx].Caption)
	caption.Focus()

	m.captionInput = caption
	m.editingCaption = m.memIdx
}

func (m appModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editor.addingMedia {
		return m.updateEditorAddMedia(msg)
	}
	if m.editor.editingCaption >= 0 {
		return m.updateEditorCaption(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forwardEditorInput(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
		return m, m.cmdLoadPages()
	case key.Matches(keyMsg, keys.tab):
		m.editor.focusField(nextEditorField(m.editor.focus, +1, m.editor.editing))
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.editor.focusField(nextEditorField(m.editor.focus, -1, m.editor.editing))
		return m, nil
	case key.Matches(keyMsg, keys.genID):
		if m.editor.editing {
			m.editor.inputs[editorFieldID].SetValue(utils.RandomPageID())
		}
		return m, nil
	case key.Matches(keyMsg, keys.addMedia):
		m.editor.startAddMedia()
		return m, nil
	case key.Matches(keyMsg, keys.save):
		if m.editor.submitting || m.editor.uploading {
			return m, nil
		}
		if len(m.editor.memories) == 0 {
			m.showErrorf(app.MsgNoMemoriesProvided)
			return m, nil
		}
		m.editor.submitting = true
		return m, m.cmdSavePage()
	}

	if m.editor.focus == editorFieldMemories {
		switch {
		case key.Matches(keyMsg, keys.up):
			if m.editor.memIdx > 0 {
				m.editor.memIdx--
			}
			return m, nil
		case key.Matches(keyMsg, keys.down):
			if m.editor.memIdx < len(m.editor.memories)-1 {
				m.editor.memIdx++
			}
			return m, nil
		case key.Matches(keyMsg, keys.remove):
			m.editor.memories = removeMemory(m.editor.memories, m.editor.memIdx)
			if m.editor.memIdx >= len(m.editor.memories) && m.editor.memIdx > 0 {
				m.editor.memIdx--
			}
			return m, nil
		case key.Matches(keyMsg, keys.moveUp):
			m.editor.memories, m.editor.memIdx = moveMemory(m.editor.memories, m.editor.memIdx, -1)
			return m, nil
		case key.Matches(keyMsg, keys.moveDown):
			m.editor.memories, m.editor.memIdx = moveMemory(m.editor.memories, m.editor.memIdx, +1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.editor.startEditCaption()
			return m, nil
		}
		return m, nil
	}

	return m.forwardEditorInput(msg)
}

func (m appModel) forwardEditorInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.editor.focus {
	case editorFieldWelcome:
		m.editor.welcome, cmd = m.editor.welcome.Update(msg)
	case editorFieldFinal:
		m.editor.final, cmd = m.editor.final.Update(msg)
	case editorFieldMemories:
	default:
		m.editor.inputs[m.editor.focus], cmd = m.editor.inputs[m.editor.focus].Update(msg)
	}
	return m, cmd
}

func (m appModel) updateEditorAddMedia(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.editor.addingMedia = false
			m.editor.uploading = false
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.editor.mediaInputs[m.editor.mediaFocus].Blur()
			m.editor.mediaFocus = (m.editor.mediaFocus + 1) % len(m.editor.mediaInputs)
			m.editor.mediaInputs[m.editor.mediaFocus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.editor.uploading {
				return m, nil
			}
			path := strings.TrimSpace(m.editor.mediaInputs[0].Value())
			if path == "" {
				m.showErrorf(app.MsgFileUploadFailed)
				return m, nil
			}
			m.editor.uploading = true
			return m, m.cmdUploadMedia(path)
		}
	}

	var cmd tea.Cmd
	m.editor.mediaInputs[m.editor.mediaFocus], cmd = m.editor.mediaInputs[m.editor.mediaFocus].Update(msg)
	return m, cmd
}

func (m appModel) updateEditorCaption(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.editor.editingCaption = -1
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			idx := m.editor.editingCaption
			if idx >= 0 && idx < len(m.editor.memories) {
				m.editor.memories[idx].Caption = strings.TrimSpace(m.editor.captionInput.Value())
			}
			m.editor.editingCaption = -1
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor.captionInput, cmd = m.editor.captionInput.Update(msg)
	return m, cmd
}

func (m *editorModel) focusField(next int) {
	switch m.focus {
	case editorFieldWelcome:
		m.welcome.Blur()
	case editorFieldFinal:
		m.final.Blur()
	case editorFieldMemories:
	default:
		m.inputs[m.focus].Blur()
	}

	m.focus = next

	switch next {
	case editorFieldWelcome:
		m.welcome.Focus()
	case editorFieldFinal:
		m.final.Focus()
	case editorFieldMemories:
	default:
		m.inputs[next].Focus()
	}
}

func memoryTypeLabel(t models.MemoryType) string {
	if t == models.MemoryVideo {
		return "فيديو"
	}
	return "صورة"
}

func (m editorModel) View() string {
	title := "صفحة جديدة"
	if m.editing {
		title = "تعديل الصفحة: " + m.pageID
	}

	if m.loading {
		return renderPage(title, "جاري التحميل...", "")
	}

	if m.addingMedia {
		var b strings.Builder
		b.WriteString("المسار : [ " + m.mediaInputs[0].View() + " ]\n")
		b.WriteString("الوصف  : [ " + m.mediaInputs[1].View() + " ]\n")
		if m.uploading {
			b.WriteString("\nجاري الرفع...\n")
		}
		return renderPage("إضافة ذكرى", strings.TrimRight(b.String(), "\n"), "tab: الحقل التالي │ enter: رفع │ esc: إلغاء")
	}

	if m.editingCaption >= 0 {
		body := "الوصف : [ " + m.captionInput.View() + " ]"
		return renderPage("تعديل الوصف", body, "enter: حفظ │ esc: إلغاء")
	}

	var b strings.Builder
	if m.editing {
		b.WriteString("المعرف         : [ " + m.inputs[editorFieldID].View() + " ]\n")
	}
	b.WriteString("العنوان        : [ " + m.inputs[editorFieldTitle].View() + " ]\n")
	b.WriteString("كلمة المرور    : [ " + m.inputs[editorFieldPassword].View() + " ]\n")
	if m.editing {
		b.WriteString(helpStyle.Render("(اتركها فارغة للإبقاء على كلمة المرور الحالية)"))
		b.WriteString("\n")
	}
	b.WriteString("\nرسالة الترحيب:\n" + m.welcome.View() + "\n")
	b.WriteString("\nالرسالة الختامية:\n" + m.final.View() + "\n")

	b.WriteString("\nالذكريات:\n")
	if len(m.memories) == 0 {
		b.WriteString("  (لا توجد ذكريات بعد)\n")
	} else {
		for i, memory := range m.memories {
			cursor := "  "
			if m.focus == editorFieldMemories && i == m.memIdx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%d. [%s] %s", cursor, i+1, memoryTypeLabel(memory.Type), fitText(memory.URL, 40))
			if memory.Caption != "" {
				line += "  " + captionStyle.Render(fitText(memory.Caption, 24))
			}
			b.WriteString(line + "\n")
		}
	}

	if m.submitting {
		b.WriteString("\nجاري الحفظ...\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "tab: تنقل │ ctrl+a: إضافة ذكرى │ ctrl+s: حفظ │ esc: رجوع"
	if m.editing {
		hotKeys = "tab: تنقل │ ctrl+a: إضافة ذكرى │ ctrl+g: معرف عشوائي │ ctrl+s: حفظ │ esc: رجوع"
	}
	if m.focus == editorFieldMemories {
		hotKeys = "↑/↓: اختيار │ enter: الوصف │ ctrl+x: حذف │ ctrl+↑/↓: ترتيب │ ctrl+s: حفظ │ esc: رجوع"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
