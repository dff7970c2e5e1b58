package tui

import (
	"fmt"
	"strings"

	"github.com/Only-Gg/gih/internal/app"
	"github.com/Only-Gg/gih/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type viewerModel struct {
	pageID    string
	password  textinput.Model
	verifying bool

	unlocked bool
	page     models.MemoryPage
	sequence []revealStep
	step     int
	auto     bool
	typed    int
	gen      int
}

func newViewerModel(pageID string) viewerModel {
	password := textinput.New()
	password.Placeholder = "كلمة المرور"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.Focus()

	return viewerModel{pageID: pageID, password: password}
}

func (m *viewerModel) unlock(page models.MemoryPage) {
	m.unlocked = true
	m.page = page
	m.sequence = buildRevealSequence(page)
	m.step = 0
	m.typed = 0
}

// cancelTimers invalidates every pending reveal and typing tick.
func (m *viewerModel) cancelTimers() {
	m.gen++
	m.auto = false
}

func (m *viewerModel) finalRunes() []rune {
	return []rune(m.page.FinalMessage)
}

func (m appModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(revealTickMsg); ok {
		return m.handleRevealTick(tick)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if !m.viewer.unlocked {
			var cmd tea.Cmd
			m.viewer.password, cmd = m.viewer.password.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if !m.viewer.unlocked {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDashboard
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.viewer.verifying {
				return m, nil
			}
			password := m.viewer.password.Value()
			if password == "" {
				m.showErrorf(app.MsgWrongPagePassword)
				return m, nil
			}
			m.viewer.verifying = true
			return m, m.cmdUnlock(m.viewer.pageID, password)
		}

		var cmd tea.Cmd
		m.viewer.password, cmd = m.viewer.password.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.viewer.cancelTimers()
		m.currentScreen = screenDashboard
		return m, nil
	case key.Matches(keyMsg, keys.right), key.Matches(keyMsg, keys.enter):
		return m.viewerAdvance(false)
	case key.Matches(keyMsg, keys.left):
		if !canPrev(m.viewer.step) {
			return m, nil
		}
		m.viewer.cancelTimers()
		m.viewer.step--
		m.viewer.typed = 0
		return m, nil
	case key.Matches(keyMsg, keys.auto):
		if m.viewer.auto {
			m.viewer.cancelTimers()
			return m, nil
		}
		m.viewer.gen++
		m.viewer.auto = true
		return m, cmdRevealTick(m.viewer.gen, autoRevealDelay)
	}

	return m, nil
}

func (m appModel) viewerAdvance(fromTick bool) (tea.Model, tea.Cmd) {
	if !canNext(m.viewer.step, len(m.viewer.sequence)) {
		return m, nil
	}

	if !fromTick {
		m.viewer.cancelTimers()
	}
	m.viewer.step++
	m.viewer.typed = 0

	// Entering the final step starts the character typing animation.
	if m.viewer.sequence[m.viewer.step].kind == stepFinal && len(m.viewer.finalRunes()) > 0 {
		if !m.viewer.auto {
			m.viewer.gen++
		}
		return m, cmdRevealTick(m.viewer.gen, typingDelay)
	}

	if m.viewer.auto {
		return m, cmdRevealTick(m.viewer.gen, autoRevealDelay)
	}
	return m, nil
}

func (m appModel) handleRevealTick(tick revealTickMsg) (tea.Model, tea.Cmd) {
	if tick.gen != m.viewer.gen || !m.viewer.unlocked {
		return m, nil
	}

	if m.viewer.sequence[m.viewer.step].kind == stepFinal {
		if m.viewer.typed < len(m.viewer.finalRunes()) {
			m.viewer.typed++
			return m, cmdRevealTick(m.viewer.gen, typingDelay)
		}
		m.viewer.auto = false
		return m, nil
	}

	if m.viewer.auto {
		return m.viewerAdvance(true)
	}
	return m, nil
}

func (m viewerModel) View() string {
	if !m.unlocked {
		var b strings.Builder
		b.WriteString("هذه الصفحة محمية بكلمة مرور\n\n")
		b.WriteString("كلمة المرور : [" + m.password.View() + "]\n")
		if m.verifying {
			b.WriteString("\nجاري التحقق...\n")
		}
		return renderPage("صفحة ذكريات: "+m.pageID, strings.TrimRight(b.String(), "\n"), "enter: فتح │ esc: رجوع")
	}

	var b strings.Builder
	step := m.sequence[m.step]

	switch step.kind {
	case stepWelcome:
		b.WriteString(m.page.WelcomeMessage + "\n")
	case stepMemory:
		memory := m.page.Memories[step.memoryIdx]
		b.WriteString(fmt.Sprintf("[%s] %s\n", memoryTypeLabel(memory.Type), memory.URL))
		if memory.Caption != "" {
			b.WriteString("\n" + captionStyle.Render(memory.Caption) + "\n")
		}
	case stepFinal:
		runes := m.finalRunes()
		b.WriteString(string(runes[:m.typed]))
		if m.typed < len(runes) {
			b.WriteString("▌")
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n%d / %d", m.step+1, len(m.sequence)))
	if m.auto {
		b.WriteString("   (عرض تلقائي)")
	}

	hotKeys := viewerHotKeys(m.step, len(m.sequence))
	return renderPage(m.page.Title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func viewerHotKeys(step, total int) string {
	parts := make([]string, 0, 4)
	if canNext(step, total) {
		parts = append(parts, "→: التالي")
	}
	if canPrev(step) {
		parts = append(parts, "←: السابق")
	}
	parts = append(parts, "a: عرض تلقائي", "esc: رجوع")
	return strings.Join(parts, " │ ")
}
