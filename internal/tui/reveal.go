package tui

import (
	"time"

	"github.com/Only-Gg/gih/models"
	tea "github.com/charmbracelet/bubbletea"
)

// The reveal sequence of an unlocked page is the welcome message, one step
// per memory, and the final message. Both the auto-reveal slideshow and the
// typing animation of the final message are driven by the same generation
// counted tick chain, so leaving the viewer cancels everything at once.
const (
	autoRevealDelay = 3 * time.Second
	typingDelay     = 80 * time.Millisecond
)

type revealStepKind int

const (
	stepWelcome revealStepKind = iota
	stepMemory
	stepFinal
)

type revealStep struct {
	kind      revealStepKind
	memoryIdx int
}

func buildRevealSequence(page models.MemoryPage) []revealStep {
	steps := make([]revealStep, 0, page.RevealStepCount())
	steps = append(steps, revealStep{kind: stepWelcome})
	for i := range page.Memories {
		steps = append(steps, revealStep{kind: stepMemory, memoryIdx: i})
	}
	steps = append(steps, revealStep{kind: stepFinal})
	return steps
}

func canNext(step, total int) bool {
	return step < total-1
}

func canPrev(step int) bool {
	return step > 0
}

func cmdRevealTick(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return revealTickMsg{gen: gen}
	})
}
