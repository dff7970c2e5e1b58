package tui

import "github.com/Only-Gg/gih/models"

type loginDoneMsg struct {
	err error
}

type pagesLoadedMsg struct {
	pages []models.MemoryPage
	err   error
}

type pageLoadedMsg struct {
	page models.MemoryPage
	err  error
}

type pageSavedMsg struct {
	page models.MemoryPage
	err  error
}

type pageDeletedMsg struct {
	pageID string
	err    error
}

type mediaUploadedMsg struct {
	memory models.Memory
	err    error
}

type unlockDoneMsg struct {
	page models.MemoryPage
	err  error
}

type linkCopiedMsg struct {
	err error
}

type clearStatusMsg struct{}

// revealTickMsg drives both the auto-reveal slideshow and the typing
// animation. gen identifies the queue generation it belongs to; ticks from a
// cancelled queue are dropped.
type revealTickMsg struct {
	gen int
}
