package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Only-Gg/gih/internal/app"
	"github.com/Only-Gg/gih/internal/service"
	"github.com/Only-Gg/gih/internal/store"
	"github.com/Only-Gg/gih/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenLogin screen = iota
	screenDashboard
	screenEditor
	screenViewer
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices

	currentScreen screen
	login         loginModel
	dashboard     dashboardModel
	editor        editorModel
	viewer        viewerModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	logout bool
}

func newAppModel(ctx context.Context, services *service.ClientServices) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		dashboard:     newDashboardModel(),
	}

	if services.AuthService.IsAuthenticated() {
		m.currentScreen = screenDashboard
	}

	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenDashboard {
		return tea.Batch(textinput.Blink, m.cmdLoadPages())
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeletePage(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorf(errorMessage(msg.err, app.MsgLoginFailedGeneric))
			return m, nil
		}
		m.currentScreen = screenDashboard
		m.dashboard = newDashboardModel()
		return m, m.cmdLoadPages()
	case pagesLoadedMsg:
		m.dashboard.loading = false
		if msg.err != nil {
			m.showErrorf(errorMessage(msg.err, app.MsgLoadPagesFailed))
			return m, nil
		}
		m.dashboard.pages = msg.pages
		if m.dashboard.idx >= len(m.dashboard.pages) {
			m.dashboard.idx = len(m.dashboard.pages) - 1
		}
		if m.dashboard.idx < 0 {
			m.dashboard.idx = 0
		}
		return m, nil
	case pageLoadedMsg:
		m.editor.loading = false
		if msg.err != nil {
			m.currentScreen = screenDashboard
			m.showErrorf(errorMessage(msg.err, app.MsgLoadPageFailed))
			return m, nil
		}
		m.editor.populate(msg.page)
		return m, nil
	case pageSavedMsg:
		m.editor.submitting = false
		if msg.err != nil {
			fallback := app.MsgCreateFailed
			if m.editor.editing {
				fallback = app.MsgUpdateFailed
			}
			m.showErrorf(errorMessage(msg.err, fallback))
			return m, nil
		}
		m.currentScreen = screenDashboard
		if m.editor.editing {
			m.dashboard.status = app.MsgPageUpdated
		} else {
			m.dashboard.status = app.MsgPageCreated
		}
		m.dashboard.loading = true
		return m, tea.Batch(m.cmdLoadPages(), cmdClearStatus())
	case pageDeletedMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			m.showErrorf(errorMessage(msg.err, app.MsgDeleteFailed))
			return m, nil
		}
		// The page is gone server-side; drop it from the list in place
		// instead of reloading everything.
		m.dashboard.removePage(msg.pageID)
		m.dashboard.status = app.MsgPageDeleted
		return m, cmdClearStatus()
	case mediaUploadedMsg:
		m.editor.uploading = false
		if msg.err != nil {
			m.showErrorf(errorMessage(msg.err, app.MsgFileUploadFailed))
			return m, nil
		}
		memory := msg.memory
		memory.Caption = strings.TrimSpace(m.editor.mediaInputs[1].Value())
		m.editor.memories = append(m.editor.memories, memory)
		m.editor.addingMedia = false
		m.editor.status = app.MsgFileUploaded
		return m, cmdClearStatus()
	case unlockDoneMsg:
		m.viewer.verifying = false
		if msg.err != nil {
			m.showErrorf(errorMessage(msg.err, app.MsgVerifyFailedGeneric))
			return m, nil
		}
		m.viewer.unlock(msg.page)
		return m, nil
	case linkCopiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.dashboard.status = app.MsgLinkCopied
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.dashboard.status = ""
		m.editor.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenEditor:
		return m.updateEditor(msg)
	case screenViewer:
		return m.updateViewer(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenDashboard:
		body = m.dashboard.View()
	case screenEditor:
		body = m.editor.View()
	case screenViewer:
		body = m.viewer.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login, +1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusNextLogin(m.login, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			username := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if username == "" || password == "" {
				m.showErrorf(app.MsgInvalidCredentials)
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.dashboard.idx > 0 {
			m.dashboard.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.dashboard.idx < len(m.dashboard.pages)-1 {
			m.dashboard.idx++
		}
	case key.Matches(keyMsg, keys.newPage):
		m.editor = newEditorModel(nil)
		m.currentScreen = screenEditor
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit):
		page, ok := m.dashboard.current()
		if !ok {
			return m, nil
		}
		m.editor = newEditorModel(&page)
		m.editor.loading = true
		m.currentScreen = screenEditor
		return m, tea.Batch(textinput.Blink, m.cmdLoadPage(page.ID))
	case key.Matches(keyMsg, keys.preview):
		page, ok := m.dashboard.current()
		if !ok {
			return m, nil
		}
		m.viewer = newViewerModel(page.ID)
		m.currentScreen = screenViewer
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.copy):
		page, ok := m.dashboard.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdCopyLink(page)
	case key.Matches(keyMsg, keys.delete):
		page, ok := m.dashboard.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = page.Title
		m.pendingDelete = page.ID
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		m.dashboard.loading = true
		return m, m.cmdLoadPages()
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

// errorMessage picks the user-facing text for err: business rejections carry
// their own wording, everything else falls back to the generic message.
func errorMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, service.ErrWrongCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, service.ErrWrongPagePassword):
		return app.MsgWrongPagePassword
	case errors.Is(err, service.ErrValidationNoMemories):
		return app.MsgNoMemoriesProvided
	case errors.Is(err, store.ErrPageNotFound):
		return app.MsgPageNotFound
	case errors.Is(err, store.ErrPageIDAlreadyExists):
		return app.MsgPageIDTaken
	default:
		return fallback
	}
}

func focusNextLogin(m loginModel, delta int) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m appModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return loginDoneMsg{err: auth.Login(ctx, username, password)}
	}
}

func (m appModel) cmdLoadPages() tea.Cmd {
	ctx := m.ctx
	pages := m.services.PageService
	return func() tea.Msg {
		loaded, err := pages.List(ctx)
		return pagesLoadedMsg{pages: loaded, err: err}
	}
}

func (m appModel) cmdLoadPage(pageID string) tea.Cmd {
	ctx := m.ctx
	pages := m.services.PageService
	return func() tea.Msg {
		page, err := pages.Get(ctx, pageID)
		return pageLoadedMsg{page: page, err: err}
	}
}

func (m appModel) cmdSavePage() tea.Cmd {
	ctx := m.ctx
	pages := m.services.PageService
	editing := m.editor.editing
	pageID := m.editor.pageID
	newID := strings.TrimSpace(m.editor.inputs[editorFieldID].Value())
	draft := m.editor.toDraft()

	return func() tea.Msg {
		if editing {
			page, err := pages.Update(ctx, pageID, draft, newID)
			return pageSavedMsg{page: page, err: err}
		}
		page, err := pages.Create(ctx, draft)
		return pageSavedMsg{page: page, err: err}
	}
}

func (m appModel) cmdDeletePage(pageID string) tea.Cmd {
	ctx := m.ctx
	pages := m.services.PageService
	return func() tea.Msg {
		return pageDeletedMsg{pageID: pageID, err: pages.Delete(ctx, pageID)}
	}
}

func (m appModel) cmdUploadMedia(path string) tea.Cmd {
	ctx := m.ctx
	pages := m.services.PageService
	return func() tea.Msg {
		memory, err := pages.UploadMedia(ctx, path)
		return mediaUploadedMsg{memory: memory, err: err}
	}
}

func (m appModel) cmdUnlock(pageID, password string) tea.Cmd {
	ctx := m.ctx
	viewer := m.services.ViewerService
	return func() tea.Msg {
		page, err := viewer.Unlock(ctx, pageID, password)
		return unlockDoneMsg{page: page, err: err}
	}
}

func (m appModel) cmdCopyLink(page models.MemoryPage) tea.Cmd {
	link := m.services.PageService.ShareLink(page)
	return func() tea.Msg {
		return linkCopiedMsg{err: clipboard.WriteAll(link)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
