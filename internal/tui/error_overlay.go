package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "خطأ\n\n" + m.message + "\n\nenter / esc إغلاق"
	return overlayBoxStyle.Render(content)
}
