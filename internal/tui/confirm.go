package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "حذف \"" + m.message + "\"؟\n\n"
	content += "y نعم    n لا"
	return overlayBoxStyle.Render(content)
}
