package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 40
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{username, password}}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("اسم المستخدم : [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("كلمة المرور  : [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[تسجيل الدخول...]\n")
	} else {
		b.WriteString("\n[تسجيل الدخول]\n")
	}

	return renderPage("تسجيل دخول المشرف", strings.TrimRight(b.String(), "\n"), "tab: الحقل التالي │ enter: دخول")
}
