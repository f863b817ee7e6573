package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vaultpass/passboard/internal/model"
	"github.com/vaultpass/passboard/internal/password"
	"github.com/vaultpass/passboard/internal/service"
)

type formField int

const (
	fieldWebsite formField = iota
	fieldUsername
	fieldPassword
	fieldCategory
	fieldLength
	fieldUppercase
	fieldNumbers
	fieldSymbols
	fieldCount
)

// formAction tells the dashboard what the form wants after a key press.
type formAction int

const (
	formNone formAction = iota
	formCancel
	formSubmit
	formGenerate
)

// credentialForm is the add/edit sheet together with the generator options.
type credentialForm struct {
	editingID int64 // 0 while adding
	inputs    [3]textinput.Model
	category  int // index into model.Categories()
	policy    password.Policy
	focus     formField
	reveal    bool
	errors    map[string]string
	keys      formKeyMap
}

func newCredentialForm() credentialForm {
	f := credentialForm{
		policy: password.DefaultPolicy(),
		keys:   newFormKeyMap(),
		errors: map[string]string{},
	}

	placeholders := [3]string{"example.com", "username", "at least 8 characters"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 128
		f.inputs[i] = ti
	}
	f.inputs[fieldPassword].EchoMode = textinput.EchoPassword

	f.category = categoryIndex(model.CategoryPersonal)
	f.setFocus(fieldWebsite)
	return f
}

// editCredentialForm prefills the form from an existing credential.
func editCredentialForm(c model.CredentialResponse) credentialForm {
	f := newCredentialForm()
	f.editingID = c.ID
	f.inputs[fieldWebsite].SetValue(c.Website)
	f.inputs[fieldUsername].SetValue(c.Username)
	f.inputs[fieldPassword].SetValue(c.Password)
	f.category = categoryIndex(c.Category)
	return f
}

func categoryIndex(c model.Category) int {
	for i, cat := range model.Categories() {
		if cat == c {
			return i
		}
	}
	return len(model.Categories()) - 1
}

func (f *credentialForm) request() model.CredentialRequest {
	return model.CredentialRequest{
		Website:  f.inputs[fieldWebsite].Value(),
		Username: f.inputs[fieldUsername].Value(),
		Password: f.inputs[fieldPassword].Value(),
		Category: string(model.Categories()[f.category]),
	}
}

// setPassword places a generated password in the draft and shows it.
func (f *credentialForm) setPassword(pw string) {
	f.inputs[fieldPassword].SetValue(pw)
	f.setReveal(true)
	delete(f.errors, service.FieldPassword)
}

func (f *credentialForm) setReveal(on bool) {
	f.reveal = on
	if on {
		f.inputs[fieldPassword].EchoMode = textinput.EchoNormal
	} else {
		f.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	}
}

func (f *credentialForm) setFocus(field formField) {
	f.focus = field
	for i := range f.inputs {
		if formField(i) == field {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *credentialForm) update(msg tea.Msg) (formAction, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return formNone, nil
	}

	switch {
	case key.Matches(keyMsg, f.keys.Cancel):
		return formCancel, nil
	case key.Matches(keyMsg, f.keys.Submit):
		return formSubmit, nil
	case key.Matches(keyMsg, f.keys.Generate):
		return formGenerate, nil
	case key.Matches(keyMsg, f.keys.Reveal):
		f.setReveal(!f.reveal)
		return formNone, nil
	case key.Matches(keyMsg, f.keys.Next):
		f.setFocus((f.focus + 1) % fieldCount)
		return formNone, nil
	case key.Matches(keyMsg, f.keys.Prev):
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return formNone, nil
	}

	switch f.focus {
	case fieldWebsite, fieldUsername, fieldPassword:
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(keyMsg)
		delete(f.errors, inputErrorKey(f.focus))
		return formNone, cmd
	case fieldCategory:
		n := len(model.Categories())
		switch {
		case key.Matches(keyMsg, f.keys.Left):
			f.category = (f.category + n - 1) % n
		case key.Matches(keyMsg, f.keys.Right):
			f.category = (f.category + 1) % n
		}
	case fieldLength:
		switch {
		case key.Matches(keyMsg, f.keys.Left) && f.policy.Length > password.MinLength:
			f.policy.Length--
			return f.policyChanged(), nil
		case key.Matches(keyMsg, f.keys.Right) && f.policy.Length < password.MaxLength:
			f.policy.Length++
			return f.policyChanged(), nil
		}
	case fieldUppercase, fieldNumbers, fieldSymbols:
		if key.Matches(keyMsg, f.keys.Toggle) {
			f.toggle(f.focus)
			return f.policyChanged(), nil
		}
	}
	return formNone, nil
}

// policyChanged asks for a fresh password when the draft already holds one,
// so the password always matches the options on screen.
func (f *credentialForm) policyChanged() formAction {
	if f.inputs[fieldPassword].Value() == "" {
		return formNone
	}
	return formGenerate
}

func (f *credentialForm) toggle(field formField) {
	switch field {
	case fieldUppercase:
		f.policy.Uppercase = !f.policy.Uppercase
	case fieldNumbers:
		f.policy.Numbers = !f.policy.Numbers
	case fieldSymbols:
		f.policy.Symbols = !f.policy.Symbols
	}
}

func inputErrorKey(field formField) string {
	switch field {
	case fieldWebsite:
		return service.FieldWebsite
	case fieldUsername:
		return service.FieldUsername
	default:
		return service.FieldPassword
	}
}

func (f *credentialForm) view(bars map[password.Tier]progress.Model) string {
	var b strings.Builder

	title := "Add New Password"
	if f.editingID != 0 {
		title = "Edit Password"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	labels := [3]string{"Website", "Username", "Password"}
	for i, label := range labels {
		field := formField(i)
		b.WriteString(f.label(field, label) + f.inputs[i].View() + "\n")
		if msg, ok := f.errors[inputErrorKey(field)]; ok {
			b.WriteString("  " + errorStyle.Render(msg) + "\n")
		}
	}

	score := password.Score(f.inputs[fieldPassword].Value())
	b.WriteString(fmt.Sprintf("%s%s %d%%\n", f.label(-1, "Strength"), strengthBar(bars, score), score))

	b.WriteString(f.label(fieldCategory, "Category") + fmt.Sprintf("< %s >", model.Categories()[f.category]) + "\n")
	if msg, ok := f.errors[service.FieldCategory]; ok {
		b.WriteString("  " + errorStyle.Render(msg) + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("Password Generator") + "\n")
	b.WriteString(f.label(fieldLength, "Length") + lengthSlider(f.policy.Length) + "\n")
	b.WriteString(f.label(fieldUppercase, "Uppercase") + checkbox(f.policy.Uppercase) + "\n")
	b.WriteString(f.label(fieldNumbers, "Numbers") + checkbox(f.policy.Numbers) + "\n")
	b.WriteString(f.label(fieldSymbols, "Symbols") + checkbox(f.policy.Symbols) + "\n")

	return b.String()
}

func (f *credentialForm) label(field formField, text string) string {
	const width = 12
	padded := fmt.Sprintf("%-*s", width, text)
	if field == f.focus {
		return focusedLabelStyle.Render("> " + padded)
	}
	return labelStyle.Render("  " + padded)
}

func lengthSlider(length int) string {
	span := password.MaxLength - password.MinLength
	filled := length - password.MinLength
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", span-filled) + fmt.Sprintf("] %d", length)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
