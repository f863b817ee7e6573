package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vaultpass/passboard/internal/model"
	"github.com/vaultpass/passboard/internal/password"
	"github.com/vaultpass/passboard/internal/service"
)

// copiedIndicatorTTL is how long the "copied" mark stays next to a row.
const copiedIndicatorTTL = 2 * time.Second

const maskedPassword = "••••••••"

type viewState int

const (
	stateList viewState = iota
	stateSearch
	stateForm
	stateConfirmDelete
)

// copiedExpiredMsg hides the copied indicator unless a newer copy happened since.
type copiedExpiredMsg struct {
	seq int
}

// CopyFunc writes text to the system clipboard.
type CopyFunc func(text string) error

// Model is the password dashboard: stats, a filterable credential table and
// the add/edit form with the password generator.
type Model struct {
	ctx       context.Context
	vault     *service.VaultService
	generator *service.GeneratorService
	copy      CopyFunc

	state      viewState
	search     textinput.Model
	categories map[model.Category]bool
	reveal     bool
	rows       []model.CredentialResponse
	stats      model.StatsResponse
	cursor     int

	form          credentialForm
	pendingDelete model.CredentialResponse

	copiedID int64
	copySeq  int
	status   string
	err      error

	listKeys    listKeyMap
	confirmKeys confirmKeyMap
	help        help.Model
	bars        map[password.Tier]progress.Model
	width       int
}

// New builds the dashboard and loads the current credentials.
func New(ctx context.Context, vault *service.VaultService, generator *service.GeneratorService, copyFn CopyFunc) *Model {
	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "website or username"

	m := &Model{
		ctx:         ctx,
		vault:       vault,
		generator:   generator,
		copy:        copyFn,
		search:      search,
		categories:  make(map[model.Category]bool),
		listKeys:    newListKeyMap(),
		confirmKeys: newConfirmKeyMap(),
		help:        help.New(),
		bars:        newStrengthBars(10),
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// filter returns the current search and category selection.
func (m *Model) filter() service.Filter {
	f := service.Filter{Query: m.search.Value()}
	for _, c := range model.Categories() {
		if m.categories[c] {
			f.Categories = append(f.Categories, c)
		}
	}
	return f
}

// refresh reloads the visible rows and the stats cards.
func (m *Model) refresh() {
	rows, err := m.vault.List(m.ctx, m.filter())
	if err != nil {
		m.err = err
		return
	}
	stats, err := m.vault.Stats(m.ctx)
	if err != nil {
		m.err = err
		return
	}

	m.rows, m.stats, m.err = rows, stats, nil
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

func (m *Model) selected() (model.CredentialResponse, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return model.CredentialResponse{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case copiedExpiredMsg:
		if msg.seq == m.copySeq {
			m.copiedID = 0
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case stateSearch:
			return m.updateSearch(msg)
		case stateForm:
			return m.updateForm(msg)
		case stateConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.listKeys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, k.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, k.Search):
		m.state = stateSearch
		return m, m.search.Focus()
	case key.Matches(msg, k.Category):
		idx := int(msg.String()[0] - '1')
		c := model.Categories()[idx]
		m.categories[c] = !m.categories[c]
		m.refresh()
	case key.Matches(msg, k.Reveal):
		m.reveal = !m.reveal
	case key.Matches(msg, k.Clear):
		m.search.SetValue("")
		m.categories = make(map[model.Category]bool)
		m.refresh()
	case key.Matches(msg, k.Add):
		m.form = newCredentialForm()
		m.state = stateForm
		m.status = ""
	case key.Matches(msg, k.Edit):
		if c, ok := m.selected(); ok {
			m.form = editCredentialForm(c)
			m.state = stateForm
			m.status = ""
		}
	case key.Matches(msg, k.Delete):
		if c, ok := m.selected(); ok {
			m.pendingDelete = c
			m.state = stateConfirmDelete
		}
	case key.Matches(msg, k.Copy):
		return m, m.copySelected()
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.search.Blur()
		m.state = stateList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.confirmKeys.Yes):
		if err := m.vault.Delete(m.ctx, m.pendingDelete.ID); err != nil {
			m.err = err
		} else {
			m.status = fmt.Sprintf("Password Deleted: password for %s has been deleted.", m.pendingDelete.Website)
		}
		m.pendingDelete = model.CredentialResponse{}
		m.state = stateList
		m.refresh()
	case key.Matches(msg, m.confirmKeys.No):
		m.pendingDelete = model.CredentialResponse{}
		m.state = stateList
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := m.form.update(msg)

	switch action {
	case formCancel:
		m.state = stateList
	case formGenerate:
		resp, err := m.generator.GenerateWithPolicy(m.form.policy)
		if err != nil {
			m.form.errors[service.FieldPassword] = err.Error()
			break
		}
		m.form.setPassword(resp.Password)
	case formSubmit:
		m.submitForm()
	}
	return m, cmd
}

func (m *Model) submitForm() {
	req := m.form.request()

	var (
		resp model.CredentialResponse
		err  error
	)
	if m.form.editingID != 0 {
		resp, err = m.vault.Update(m.ctx, m.form.editingID, req)
	} else {
		resp, err = m.vault.Create(m.ctx, req)
	}

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		m.form.errors = verr.Fields
		return
	case err != nil:
		m.err = err
		m.state = stateList
		return
	}

	if m.form.editingID != 0 {
		m.status = fmt.Sprintf("Password Updated: password for %s has been updated.", resp.Website)
	} else {
		m.status = fmt.Sprintf("Password Added: new password for %s has been added.", resp.Website)
	}
	m.state = stateList
	m.refresh()
	for i, row := range m.rows {
		if row.ID == resp.ID {
			m.cursor = i
			break
		}
	}
}

func (m *Model) copySelected() tea.Cmd {
	c, ok := m.selected()
	if !ok || m.copy == nil {
		return nil
	}
	if err := m.copy(c.Password); err != nil {
		m.err = fmt.Errorf("copy to clipboard: %w", err)
		return nil
	}

	m.copySeq++
	m.copiedID = c.ID
	m.status = "Copied to clipboard: the password has been copied to your clipboard."
	seq := m.copySeq
	return tea.Tick(copiedIndicatorTTL, func(time.Time) tea.Msg {
		return copiedExpiredMsg{seq: seq}
	})
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Password Manager Dashboard") + "\n\n")
	b.WriteString(m.statsView() + "\n\n")

	switch m.state {
	case stateForm:
		b.WriteString(m.form.view(m.bars))
		b.WriteString("\n" + m.help.ShortHelpView(m.form.keys.ShortHelp()))
	case stateConfirmDelete:
		b.WriteString(m.confirmView())
	default:
		b.WriteString(m.search.View() + "\n")
		b.WriteString(m.categoryBadges() + "\n\n")
		b.WriteString(m.tableView())
		b.WriteString("\n" + tipsView() + "\n")
		b.WriteString(m.help.ShortHelpView(m.listKeys.ShortHelp()))
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()))
	}

	return docStyle.Render(b.String())
}

func (m *Model) statsView() string {
	card := func(title, value, note string) string {
		return cardStyle.Render(title + "\n" + cardValueStyle.Render(value) + "\n" + helpStyle.Render(note))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Password Stats", fmt.Sprintf("%d", m.stats.Total), "Total Passwords"),
		card("Security Score", fmt.Sprintf("%d%%", m.stats.SecurityScore), fmt.Sprintf("%d strong", m.stats.Strong)),
	)
}

var securityTips = []string{
	"Use a unique password for each account",
	"Enable two-factor authentication when available",
	"Regularly update your passwords",
	"Avoid using personal information in your passwords",
}

func tipsView() string {
	lines := make([]string, 0, len(securityTips)+1)
	lines = append(lines, "Security Tips")
	for _, tip := range securityTips {
		lines = append(lines, helpStyle.Render("• "+tip))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) categoryBadges() string {
	badges := make([]string, 0, len(model.Categories()))
	for i, c := range model.Categories() {
		label := fmt.Sprintf("%d %s", i+1, c)
		if m.categories[c] {
			badges = append(badges, activeBadgeStyle.Render(label))
		} else {
			badges = append(badges, inactiveBadgeStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, badges...)
}

const rowFormat = "%-20s %-14s %-14s %-9s %-15s %-10s"

func (m *Model) tableView() string {
	var b strings.Builder
	b.WriteString(headerCellStyle.Render(fmt.Sprintf(rowFormat,
		"Website", "Username", "Password", "Category", "Strength", "Updated")) + "\n")

	if len(m.rows) == 0 {
		b.WriteString(helpStyle.Render("No passwords match.") + "\n")
		return b.String()
	}

	for i, c := range m.rows {
		pw := maskedPassword
		if m.reveal {
			pw = c.Password
		}
		if c.ID == m.copiedID {
			pw = "✓ copied"
		}

		line := fmt.Sprintf("%-20s %-14s %-14s %-9s ",
			truncate(c.Website, 20), truncate(c.Username, 14), truncate(pw, 14), c.Category)
		line += strengthBar(m.bars, c.Strength) + fmt.Sprintf(" %3d%% %-10s", c.Strength, c.LastUpdated)

		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func (m *Model) confirmView() string {
	body := fmt.Sprintf(
		"Are you sure you want to delete this password?\n\nThe password for %s will be permanently removed.\n\n%s",
		m.pendingDelete.Website,
		m.help.ShortHelpView([]key.Binding{m.confirmKeys.Yes, m.confirmKeys.No}),
	)
	return dialogStyle.Render(body)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-1]) + "…"
}
