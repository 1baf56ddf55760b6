package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/freefire/internal/model"
	"github.com/idilsaglam/freefire/internal/session"
	"github.com/idilsaglam/freefire/internal/sorting"
	"github.com/idilsaglam/freefire/internal/ui"
)

type mode int

const (
	modeMenu mode = iota
	modeEntry
	modeSearch
	modeResult
)

type action int

const (
	actEnter action = iota
	actSearch
	actSortName
	actSortCategory
	actSortPriority
	actQuit
)

// menuItem adapts a menu action to bubbles/list.Item
type menuItem struct {
	act      action
	shortcut string
	label    string
}

func (i menuItem) FilterValue() string { return i.label }

func menuItems() []list.Item {
	return []list.Item{
		menuItem{actEnter, "1", "Register components"},
		menuItem{actSearch, "2", "Search component by name (after name sort)"},
		menuItem{actSortName, "3", "Sort by name (bubble sort)"},
		menuItem{actSortCategory, "4", "Sort by category (insertion sort)"},
		menuItem{actSortPriority, "5", "Sort by priority (selection sort)"},
		menuItem{actQuit, "0", "Quit and assemble the tower"},
	}
}

// Custom delegate to render each menu entry on a single line
type menuDelegate struct{}

func (d menuDelegate) Height() int                               { return 1 }
func (d menuDelegate) Spacing() int                              { return 0 }
func (d menuDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d menuDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(menuItem)
	line := fmt.Sprintf("%s. %s", it.shortcut, it.label)
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().SymSelected + " "
		line = ui.C(ui.Current().Selected, line)
	}
	fmt.Fprint(w, prefix+line)
}

type keyMap struct {
	choose, quit, next, prev, cancel key.Binding
}

var keys = keyMap{
	choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
	quit:   key.NewBinding(key.WithKeys("q", "0"), key.WithHelp("q", "quit")),
	next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

const (
	fieldName = iota
	fieldCategory
	fieldPriority
	fieldCount
)

type tuiModel struct {
	sess *session.Session
	menu list.Model

	// Entry form
	inputs  [fieldCount]textinput.Model
	focus   int
	pending []model.Component

	query textinput.Model

	mode      mode
	output    string // body of modeResult
	status    string
	statusErr bool
}

func newTUIModel(sess *session.Session) tuiModel {
	l := list.New(menuItems(), menuDelegate{}, 60, 10)
	l.Title = "Choose your strategy"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = ui.Current().Title

	m := tuiModel{sess: sess, menu: l}

	lim := sess.Limits()
	placeholders := [fieldCount]string{"Chip Central", "controle, suporte, propulsao", "1-10"}
	limits := [fieldCount]int{lim.NameMaxLen, lim.CategoryMaxLen, 2}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		m.inputs[i] = ti
	}

	m.query = textinput.New()
	m.query.Prompt = "> "
	m.query.Placeholder = "component name"
	m.query.CharLimit = lim.NameMaxLen
	return m
}

// runInteractive starts the Bubble Tea menu over sess.
func runInteractive(sess *session.Session) error {
	p := tea.NewProgram(newTUIModel(sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetWidth(msg.Width - 4)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.mode {
	case modeEntry:
		return m.updateEntry(msg)
	case modeSearch:
		return m.updateSearch(msg)
	case modeResult:
		if _, isKey := msg.(tea.KeyMsg); isKey {
			m.mode = modeMenu
			m.output = ""
		}
		return m, nil
	}
	return m.updateMenu(msg)
}

func (m tuiModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, isKey := msg.(tea.KeyMsg); isKey {
		switch {
		case key.Matches(km, keys.quit):
			return m, tea.Quit
		case key.Matches(km, keys.choose):
			if it, ok := m.menu.SelectedItem().(menuItem); ok {
				return m.choose(it.act)
			}
			return m, nil
		}
		for _, li := range m.menu.Items() {
			if it, ok := li.(menuItem); ok && km.String() == it.shortcut {
				return m.choose(it.act)
			}
		}
	}
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m tuiModel) choose(act action) (tea.Model, tea.Cmd) {
	m.status, m.statusErr = "", false

	switch act {
	case actQuit:
		return m, tea.Quit
	case actEnter:
		if m.sess.Room() == 0 {
			// Nothing can be added, but registering still invalidates the
			// name order.
			n, err := m.sess.Enter(nil)
			m.setStatus(fmt.Sprintf("registration closed: %d/%d components", n, m.sess.Capacity()), err)
			return m, nil
		}
		m.mode = modeEntry
		m.pending = nil
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		cmd := m.focusField(fieldName)
		return m, cmd
	}

	if m.sess.Len() == 0 {
		m.setStatus("", explain(session.ErrEmptyDataset))
		return m, nil
	}

	switch act {
	case actSearch:
		if m.sess.State() != session.StateSortedByName {
			m.setStatus("", explain(session.ErrNotSortedByName))
			return m, nil
		}
		m.mode = modeSearch
		m.query.SetValue("")
		cmd := m.query.Focus()
		return m, cmd
	case actSortName:
		return m.runSort(sorting.KeyName)
	case actSortCategory:
		return m.runSort(sorting.KeyCategory)
	case actSortPriority:
		return m.runSort(sorting.KeyPriority)
	}
	return m, nil
}

func (m tuiModel) runSort(k sorting.Key) (tea.Model, tea.Cmd) {
	rep, err := m.sess.Sort(k)
	if err != nil {
		m.setStatus("", explain(err))
		return m, nil
	}
	m.output = ui.Report(rep) + "\n" + ui.Table(rep.Items)
	m.mode = modeResult
	m.setStatus(fmt.Sprintf("%s: %d comparisons", rep.Algorithm, rep.Comparisons), nil)
	return m, nil
}

func (m tuiModel) updateEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, isKey := msg.(tea.KeyMsg); isKey {
		switch {
		case key.Matches(km, keys.cancel):
			m.commitEntry()
			return m, nil
		case key.Matches(km, keys.next):
			cmd := m.focusField((m.focus + 1) % fieldCount)
			return m, cmd
		case key.Matches(km, keys.prev):
			cmd := m.focusField((m.focus + fieldCount - 1) % fieldCount)
			return m, cmd
		case key.Matches(km, keys.choose):
			if m.focus < fieldPriority {
				cmd := m.focusField(m.focus + 1)
				return m, cmd
			}
			return m.saveComponent()
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m tuiModel) saveComponent() (tea.Model, tea.Cmd) {
	c := model.Component{
		Name:     strings.TrimSpace(m.inputs[fieldName].Value()),
		Category: strings.TrimSpace(m.inputs[fieldCategory].Value()),
	}
	p, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldPriority].Value()))
	if err != nil {
		p = 0
	}
	c.Priority = p

	if err := c.Validate(m.sess.Limits()); err != nil {
		m.setStatus("", err)
		if errors.Is(err, model.ErrPriorityRange) {
			m.inputs[fieldPriority].SetValue("")
			cmd := m.focusField(fieldPriority)
			return m, cmd
		}
		return m, nil
	}

	m.pending = append(m.pending, c)
	m.setStatus(fmt.Sprintf("%q ready (%d pending)", c.Name, len(m.pending)), nil)
	if len(m.pending) >= m.sess.Room() {
		m.commitEntry()
		return m, nil
	}
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	cmd := m.focusField(fieldName)
	return m, cmd
}

// commitEntry hands the pending components to the session and returns to
// the menu. It runs even with nothing pending.
func (m *tuiModel) commitEntry() {
	n, err := m.sess.Enter(m.pending)
	m.pending = nil
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.mode = modeMenu
	m.setStatus(fmt.Sprintf("registration done: %d components", n), err)
}

func (m tuiModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, isKey := msg.(tea.KeyMsg); isKey {
		switch {
		case key.Matches(km, keys.cancel):
			m.query.Blur()
			m.mode = modeMenu
			return m, nil
		case key.Matches(km, keys.choose):
			m.query.Blur()
			res, err := m.sess.Search(strings.TrimSpace(m.query.Value()))
			if err != nil {
				m.mode = modeMenu
				m.setStatus("", explain(err))
				return m, nil
			}
			m.output = ui.SearchOutcome(res)
			m.mode = modeResult
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

func (m *tuiModel) focusField(i int) tea.Cmd {
	m.focus = i
	for j := range m.inputs {
		if j != i {
			m.inputs[j].Blur()
		}
	}
	return m.inputs[i].Focus()
}

func (m *tuiModel) setStatus(msg string, err error) {
	m.statusErr = err != nil
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = msg
}

func (m tuiModel) View() string {
	th := ui.Current()
	lines := []string{ui.Header(m.sess.Len(), m.sess.Capacity(), m.sess.State()), ""}

	switch m.mode {
	case modeEntry:
		lines = append(lines,
			ui.C(th.Title, fmt.Sprintf("Component #%d (limit %d)", m.sess.Len()+len(m.pending)+1, m.sess.Capacity())),
			"",
			"Name:     "+m.inputs[fieldName].View(),
			"Category: "+m.inputs[fieldCategory].View(),
			"Priority: "+m.inputs[fieldPriority].View(),
			"",
			ui.C(th.Muted, "enter: next/save · tab: move · esc: finish registration"),
		)
	case modeSearch:
		lines = append(lines,
			ui.C(th.Title, "Binary search by name"),
			m.query.View(),
			"",
			ui.C(th.Muted, "enter: search · esc: back"),
		)
	case modeResult:
		lines = append(lines, m.output, "", ui.C(th.Muted, "press any key to return"))
	default:
		lines = append(lines, m.menu.View(), "", ui.C(th.Muted, "enter/1-5: choose · q: quit"))
	}

	if m.status != "" {
		st := th.Success
		if m.statusErr {
			st = th.Error
		}
		lines = append(lines, "", ui.C(st, m.status))
	}
	return ui.Panel(lines)
}
