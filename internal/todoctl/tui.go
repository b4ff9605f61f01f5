package todoctl

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/view"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// listItem adapts a todo to bubbles/list.Item
type listItem struct {
	domain.Todo
}

func (i listItem) Title() string       { return i.Task }
func (i listItem) Description() string { return i.ID }
func (i listItem) FilterValue() string { return i.Task }

type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s\n", prefix, it.Task, mutedStyle.Render(it.CreatedAt.Local().Format("Jan 2 15:04")))
}

// messages posted when a request finishes
type (
	loadedMsg    struct{}
	submittedMsg struct{ ok bool }
	deletedMsg   struct{}
)

type modelTUI struct {
	ctx  context.Context
	view *view.View

	list    list.Model
	ti      textinput.Model
	adding  bool
	pending int
	addErr  string
	width   int
	height  int
}

func newModel(ctx context.Context, v *view.View) modelTUI {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Todos")
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.SetStatusBarItemName("todo", "todos")
	// "d" deletes here, so it cannot also page forward
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown", "f")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, delBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, delBind} }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 500

	// the initial load started by Init is pending
	return modelTUI{ctx: ctx, view: v, list: l, ti: ti, pending: 1, width: 80, height: 24}
}

func runInteractive(ctx context.Context, v *view.View) error {
	p := tea.NewProgram(newModel(ctx, v), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m modelTUI) Init() tea.Cmd {
	return m.load()
}

func (m modelTUI) load() tea.Cmd {
	return func() tea.Msg {
		m.view.Load(m.ctx)
		return loadedMsg{}
	}
}

func (m modelTUI) submit(text string) tea.Cmd {
	return func() tea.Msg {
		return submittedMsg{ok: m.view.Submit(m.ctx, text)}
	}
}

func (m modelTUI) remove(id string) tea.Cmd {
	return func() tea.Msg {
		m.view.Delete(m.ctx, id)
		return deletedMsg{}
	}
}

func (m *modelTUI) sync() tea.Cmd {
	todos := m.view.Todos()
	items := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		items = append(items, listItem{Todo: t})
	}
	return m.list.SetItems(items)
}

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case loadedMsg, deletedMsg, submittedMsg:
		m.pending--
		return m, m.sync()
	}

	if m.adding {
		var cmd tea.Cmd
		if k, isKey := msg.(tea.KeyMsg); isKey {
			switch k.String() {
			case "enter":
				text := m.ti.Value()
				if strings.TrimSpace(text) == "" {
					m.addErr = "Task cannot be empty"
					return m, nil
				}
				m.adding = false
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				m.pending++
				return m, m.submit(text)
			case "esc":
				m.adding = false
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	if k, isKey := msg.(tea.KeyMsg); isKey {
		switch k.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "a":
			m.adding = true
			m.ti.SetValue("")
			m.ti.Focus()
			return m, textinput.Blink
		case "d":
			if it, selected := m.list.SelectedItem().(listItem); selected {
				m.pending++
				return m, m.remove(it.ID)
			}
			return m, nil
		case "r":
			m.pending++
			return m, m.load()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) View() string {
	listHeight := m.height - 6
	if m.adding {
		listHeight -= 3
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(m.width-4, listHeight)

	var b strings.Builder
	if !m.view.Loaded() {
		b.WriteString(mutedStyle.Render("loading..."))
	} else {
		b.WriteString(m.list.View())
	}

	if m.adding {
		title := "Add todo"
		if m.addErr != "" {
			title += "  " + errorStyle.Render(m.addErr)
		}
		b.WriteString("\n" + panelStyle.Render(title+"\n"+m.ti.View()))
	}

	status := ""
	if m.pending > 0 {
		status = mutedStyle.Render("working...")
	}
	if msg := m.view.Err(); msg != "" {
		status = errorStyle.Render(msg)
	}
	if status != "" {
		b.WriteString("\n" + status)
	}

	return panelStyle.Render(b.String())
}
