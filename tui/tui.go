package tui

import (
	"fmt"
	"strings"

	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Fulozz/daily-journal/client"
	"github.com/Fulozz/daily-journal/store"
)

// Screens.
const (
	screenEntries = iota
	screenTasks
)

// List view states. Mutations flip the model to viewMutating until the
// speculative apply lands, which disables the triggering control.
const (
	viewLoading = iota
	viewReady
	viewMutating
)

// Task tabs.
const (
	tabIncomplete = iota
	tabCompleted
	tabAll
)

var taskTabNames = []string{"Incomplete", "Completed", "All"}

type model struct {
	app *App

	screen int
	state  int
	width  int
	height int

	// Snapshots of the visible collections.
	entries         []client.Entry
	tasks           []client.Task
	entriesFallback bool // placeholder dataset substituted
	tasksFallback   bool
	entryCursor     int
	taskCursor      int
	taskTab         int

	// Search.
	searching   bool
	searchInput textinput.Model

	// Create/edit form.
	editing      bool
	editTarget   client.Entry // valid when editing an existing entry
	isEdit       bool
	formStep     int // 0 = title, 1 = content/description
	formError    string
	titleInput   textinput.Model
	contentInput textinput.Model

	// Delete confirmation.
	deleting         bool
	deleteConfirmIdx int // 0 = "Yes" selected, 1 = "No"

	status   string // transient line at the bottom, e.g. a revert notice
	err      error
	quitting bool
}

func initModel(app *App) model {
	search := textinput.New()
	search.Placeholder = "Search"
	search.CharLimit = 128

	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 256

	content := textinput.New()
	content.Placeholder = "Content"
	content.CharLimit = 2048

	return model{
		app:          app,
		state:        viewLoading,
		searchInput:  search,
		titleInput:   title,
		contentInput: content,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.app.loadEntries(),
		m.app.loadTasks(),
		listenEvents(m.app.events),
	)
}

// visibleEntries applies the search filter to the current snapshot.
func (m model) visibleEntries() []client.Entry {
	return store.Filter(m.entries, m.searchInput.Value())
}

// visibleTasks applies the search filter and the active tab.
func (m model) visibleTasks() []client.Task {
	preds := []store.Predicate[client.Task]{}
	switch m.taskTab {
	case tabIncomplete:
		preds = append(preds, func(t client.Task) bool { return !t.Completed })
	case tabCompleted:
		preds = append(preds, func(t client.Task) bool { return t.Completed })
	}
	return store.Filter(m.tasks, m.searchInput.Value(), preds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case errMsg:
		m.err = msg.err
		m.state = viewReady
		return m, nil

	case entriesLoadedMsg:
		m.entries = msg.items
		m.entriesFallback = msg.placeholder
		m.entryCursor = 0
		if m.state == viewLoading {
			m.state = viewReady
		}
		return m, nil

	case tasksLoadedMsg:
		m.tasks = msg.items
		m.tasksFallback = msg.placeholder
		m.taskCursor = 0
		if m.state == viewLoading {
			m.state = viewReady
		}
		return m, nil

	case collectionChangedMsg:
		// Speculative state landed; the control unlocks.
		m.state = viewReady
		m.refreshSnapshots()
		return m, nil

	case syncEventMsg:
		if msg.Unauthorized {
			m.err = fmt.Errorf("session expired, please log in again")
			m.quitting = true
			return m, tea.Sequence(tea.ExitAltScreen, tea.Quit)
		}
		if msg.Err != nil {
			m.status = "sync failed: " + msg.Err.Error()
		}
		// A confirmation may have replaced or reverted records.
		m.refreshSnapshots()
		return m, listenEvents(m.app.events)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// refreshSnapshots re-reads both collections and clamps the cursors.
func (m *model) refreshSnapshots() {
	m.entries = m.app.Entries.List().Snapshot()
	m.tasks = m.app.Tasks.List().Snapshot()
	if n := len(m.visibleEntries()); m.entryCursor >= n && n > 0 {
		m.entryCursor = n - 1
	}
	if n := len(m.visibleTasks()); m.taskCursor >= n && n > 0 {
		m.taskCursor = n - 1
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleFormKey(msg)
	}
	if m.deleting {
		return m.handleDeleteKey(msg)
	}
	if m.searching {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.searching = false
			m.searchInput.Blur()
			if msg.Type == tea.KeyEsc {
				m.searchInput.Reset()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.entryCursor = 0
		m.taskCursor = 0
		return m, cmd
	}

	// Root navigation mode.
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Sequence(tea.ExitAltScreen, tea.Quit)

	case "tab":
		if m.screen == screenEntries {
			m.screen = screenTasks
		} else {
			m.screen = screenEntries
		}
		return m, nil

	case "1":
		m.screen = screenEntries
		return m, nil

	case "2":
		m.screen = screenTasks
		return m, nil

	case "t":
		if m.screen == screenTasks {
			m.taskTab = (m.taskTab + 1) % len(taskTabNames)
			m.taskCursor = 0
		}
		return m, nil

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, nil

	case "r":
		m.state = viewLoading
		return m, tea.Batch(m.app.loadEntries(), m.app.loadTasks())

	case "up", "k":
		if m.screen == screenEntries && m.entryCursor > 0 {
			m.entryCursor--
		}
		if m.screen == screenTasks && m.taskCursor > 0 {
			m.taskCursor--
		}
		return m, nil

	case "down", "j":
		if m.screen == screenEntries && m.entryCursor < len(m.visibleEntries())-1 {
			m.entryCursor++
		}
		if m.screen == screenTasks && m.taskCursor < len(m.visibleTasks())-1 {
			m.taskCursor++
		}
		return m, nil

	case "n":
		m.openForm(false, client.Entry{})
		return m, nil

	case "e":
		if m.screen == screenEntries {
			if items := m.visibleEntries(); len(items) > 0 {
				m.openForm(true, items[m.entryCursor])
			}
		}
		return m, nil

	case "enter", " ":
		if m.screen == screenTasks && m.state == viewReady {
			if items := m.visibleTasks(); len(items) > 0 {
				m.state = viewMutating
				return m, m.app.toggleTask(items[m.taskCursor])
			}
		}
		return m, nil

	case "d":
		if m.screen == screenEntries && len(m.visibleEntries()) > 0 ||
			m.screen == screenTasks && len(m.visibleTasks()) > 0 {
			m.deleteConfirmIdx = 1
			m.deleting = true
		}
		return m, nil
	}

	return m, nil
}

// openForm prepares the create/edit inputs. Tasks reuse the same two-field
// form; the second input holds the description.
func (m *model) openForm(edit bool, target client.Entry) {
	m.isEdit = edit
	m.editTarget = target
	m.formStep = 0
	m.formError = ""
	m.titleInput.Reset()
	m.contentInput.Reset()
	if edit {
		m.titleInput.SetValue(target.Title)
		m.contentInput.SetValue(target.Content)
	}
	if m.screen == screenTasks {
		m.contentInput.Placeholder = "Description (optional)"
	} else {
		m.contentInput.Placeholder = "Content"
	}
	m.contentInput.Blur()
	m.titleInput.Focus()
	m.editing = true
}

func (m model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.formStep == 0 {
			// Blank titles never reach the network.
			if strings.TrimSpace(m.titleInput.Value()) == "" {
				m.formError = "Title cannot be empty"
				return m, nil
			}
			m.formError = ""
			m.formStep = 1
			m.titleInput.Blur()
			m.contentInput.Focus()
			return m, nil
		}
		// Submit. The control stays disabled until the speculative apply
		// lands as collectionChangedMsg.
		if m.state == viewMutating {
			return m, nil
		}
		title := strings.TrimSpace(m.titleInput.Value())
		body := m.contentInput.Value()
		m.editing = false
		m.state = viewMutating
		if m.screen == screenTasks {
			return m, m.app.createTask(title, body)
		}
		if m.isEdit {
			return m, m.app.updateEntry(m.editTarget, title, body)
		}
		return m, m.app.createEntry(title, body)

	case tea.KeyEsc:
		m.editing = false
		m.formStep = 0
		return m, nil
	}

	var cmd tea.Cmd
	if m.formStep == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentInput, cmd = m.contentInput.Update(msg)
	}
	return m, cmd
}

func (m model) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.deleteConfirmIdx = 0
	case "down", "j":
		m.deleteConfirmIdx = 1
	case "enter":
		m.deleting = false
		if m.deleteConfirmIdx != 0 || m.state != viewReady {
			return m, nil
		}
		m.state = viewMutating
		if m.screen == screenEntries {
			items := m.visibleEntries()
			if len(items) == 0 {
				m.state = viewReady
				return m, nil
			}
			return m, m.app.deleteEntry(items[m.entryCursor].ID)
		}
		items := m.visibleTasks()
		if len(items) == 0 {
			m.state = viewReady
			return m, nil
		}
		return m, m.app.deleteTask(items[m.taskCursor].ID)
	case "esc":
		m.deleting = false
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		if m.err != nil {
			return m.err.Error() + "\n"
		}
		return "Journal closed.\n"
	}

	titleText := fmt.Sprintf("Daily Journal — %s", m.app.User.Name)
	titleBar := titleStyle.Width(m.width).Render(titleText)

	var body string
	switch {
	case m.state == viewLoading:
		body = "\n  Loading...\n"
	case m.screen == screenEntries:
		body = m.viewEntries()
	default:
		body = m.viewTasks()
	}

	var overlay string
	if m.editing {
		overlay = m.viewForm()
	} else if m.deleting {
		overlay = m.viewDeleteConfirm()
	}
	if overlay != "" {
		body = body + "\n" + overlay
	}

	statusLine := ""
	if m.err != nil {
		statusLine = errorStyle.Render("Error: " + m.err.Error())
	} else if m.status != "" {
		statusLine = mutedStyle.Render(m.status)
	}

	footerText := "↑/↓ navigate • tab switch view • / search • n new • e edit • d delete • enter toggle • r reload • q quit"
	footerBar := footerStyle.Width(m.width).Render(footerText)

	return titleBar + "\n" + m.viewSearchLine() + "\n" + body + "\n" + statusLine + "\n" + footerBar
}

func (m model) viewSearchLine() string {
	if m.searching {
		return "  " + m.searchInput.View()
	}
	if q := m.searchInput.Value(); q != "" {
		return "  " + mutedStyle.Render("filter: "+q)
	}
	return ""
}

func (m model) viewEntries() string {
	var b strings.Builder
	header := "  Entries"
	if m.entriesFallback {
		header += localStyle.Render("  (offline sample)")
	}
	b.WriteString(subtitleStyle.Render(header))
	b.WriteString("\n\n")

	items := m.visibleEntries()
	if len(items) == 0 {
		b.WriteString("  No entries yet. Press 'n' to write one.\n")
		return b.String()
	}
	for i, entry := range items {
		pointer := "  "
		itemStyle := inactiveStyle
		if i == m.entryCursor {
			pointer = "> "
			itemStyle = selectedStyle
		}
		line := entry.Title
		if entry.Local {
			line += localStyle.Render(" ●")
		}
		b.WriteString(pointer + itemStyle.Render(line) + "\n")
		if i == m.entryCursor {
			b.WriteString(mutedStyle.Render(indentPreview(entry.Content, m.width)) + "\n")
		}
	}
	return b.String()
}

func (m model) viewTasks() string {
	var b strings.Builder

	tabs := make([]string, len(taskTabNames))
	for i, name := range taskTabNames {
		if i == m.taskTab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	header := "  Tasks  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.tasksFallback {
		header += localStyle.Render("  (offline sample)")
	}
	b.WriteString(subtitleStyle.Render(header))
	b.WriteString("\n\n")

	items := m.visibleTasks()
	if len(items) == 0 {
		b.WriteString("  Nothing here. Press 'n' to add a task or 't' to switch tabs.\n")
		return b.String()
	}
	for i, task := range items {
		pointer := "  "
		box := "[ ] "
		itemStyle := inactiveStyle
		if task.Completed {
			box = "[x] "
			itemStyle = doneStyle
		}
		if i == m.taskCursor {
			pointer = "> "
			if !task.Completed {
				itemStyle = selectedStyle
			}
		}
		line := task.Title
		if task.Local {
			line += localStyle.Render(" ●")
		}
		b.WriteString(pointer + box + itemStyle.Render(line) + "\n")
		if i == m.taskCursor && task.DueDate != nil {
			b.WriteString(mutedStyle.Render("      due "+task.DueDate.Format("2006-01-02")) + "\n")
		}
	}
	return b.String()
}

func (m model) viewForm() string {
	var b strings.Builder
	heading := "New Entry"
	if m.screen == screenTasks {
		heading = "New Task"
	}
	if m.isEdit {
		heading = "Edit Entry"
	}
	b.WriteString(subtitleStyle.Render("  " + heading))
	b.WriteString("\n")
	b.WriteString("  " + labelStyle.Render("Title: ") + m.titleInput.View() + "\n")
	secondLabel := "Content: "
	if m.screen == screenTasks {
		secondLabel = "Description: "
	}
	b.WriteString("  " + labelStyle.Render(secondLabel) + m.contentInput.View() + "\n")
	b.WriteString("  (enter to continue/submit, esc to cancel)")
	if m.formError != "" {
		b.WriteString("\n  " + errorStyle.Render(m.formError))
	}
	return b.String()
}

func (m model) viewDeleteConfirm() string {
	var name string
	if m.screen == screenEntries {
		if items := m.visibleEntries(); len(items) > 0 {
			name = items[m.entryCursor].Title
		}
	} else {
		if items := m.visibleTasks(); len(items) > 0 {
			name = items[m.taskCursor].Title
		}
	}
	var b strings.Builder
	b.WriteString(subtitleStyle.Render("  Delete"))
	b.WriteString("\n  " + errorStyle.Render(name) + "\n\n")
	yesOpt, noOpt := "Yes", "No"
	if m.deleteConfirmIdx == 0 {
		yesOpt = dangerSelectedStyle.Render(" >" + yesOpt)
		noOpt = inactiveStyle.Render("  " + noOpt)
	} else {
		yesOpt = inactiveStyle.Render("  " + yesOpt)
		noOpt = selectedStyle.Render(" >" + noOpt)
	}
	b.WriteString(fmt.Sprintf("  %s\n  %s\n", yesOpt, noOpt))
	b.WriteString("  (enter to confirm, esc to cancel, up/down to switch)")
	return b.String()
}

// indentPreview renders the first line of content under the selected item.
func indentPreview(content string, width int) string {
	line := content
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	limit := width - 8
	if limit > 4 && len(line) > limit {
		line = line[:limit-2] + ".."
	}
	return "      " + line
}

// Show creates and starts the Bubble Tea program over app.
func Show(app *App) error {
	p := tea.NewProgram(initModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
