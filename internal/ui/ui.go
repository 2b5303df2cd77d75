// Package ui implements the terminal client: a Bubble Tea model over a
// remote task snapshot. Every mutation goes to the backend and is
// followed by a full re-fetch before the list re-renders.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/api"
	"taskdeck/internal/config"
	"taskdeck/internal/notify"
	"taskdeck/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirmDelete
	modeDateFilter
)

// snapshotMsg carries the result of a full re-fetch.
type snapshotMsg struct {
	tasks []task.Task
	err   error
}

// mutationMsg carries the result of a write. On success the model
// schedules a re-fetch before showing anything new.
type mutationMsg struct {
	verb string
	err  error
}

type Model struct {
	svc      api.Service
	cfg      config.Config
	cfgPath  string
	notifier notify.Notifier
	now      func() time.Time

	theme        Theme
	tasks        []task.Task
	cursor       int
	mode         mode
	showCalendar bool
	filter       task.Status
	filterDate   string

	input      textinput.Model
	form       *formState
	spin       spinner.Model
	loading    bool
	loaded     bool
	loadErr    string
	status     string
	confirmDel *task.Task
	reminders  *task.ReminderLog
}

// New builds the model. The notifier is injectable for tests.
func New(svc api.Service, cfg config.Config, cfgPath string, notifier notify.Notifier) Model {
	ti := textinput.New()
	ti.Placeholder = "Task"
	ti.CharLimit = 256
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		svc:       svc,
		cfg:       cfg,
		cfgPath:   cfgPath,
		notifier:  notifier,
		now:       time.Now,
		theme:     themeByName(cfg.Theme),
		filter:    task.ParseStatus(cfg.DefaultFilter),
		input:     ti,
		spin:      sp,
		loading:   true,
		status:    "Press 'a' to add, space to toggle, 'd' to delete.",
		reminders: task.NewReminderLog(),
	}
}

// Run starts the program and blocks until the user quits.
func Run(svc api.Service, cfg config.Config, cfgPath string) error {
	var notifier notify.Notifier = notify.Desktop{}
	if !cfg.Notifications {
		notifier = notify.Discard{}
	}
	program := tea.NewProgram(New(svc, cfg, cfgPath, notifier))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchCmd())
}

func (m Model) fetchCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		tasks, err := svc.ListTasks(context.Background())
		return snapshotMsg{tasks: tasks, err: err}
	}
}

func (m Model) createCmd(nt api.NewTask) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		_, err := svc.CreateTask(context.Background(), nt)
		return mutationMsg{verb: "added", err: err}
	}
}

func (m Model) updateCmd(t task.Task, verb string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		_, err := svc.UpdateTask(context.Background(), t)
		return mutationMsg{verb: verb, err: err}
	}
}

func (m Model) deleteCmd(id int64) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		err := svc.DeleteTask(context.Background(), id)
		return mutationMsg{verb: "deleted", err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case snapshotMsg:
		m.loading = false
		if msg.err != nil {
			if !m.loaded {
				// Initial load failure: explicit error state, no list.
				m.loadErr = msg.err.Error()
				return m, nil
			}
			// Later refresh failure: keep the previous snapshot.
			m.status = "Refresh failed: " + msg.err.Error()
			return m, nil
		}
		m.loaded = true
		m.loadErr = ""
		m.tasks = msg.tasks
		m.cursor = clampCursor(m.cursor, len(m.visible()))
		m.announceReminders()
		return m, nil

	case mutationMsg:
		if msg.err != nil {
			m.loading = false
			m.status = fmt.Sprintf("Failed, task not %s: %v", msg.verb, msg.err)
			return m, nil
		}
		m.status = "Task " + msg.verb
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.fetchCmd())

	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateFormMode(msg)
		case modeConfirmDelete:
			return m.updateDeleteConfirm(msg.String())
		case modeDateFilter:
			return m.updateDateFilterMode(msg)
		default:
			return m.updateListMode(msg.String())
		}
	}
	return m, nil
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	vis := m.visible()
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		if len(vis) > 0 {
			m.cursor = clampCursor(m.cursor+1, len(vis))
		}
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(vis))
		}
	case m.cfg.Keys.Add:
		m.form = newForm()
		m.mode = modeForm
		m.input.SetValue("")
		m.input.Placeholder = m.form.currentLabel()
		m.input.Focus()
		m.status = "Add task: enter to advance, esc to cancel"
	case m.cfg.Keys.Edit:
		if len(vis) == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		m.form = formFromTask(vis[m.cursor])
		m.mode = modeForm
		m.input.SetValue(m.form.currentValue())
		m.input.Placeholder = m.form.currentLabel()
		m.input.Focus()
		m.status = "Edit task: tab to move, enter to save/next, esc to cancel"
	case m.cfg.Keys.Toggle:
		if len(vis) == 0 {
			return m, nil
		}
		t := vis[m.cursor]
		t.Completed = !t.Completed
		verb := "completed"
		if !t.Completed {
			verb = "reopened"
		}
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.updateCmd(t, verb))
	case m.cfg.Keys.Delete:
		if len(vis) == 0 {
			return m, nil
		}
		t := vis[m.cursor]
		m.confirmDel = &t
		m.mode = modeConfirmDelete
		m.status = fmt.Sprintf("Delete %q? y/n", t.Text)
	case m.cfg.Keys.Filter:
		m.filter = nextFilter(m.filter)
		m.cursor = clampCursor(m.cursor, len(m.visible()))
		m.announceReminders()
		m.status = "Filter: " + string(m.filter)
	case m.cfg.Keys.Calendar:
		m.showCalendar = !m.showCalendar
	case m.cfg.Keys.PickDate:
		m.mode = modeDateFilter
		m.input.SetValue(m.filterDate)
		m.input.Placeholder = "YYYY-MM-DD"
		m.input.Focus()
		m.status = "Show tasks due on a date: enter to apply, esc to cancel"
	case m.cfg.Keys.ClearDate:
		if m.filterDate != "" {
			m.filterDate = ""
			m.cursor = clampCursor(m.cursor, len(m.visible()))
			m.status = "Date filter cleared"
		}
	case m.cfg.Keys.Theme:
		return m.toggleTheme()
	case m.cfg.Keys.Refresh:
		m.loading = true
		m.status = "Refreshing..."
		return m, tea.Batch(m.spin.Tick, m.fetchCmd())
	}
	return m, nil
}

func (m Model) updateFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = modeList
		return m, nil
	}
	switch msg.String() {
	case m.cfg.Keys.Cancel, "esc":
		m.form = nil
		m.mode = modeList
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "tab":
		m.form.setCurrentValue(m.input.Value())
		m.form.index = wrapIndex(m.form.index+1, len(formFields()))
		m.syncFormInput()
		return m, nil
	case "shift+tab":
		m.form.setCurrentValue(m.input.Value())
		m.form.index = wrapIndex(m.form.index-1, len(formFields()))
		m.syncFormInput()
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		m.form.setCurrentValue(m.input.Value())
		if m.form.index < len(formFields())-1 {
			m.form.index++
			m.syncFormInput()
			return m, nil
		}
		return m.submitForm()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) syncFormInput() {
	m.input.SetValue(m.form.currentValue())
	m.input.Placeholder = m.form.currentLabel()
	m.status = "Editing " + m.form.currentLabel()
}

// submitForm validates locally; nothing reaches the backend on a
// validation failure.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	nt, problem := m.form.validate()
	if problem != "" {
		m.form.index = 0
		m.syncFormInput()
		m.status = problem
		return m, nil
	}

	form := *m.form
	m.form = nil
	m.mode = modeList
	m.input.Blur()
	m.input.SetValue("")
	m.loading = true

	if form.taskID == 0 {
		return m, tea.Batch(m.spin.Tick, m.createCmd(nt))
	}
	return m, tea.Batch(m.spin.Tick, m.updateCmd(form.asTask(nt), "updated"))
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", m.cfg.Keys.Cancel, "esc":
		m.status = "Delete cancelled"
		m.confirmDel = nil
		m.mode = modeList
		return m, nil
	case "y", "Y":
		if m.confirmDel == nil {
			m.mode = modeList
			return m, nil
		}
		id := m.confirmDel.ID
		m.confirmDel = nil
		m.mode = modeList
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.deleteCmd(id))
	default:
		return m, nil
	}
}

func (m Model) updateDateFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.cfg.Keys.Cancel, "esc":
		m.mode = modeList
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		val := strings.TrimSpace(m.input.Value())
		if val != "" {
			if _, err := time.Parse(task.DateLayout, val); err != nil {
				m.status = "Date must be YYYY-MM-DD"
				return m, nil
			}
		}
		m.filterDate = val
		m.mode = modeList
		m.input.Blur()
		m.input.SetValue("")
		m.cursor = clampCursor(m.cursor, len(m.visible()))
		m.announceReminders()
		if val == "" {
			m.status = "Date filter cleared"
		} else {
			m.status = "Showing tasks due " + val
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.theme.Name == "dark" {
		m.theme = LightTheme()
	} else {
		m.theme = DarkTheme()
	}
	m.cfg.Theme = m.theme.Name
	if err := config.Save(m.cfgPath, m.cfg); err != nil {
		m.status = fmt.Sprintf("Theme is %s (not saved: %v)", m.theme.Name, err)
	} else {
		m.status = "Theme: " + m.theme.Name
	}
	return *m, nil
}

// visible is the post-filter list the user is looking at.
func (m Model) visible() []task.Task {
	return task.Filter(m.tasks, m.filter, m.filterDate)
}

// announceReminders notifies for incomplete tasks in the visible list
// that are due today. The log keeps one notification per task per day.
func (m Model) announceReminders() {
	if m.notifier == nil {
		return
	}
	today := m.now().Format(task.DateLayout)
	due := task.DueToday(m.visible(), today)
	for _, t := range m.reminders.Fresh(due, today) {
		body := fmt.Sprintf("%q is due today!", t.Text)
		if t.DueTime != "" {
			body = fmt.Sprintf("%q is due today at %s!", t.Text, task.FormatClock(t.DueTime))
		}
		// Failures are non-fatal; reminders are best effort.
		_ = m.notifier.Notify("Task Reminder", body)
	}
}

func nextFilter(f task.Status) task.Status {
	switch f {
	case task.StatusAll:
		return task.StatusActive
	case task.StatusActive:
		return task.StatusCompleted
	default:
		return task.StatusAll
	}
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
