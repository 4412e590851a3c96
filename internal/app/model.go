package app

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/glamour"
	"github.com/enziog/webTools/internal/i18n"
	"github.com/enziog/webTools/internal/scene"
	"github.com/pkg/browser"

	tea "github.com/charmbracelet/bubbletea"
)

// Links opened from the demo and settings screens.
const (
	CourseURL  = "https://eddyfi.com/academy.html"
	SupportURL = "mailto:enzio.g@qq.com"
)

// statusTimeout is how long a status or error line stays visible.
const statusTimeout = 5 * time.Second

// modalConfirm answers the state machine's clear-all prompt with the choice
// already collected by the confirmation modal.
type modalConfirm struct {
	answer bool
}

func (c *modalConfirm) Confirm(string) bool { return c.answer }

// Model is the root bubbletea model for the webTools TUI.
type Model struct {
	machine *scene.Machine
	text    *i18n.Messages
	confirm *modalConfirm
	open    func(url string) error

	// Form inputs for the active probe or refraction screen. On the probe
	// form the description textarea follows the numeric fields in focus order.
	fields      []numberField
	description textarea.Model
	focus       int

	// List
	listScroll int

	// Clear-all modal
	confirming bool

	// Status
	statusText   string
	errorMessage string
	statusSeq    int

	// Markdown
	markdownStyle string
	markdown      *glamour.TermRenderer

	width  int
	height int
}

// New builds a Model over storage.
func New(storage scene.Storage, text *i18n.Messages, markdownStyle string) Model {
	if text == nil {
		text = i18n.Default()
	}
	confirm := &modalConfirm{}
	return Model{
		machine:       scene.New(storage, confirm, text),
		text:          text,
		confirm:       confirm,
		open:          browser.OpenURL,
		description:   textarea.New(),
		markdownStyle: markdownStyle,
		markdown:      newRenderer(markdownStyle, 72),
	}
}

// Machine exposes the state machine behind the view.
func (m Model) Machine() *scene.Machine { return m.machine }

// Init sets the window title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("webTools")
}

func newRenderer(style string, width int) *glamour.TermRenderer {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		log.Printf("markdown renderer: %v", err)
		return nil
	}
	return r
}

// renderMarkdown renders s with glamour, falling back to the raw text.
func (m Model) renderMarkdown(s string) string {
	if m.markdown == nil || strings.TrimSpace(s) == "" {
		return s
	}
	out, err := m.markdown.Render(s)
	if err != nil {
		return s
	}
	return strings.Trim(out, "\n")
}

// openLinkCmd hands url to the system browser or mail client.
func openLinkCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		return LinkOpenedMsg{URL: url, Err: open(url)}
	}
}

// clearStatusCmd fires after a delay to clear the status line set as seq.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{seq: seq}
	})
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.statusText = text
	m.errorMessage = ""
	return clearStatusCmd(m.statusSeq)
}

func (m *Model) setError(text string) tea.Cmd {
	m.statusSeq++
	m.statusText = ""
	m.errorMessage = text
	return clearStatusCmd(m.statusSeq)
}

// report shows err on the error line. A nil err is a no-op.
func (m *Model) report(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return m.setError(err.Error())
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case LinkOpenedMsg:
		if msg.Err != nil {
			log.Printf("open %s: %v", msg.URL, msg.Err)
			cmd := m.setError(fmt.Sprintf("open %s: %v", msg.URL, msg.Err))
			return m, cmd
		}
		return m, nil

	case ClearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusText = ""
			m.errorMessage = ""
		}
		return m, nil
	}

	// Cursor blink and other input messages.
	cmd := m.updateFocused(msg)
	return m, cmd
}

func (m *Model) resize() {
	w := max(20, min(72, m.width-4))
	m.description.SetWidth(w)
	for i := range m.fields {
		m.fields[i].input.Width = max(10, min(24, m.width-8))
	}
	m.markdown = newRenderer(m.markdownStyle, max(20, m.width-6))
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == KeyCtrlC {
		return m, tea.Quit
	}
	if m.confirming {
		return m.handleConfirmKey(key)
	}

	switch m.machine.Kind() {
	case scene.KindList:
		return m.handleListKey(key)
	case scene.KindProbeForm, scene.KindRefractionForm:
		return m.handleFormKey(msg)
	case scene.KindDemo:
		switch key {
		case KeyOpenCourse:
			return m, openLinkCmd(m.open, CourseURL)
		case KeyEsc:
			return m.switchTo(scene.KindList)
		case KeyQuit, KeyQuitUpper:
			return m, tea.Quit
		}
	case scene.KindSettings:
		switch key {
		case KeyClearAll:
			m.confirming = true
			return m, nil
		case KeyMail:
			return m, openLinkCmd(m.open, SupportURL)
		case KeyEsc:
			return m.switchTo(scene.KindList)
		case KeyQuit, KeyQuitUpper:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleListKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case KeyQuit, KeyQuitUpper:
		return m, tea.Quit
	case KeyProbe:
		return m.switchTo(scene.KindProbeForm)
	case KeyRefraction:
		return m.switchTo(scene.KindRefractionForm)
	case KeyDemo:
		return m.switchTo(scene.KindDemo)
	case KeySettings:
		return m.switchTo(scene.KindSettings)
	case KeyJ, KeyDown:
		if m.listScroll < len(m.machine.Records())-1 {
			m.listScroll++
		}
	case KeyK, KeyUp:
		if m.listScroll > 0 {
			m.listScroll--
		}
	}
	return m, nil
}

func (m Model) handleConfirmKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case KeyYes, KeyYesUpper:
		m.confirming = false
		m.confirm.answer = true
		err := m.machine.Update(scene.ClearAll{})
		m.confirm.answer = false
		m.listScroll = 0
		if err != nil {
			cmd := m.report(err)
			return m, cmd
		}
		cmd := m.setStatus(m.text.Text(i18n.KeyStatusCleared))
		return m, cmd
	case KeyNo, KeyNoUpper, KeyEsc:
		m.confirming = false
		m.confirm.answer = false
		cmd := m.report(m.machine.Update(scene.ClearAll{}))
		return m, cmd
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kind := m.machine.Kind()
	switch msg.String() {
	case KeyEsc:
		return m.switchTo(scene.KindList)
	case KeyTab:
		cmd := m.cycleFocus(1)
		return m, cmd
	case KeyShiftTab:
		cmd := m.cycleFocus(-1)
		return m, cmd
	case KeyCalculate:
		err := m.machine.Update(scene.Calculate{})
		if kind == scene.KindProbeForm {
			m.description.SetValue(m.probeDraft().Description)
		}
		cmd := m.report(err)
		return m, cmd
	case KeySave:
		if kind != scene.KindProbeForm {
			return m, nil
		}
		err := m.machine.Update(scene.Save{})
		m.resetInputs()
		if err != nil {
			cmd := m.report(err)
			return m, cmd
		}
		cmd := m.setStatus(m.text.Text(i18n.KeyStatusSaved))
		return m, cmd
	}
	cmd := m.updateFocused(msg)
	return m, cmd
}

// switchTo moves the machine to kind and rebuilds the form inputs.
func (m Model) switchTo(kind scene.Kind) (tea.Model, tea.Cmd) {
	if err := m.machine.Update(scene.SwitchTo{Target: kind}); err != nil {
		cmd := m.report(err)
		return m, cmd
	}
	m.confirming = false
	m.focus = 0
	m.fields = nil
	switch kind {
	case scene.KindProbeForm:
		m.fields = probeFields()
		m.description = textarea.New()
		m.description.ShowLineNumbers = false
		m.description.SetHeight(3)
	case scene.KindRefractionForm:
		m.fields = refractionFields()
	case scene.KindList:
		m.listScroll = 0
	}
	if m.width > 0 {
		m.resize()
	}
	cmd := m.focusCurrent()
	return m, cmd
}

func (m *Model) resetInputs() {
	for i := range m.fields {
		m.fields[i].input.SetValue("")
		m.fields[i].err = nil
	}
	m.description.SetValue("")
}

// focusables counts the inputs reachable with tab on the active form.
func (m Model) focusables() int {
	n := len(m.fields)
	if m.machine.Kind() == scene.KindProbeForm {
		n++
	}
	return n
}

func (m Model) descriptionFocused() bool {
	return m.machine.Kind() == scene.KindProbeForm && m.focus == len(m.fields)
}

func (m *Model) focusCurrent() tea.Cmd {
	if m.descriptionFocused() {
		return m.description.Focus()
	}
	if m.focus < len(m.fields) {
		return m.fields[m.focus].input.Focus()
	}
	return nil
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	n := m.focusables()
	if n == 0 {
		return nil
	}
	if m.descriptionFocused() {
		m.description.Blur()
	} else if m.focus < len(m.fields) {
		m.fields[m.focus].input.Blur()
	}
	m.focus = (m.focus + delta + n) % n
	return m.focusCurrent()
}

// updateFocused forwards msg to the focused input and sends the edited value
// to the state machine.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	switch m.machine.Kind() {
	case scene.KindProbeForm, scene.KindRefractionForm:
	default:
		return nil
	}

	if m.descriptionFocused() {
		before := m.description.Value()
		var cmd tea.Cmd
		m.description, cmd = m.description.Update(msg)
		if v := m.description.Value(); v != before {
			return tea.Batch(cmd, m.report(m.machine.Update(scene.UpdateDescription{Value: v})))
		}
		return cmd
	}
	if m.focus >= len(m.fields) {
		return nil
	}

	f := &m.fields[m.focus]
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	v := f.input.Value()
	if v == before {
		return cmd
	}
	n, err := parseNumber(m.text.Text(f.label), v)
	if err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			f.err = fe
		}
		return cmd
	}
	f.err = nil
	return tea.Batch(cmd, m.report(m.machine.Update(f.msg(n))))
}
