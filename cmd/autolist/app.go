package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/autolist/autoformat"
	"github.com/iw2rmb/autolist/editor"
	"github.com/iw2rmb/autolist/internal/config"
	"github.com/iw2rmb/autolist/internal/document"
)

type appKeys struct {
	Save key.Binding
	Quit key.Binding
	Help key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "toggle help")),
	}
}

// helpKeys joins the application bindings with the editor's for the help
// overlay.
type helpKeys struct {
	app    appKeys
	editor editor.KeyMap
}

func (k helpKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.app.Help, k.app.Save, k.app.Quit}
}

func (k helpKeys) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.app.Save, k.app.Quit, k.app.Help}}, k.editor.FullHelp()...)
}

type savedMsg struct {
	text string
	err  error
}

type configMsg struct {
	cfg config.Config
	err error
}

type memClipboard struct{ text string }

func (c *memClipboard) ReadText() (string, error) { return c.text, nil }

func (c *memClipboard) WriteText(s string) error {
	c.text = s
	return nil
}

// activity is shared with the editor callbacks, which outlive any single
// copy of app.
type activity struct {
	last string
}

func (a *activity) handleIntent(batch editor.IntentBatch) editor.IntentDecision {
	for _, in := range batch.Intents {
		switch p := in.Payload.(type) {
		case editor.AutoformatIntentPayload:
			a.last = describeAction(p.Action)
			log.Printf("autoformat %s at %d: %q -> %q", p.Action.Kind, p.Edit.Range.Location, p.Edit.Text, p.Action.Text)
		case editor.AutoformatErrorPayload:
			a.last = "list edit failed: " + p.Err.Error()
			log.Printf("autoformat %s failed: %v", p.Action.Kind, p.Err)
		}
	}
	return editor.IntentDecision{ApplyLocally: true}
}

func describeAction(act autoformat.Action) string {
	prefix := strings.TrimSpace(act.Marker.Prefix())
	switch act.Kind {
	case autoformat.ActionConvert:
		return "started list " + prefix
	case autoformat.ActionContinue:
		return "continued list " + prefix
	case autoformat.ActionRemove:
		return "ended list"
	default:
		return ""
	}
}

type app struct {
	cfg     config.Config
	path    string
	watcher *config.Watcher

	editor    editor.Model
	clipboard *memClipboard
	activity  *activity

	keys     appKeys
	help     help.Model
	showHelp bool

	savedText string
	status    string
	width     int
	height    int
}

func newApp(cfg config.Config, path, text string, w *config.Watcher) app {
	a := app{
		cfg:       cfg,
		path:      path,
		watcher:   w,
		clipboard: &memClipboard{},
		activity:  &activity{},
		keys:      defaultAppKeys(),
		help:      help.New(),
	}
	a.help.ShowAll = true
	a.editor = editor.New(a.editorConfig(text))
	a.savedText = a.editor.Buffer().Text()
	return a
}

func (a app) editorConfig(text string) editor.Config {
	ec := a.cfg.EditorConfig(text)
	ec.Clipboard = a.clipboard
	ec.MutationMode = editor.EmitIntentsAndMutate
	ec.OnIntent = a.activity.handleIntent
	return ec
}

func (a app) Init() tea.Cmd {
	return a.watchConfig()
}

func (a app) watchConfig() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	w := a.watcher
	return func() tea.Msg {
		cfg, err := w.Next(context.Background())
		return configMsg{cfg: cfg, err: err}
	}
}

func (a app) save() tea.Cmd {
	if a.path == "" {
		return func() tea.Msg { return savedMsg{err: errors.New("no file name")} }
	}
	path, text := a.path, a.editor.Buffer().Text()
	return func() tea.Msg {
		return savedMsg{text: text, err: document.Save(path, text)}
	}
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		// Leave room for the overlay border and padding.
		a.help.Width = maxInt(msg.Width-4, 0)
		a.editor = a.editor.SetSize(msg.Width, maxInt(msg.Height-1, 0))
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Save):
			return a, a.save()
		case key.Matches(msg, a.keys.Help):
			a.showHelp = !a.showHelp
			return a, nil
		}
		a.status = ""

	case savedMsg:
		if msg.err != nil {
			a.status = "save failed: " + msg.err.Error()
			log.Printf("save %s: %v", a.path, msg.err)
			return a, nil
		}
		a.savedText = msg.text
		a.status = "saved " + filepath.Base(a.path)
		return a, nil

	case configMsg:
		if errors.Is(msg.err, config.ErrWatcherClosed) {
			return a, nil
		}
		if msg.err != nil {
			a.status = "config: " + msg.err.Error()
			log.Printf("config reload: %v", msg.err)
			return a, a.watchConfig()
		}
		a.cfg = msg.cfg
		a.editor = a.editor.SetConfig(a.editorConfig(""))
		a.status = "config reloaded"
		return a, a.watchConfig()
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	base := a.editor.View() + "\n" + a.statusLine()
	if !a.showHelp {
		return base
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(a.help.View(helpKeys{app: a.keys, editor: a.editor.Config().KeyMap}))
	return overlay.Composite(box, base, overlay.Center, overlay.Center, 0, 0)
}

func (a app) statusLine() string {
	b := a.editor.Buffer()

	name := "[scratch]"
	if a.path != "" {
		name = filepath.Base(a.path)
	}
	if b.Text() != a.savedText {
		name += " +"
	}

	line, col := lineCol(b.Runes(), b.Cursor())
	msg := a.status
	if msg == "" {
		msg = a.activity.last
	}

	left := fmt.Sprintf(" %s  Ln %d, Col %d", name, line, col)
	right := msg + " "
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().Reverse(true).Render(left + strings.Repeat(" ", gap) + right)
}

// lineCol returns the 1-based line and column of rune offset off.
func lineCol(text []rune, off int) (int, int) {
	line, col := 1, 1
	for i := 0; i < off && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
