package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/opsdesk/opsdesk/internal/app"
	"github.com/opsdesk/opsdesk/internal/config"
	"github.com/opsdesk/opsdesk/internal/report"
)

// Run starts the interactive menu and blocks until the user quits or the
// context is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	p := tea.NewProgram(newModel(cfg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run menu: %w", err)
	}
	return nil
}

type state int

const (
	stateMenu state = iota
	stateForm
	stateRunning
	stateResult
)

type action int

const (
	actionHealth action = iota
	actionScan
	actionFull
	actionQuit
)

var actionLabels = []string{
	"Check system health (disk/RAM/CPU + services)",
	"Scan a log file for keywords",
	"Full workflow (health + log + export)",
	"Quit",
}

type field struct {
	label string
	input textinput.Model
}

type model struct {
	cfg  config.Config
	keys keyMap

	state  state
	cursor int
	action action
	fields []field
	focus  int

	spin   spinner.Model
	result string
	err    error
}

type resultMsg struct {
	title  string
	report *app.Report
	err    error
}

func newModel(cfg config.Config) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return model{cfg: cfg, keys: defaultKeyMap(), spin: s}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateForm:
			return m.updateForm(msg)
		case stateResult:
			if key.Matches(msg, m.keys.Dismiss) {
				m.state = stateMenu
				m.result = ""
				m.err = nil
			}
			return m, nil
		}
	case spinner.TickMsg:
		if m.state == stateRunning {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	case resultMsg:
		m.state = stateResult
		m.err = msg.err
		if msg.err == nil {
			m.result = renderReport(msg.title, msg.report)
		}
		return m, nil
	}
	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Exit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(actionLabels)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		if action(m.cursor) == actionQuit {
			return m, tea.Quit
		}
		m.action = action(m.cursor)
		m.fields = m.buildForm(m.action)
		m.focus = 0
		if len(m.fields) > 0 {
			m.fields[0].input.Focus()
		}
		m.state = stateForm
	}
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = stateMenu
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		return m.moveFocus(-1), nil
	case key.Matches(msg, m.keys.NextField):
		return m.moveFocus(1), nil
	case key.Matches(msg, m.keys.Confirm):
		if m.focus < len(m.fields)-1 {
			return m.moveFocus(1), nil
		}
		opts, err := m.collectOptions()
		if err != nil {
			m.err = err
			m.state = stateResult
			return m, nil
		}
		m.state = stateRunning
		return m, tea.Batch(m.spin.Tick, runWorkflow(m.action, opts))
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m model) moveFocus(delta int) model {
	next := m.focus + delta
	if next < 0 || next >= len(m.fields) {
		return m
	}
	m.fields[m.focus].input.Blur()
	m.focus = next
	m.fields[m.focus].input.Focus()
	return m
}

func newInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 512
	ti.SetValue(value)
	return ti
}

func (m model) buildForm(a action) []field {
	var fields []field
	if a == actionHealth || a == actionFull {
		fields = append(fields, field{
			label: "Services (comma-separated, blank = skip)",
			input: newInput("sshd, nginx", strings.Join(m.cfg.Services, ", ")),
		})
	}
	if a == actionScan || a == actionFull {
		fields = append(fields,
			field{
				label: "Log file path",
				input: newInput("/var/log/syslog", ""),
			},
			field{
				label: "Keywords (comma-separated)",
				input: newInput("error", strings.Join(m.cfg.Keywords, ", ")),
			},
			field{
				label: "Case-sensitive? (y/N)",
				input: newInput("N", ""),
			},
		)
	}
	fields = append(fields,
		field{
			label: "Export format (xlsx/csv)",
			input: newInput(config.ExportXLSX, m.cfg.Export),
		},
		field{
			label: "Output directory",
			input: newInput("./reports", m.cfg.OutDir),
		},
	)
	return fields
}

func (m model) fieldValue(label string) string {
	for _, f := range m.fields {
		if f.label == label {
			return strings.TrimSpace(f.input.Value())
		}
	}
	return ""
}

func (m model) collectOptions() (app.Options, error) {
	opts := app.FromConfig(m.cfg)

	if m.action == actionHealth || m.action == actionFull {
		opts.Services = config.SplitList(m.fieldValue("Services (comma-separated, blank = skip)"))
	}
	opts.LogPath = m.fieldValue("Log file path")
	if v := m.fieldValue("Keywords (comma-separated)"); v != "" {
		opts.Keywords = config.SplitList(v)
	}
	opts.CaseSensitive = strings.HasPrefix(
		strings.ToLower(m.fieldValue("Case-sensitive? (y/N)")), "y")
	if v := m.fieldValue("Export format (xlsx/csv)"); v != "" {
		opts.Export = strings.ToLower(v)
	}
	if v := m.fieldValue("Output directory"); v != "" {
		opts.OutDir = v
	}

	if opts.Export != config.ExportXLSX && opts.Export != config.ExportCSV {
		return app.Options{}, fmt.Errorf("%w: export must be %q or %q",
			config.ErrInvalid, config.ExportXLSX, config.ExportCSV)
	}
	if (m.action == actionScan || m.action == actionFull) && opts.LogPath == "" {
		return app.Options{}, fmt.Errorf("%w: log file path is required", config.ErrInvalid)
	}
	return opts, nil
}

func runWorkflow(a action, opts app.Options) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		switch a {
		case actionHealth:
			r, err := app.RunHealth(ctx, opts)
			return resultMsg{title: "SYSTEM HEALTH CHECK", report: r, err: err}
		case actionScan:
			r, err := app.RunScan(ctx, opts)
			return resultMsg{title: "LOG SCAN", report: r, err: err}
		default:
			r, err := app.RunFull(ctx, opts)
			return resultMsg{title: "FULL WORKFLOW: HEALTH + LOG + EXPORT", report: r, err: err}
		}
	}
}

func renderReport(title string, r *app.Report) string {
	var sb strings.Builder
	report.WriteHeader(&sb, title)
	if r.ScanErr != nil {
		fmt.Fprintf(&sb, "WARNING: log scan failed (%v); continuing with system health only.\n", r.ScanErr)
	}
	if r.Snapshot != nil {
		report.WriteSnapshot(&sb, r.Snapshot)
	}
	if r.Scan != nil {
		if r.Snapshot != nil {
			report.WriteScanBrief(&sb, r.Scan, 5)
		} else {
			report.WriteScan(&sb, r.Scan, 10)
		}
	}
	report.WriteExported(&sb, r.Exported)
	return sb.String()
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateForm:
		return m.viewForm()
	case stateRunning:
		return fmt.Sprintf("\n %s Working...\n\n%s\n",
			m.spin.View(), styleHelp.Render(" ctrl+c quit"))
	case stateResult:
		return m.viewResult()
	}
	return ""
}

func (m model) viewMenu() string {
	var sb strings.Builder
	sb.WriteString("\n " + styleTitle.Render("IT SUPPORT AUTOMATION TOOLKIT") + "\n\n")
	for i, label := range actionLabels {
		if i == m.cursor {
			sb.WriteString(styleSelected.Render(" > "+label) + "\n")
		} else {
			sb.WriteString("   " + label + "\n")
		}
	}
	sb.WriteString("\n" + styleHelp.Render(" up/down select · enter confirm · q quit") + "\n")
	return sb.String()
}

func (m model) viewForm() string {
	var sb strings.Builder
	sb.WriteString("\n " + styleTitle.Render(actionLabels[m.action]) + "\n\n")
	for i, f := range m.fields {
		label := styleLabel.Render(f.label)
		if i == m.focus {
			label = styleLabelFocus.Render(f.label)
		}
		sb.WriteString(" " + label + "\n " + f.input.View() + "\n\n")
	}
	sb.WriteString(styleHelp.Render(" tab next field · enter run · esc back") + "\n")
	return sb.String()
}

func (m model) viewResult() string {
	if m.err != nil {
		return "\n " + styleError.Render(fmt.Sprintf("ERROR: %v", m.err)) + "\n\n" +
			styleHelp.Render(" enter/esc back to menu") + "\n"
	}
	return "\n" + styleResultFrame.Render(m.result) + "\n " +
		styleDone.Render("Done.") + " " +
		styleHelp.Render("enter/esc back to menu") + "\n"
}
