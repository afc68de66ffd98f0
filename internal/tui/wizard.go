// Package tui implements the interactive prompt flow behind
// `stackforge init --interactive`.
//
// The wizard is a bubbletea program following The Elm Architecture:
// the Wizard model holds all state, Update reacts to key messages, and
// View renders the current step. Each step either captures text (the
// project name, via bubbles/textinput) or offers a cursor-driven choice
// list. Selecting a template preset short-circuits the per-stack steps,
// matching the flag behavior where --template overrides the stack flags.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessera-labs/stackforge/internal/model"
	"github.com/tessera-labs/stackforge/internal/preset"
)

// step identifies which screen of the wizard is active.
type step int

const (
	stepName step = iota
	stepTemplate
	stepFrontend
	stepBackend
	stepDatabase
	stepDeployment
	stepConfirm
	stepDone
)

// noneChoice is the option offered on every stack step to skip that
// dimension, and on the template step to configure stacks individually.
const noneChoice = "(none)"

// Styles, kept minimal: a highlighted cursor line, a dim help footer,
// and a title bar.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// choice is a single selectable option with an optional description.
type choice struct {
	value string
	desc  string
}

// Wizard is the bubbletea model for the interactive flow.
type Wizard struct {
	step    step
	spec    model.ProjectSpec
	presets []preset.Preset

	nameInput textinput.Model

	choices []choice
	cursor  int

	errMsg    string
	cancelled bool
}

// NewWizard creates the wizard. The defaults spec pre-fills values from
// the config file; presets populate the template step.
func NewWizard(defaults model.ProjectSpec, presets []preset.Preset) *Wizard {
	ti := textinput.New()
	ti.Placeholder = "my-project"
	ti.CharLimit = 64
	ti.Focus()
	ti.SetValue(defaults.Name)

	w := &Wizard{
		step:      stepName,
		spec:      defaults,
		presets:   presets,
		nameInput: ti,
	}
	return w
}

// Init satisfies tea.Model. The cursor blink command keeps the name
// input animated.
func (w *Wizard) Init() tea.Cmd {
	return textinput.Blink
}

// Update satisfies tea.Model and drives the step machine.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Non-key messages (blink ticks, window size) only matter to the
		// text input.
		var cmd tea.Cmd
		w.nameInput, cmd = w.nameInput.Update(msg)
		return w, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		w.cancelled = true
		w.step = stepDone
		return w, tea.Quit
	}

	if w.step == stepName {
		return w.updateName(keyMsg)
	}
	return w.updateChoice(keyMsg)
}

// updateName handles the text-entry step.
func (w *Wizard) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		name := strings.TrimSpace(w.nameInput.Value())
		if err := model.ValidateName(name); err != nil {
			w.errMsg = err.Error()
			return w, nil
		}
		w.errMsg = ""
		w.spec.Name = name
		w.enterStep(stepTemplate)
		return w, nil
	}

	var cmd tea.Cmd
	w.nameInput, cmd = w.nameInput.Update(msg)
	return w, cmd
}

// updateChoice handles cursor movement and selection on list steps.
// "q" only cancels here, not on the name step, where it types a letter.
func (w *Wizard) updateChoice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		w.cancelled = true
		w.step = stepDone
		return w, tea.Quit
	case "up", "k":
		if w.cursor > 0 {
			w.cursor--
		}
	case "down", "j":
		if w.cursor < len(w.choices)-1 {
			w.cursor++
		}
	case "enter":
		return w.selectCurrent()
	}
	return w, nil
}

// selectCurrent applies the highlighted choice and advances the flow.
func (w *Wizard) selectCurrent() (tea.Model, tea.Cmd) {
	if w.step == stepConfirm {
		w.step = stepDone
		return w, tea.Quit
	}

	value := w.choices[w.cursor].value
	if value == noneChoice {
		value = ""
	}

	switch w.step {
	case stepTemplate:
		if value != "" {
			for _, p := range w.presets {
				if p.Name == value {
					p.Apply(&w.spec)
					break
				}
			}
			// A template pins the whole stack; jump straight to confirm.
			w.enterStep(stepConfirm)
			return w, nil
		}
		w.enterStep(stepFrontend)
	case stepFrontend:
		w.spec.Frontend = model.Frontend(value)
		w.enterStep(stepBackend)
	case stepBackend:
		w.spec.Backend = model.Backend(value)
		w.enterStep(stepDatabase)
	case stepDatabase:
		w.spec.Database = model.Database(value)
		w.enterStep(stepDeployment)
	case stepDeployment:
		w.spec.Deployment = model.Deployment(value)
		w.enterStep(stepConfirm)
	}
	return w, nil
}

// enterStep switches to a step and rebuilds its choice list.
func (w *Wizard) enterStep(s step) {
	w.step = s
	w.cursor = 0
	w.choices = w.choicesFor(s)
	w.errMsg = ""

	// A frontend-less and backend-less selection would scaffold nothing;
	// surface that on the confirm screen.
	if s == stepConfirm && !w.spec.HasStack() {
		w.errMsg = "no frontend or backend selected: nothing would be generated"
	}
}

// choicesFor builds the option list for a step.
func (w *Wizard) choicesFor(s step) []choice {
	switch s {
	case stepTemplate:
		choices := []choice{{value: noneChoice, desc: "choose each stack individually"}}
		for _, p := range w.presets {
			choices = append(choices, choice{value: p.Name, desc: p.Description})
		}
		return choices
	case stepFrontend:
		choices := []choice{{value: noneChoice, desc: "no frontend"}}
		for _, f := range model.Frontends() {
			choices = append(choices, choice{value: f.String()})
		}
		return choices
	case stepBackend:
		choices := []choice{{value: noneChoice, desc: "no backend"}}
		for _, b := range model.Backends() {
			choices = append(choices, choice{value: b.String()})
		}
		return choices
	case stepDatabase:
		choices := []choice{{value: noneChoice, desc: "no database"}}
		for _, d := range model.Databases() {
			choices = append(choices, choice{value: d.String()})
		}
		return choices
	case stepDeployment:
		choices := []choice{{value: noneChoice, desc: "no deployment target"}}
		for _, d := range model.Deployments() {
			choices = append(choices, choice{value: d.String()})
		}
		return choices
	case stepConfirm:
		return []choice{{value: "generate", desc: "write the project to disk"}}
	default:
		return nil
	}
}

// View satisfies tea.Model.
func (w *Wizard) View() string {
	if w.step == stepDone {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("stackforge · new project"))
	b.WriteString("\n\n")

	switch w.step {
	case stepName:
		b.WriteString("Project name:\n")
		b.WriteString(w.nameInput.View())
		b.WriteString("\n")
	case stepConfirm:
		b.WriteString(w.summary())
		b.WriteString("\n")
		fallthrough
	default:
		b.WriteString(w.stepTitle())
		b.WriteString("\n")
		for i, c := range w.choices {
			line := "  " + c.value
			if c.desc != "" {
				line += helpStyle.Render("  — " + c.desc)
			}
			if i == w.cursor {
				line = selectedStyle.Render("> " + c.value)
				if c.desc != "" {
					line += helpStyle.Render("  — " + c.desc)
				}
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if w.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(w.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter select · ↑/↓ move · esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// stepTitle returns the heading for the active choice step.
func (w *Wizard) stepTitle() string {
	switch w.step {
	case stepTemplate:
		return "Template:"
	case stepFrontend:
		return "Frontend:"
	case stepBackend:
		return "Backend:"
	case stepDatabase:
		return "Database:"
	case stepDeployment:
		return "Deployment:"
	case stepConfirm:
		return "Ready:"
	default:
		return ""
	}
}

// summary renders the resolved spec on the confirm screen.
func (w *Wizard) summary() string {
	val := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}
	return fmt.Sprintf(
		"  Name:       %s\n  Template:   %s\n  Frontend:   %s\n  Backend:    %s\n  Database:   %s\n  Deployment: %s\n",
		w.spec.Name,
		val(w.spec.Template),
		val(w.spec.Frontend.String()),
		val(w.spec.Backend.String()),
		val(w.spec.Database.String()),
		val(w.spec.Deployment.String()),
	)
}

// Cancelled reports whether the user aborted the flow.
func (w *Wizard) Cancelled() bool {
	return w.cancelled
}

// Spec returns the resolved project spec. Only meaningful when the
// wizard finished without cancellation.
func (w *Wizard) Spec() model.ProjectSpec {
	return w.spec
}

// Run executes the wizard and returns the resolved spec. Returns a
// CLIError with ExitUserCancelled when the user aborts.
func Run(defaults model.ProjectSpec, presets []preset.Preset) (model.ProjectSpec, error) {
	w := NewWizard(defaults, presets)

	p := tea.NewProgram(w)
	final, err := p.Run()
	if err != nil {
		return model.ProjectSpec{}, model.WrapCLIError(model.ExitGeneralError, "interactive prompt failed", err)
	}

	result, ok := final.(*Wizard)
	if !ok || result.Cancelled() {
		return model.ProjectSpec{}, model.NewCLIError(model.ExitUserCancelled, "cancelled")
	}
	return result.Spec(), nil
}
