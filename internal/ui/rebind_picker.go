package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/stoplight/internal/domain"
)

// RebindPickerResult contains the chosen action
type RebindPickerResult struct {
	Action    domain.Action
	Cancelled bool
}

// RebindPicker asks which action to rebind
type RebindPicker struct {
	Completed bool
	form      *huh.Form
	result    RebindPickerResult
}

// NewRebindPicker lists every action with its current combo
func NewRebindPicker(bindings domain.HotkeyMap) *RebindPicker {
	rp := &RebindPicker{result: RebindPickerResult{Action: domain.AllActions[0]}}

	options := make([]huh.Option[domain.Action], 0, len(domain.AllActions))
	for _, action := range domain.AllActions {
		label := action.Help()
		if combo, ok := bindings[action]; ok {
			label = fmt.Sprintf("%s (%s)", label, combo)
		}
		options = append(options, huh.NewOption(label, action))
	}

	rp.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Action]().
				Title("Action to rebind").
				Description("After choosing, press the new key combination").
				Options(options...).
				Value(&rp.result.Action),
		),
	)

	return rp
}

func (rp *RebindPicker) Init() tea.Cmd {
	return rp.form.Init()
}

func (rp *RebindPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			rp.result.Cancelled = true
			rp.Completed = true
			return rp, nil
		}
	}

	form, cmd := rp.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		rp.form = f
	}

	if rp.form.State == huh.StateCompleted {
		rp.Completed = true
		return rp, nil
	}

	return rp, cmd
}

func (rp *RebindPicker) View() string {
	return rp.form.View()
}

// Result returns the picker result
func (rp *RebindPicker) Result() RebindPickerResult {
	return rp.result
}
