package ui

import (
	"strings"

	"eatgo/internal/model"
	"eatgo/internal/store"
	"eatgo/internal/util"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formSubmittedMsg is sent when a form asks for submission.
type formSubmittedMsg struct{}

// fieldForm is a set of text inputs whose values are mirrored into the
// store on every edit. The store stays the source of truth for the
// submitted values.
type fieldForm struct {
	dispatcher   store.Dispatcher
	keys         FormKeyMap
	names        []string
	labels       []string
	inputs       []textinput.Model
	focusedField int
	change       func(name, value string) store.Action
}

func (f *fieldForm) nextField() {
	f.inputs[f.focusedField].Blur()
	f.focusedField = (f.focusedField + 1) % len(f.inputs)
	f.inputs[f.focusedField].Focus()
}

func (f *fieldForm) prevField() {
	f.inputs[f.focusedField].Blur()
	f.focusedField--
	if f.focusedField < 0 {
		f.focusedField = len(f.inputs) - 1
	}
	f.inputs[f.focusedField].Focus()
}

// update handles a key press. Enter moves to the next field until the
// last one, where it submits like ctrl+s.
func (f *fieldForm) update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, f.keys.Cancel):
		return func() tea.Msg { return model.FormCancelledMsg{} }
	case msg.String() == "enter" && f.focusedField < len(f.inputs)-1:
		f.nextField()
		return nil
	case key.Matches(msg, f.keys.Save):
		return func() tea.Msg { return formSubmittedMsg{} }
	case key.Matches(msg, f.keys.NextField):
		f.nextField()
		return nil
	case key.Matches(msg, f.keys.PrevField):
		f.prevField()
		return nil
	}

	before := f.inputs[f.focusedField].Value()
	var cmd tea.Cmd
	f.inputs[f.focusedField], cmd = f.inputs[f.focusedField].Update(msg)
	if after := f.inputs[f.focusedField].Value(); after != before {
		f.dispatcher.Dispatch(f.change(f.names[f.focusedField], after))
	}
	return cmd
}

// sync copies store values into inputs that differ, e.g. after the store
// cleared the form.
func (f *fieldForm) sync(values map[string]string) {
	for i, name := range f.names {
		if v := values[name]; f.inputs[i].Value() != v {
			f.inputs[i].SetValue(v)
		}
	}
}

func (f *fieldForm) view(title string, extra []string, width, height int) string {
	fields := []string{TitleStyle.Render(title)}
	for i := range f.inputs {
		fields = append(fields, renderFormField(f.labels[i], f.inputs[i], f.focusedField == i))
	}
	fields = append(fields, extra...)

	return PanelStyle.
		Width(width - 4).
		Height(max(0, height-4)).
		Render(strings.Join(fields, "\n\n"))
}

func renderFormField(label string, input textinput.Model, focused bool) string {
	style := BorderStyle
	if focused {
		style = ActiveBorderStyle
	}

	field := lipgloss.JoinVertical(
		lipgloss.Left,
		LabelStyle.Render(label),
		input.View(),
	)

	return style.Render(field)
}

// LoginFormModel is the email/password form.
type LoginFormModel struct {
	fieldForm
}

// NewLoginFormModel creates a login form prefilled from state.
func NewLoginFormModel(d store.Dispatcher, keys FormKeyMap) *LoginFormModel {
	inputs := make([]textinput.Model, 2)

	// Email
	inputs[0] = textinput.New()
	inputs[0].Placeholder = "tester@example.com"
	inputs[0].Focus()
	inputs[0].CharLimit = 200

	// Password
	inputs[1] = textinput.New()
	inputs[1].Placeholder = "password"
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '•'
	inputs[1].CharLimit = 200

	m := &LoginFormModel{fieldForm{
		dispatcher: d,
		keys:       keys,
		names:      []string{model.LoginFieldEmail, model.LoginFieldPassword},
		labels:     []string{"E-mail", "Password"},
		inputs:     inputs,
		change:     store.ChangeLoginField,
	}}
	m.Sync(d.State())
	return m
}

// Update handles input.
func (m *LoginFormModel) Update(msg tea.KeyMsg) tea.Cmd {
	return m.update(msg)
}

// Sync mirrors the store's login fields into the inputs.
func (m *LoginFormModel) Sync(state model.State) {
	m.sync(map[string]string{
		model.LoginFieldEmail:    state.LoginFields.Email,
		model.LoginFieldPassword: state.LoginFields.Password,
	})
}

// View renders the form.
func (m *LoginFormModel) View(errMsg string, width, height int) string {
	var extra []string
	if errMsg != "" {
		extra = append(extra, ErrorStyle.Render(errMsg))
	}
	return m.view("Log in", extra, width, height)
}

// ReviewFormModel is the score/description form.
type ReviewFormModel struct {
	fieldForm
	restaurantID int64
}

// NewReviewFormModel creates a review form for a restaurant.
func NewReviewFormModel(d store.Dispatcher, keys FormKeyMap, restaurantID int64) *ReviewFormModel {
	inputs := make([]textinput.Model, 2)

	// Score
	inputs[0] = textinput.New()
	inputs[0].Placeholder = "0-5"
	inputs[0].Focus()
	inputs[0].CharLimit = 1

	// Description
	inputs[1] = textinput.New()
	inputs[1].Placeholder = "How was it?"
	inputs[1].CharLimit = 500

	m := &ReviewFormModel{
		fieldForm: fieldForm{
			dispatcher: d,
			keys:       keys,
			names:      []string{model.ReviewFieldScore, model.ReviewFieldDescription},
			labels:     []string{"Score", "Review"},
			inputs:     inputs,
			change:     store.ChangeReviewField,
		},
		restaurantID: restaurantID,
	}
	m.Sync(d.State())
	return m
}

// Update handles input.
func (m *ReviewFormModel) Update(msg tea.KeyMsg) tea.Cmd {
	return m.update(msg)
}

// Sync mirrors the store's review fields into the inputs.
func (m *ReviewFormModel) Sync(state model.State) {
	m.sync(map[string]string{
		model.ReviewFieldScore:       state.ReviewFields.Score,
		model.ReviewFieldDescription: state.ReviewFields.Description,
	})
}

// View renders the form. An out-of-range score is flagged but still
// submitted; the service decides whether to accept it.
func (m *ReviewFormModel) View(state model.State, width, height int) string {
	var extra []string
	if score := state.ReviewFields.Score; score != "" {
		if err := util.ValidateScore(score); err != nil {
			extra = append(extra, ErrorStyle.Render(err.Error()))
		}
	}
	title := "Write a review"
	if state.Restaurant != nil && state.Restaurant.Name != "" {
		title += " · " + util.SanitizeText(state.Restaurant.Name)
	}
	return m.view(title, extra, width, height)
}
