package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/meeting"
)

const formInputWidth = 32

var formPlaceholders = map[meeting.Field]string{
	meeting.FieldTitle:       "Meeting title",
	meeting.FieldStart:       dateutil.LocalDateTimeLayout,
	meeting.FieldEnd:         dateutil.LocalDateTimeLayout,
	meeting.FieldLocation:    "Room or link",
	meeting.FieldFirstName:   "Organizer first name",
	meeting.FieldLastName:    "Organizer last name",
	meeting.FieldDescription: "Optional",
}

// meetingForm edits a meeting.Draft, one text input per field.
type meetingForm struct {
	inputs []textinput.Model
	focus  int
	err    string
}

func newMeetingForm(styles *Styles, d meeting.Draft) meetingForm {
	inputs := make([]textinput.Model, len(meeting.Fields))
	for i, f := range meeting.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = formPlaceholders[f]
		ti.CharLimit = 256
		ti.Width = formInputWidth
		ti.PlaceholderStyle = styles.ModalPlaceholderStyle
		ti.TextStyle = styles.ModalInputTextStyle
		ti.PromptStyle = styles.ModalInputTextStyle
		ti.Cursor.Style = styles.ModalInputCursorStyle
		ti.Cursor.TextStyle = styles.ModalInputTextStyle
		ti.SetValue(d.Get(f))
		inputs[i] = ti
	}
	form := meetingForm{inputs: inputs}
	form.setFocus(0)
	return form
}

// draft collects the current input values.
func (f meetingForm) draft() meeting.Draft {
	var d meeting.Draft
	for i, field := range meeting.Fields {
		d = d.With(field, f.inputs[i].Value())
	}
	return d
}

func (f *meetingForm) setFocus(i int) {
	n := len(f.inputs)
	if n == 0 {
		return
	}
	i = ((i % n) + n) % n
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	f.focus = i
}

func (f meetingForm) lastField() bool {
	return f.focus == len(f.inputs)-1
}

func (f meetingForm) update(msg tea.Msg) (meetingForm, tea.Cmd) {
	if len(f.inputs) == 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f meetingForm) view(styles *Styles) string {
	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("New meeting"))
	b.WriteString("\n\n")
	for i, field := range meeting.Fields {
		label := field.String()
		if field.Required() {
			label += "*"
		}
		labelStyle := styles.ModalLabelStyle
		if i == f.focus {
			labelStyle = styles.ModalLabelFocusedStyle
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(styles.ModalErrorStyle.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.ModalHintStyle.Render("tab next · enter save · esc cancel"))
	return styles.ModalStyle.Render(b.String())
}
