package form

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/fieldedit/bounds"
	"github.com/iw2rmb/fieldedit/stringedit"
	"github.com/iw2rmb/fieldedit/textfield"
)

const (
	focusedPrompt = "> "
	blurredPrompt = "  "
)

// SubmittedMsg carries the values of a successfully submitted form, keyed by
// field key.
type SubmittedMsg struct {
	Values map[string]any
}

type field struct {
	spec   FieldSpec
	editor stringedit.AnyEditor
	input  textfield.Model
	err    error
}

// Form is a Bubble Tea component editing a list of fields.
type Form struct {
	title  string
	fields []*field
	focus  int

	keys   KeyMap
	styles Styles
	help   help.Model
	log    *zap.Logger

	// canSubmit is false while a gate field is empty.
	canSubmit bool
}

// Build creates the editors and inputs for spec and focuses the first field.
func Build(spec *Spec, opts Options) (*Form, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.KeyMap.isZero() {
		opts.KeyMap = DefaultKeyMap()
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	f := &Form{
		title:  spec.Title,
		keys:   opts.KeyMap,
		styles: styles,
		help:   help.New(),
		log:    opts.Logger,
	}
	for _, fs := range spec.Fields {
		ed, err := NewEditor(fs,
			stringedit.WithLogger(opts.Logger.Named(fs.Key)),
			stringedit.WithLocale(opts.Locale),
		)
		if err != nil {
			return nil, err
		}
		in := textfield.New(textfield.Config{
			Prompt:    blurredPrompt,
			Width:     opts.Width,
			Secure:    ed.Secure(),
			Style:     styles.Field,
			Clipboard: opts.Clipboard,
		})
		if err := ed.Attach(in.Buffer()); err != nil {
			return nil, err
		}
		fd := &field{spec: fs, editor: ed, input: in}
		ed.OnAnyValueEdited(func(any) {
			fd.err = nil
			if fd.spec.Gate {
				f.updateGate()
			}
		})
		f.fields = append(f.fields, fd)
	}
	f.updateGate()
	f.focusField(0)
	return f, nil
}

func (f *Form) Init() tea.Cmd { return nil }

// Update routes navigation keys and forwards the rest to the focused field.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.help.Width = msg.Width
		for _, fd := range f.fields {
			fd.input = fd.input.SetWidth(msg.Width - len(focusedPrompt))
		}
		return nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.keys.Next):
			f.move(1)
			return nil
		case key.Matches(msg, f.keys.Prev):
			f.move(-1)
			return nil
		case key.Matches(msg, f.keys.Cancel):
			f.fields[f.focus].editor.Cancel()
			return nil
		case key.Matches(msg, f.keys.Submit):
			if f.focus < len(f.fields)-1 {
				f.move(1)
				return nil
			}
			return f.Submit()
		}
		fd := f.fields[f.focus]
		var cmd tea.Cmd
		fd.input, cmd = fd.input.Update(msg)
		return cmd
	}
	return nil
}

// Submit validates every field. It returns a command producing SubmittedMsg,
// or nil when a field is invalid or a gate field is empty.
func (f *Form) Submit() tea.Cmd {
	if !f.canSubmit {
		return nil
	}
	f.blurField(f.focus)

	firstInvalid := -1
	for i, fd := range f.fields {
		fd.err = fd.editor.Err()
		if fd.err != nil && firstInvalid < 0 {
			firstInvalid = i
		}
	}
	if firstInvalid >= 0 {
		f.log.Debug("submit blocked", zap.Error(f.Err()))
		f.focusField(firstInvalid)
		return nil
	}
	f.focusField(f.focus)

	values := f.Values()
	f.log.Info("form submitted", zap.Int("fields", len(values)))
	return func() tea.Msg { return SubmittedMsg{Values: values} }
}

// Values returns the current value of every field.
func (f *Form) Values() map[string]any {
	out := make(map[string]any, len(f.fields))
	for _, fd := range f.fields {
		out[fd.spec.Key] = fd.editor.AnyValue()
	}
	return out
}

// Err joins the field errors shown by the form.
func (f *Form) Err() error {
	var errs []error
	for _, fd := range f.fields {
		if fd.err != nil {
			errs = append(errs, &FieldError{Key: fd.spec.Key, Err: fd.err})
		}
	}
	return errors.Join(errs...)
}

func (f *Form) CanSubmit() bool { return f.canSubmit }

func (f *Form) Focused() string { return f.fields[f.focus].spec.Key }

// Editor returns the editor of the field with key, or nil.
func (f *Form) Editor(key string) stringedit.AnyEditor {
	for _, fd := range f.fields {
		if fd.spec.Key == key {
			return fd.editor
		}
	}
	return nil
}

func (f *Form) move(delta int) {
	f.blurField(f.focus)
	f.focusField(bounds.Wrap(f.focus+delta, 0, len(f.fields)-1))
}

// blurField ends editing; the field's error shows from then on.
func (f *Form) blurField(i int) {
	fd := f.fields[i]
	if !fd.input.Focused() {
		return
	}
	fd.input = fd.input.Blur().SetPrompt(blurredPrompt)
	fd.err = fd.editor.Err()
}

func (f *Form) focusField(i int) {
	f.focus = i
	fd := f.fields[i]
	fd.input = fd.input.SetPrompt(focusedPrompt).Focus()
}

func (f *Form) updateGate() {
	f.canSubmit = true
	for _, fd := range f.fields {
		if fd.spec.Gate && fd.editor.IsEmpty() {
			f.canSubmit = false
			return
		}
	}
}

func (f *Form) View() string {
	var sb strings.Builder
	st := f.styles
	if f.title != "" {
		sb.WriteString(st.Title.Render(f.title))
		sb.WriteByte('\n')
	}
	for i, fd := range f.fields {
		label := fd.spec.Label
		if label == "" {
			label = fd.spec.Key
		}
		if i == f.focus {
			sb.WriteString(st.FocusedLabel.Render(label))
		} else {
			sb.WriteString(st.Label.Render(label))
		}
		sb.WriteByte('\n')
		sb.WriteString(fd.input.View())
		sb.WriteByte('\n')
		if fd.err != nil {
			sb.WriteString(st.Error.Render(blurredPrompt + fd.err.Error()))
			sb.WriteByte('\n')
		}
	}
	sb.WriteByte('\n')
	if f.canSubmit {
		sb.WriteString(st.Button.Render("Submit"))
	} else {
		sb.WriteString(st.DisabledButton.Render("Submit"))
	}
	sb.WriteString("\n\n")
	sb.WriteString(f.help.View(f.keys))
	return sb.String()
}
