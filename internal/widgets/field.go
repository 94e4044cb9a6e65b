package widgets

import (
	"context"
	"fmt"

	"github.com/atomicstack/chatmenu/internal/component"
	"github.com/atomicstack/chatmenu/internal/format/html"
)

// Field handler names.
const (
	HandlerToggle    = "toggle"
	HandlerClear     = "clear"
	HandlerTextInput = "textInput"
)

// Field state keys.
const (
	ValueKey = "value"
)

// Printer renders part of a field from its props and state.
type Printer func(props FieldProps, s component.State) string

// FieldProps configures a Field.
type FieldProps struct {
	Label       string
	Description string
	Placeholder string
	// EmptyValue is shown on the button while no value is set.
	EmptyValue string
	// InputKind is the kind of free-form message accepted while expanded.
	InputKind component.MessageKind
	// InlineValuePrinter renders the value next to the label on the button.
	InlineValuePrinter Printer
	// TextPrinter renders the field's line in the message text.
	TextPrinter Printer
}

// FieldDefaults holds the props used for anything left zero.
var FieldDefaults = FieldProps{
	Placeholder:        "empty",
	EmptyValue:         "—",
	InputKind:          component.KindText,
	InlineValuePrinter: printInlineValue,
	TextPrinter:        printFieldText,
}

func (p FieldProps) withDefaults() FieldProps {
	if p.Placeholder == "" {
		p.Placeholder = FieldDefaults.Placeholder
	}
	if p.EmptyValue == "" {
		p.EmptyValue = FieldDefaults.EmptyValue
	}
	if p.InputKind == 0 {
		p.InputKind = FieldDefaults.InputKind
	}
	if p.InlineValuePrinter == nil {
		p.InlineValuePrinter = FieldDefaults.InlineValuePrinter
	}
	if p.TextPrinter == nil {
		p.TextPrinter = FieldDefaults.TextPrinter
	}
	return p
}

func printInlineValue(props FieldProps, s component.State) string {
	if v := s[ValueKey]; v != nil {
		return fmt.Sprint(v)
	}
	return props.EmptyValue
}

func printFieldText(props FieldProps, s component.State) string {
	label := html.Escape(props.Label)
	expanded := component.Bool(s, component.ExpandedKey)
	if expanded {
		label = html.Underline(label)
	}
	value := html.Italic(html.Escape(props.Placeholder))
	if v := s[ValueKey]; v != nil {
		value = html.Escape(fmt.Sprint(v))
	}
	text := label + ": " + value + "\n"
	if expanded && props.Description != "" {
		text += html.Escape(props.Description) + "\n"
	}
	return text
}

// Field is an expandable form control holding a single value. Tapping its
// button expands it; while expanded it shows a clear button when a value is
// set and asks for the next free-form message, which becomes the value.
type Field struct {
	*component.Base
	component.Toggle

	props FieldProps
}

// NewField mounts a Field.
func NewField(m component.Mount, props FieldProps) *Field {
	f := &Field{props: props.withDefaults()}
	f.Base = component.NewBase(m, f.DefaultState)
	f.Toggle = component.NewToggle(f.Base)
	f.Handle(HandlerToggle, "x", f.onToggle)
	f.Handle(HandlerClear, "d", f.onClear)
	f.Handle(HandlerTextInput, "t", f.onTextInput)
	return f
}

// Props returns the effective props.
func (f *Field) Props() FieldProps { return f.props }

func (f *Field) DefaultState() component.State {
	return component.State{component.ExpandedKey: false, ValueKey: nil}
}

// Value returns the current value, or nil.
func (f *Field) Value() any {
	return f.GetState()[ValueKey]
}

func (f *Field) onToggle(context.Context, component.Event) error {
	f.ToggleExpanded()
	return nil
}

func (f *Field) onClear(context.Context, component.Event) error {
	f.PatchState(component.State{ValueKey: nil})
	return nil
}

func (f *Field) onTextInput(_ context.Context, ev component.Event) error {
	if ev.Message == nil || ev.Message.Text == "" {
		return component.Reject("errors.text-required", nil)
	}
	f.PatchState(component.State{ValueKey: ev.Message.Text})
	f.Collapse()
	return nil
}

func (f *Field) Render(context.Context) (component.RenderResult, error) {
	s := f.GetState()
	toggle, err := f.Button(f.props.Label+": "+f.props.InlineValuePrinter(f.props, s), f.Handler(HandlerToggle))
	if err != nil {
		return component.RenderResult{}, err
	}
	row := []component.Button{toggle}
	if f.IsExpanded() {
		if s[ValueKey] != nil {
			clearBtn, err := f.Button("🗑", f.Handler(HandlerClear))
			if err != nil {
				return component.RenderResult{}, err
			}
			row = append(row, clearBtn)
		}
		f.RequestMessageInput(f.Handler(HandlerTextInput), f.props.InputKind)
	}
	out := component.Empty().Row(row...)
	out.Text = f.props.TextPrinter(f.props, s)
	return out, nil
}
