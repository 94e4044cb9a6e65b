package widgets

import (
	"context"

	"github.com/atomicstack/chatmenu/internal/component"
	"github.com/atomicstack/chatmenu/internal/format/html"
)

// Form handler names.
const (
	HandlerSubmit = "submit"
	HandlerReset  = "reset"
)

// SubmittedKey marks a submitted form.
const SubmittedKey = "submitted"

// DefaultSubmittedText is the marker used when FormProps.SubmittedText is
// empty.
const DefaultSubmittedText = "submitted"

// DefaultFooter is the footer layout used when FormProps.Footer is empty.
const DefaultFooter = "[✅ Submit](submit) [↺ Reset](reset)"

// FormProps configures a Form.
type FormProps struct {
	Title string
	// Footer is a text keyboard layout rendered below the fields. It may
	// reference the submit and reset handlers.
	Footer string
	// SubmittedText is shown in italics below the fields once submitted.
	SubmittedText string
	// OnSubmit runs before the form is marked submitted. Returning a
	// RejectionError keeps the form open.
	OnSubmit func(ctx context.Context, s component.State) error
}

// Form is the root container of a menu message: a title, its children in
// registration order, then a footer keyboard.
type Form struct {
	*component.Base

	props FormProps
}

// NewForm mounts a Form. Children are added by the caller with MakeChild or
// AddChild.
func NewForm(m component.Mount, props FormProps) *Form {
	if props.Footer == "" {
		props.Footer = DefaultFooter
	}
	if props.SubmittedText == "" {
		props.SubmittedText = DefaultSubmittedText
	}
	f := &Form{props: props}
	f.Base = component.NewBase(m, f.DefaultState)
	f.Handle(HandlerSubmit, "s", f.onSubmit)
	f.Handle(HandlerReset, "r", f.onReset)
	return f
}

func (f *Form) DefaultState() component.State {
	return component.State{SubmittedKey: false}
}

// Submitted reports whether the form was submitted since the last reset.
func (f *Form) Submitted() bool {
	return component.Bool(f.GetState(), SubmittedKey)
}

// onSubmit collapses every expandable child so nothing keeps waiting for
// input after submission.
func (f *Form) onSubmit(ctx context.Context, _ component.Event) error {
	if f.props.OnSubmit != nil {
		if err := f.props.OnSubmit(ctx, f.GetState()); err != nil {
			return err
		}
	}
	for _, child := range f.Children() {
		if e, ok := component.AsExpandable(child); ok {
			e.Collapse()
		}
	}
	f.PatchState(component.State{SubmittedKey: true})
	return nil
}

func (f *Form) onReset(context.Context, component.Event) error {
	f.SetState(f.DefaultState())
	return nil
}

func (f *Form) Render(ctx context.Context) (component.RenderResult, error) {
	header := component.Empty()
	if f.props.Title != "" {
		header.Text = html.Underline(html.Escape(f.props.Title)) + "\n\n"
	}
	body, err := f.RenderChildren(ctx)
	if err != nil {
		return component.RenderResult{}, err
	}
	footer, err := f.ParseTextKeyboard(f.props.Footer)
	if err != nil {
		return component.RenderResult{}, err
	}
	tail := component.RenderResult{Keyboard: footer}
	if f.Submitted() {
		tail.Text = "\n" + html.Italic(html.Escape(f.props.SubmittedText)) + "\n"
	}
	return component.Concat(header, body, tail), nil
}
