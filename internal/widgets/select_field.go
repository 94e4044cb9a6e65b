package widgets

import (
	"context"
	"fmt"

	"github.com/atomicstack/chatmenu/internal/component"
	"github.com/atomicstack/chatmenu/internal/fingerprint"
	"github.com/atomicstack/chatmenu/internal/format/html"
)

// SelectField handler names.
const (
	HandlerOptionSelect = "optionSelect"
	HandlerClearSearch  = "clearSearch"
)

// SelectLabelKey stores the label of the selected option for compact renders.
const SelectLabelKey = "label"

// DefaultColumns is the grid width of a SelectField page.
const DefaultColumns = 2

// SelectProps configures a SelectField.
type SelectProps[T any] struct {
	FieldProps
	Options OptionsFunc[T]
	// Columns defaults to DefaultColumns.
	Columns int
	// Pagination overrides PerPage and Position of the option pager.
	Pagination PaginationProps[Option[T]]
}

// SelectField is a Field whose value is picked from a paginated option grid.
// A text message sent while expanded becomes the filter and moves the pager
// back to the first page.
//
//	form.Select = component.MakeChild(form.Base, "s", widgets.NewSelectField[int], widgets.SelectProps[int]{
//		FieldProps: widgets.FieldProps{Label: "select"},
//		Options: widgets.BasicFilteredOptions([]widgets.Option[int]{
//			{Label: "abc", Value: 1},
//			{Label: "foo1", Value: 7},
//		}),
//	})
type SelectField[T any] struct {
	*component.Base

	Field      *Field
	Pagination *Pagination[Option[T]]
	props      SelectProps[T]
}

// NewSelectField mounts a SelectField.
func NewSelectField[T any](m component.Mount, props SelectProps[T]) *SelectField[T] {
	if props.Columns <= 0 {
		props.Columns = DefaultColumns
	}
	if props.Options == nil {
		props.Options = BasicFilteredOptions[T](nil)
	}
	if props.InlineValuePrinter == nil {
		props.InlineValuePrinter = printSelectInline
	}
	if props.TextPrinter == nil {
		props.TextPrinter = printSelectText
	}
	props.InputKind = component.KindText

	f := &SelectField[T]{props: props}
	f.Base = component.NewBase(m, f.DefaultState)
	f.Handle(HandlerOptionSelect, "o", f.onOptionSelect)
	f.Handle(HandlerClearSearch, "c", f.onClearSearch)
	f.Handle(HandlerTextInput, "t", f.onTextInput)

	f.Field = component.AddChild(f.Base, "f", NewField(f.SharedMount("f"), props.FieldProps))
	f.Field.OverrideHandler(HandlerTextInput, func(ctx context.Context, ev component.Event) error {
		return f.Handler(HandlerTextInput).Call(ctx, ev)
	})
	f.Field.OverrideHandler(HandlerClear, f.onClear)

	pager := props.Pagination
	if pager.Position == PositionDefault {
		pager.Position = PositionTop
	}
	pager.LoadPage = func(ctx context.Context, req PageRequest) ([]Option[T], error) {
		options, err := f.options(ctx)
		if err != nil {
			return nil, err
		}
		end := req.Skip + req.PerPage
		if end > len(options) {
			end = len(options)
		}
		if req.Skip >= end {
			return nil, nil
		}
		return options[req.Skip:end], nil
	}
	pager.Total = func(ctx context.Context) (int, error) {
		options, err := f.options(ctx)
		if err != nil {
			return 0, err
		}
		return len(options), nil
	}
	pager.RenderPage = RenderAsButtonsGrid(props.Columns, f.renderOption)
	f.Pagination = component.MakeChild(f.Base, "p", NewPagination[Option[T]], pager)
	return f
}

func (f *SelectField[T]) DefaultState() component.State {
	return component.Merge(
		component.State{"p": component.State{PageKey: 0}},
		component.Merge(f.Field.DefaultState(), component.State{FilterKey: nil, SelectLabelKey: nil}),
	)
}

func (f *SelectField[T]) IsExpanded() bool { return f.Field.IsExpanded() }
func (f *SelectField[T]) Expand()          { f.Field.Expand() }
func (f *SelectField[T]) Collapse()        { f.Field.Collapse() }
func (f *SelectField[T]) ToggleExpanded()  { f.Field.ToggleExpanded() }

// Value returns the selected value, or nil.
func (f *SelectField[T]) Value() any {
	return f.GetState()[ValueKey]
}

func (f *SelectField[T]) options(ctx context.Context) ([]Option[T], error) {
	options, err := f.props.Options(ctx, f.GetState())
	if err != nil {
		return nil, fmt.Errorf("select options at %q: %w", f.Path(), err)
	}
	return options, nil
}

func (f *SelectField[T]) renderOption(option Option[T]) (component.Button, error) {
	selected := fingerprint.Equal(option.Value, f.GetState()[ValueKey])
	return f.Button(html.SelectedButtonText(option.Label, selected), f.Handler(HandlerOptionSelect), option.Value)
}

func (f *SelectField[T]) onOptionSelect(ctx context.Context, ev component.Event) error {
	var value T
	if err := ev.Arg.Decode(&value); err != nil {
		return err
	}
	label := fmt.Sprint(value)
	options, err := f.options(ctx)
	if err != nil {
		return err
	}
	for _, option := range options {
		if fingerprint.Equal(option.Value, value) {
			label = option.Label
			break
		}
	}
	f.PatchState(component.State{ValueKey: value, SelectLabelKey: label})
	f.ToggleExpanded()
	return nil
}

func (f *SelectField[T]) onTextInput(_ context.Context, ev component.Event) error {
	if ev.Message == nil || ev.Message.Text == "" {
		return component.Reject("errors.text-required", nil)
	}
	f.PatchState(component.State{FilterKey: ev.Message.Text})
	f.Pagination.SetPage(0)
	return nil
}

// onClear drops the value together with its label.
func (f *SelectField[T]) onClear(context.Context, component.Event) error {
	f.PatchState(component.State{ValueKey: nil, SelectLabelKey: nil})
	return nil
}

func (f *SelectField[T]) onClearSearch(context.Context, component.Event) error {
	f.PatchState(component.State{FilterKey: nil})
	return nil
}

func (f *SelectField[T]) Render(ctx context.Context) (component.RenderResult, error) {
	field, err := f.Field.Render(ctx)
	if err != nil {
		return component.RenderResult{}, err
	}
	if !f.IsExpanded() {
		return field, nil
	}
	pagination, err := f.Pagination.Render(ctx)
	if err != nil {
		return component.RenderResult{}, err
	}
	out := field
	if filter, ok := component.String(f.GetState(), FilterKey); ok {
		clearBtn, err := f.Button("🔍 "+filter+" 🗑", f.Handler(HandlerClearSearch))
		if err != nil {
			return component.RenderResult{}, err
		}
		out = out.Row(clearBtn)
	}
	return component.Concat(out, pagination), nil
}

func printSelectInline(props FieldProps, s component.State) string {
	v := s[ValueKey]
	if v == nil {
		return props.EmptyValue
	}
	if label, ok := component.String(s, SelectLabelKey); ok {
		return label
	}
	return fmt.Sprint(v)
}

func printSelectText(props FieldProps, s component.State) string {
	expanded := component.Bool(s, component.ExpandedKey)
	label := html.Escape(props.Label)
	if expanded {
		label = html.Underline(label)
	}
	value := html.Italic(html.Escape(props.Placeholder))
	if s[ValueKey] != nil {
		value = html.Escape(printSelectInline(props, s))
	}
	text := label + ": " + value + "\n"
	if expanded && props.Description != "" {
		text += html.Escape(props.Description) + "\n"
	}
	return text
}
