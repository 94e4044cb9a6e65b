// Package demo builds the profile form the console drives. It mounts one of
// every widget so the whole engine can be tried from a terminal.
package demo

import (
	"context"
	"fmt"

	"github.com/atomicstack/chatmenu/internal/component"
	"github.com/atomicstack/chatmenu/internal/i18n"
	"github.com/atomicstack/chatmenu/internal/media"
	"github.com/atomicstack/chatmenu/internal/widgets"
)

// ErrKeyNameRequired is reported when the form is submitted without a name.
const ErrKeyNameRequired = "menu.name-required"

// Footer is the profile form's footer keyboard.
const Footer = "[✅ Save](submit) [↺ Reset](reset)"

// Localizer resolves the form's message keys. *i18n.Catalog satisfies it.
type Localizer interface {
	Localize(key string, vars map[string]any) string
}

// Props configures the profile form.
type Props struct {
	// Title defaults to the localized menu.title.
	Title   string
	PerPage int
	Columns int
	// Localizer defaults to i18n.Default().
	Localizer Localizer
	// OnSubmit receives the values of a valid submission.
	OnSubmit func(ctx context.Context, v Values) error
}

// Values is a snapshot of the form's fields.
type Values struct {
	Name   string
	Avatar media.Info
	// HasAvatar is false until a file is attached.
	HasAvatar bool
	Code      string
	Fruit     string
}

// Profile is the root component of the menu.
type Profile struct {
	*widgets.Form

	Name   *widgets.Field
	Avatar *widgets.MediaField
	Code   *widgets.SelectField[int]
	Fruit  *widgets.SelectField[string]

	props Props
}

// Codes are the options of the basic select: abc, abc1..abc6, foo1, foo2.
func Codes() []widgets.Option[int] {
	options := []widgets.Option[int]{{Label: "abc", Value: 0}}
	for i := 1; i <= 6; i++ {
		options = append(options, widgets.Option[int]{Label: fmt.Sprintf("abc%d", i), Value: i})
	}
	return append(options,
		widgets.Option[int]{Label: "foo1", Value: 7},
		widgets.Option[int]{Label: "foo2", Value: 8},
	)
}

// Fruits are the options of the fuzzy select.
func Fruits() []widgets.Option[string] {
	names := []string{"apple", "apricot", "banana", "blackberry", "blueberry", "cherry", "grape", "grapefruit", "lemon", "lime", "mango", "orange", "peach", "pear", "pineapple", "plum", "raspberry", "strawberry"}
	options := make([]widgets.Option[string], len(names))
	for i, name := range names {
		options[i] = widgets.Option[string]{Label: name, Value: name}
	}
	return options
}

// Root returns the dispatcher root factory for props.
func Root(props Props) func(component.Mount) component.Component {
	return func(m component.Mount) component.Component {
		return NewProfile(m, props)
	}
}

// NewProfile mounts the profile form.
func NewProfile(m component.Mount, props Props) *Profile {
	if props.Localizer == nil {
		props.Localizer = i18n.Default()
	}
	text := func(key string) string { return props.Localizer.Localize(key, nil) }
	if props.Title == "" {
		props.Title = text("menu.title")
	}
	p := &Profile{props: props}
	p.Form = widgets.NewForm(m, widgets.FormProps{
		Title:         props.Title,
		Footer:        Footer,
		SubmittedText: text("menu.submitted-marker"),
		OnSubmit:      p.onSubmit,
	})
	field := func(label, description, placeholder string) widgets.FieldProps {
		return widgets.FieldProps{
			Label:       label,
			Description: text(description),
			Placeholder: text(placeholder),
			EmptyValue:  text("menu.unset"),
		}
	}

	p.Name = component.MakeChild(p.Core(), "n", widgets.NewField, field("name", "menu.name-description", "menu.not-set"))
	p.Avatar = component.MakeChild(p.Core(), "a", widgets.NewMediaField, widgets.MediaProps{
		FieldProps:    field("avatar", "menu.avatar-description", "menu.empty"),
		AcceptedTypes: []media.Type{media.Photo},
	})
	p.Code = component.MakeChild(p.Core(), "c", widgets.NewSelectField[int], widgets.SelectProps[int]{
		FieldProps: field("code", "menu.code-description", "menu.empty"),
		Options:    widgets.BasicFilteredOptions(Codes()),
		Columns:    props.Columns,
		Pagination: widgets.PaginationProps[widgets.Option[int]]{PerPage: props.PerPage},
	})
	p.Fruit = component.MakeChild(p.Core(), "f", widgets.NewSelectField[string], widgets.SelectProps[string]{
		FieldProps: field("fruit", "menu.fruit-description", "menu.empty"),
		Options:    widgets.FuzzyFilteredOptions(Fruits()),
		Columns:    props.Columns,
		Pagination: widgets.PaginationProps[widgets.Option[string]]{PerPage: props.PerPage},
	})
	return p
}

// Values reads the current field values.
func (p *Profile) Values() Values {
	var v Values
	if name, ok := p.Name.Value().(string); ok {
		v.Name = name
	}
	v.Avatar, v.HasAvatar = p.Avatar.Value()
	v.Code = selectedLabel(p.Code.GetState())
	v.Fruit = selectedLabel(p.Fruit.GetState())
	return v
}

func selectedLabel(s component.State) string {
	if s[widgets.ValueKey] == nil {
		return ""
	}
	label, _ := component.String(s, widgets.SelectLabelKey)
	return label
}

func (p *Profile) onSubmit(ctx context.Context, _ component.State) error {
	v := p.Values()
	if v.Name == "" {
		return component.Reject(ErrKeyNameRequired, nil)
	}
	if p.props.OnSubmit != nil {
		return p.props.OnSubmit(ctx, v)
	}
	return nil
}
