package widgets

import (
	"context"

	"github.com/atomicstack/chatmenu/internal/component"
	"github.com/atomicstack/chatmenu/internal/format/html"
	"github.com/atomicstack/chatmenu/internal/media"
)

// Rejection keys raised by MediaField.
const (
	ErrKeyMediaRequired    = "errors.media-required"
	ErrKeyMediaNotAccepted = "errors.media-type-not-accepted"
)

// Keys of the value stored by MediaField.
const (
	MediaTypeKey = "type"
	MediaRefKey  = "media"
)

// HandlerMessageInput is the MediaField handler receiving captured messages.
const HandlerMessageInput = "messageInput"

// MediaProps configures a MediaField.
type MediaProps struct {
	FieldProps
	// AcceptedTypes defaults to every media type.
	AcceptedTypes []media.Type
	// Inspector defaults to media.Inspect.
	Inspector media.Inspector
}

// MediaField is a Field whose value is an attachment. While expanded it
// captures the next message of any kind and rejects it unless it carries an
// accepted attachment.
//
//	form.Media = component.MakeChild(form.Base, "m", widgets.NewMediaField, widgets.MediaProps{
//		FieldProps:    widgets.FieldProps{Label: "media"},
//		AcceptedTypes: []media.Type{media.Photo},
//	})
type MediaField struct {
	*component.Base

	Field *Field
	props MediaProps
}

// NewMediaField mounts a MediaField.
func NewMediaField(m component.Mount, props MediaProps) *MediaField {
	if len(props.AcceptedTypes) == 0 {
		props.AcceptedTypes = media.AllTypes
	}
	if props.Inspector == nil {
		props.Inspector = media.Inspect
	}
	if props.InlineValuePrinter == nil {
		props.InlineValuePrinter = printMediaInline
	}
	if props.TextPrinter == nil {
		props.TextPrinter = printMediaText
	}
	props.InputKind = component.KindAny

	f := &MediaField{props: props}
	f.Base = component.NewBase(m, f.DefaultState)
	f.Handle(HandlerMessageInput, "m", f.onMessageInput)
	f.Field = component.AddChild(f.Base, "f", NewField(f.SharedMount("f"), props.FieldProps))
	f.CaptureInputRequests(f.Field)
	return f
}

func (f *MediaField) DefaultState() component.State {
	return f.Field.DefaultState()
}

func (f *MediaField) IsExpanded() bool { return f.Field.IsExpanded() }
func (f *MediaField) Expand()          { f.Field.Expand() }
func (f *MediaField) Collapse()        { f.Field.Collapse() }
func (f *MediaField) ToggleExpanded()  { f.Field.ToggleExpanded() }

// Value returns the stored attachment.
func (f *MediaField) Value() (media.Info, bool) {
	v := component.AsState(f.GetState()[ValueKey])
	if v == nil {
		return media.Info{}, false
	}
	t, _ := component.String(v, MediaTypeKey)
	ref, _ := component.String(v, MediaRefKey)
	return media.Info{Type: media.Type(t), FileID: ref}, true
}

// onMessageInput validates before touching state, so a rejected message
// leaves the field expanded and unchanged.
func (f *MediaField) onMessageInput(_ context.Context, ev component.Event) error {
	if ev.Message == nil {
		return component.Reject(ErrKeyMediaRequired, nil)
	}
	info, ok := f.props.Inspector(*ev.Message)
	if !ok {
		return component.Reject(ErrKeyMediaRequired, nil)
	}
	if !media.Contains(f.props.AcceptedTypes, info.Type) {
		return component.Reject(ErrKeyMediaNotAccepted, map[string]any{"type": string(info.Type)})
	}
	f.PatchState(component.State{
		ValueKey: component.State{
			MediaTypeKey: string(info.Type),
			MediaRefKey:  info.FileID,
		},
	})
	f.Collapse()
	return nil
}

func (f *MediaField) Render(ctx context.Context) (component.RenderResult, error) {
	out, err := f.Field.Render(ctx)
	if err != nil {
		return component.RenderResult{}, err
	}
	if f.RequestedMessageInput("f") {
		f.ListenForMessageInput(f.Handler(HandlerMessageInput), component.KindAny)
	}
	return out, nil
}

func mediaType(s component.State) (media.Type, bool) {
	v := component.AsState(s[ValueKey])
	if v == nil {
		return "", false
	}
	t, ok := component.String(v, MediaTypeKey)
	return media.Type(t), ok
}

func printMediaInline(_ FieldProps, s component.State) string {
	t, ok := mediaType(s)
	if !ok {
		return "🌫"
	}
	return media.Icon(t)
}

func printMediaText(props FieldProps, s component.State) string {
	expanded := component.Bool(s, component.ExpandedKey)
	label := html.Escape(props.Label)
	if expanded {
		label = html.Underline(label)
	}
	value := html.Italic(html.Escape(props.Placeholder))
	if t, ok := mediaType(s); ok {
		value = media.Icon(t)
	}
	text := label + ": " + value + "\n"
	if expanded && props.Description != "" {
		text += html.Escape(props.Description) + "\n"
	}
	return text
}
