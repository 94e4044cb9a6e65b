// Package media introspects inbound messages for attachments.
package media

import "github.com/atomicstack/chatmenu/internal/component"

// Type names an attachment kind.
type Type string

const (
	Animation Type = "animation"
	Audio     Type = "audio"
	Document  Type = "document"
	Photo     Type = "photo"
	Video     Type = "video"
)

// AllTypes lists every attachment kind, in display order.
var AllTypes = []Type{Animation, Audio, Document, Photo, Video}

var icons = map[Type]string{
	Animation: "🎞",
	Audio:     "🔊",
	Document:  "📄",
	Photo:     "🖼",
	Video:     "🎥",
}

// Icon returns the pictogram used for t in compact renders.
func Icon(t Type) string {
	if icon, ok := icons[t]; ok {
		return icon
	}
	return "📎"
}

// Info describes the attachment of a message.
type Info struct {
	Type   Type
	FileID string
}

// Inspector extracts the attachment of a message. ok is false when the
// message carries none.
type Inspector func(msg component.Message) (info Info, ok bool)

// Inspect is the default Inspector. It reads the attachment reference the
// transport placed on the message.
func Inspect(msg component.Message) (Info, bool) {
	if msg.Media == nil || msg.Media.FileID == "" {
		return Info{}, false
	}
	return Info{Type: Type(msg.Media.Type), FileID: msg.Media.FileID}, true
}

// Contains reports whether t is in types.
func Contains(types []Type, t Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
