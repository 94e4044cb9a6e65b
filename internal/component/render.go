package component

// Button is one inline button: a label and the encoded address it triggers.
type Button struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

// Keyboard is an ordered list of button rows.
type Keyboard [][]Button

// RenderResult is the payload a component contributes to the message.
type RenderResult struct {
	Text     string   `json:"text"`
	Keyboard Keyboard `json:"keyboard"`
}

// Empty is the fragment of a component that shows nothing.
func Empty() RenderResult {
	return RenderResult{Keyboard: Keyboard{}}
}

// Concat folds results in order: text fragments are concatenated and keyboard
// rows appended, so a parent's rows come before the rows of children folded
// after it.
func Concat(parts ...RenderResult) RenderResult {
	out := Empty()
	for _, p := range parts {
		out.Text += p.Text
		out.Keyboard = append(out.Keyboard, p.Keyboard...)
	}
	return out
}

// Row appends a single row of buttons. Empty rows are dropped.
func (r RenderResult) Row(buttons ...Button) RenderResult {
	if len(buttons) == 0 {
		return r
	}
	rows := make(Keyboard, 0, len(r.Keyboard)+1)
	rows = append(rows, r.Keyboard...)
	r.Keyboard = append(rows, buttons)
	return r
}
