// Package state tracks console-side view state that is not part of the chat
// message itself.
package state

// Grid tracks the focused button of a keyboard whose rows may have different
// lengths.
type Grid struct {
	widths []int
	Row    int
	Col    int
}

// NewGrid returns a grid over rows of the given widths with the cursor on the
// first button.
func NewGrid(widths []int) *Grid {
	g := &Grid{}
	g.SetWidths(widths)
	return g
}

// SetWidths replaces the row widths, keeping the cursor on the nearest
// existing button. Empty rows are skipped by movement.
func (g *Grid) SetWidths(widths []int) {
	g.widths = append(g.widths[:0], widths...)
	g.clamp()
}

// Empty reports whether the grid has no buttons.
func (g *Grid) Empty() bool {
	for _, w := range g.widths {
		if w > 0 {
			return false
		}
	}
	return true
}

// MoveUp moves to the previous non-empty row.
func (g *Grid) MoveUp() bool {
	for r := g.Row - 1; r >= 0; r-- {
		if g.widths[r] > 0 {
			return g.moveTo(r, g.Col)
		}
	}
	return false
}

// MoveDown moves to the next non-empty row.
func (g *Grid) MoveDown() bool {
	for r := g.Row + 1; r < len(g.widths); r++ {
		if g.widths[r] > 0 {
			return g.moveTo(r, g.Col)
		}
	}
	return false
}

// MoveLeft moves to the previous button, wrapping to the end of the previous
// row.
func (g *Grid) MoveLeft() bool {
	if g.Col > 0 {
		return g.moveTo(g.Row, g.Col-1)
	}
	for r := g.Row - 1; r >= 0; r-- {
		if g.widths[r] > 0 {
			return g.moveTo(r, g.widths[r]-1)
		}
	}
	return false
}

// MoveRight moves to the next button, wrapping to the start of the next row.
func (g *Grid) MoveRight() bool {
	if g.Row < len(g.widths) && g.Col < g.widths[g.Row]-1 {
		return g.moveTo(g.Row, g.Col+1)
	}
	for r := g.Row + 1; r < len(g.widths); r++ {
		if g.widths[r] > 0 {
			return g.moveTo(r, 0)
		}
	}
	return false
}

// MoveHome moves to the first button.
func (g *Grid) MoveHome() bool {
	for r := range g.widths {
		if g.widths[r] > 0 {
			return g.moveTo(r, 0)
		}
	}
	return false
}

// MoveEnd moves to the last button.
func (g *Grid) MoveEnd() bool {
	for r := len(g.widths) - 1; r >= 0; r-- {
		if g.widths[r] > 0 {
			return g.moveTo(r, g.widths[r]-1)
		}
	}
	return false
}

func (g *Grid) moveTo(row, col int) bool {
	oldRow, oldCol := g.Row, g.Col
	g.Row, g.Col = row, col
	g.clamp()
	return g.Row != oldRow || g.Col != oldCol
}

func (g *Grid) clamp() {
	if g.Empty() {
		g.Row, g.Col = 0, 0
		return
	}
	if g.Row >= len(g.widths) {
		g.Row = len(g.widths) - 1
	}
	if g.Row < 0 {
		g.Row = 0
	}
	if g.widths[g.Row] == 0 {
		// Prefer the next non-empty row, then the previous one.
		moved := false
		for r := g.Row + 1; r < len(g.widths); r++ {
			if g.widths[r] > 0 {
				g.Row, moved = r, true
				break
			}
		}
		if !moved {
			for r := g.Row - 1; r >= 0; r-- {
				if g.widths[r] > 0 {
					g.Row = r
					break
				}
			}
		}
	}
	if g.Col >= g.widths[g.Row] {
		g.Col = g.widths[g.Row] - 1
	}
	if g.Col < 0 {
		g.Col = 0
	}
}
