package shell

// LineBuffer is the pending input line and its edit cursor. Positions count
// runes, not bytes, and always stay within [0, len].
type LineBuffer struct {
	text []rune
	pos  int
}

// Value returns the buffered text.
func (b *LineBuffer) Value() string { return string(b.text) }

// Pos returns the cursor position.
func (b *LineBuffer) Pos() int { return b.pos }

// Len returns the number of runes in the buffer.
func (b *LineBuffer) Len() int { return len(b.text) }

// Set replaces the text and puts the cursor at the end.
func (b *LineBuffer) Set(s string) {
	b.text = []rune(s)
	b.pos = len(b.text)
}

// Reset empties the buffer.
func (b *LineBuffer) Reset() {
	b.text = nil
	b.pos = 0
}

// SetPos moves the cursor, clamping to the buffer bounds.
func (b *LineBuffer) SetPos(pos int) {
	switch {
	case pos < 0:
		b.pos = 0
	case pos > len(b.text):
		b.pos = len(b.text)
	default:
		b.pos = pos
	}
}

// Insert types s at the cursor.
func (b *LineBuffer) Insert(s string) {
	r := []rune(s)
	if len(r) == 0 {
		return
	}
	text := make([]rune, 0, len(b.text)+len(r))
	text = append(text, b.text[:b.pos]...)
	text = append(text, r...)
	text = append(text, b.text[b.pos:]...)
	b.text = text
	b.pos += len(r)
}

// Backspace deletes the rune before the cursor.
func (b *LineBuffer) Backspace() {
	if b.pos == 0 {
		return
	}
	b.text = append(b.text[:b.pos-1], b.text[b.pos:]...)
	b.pos--
}

// Delete deletes the rune under the cursor.
func (b *LineBuffer) Delete() {
	if b.pos >= len(b.text) {
		return
	}
	b.text = append(b.text[:b.pos], b.text[b.pos+1:]...)
}

func (b *LineBuffer) Left()  { b.SetPos(b.pos - 1) }
func (b *LineBuffer) Right() { b.SetPos(b.pos + 1) }
func (b *LineBuffer) Home()  { b.pos = 0 }
func (b *LineBuffer) End()   { b.pos = len(b.text) }
