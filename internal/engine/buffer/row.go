package buffer

// TabStop is the fixed tab-stop interval of the render form. A tab
// advances the render column to the next multiple of TabStop. It is a
// compile-time constant with no user-facing override.
const TabStop = 4

// Row is one line of text. chars holds the characters exactly as
// stored, without a trailing line terminator. render is the derived
// display form with tabs expanded.
type Row struct {
	chars  []byte
	render []byte
}

// newRow builds a row from a copy of text and computes its render form.
func newRow(text []byte) Row {
	r := Row{chars: append([]byte(nil), text...)}
	r.updateRender()
	return r
}

// Chars returns the stored characters. The slice is owned by the row;
// callers must not modify it.
func (r *Row) Chars() []byte {
	return r.chars
}

// Render returns the display form. The slice is owned by the row;
// callers must not modify it.
func (r *Row) Render() []byte {
	return r.render
}

// Len returns the number of stored characters.
func (r *Row) Len() int {
	return len(r.chars)
}

// RenderLen returns the length of the display form.
func (r *Row) RenderLen() int {
	return len(r.render)
}

// CxToRx maps a column in chars to the corresponding render column.
// Tabs advance to the next tab stop; every other character advances by
// one. The mapping is monotone in cx, and CxToRx(0) == 0.
func (r *Row) CxToRx(cx int) int {
	rx := 0
	for j := 0; j < cx && j < len(r.chars); j++ {
		if r.chars[j] == '\t' {
			rx += (TabStop - 1) - rx%TabStop
		}
		rx++
	}
	return rx
}

// insertChar inserts c at column x, clamped to [0, Len], and
// recomputes the render form.
func (r *Row) insertChar(x int, c byte) {
	if x < 0 {
		x = 0
	}
	if x > len(r.chars) {
		x = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[x+1:], r.chars[x:])
	r.chars[x] = c
	r.updateRender()
}

// updateRender rebuilds the display form from chars.
func (r *Row) updateRender() {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}

	out := make([]byte, 0, len(r.chars)+tabs*(TabStop-1))
	for _, c := range r.chars {
		if c == '\t' {
			out = append(out, ' ')
			for len(out)%TabStop != 0 {
				out = append(out, ' ')
			}
			continue
		}
		out = append(out, c)
	}
	r.render = out
}
