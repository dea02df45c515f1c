package ansiterm

// GraphemeCell is a single user-visible grapheme cluster plus the style it
// was written with. The zero value has an empty grapheme and the default
// style; the blank cell used to fill grown lines is defaultGraphemeCell.
type GraphemeCell struct {
	Grapheme string
	Style    Style
}

// defaultGraphemeCell returns a blank cell with the default style.
func defaultGraphemeCell() GraphemeCell {
	return GraphemeCell{Grapheme: " ", Style: DefaultStyle}
}

// Width returns the display width of the cell's grapheme cluster.
func (c GraphemeCell) Width() int {
	return graphemeWidth(c.Grapheme)
}
