package ansiterm

import "github.com/unilibs/uniwidth"

// graphemeWidth returns the display width of a grapheme cluster: 2 for wide
// clusters (CJK ideographs, fullwidth forms, emoji), 1 for normal clusters,
// 0 for zero-width ones (combining marks). It backs GraphemeCell.Width only;
// the cursor's wrap arithmetic and Line.HeightForWidth count cells and do
// not consult it, and a Line stores one cell per input grapheme regardless
// of its screen width.
func graphemeWidth(g string) int {
	w := uniwidth.StringWidth(g)
	if w < 0 {
		w = 0
	}
	return w
}
