package pentomino

import "strings"

const pieceSymbols = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Format renders the grid with one letter per piece label, assigned in order of
// first appearance, one board row per line. Labels beyond the symbol set print as '?'.
func (g Grid) Format() string {
	symbols := make(map[int]byte)
	var sb strings.Builder
	for _, row := range g {
		for c, label := range row {
			sym, ok := symbols[label]
			if !ok {
				sym = '?'
				if len(symbols) < len(pieceSymbols) {
					sym = pieceSymbols[len(symbols)]
				}
				symbols[label] = sym
			}
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(sym)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (g Grid) String() string {
	return g.Format()
}

// Rows returns each grid row rendered without the trailing newline.
func (g Grid) Rows() []string {
	return strings.Split(strings.TrimSuffix(g.Format(), "\n"), "\n")
}
