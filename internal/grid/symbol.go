package grid

// Symbol is one character of the pipe alphabet.
type Symbol byte

const (
	Vertical   Symbol = '|'
	Horizontal Symbol = '-'
	BendNE     Symbol = 'L'
	BendNW     Symbol = 'J'
	BendSW     Symbol = '7'
	BendSE     Symbol = 'F'
	Ground     Symbol = '.'
	Origin     Symbol = 'S'
)

// openings lists the two headings each pipe symbol connects toward.
var openings = map[Symbol][2]Direction{
	Vertical:   {Up, Down},
	Horizontal: {Right, Left},
	BendNE:     {Up, Right},
	BendNW:     {Up, Left},
	BendSW:     {Down, Left},
	BendSE:     {Right, Down},
}

// ParseSymbol converts an input byte to a Symbol.
func ParseSymbol(b byte) (Symbol, bool) {
	s := Symbol(b)
	switch s {
	case Ground, Origin:
		return s, true
	}
	return s, s.IsPipe()
}

// IsPipe reports whether s is one of the six pipe shapes.
func (s Symbol) IsPipe() bool {
	_, ok := s.Openings()
	return ok
}

// Opens reports whether s connects toward d. Ground and the origin open
// nowhere: the origin's shape is unknown.
func (s Symbol) Opens(d Direction) bool {
	o, ok := s.Openings()
	return ok && (o[0] == d || o[1] == d)
}

// Openings returns the two headings of a pipe symbol.
func (s Symbol) Openings() ([2]Direction, bool) {
	o, ok := openings[s]
	return o, ok
}

// SymbolFor returns the pipe symbol that opens toward both a and b.
func SymbolFor(a, b Direction) (Symbol, bool) {
	for s, o := range openings {
		if (o[0] == a && o[1] == b) || (o[0] == b && o[1] == a) {
			return s, true
		}
	}
	return Ground, false
}

func (s Symbol) String() string {
	return string(rune(s))
}
