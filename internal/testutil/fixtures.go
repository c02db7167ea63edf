package testutil

// SquareLoop is the minimal closed rectangle: an 8-tile loop around a
// single ground tile.
const SquareLoop = `.....
.S-7.
.|.|.
.L-J.
.....
`

// TangledLoop winds through a 5x5 grid with the origin on the left edge.
const TangledLoop = `..F7.
.FJ|.
SJ.L7
|F--J
LJ...
`

// PerimeterLoop uses the whole outer ring of a 5x5 grid as the loop.
const PerimeterLoop = `S---7
|...|
|...|
|...|
L---J
`

// Corridor has two enclosed pockets joined under a one-tile corridor that
// opens to the outside.
const Corridor = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`

// SqueezedCorridor is Corridor with the corridor squeezed shut between two
// adjacent pipes. The outside still reaches in between them.
const SqueezedCorridor = `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`

// ScatteredGround is a larger loop with ground tiles both inside and out.
const ScatteredGround = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`

// JunkPipes surrounds the loop with pipes that are not part of it.
const JunkPipes = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`

// Sample is a fixture grid with its expected answers.
type Sample struct {
	Name     string
	Grid     string
	Furthest int
	Enclosed int
}

// Samples returns every fixture. Returns a new slice each time to prevent
// test interference.
func Samples() []Sample {
	return []Sample{
		{Name: "square", Grid: SquareLoop, Furthest: 4, Enclosed: 1},
		{Name: "tangled", Grid: TangledLoop, Furthest: 8, Enclosed: 1},
		{Name: "perimeter", Grid: PerimeterLoop, Furthest: 8, Enclosed: 9},
		{Name: "corridor", Grid: Corridor, Furthest: 23, Enclosed: 4},
		{Name: "squeezed corridor", Grid: SqueezedCorridor, Furthest: 22, Enclosed: 4},
		{Name: "scattered ground", Grid: ScatteredGround, Furthest: 70, Enclosed: 8},
		{Name: "junk pipes", Grid: JunkPipes, Furthest: 80, Enclosed: 10},
	}
}
