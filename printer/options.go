// Package printer renders an *ast.Node tree back to JavaScript source text
// (spec.md §4.2). Render dispatches on ast.Kind through a single big type
// switch per contract — render/renderStatement/renderBlock — the same shape
// as the teacher's generator.gen(s *state) single-function dispatch, since
// Go structs have no virtual methods to override per node type the way the
// source this spec was distilled from does.
package printer

// Options is a bitset of rendering modes, combinable with |.
type Options uint8

const (
	// None renders compact source: no indentation, minimal whitespace.
	None Options = 0
	// Pretty renders indented, multi-line source.
	Pretty Options = 1 << 0
	// MaintainLineno pads output with blank lines so each statement lands
	// on its original source line number (spec §4.2, §8 P5).
	MaintainLineno Options = 1 << 1
)

func (o Options) has(bit Options) bool { return o&bit != 0 }
