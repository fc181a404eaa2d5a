package a

//union:variants A, B, C
type U interface{ isU() } // want U:"union A, B, C"

type A struct{}

type B struct{ Flagged bool }

type C struct{}

func (A) isU() {}
func (B) isU() {}
func (C) isU() {}

// Plain has the same methods as U but no directive.
type Plain interface{ isU() }

func missingLast(u U) {
	switch u.(type) { // want "switch on union U is missing cases for C"
	case A:
	case B:
	}
}

func beforeDefault(u U) {
	switch u.(type) { // want "switch on union U is missing cases for C"
	case A:
	case B:
	default:
	}
}

func covered(u U) {
	switch v := u.(type) {
	case A, B:
		_ = v
	case C:
	}
	switch u {
	case A{}:
	case B{Flagged: true}:
	case C{}:
	}
}

func notUnion(p Plain) {
	switch p.(type) {
	case A:
	}
}

func empty(u U) {
	switch u.(type) { // want "switch on union U is missing cases for A, B, C"
	}
}

func parens(u U) {
	switch u.(type) { // want "switch on union U is missing cases for B"
	case (A), nil:
	case C:
	}
}

func middleDefault(u U) {
	switch u.(type) { // want "switch on union U is missing cases for C"
	case A:
	default:
	case B:
	}
}

func name(u U) string {
	switch u.(type) { // want "switch on union U is missing cases for C"
	case A:
		return "a"
	case B:
		return "b"
	}
	return ""
}

func describe(u U) string {
	switch u { // want "switch on union U is missing cases for C"
	case A{}:
		return "plain"
	case B{Flagged: true}:
		return "flagged"
	default:
		return "other"
	}
}

var label = func(u U) string {
	switch u.(type) { // want "switch on union U is missing cases for B, C"
	case A:
		return "a"
	}
	return ""
}

func mustName(u U) string {
	switch u.(type) { // want "switch on union U is missing cases for C"
	case A:
		return "a"
	case B:
		return "b"
	default:
		panic("unreachable")
	}
}

func decode(u U) (int, error) {
	switch u.(type) { // want "switch on union U is missing cases for B, C"
	case A:
		return 1, nil
	default:
		return 0, nil
	}
}

func kind(u U) (s string, ok bool) {
	switch u.(type) { // want "switch on union U is missing cases for A, C"
	case B:
		s, ok = "b", true
		return
	default:
		if s == "" {
			panic("no name")
		} else {
			return
		}
	}
}

func lookup(u U) int {
	switch u.(type) { // want "switch on union U is missing cases for C"
	case A:
		return 1
	case B:
		if u == nil {
			break
		}
		return 2
	default:
		panic("unreachable")
	}
	return 0
}

func commented(u U) {
	switch u.(type) { // want "switch on union U is missing cases for C"
	case A, B:
	// Anything else is ignored.
	default:
	}
}

type Alias = U

func aliased(u Alias) {
	switch u.(type) { // want "switch on union U is missing cases for A, B"
	case C:
	}
}

type (
	//union:variants A, C
	Pair interface{ isU() } // want Pair:"union A, C"
)

func pair(p Pair) {
	switch p.(type) {
	case A, C:
	}
}

//union:variants *Leaf, *Node
type Tree interface{ tree() } // want Tree:`union \*Leaf, \*Node`

type Leaf struct{ Value int }

type Node struct{ Left, Right Tree }

func (*Leaf) tree() {}
func (*Node) tree() {}

func sum(t Tree) int {
	switch t := t.(type) { // want `switch on union Tree is missing cases for \*Node`
	case *Leaf:
		return t.Value
	}
	return 0
}

func isNode(t Tree) {
	switch t { // want `switch on union Tree is missing cases for \*Leaf`
	case &Node{}:
	}
}

//union:variants Red, Green, Red, Missing, 42, Blue
type Color interface{ color() } // want Color:"union Red, Green, Blue"

type Red int

type Green int

type Blue int

func (Red) color()   {}
func (Green) color() {}
func (Blue) color()  {}

func paint(c Color) {
	switch c { // want "switch on union Color is missing cases for Blue"
	case Red(1), Green(2):
	}
}

//union:variants A, B
type NotInterface struct{}
