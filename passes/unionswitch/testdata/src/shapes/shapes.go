package shapes

//union:variants Circle, *Square
type Shape interface{ Area() float64 } // want Shape:`union Circle, \*Square`

type Circle struct{ R float64 }

func (c Circle) Area() float64 { return 3 * c.R * c.R }

type Square struct{ Side float64 }

func (s *Square) Area() float64 { return s.Side * s.Side }

//union:variants Word, space
type Token interface{ token() } // want Token:"union Word, space"

type Word string

type space struct{}

func (Word) token()  {}
func (space) token() {}

// Space returns the separator token.
func Space() Token { return space{} }
