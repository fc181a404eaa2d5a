// Code generated by hand for tests. DO NOT EDIT.

package genon

//union:variants X, Y
type V interface{ v() } // want V:"union X, Y"

type X struct{}

type Y struct{}

func (X) v() {}
func (Y) v() {}

func f(v V) {
	switch v.(type) { // want "switch on union V is missing cases for Y"
	case X:
	}
}
