package draw

import "shapes"

func radius(s shapes.Shape) float64 {
	switch s := s.(type) { // want `switch on union shapes.Shape is missing cases for \*shapes.Square`
	case shapes.Circle:
		return s.R
	}
	return 0
}

func isUnit(s shapes.Shape) bool {
	switch s { // want `switch on union shapes.Shape is missing cases for \*shapes.Square`
	case shapes.Circle{R: 1}:
		return true
	}
	return false
}

func text(t shapes.Token) {
	switch t.(type) { // want "switch on union shapes.Token is missing cases for shapes.space"
	case shapes.Word:
	}
}
