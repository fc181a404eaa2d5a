package draw

import geo "shapes"

func outline(s geo.Shape) {
	switch s.(type) { // want "switch on union shapes.Shape is missing cases for shapes.Circle"
	case *geo.Square:
	}
}
