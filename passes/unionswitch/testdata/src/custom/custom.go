package custom

//closed:types In, Out
type Event interface{ event() } // want Event:"union In, Out"

type In struct{}

type Out struct{}

func (In) event()  {}
func (Out) event() {}

func handle(e Event) {
	switch e.(type) { // want "switch on union Event is missing cases for Out"
	case In:
	}
}
