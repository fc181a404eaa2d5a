package skipped

//union:variants On, Off
type State interface{ state() } // want State:"union On, Off"

type On struct{}

type Off struct{}

func (On) state()  {}
func (Off) state() {}

func toggle(s State) {
	switch s.(type) {
	case On:
	}
}
