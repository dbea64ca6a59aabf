package header

type DrawerState int

const (
	Closed DrawerState = iota
	Open
)

func (s DrawerState) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}
