package tui

// Mode is the input mode of the console. Each key press is interpreted
// according to the current mode.
type Mode int

const (
	Normal       Mode = iota // browsing the holdings
	Editing                  // typing a new value for the selected asset
	Exec                     // typing the contribution to invest
	ErrorDisplay             // showing an error until dismissed
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Editing:
		return "editing"
	case Exec:
		return "exec"
	case ErrorDisplay:
		return "error"
	}
	return "unknown"
}
