package types

// Mode selects between raw values and values rebased to a base year
type Mode string

const (
	ModeValue   Mode = "Value"
	ModeIndexed Mode = "Indexed"
)

// AllModes lists the modes in dropdown order
var AllModes = []Mode{ModeValue, ModeIndexed}

// String returns the string representation of the mode
func (m Mode) String() string {
	return string(m)
}

// IsValid checks if the mode is valid
func (m Mode) IsValid() bool {
	switch m {
	case ModeValue, ModeIndexed:
		return true
	default:
		return false
	}
}

// Indexed reports whether the mode rebases series to the base year
func (m Mode) Indexed() bool {
	return m == ModeIndexed
}
