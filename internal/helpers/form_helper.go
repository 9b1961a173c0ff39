package helpers

import "strings"

// Checkbox is a boolean bound from an HTML checkbox. Browsers send "y" or
// "on" for a ticked box and nothing for an empty one.
type Checkbox bool

func (b *Checkbox) UnmarshalParam(param string) error {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "y", "yes", "on", "true", "1":
		*b = true
	default:
		*b = false
	}
	return nil
}
