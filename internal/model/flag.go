package model

import (
	"fmt"
	"strings"
)

// Flag is a boolean query parameter. Besides what strconv.ParseBool takes
// it accepts yes/no, y/n and on/off, in any case.
type Flag bool

// UnmarshalParam implements echo.BindUnmarshaler.
func (f *Flag) UnmarshalParam(param string) error {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "1", "t", "true", "y", "yes", "on":
		*f = true
	case "0", "f", "false", "n", "no", "off":
		*f = false
	default:
		return fmt.Errorf("invalid boolean value %q", param)
	}
	return nil
}
