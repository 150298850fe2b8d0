package colorEngine

import (
	"github.com/lucasb-eyer/go-colorful"
)

const (
	darkText  = "#000000"
	lightText = "#ffffff"

	// CIE L* above which dark text reads better than light text
	lightnessThreshold = 0.6
)

// ContrastText picks black or white label text for the given background
func ContrastText(bg string) (string, error) {
	norm, err := Normalize(bg)
	if err != nil {
		return "", err
	}

	c, err := colorful.Hex(norm)
	if err != nil {
		return "", &FormatError{Input: bg}
	}

	l, _, _ := c.Lab()
	if l > lightnessThreshold {
		return darkText, nil
	}
	return lightText, nil
}
