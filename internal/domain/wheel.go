package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Color is the pocket color of a European roulette number.
type Color string

const (
	ColorRed   Color = "red"
	ColorBlack Color = "black"
	ColorGreen Color = "green"
)

// Wheel bounds.
const (
	MinNumber = 0
	MaxNumber = 36
)

// ErrInvalidNumber is returned when a number falls outside the wheel.
var ErrInvalidNumber = errors.New("invalid roulette number")

// RedNumbers and BlackNumbers are the fixed European wheel color sets.
var (
	RedNumbers = []int{
		1, 3, 5, 7, 9, 12, 14, 16, 18, 19, 21, 23, 25, 27, 30, 32, 34, 36,
	}
	BlackNumbers = []int{
		2, 4, 6, 8, 10, 11, 13, 15, 17, 20, 22, 24, 26, 28, 29, 31, 33, 35,
	}
)

var redSet = func() map[int]bool {
	set := make(map[int]bool, len(RedNumbers))
	for _, n := range RedNumbers {
		set[n] = true
	}
	return set
}()

// ValidateNumber reports ErrInvalidNumber for anything outside [0, 36].
func ValidateNumber(number int) error {
	if number < MinNumber || number > MaxNumber {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidNumber, number, MinNumber, MaxNumber)
	}
	return nil
}

// Classify returns the color of a wheel number.
func Classify(number int) (Color, error) {
	if err := ValidateNumber(number); err != nil {
		return "", err
	}
	if number == 0 {
		return ColorGreen, nil
	}
	if redSet[number] {
		return ColorRed, nil
	}
	return ColorBlack, nil
}

// NumbersFor returns the numbers carrying the given color.
func NumbersFor(color Color) []int {
	switch color {
	case ColorRed:
		return RedNumbers
	case ColorBlack:
		return BlackNumbers
	case ColorGreen:
		return []int{0}
	}
	return nil
}

// Valid reports whether c is one of the three wheel colors.
func (c Color) Valid() bool {
	return c == ColorRed || c == ColorBlack || c == ColorGreen
}

// Title returns the capitalized color name ("Red").
func (c Color) Title() string {
	if c == "" {
		return ""
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}
