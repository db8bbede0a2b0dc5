package cardtilt

import "strings"

// CardData is the card's identity: the printed fields. Two configs with
// different CardData refer to different cards, which forces a face rebuild
// and resets any in-flight interaction.
type CardData struct {
	Number       string // raw digits, formatted into 4-digit groups for display
	Holder       string
	Expiry       string // preformatted, e.g. "12/28"
	SecurityCode string // printed on the back face only
}

// FieldSet is a bitmask of which printed fields are visible. Hidden fields
// are drawn masked, not omitted, so the card layout stays stable.
type FieldSet uint8

const (
	FieldNumber FieldSet = 1 << iota
	FieldHolder
	FieldExpiry
	FieldSecurityCode

	// FieldsAll shows every printed field.
	FieldsAll = FieldNumber | FieldHolder | FieldExpiry | FieldSecurityCode
)

// Has reports whether the set includes the given field.
func (f FieldSet) Has(field FieldSet) bool {
	return f&field != 0
}

// Style selects the card's face colors. Styles compare by value: changing
// any component is an appearance change and rebuilds the faces.
type Style struct {
	Face Color // front background
	Back Color // back background
	Ink  Color // printed text
}

// Built-in styles.
var (
	StyleMidnight = Style{
		Face: Color{R: 0.10, G: 0.12, B: 0.22, A: 1},
		Back: Color{R: 0.07, G: 0.08, B: 0.16, A: 1},
		Ink:  Color{R: 0.92, G: 0.93, B: 0.96, A: 1},
	}
	StyleCoral = Style{
		Face: Color{R: 0.86, G: 0.38, B: 0.33, A: 1},
		Back: Color{R: 0.72, G: 0.28, B: 0.25, A: 1},
		Ink:  Color{R: 1, G: 0.97, B: 0.94, A: 1},
	}
	StylePine = Style{
		Face: Color{R: 0.11, G: 0.34, B: 0.27, A: 1},
		Back: Color{R: 0.08, G: 0.25, B: 0.20, A: 1},
		Ink:  Color{R: 0.93, G: 0.96, B: 0.92, A: 1},
	}
)

// formatNumber groups the card number's digits into blocks of four,
// discarding any existing separators. Non-digit input is passed through
// grouped as-is, so placeholder text still lays out like a number.
func formatNumber(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, number)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// maskNumber hides all but the last four digits of a formatted group string.
func maskNumber(number string) string {
	formatted := formatNumber(number)
	runes := []rune(formatted)
	keep := 4
	shown := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			continue
		}
		if shown < keep {
			shown++
			continue
		}
		runes[i] = '*'
	}
	return string(runes)
}

// fieldText returns the display text for one field, masked when the field is
// not in the visible set. Empty source fields stay empty either way.
func fieldText(data CardData, fields, field FieldSet) string {
	var raw string
	switch field {
	case FieldNumber:
		raw = data.Number
	case FieldHolder:
		raw = data.Holder
	case FieldExpiry:
		raw = data.Expiry
	case FieldSecurityCode:
		raw = data.SecurityCode
	}
	if raw == "" {
		return ""
	}
	if fields.Has(field) {
		if field == FieldNumber {
			return formatNumber(raw)
		}
		return raw
	}
	if field == FieldNumber {
		return maskNumber(raw)
	}
	return strings.Repeat("*", len([]rune(raw)))
}
