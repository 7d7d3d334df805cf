// Package season holds the static seasonal irrigation table for the tomato
// crop and the color themes associated with each season.
package season

import (
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/unicode/norm"
)

// Season identifies one of the four fixed growing periods. The zero value is
// None, which stands for "no season filter".
type Season int

const (
	None Season = iota
	Spring
	Summer
	Autumn
	Winter
)

// All lists the seasons in display order.
var All = []Season{Spring, Summer, Autumn, Winter}

// Name returns the display label of the season.
func (s Season) Name() string {
	switch s {
	case Spring:
		return "Primavera"
	case Summer:
		return "Verão"
	case Autumn:
		return "Outono"
	case Winter:
		return "Inverno"
	default:
		return ""
	}
}

// Valid reports whether s is one of the four real seasons.
func (s Season) Valid() bool {
	return s >= Spring && s <= Winter
}

func (s Season) String() string {
	if !s.Valid() {
		return "none"
	}
	return s.Name()
}

// MarshalText lets a Season travel as its display name in JSON and msgpack.
func (s Season) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return []byte(""), nil
	}
	return []byte(s.Name()), nil
}

// UnmarshalText accepts anything ParseSelection does.
func (s *Season) UnmarshalText(b []byte) error {
	*s = ParseSelection(string(b))
	return nil
}

// EncodeMsgpack writes the season as a msgpack string so it matches the JSON form.
func (s Season) EncodeMsgpack(enc *msgpack.Encoder) error {
	b, _ := s.MarshalText()
	return enc.EncodeString(string(b))
}

func (s *Season) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return s.UnmarshalText([]byte(v))
}

// ClearControlID is the identifier the page uses for the "clear filters" control.
const ClearControlID = "btn-limpar"

// ControlID returns the identifier of the button that selects s.
func (s Season) ControlID() string {
	if !s.Valid() {
		return ClearControlID
	}
	return "btn-" + s.Name()
}

var aliases = map[string]Season{
	"primavera": Spring,
	"spring":    Spring,
	"verão":     Summer,
	"verao":     Summer,
	"summer":    Summer,
	"outono":    Autumn,
	"autumn":    Autumn,
	"fall":      Autumn,
	"inverno":   Winter,
	"winter":    Winter,
}

// ParseSelection maps the identifier of the most recently activated control
// to a Season. Control IDs ("btn-Verão"), display names and English names are
// accepted case-insensitively and in either Unicode normal form. The clear
// control, an empty identifier and anything unrecognized all map to None.
func ParseSelection(id string) Season {
	id = norm.NFC.String(strings.TrimSpace(id))
	id = strings.TrimPrefix(strings.ToLower(id), "btn-")

	if s, ok := aliases[id]; ok {
		return s
	}
	return None
}
