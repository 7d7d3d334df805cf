package dashboard

import (
	"strings"

	"github.com/chrissnell/irrigationdash/internal/season"
	"github.com/vmihailenco/msgpack/v5"
)

// Colors that do not depend on the active season.
const (
	TitleColor       = "#0D47A1"
	ClearButtonColor = "#1565C0"
	HumidityKPIColor = "#1565C0"
	WaterKPIColor    = "#2E7D32"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Style is an ordered list of CSS declarations.
type Style []Declaration

// CSS renders s as an inline style attribute value.
func (s Style) CSS() string {
	var b strings.Builder
	for i, d := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// Get returns the value of property, or "" when it is not set.
func (s Style) Get(property string) string {
	for _, d := range s {
		if d.Property == property {
			return d.Value
		}
	}
	return ""
}

// MarshalText encodes the style as its CSS text so clients can assign it to
// element.style.cssText directly.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.CSS()), nil
}

// UnmarshalText parses CSS text of the form CSS produces.
func (s *Style) UnmarshalText(b []byte) error {
	var out Style
	for _, decl := range strings.Split(string(b), ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		out = append(out, Declaration{
			Property: strings.TrimSpace(prop),
			Value:    strings.TrimSpace(value),
		})
	}
	*s = out
	return nil
}

// EncodeMsgpack writes the style as its CSS text, the same as in JSON.
func (s Style) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(s.CSS())
}

func (s *Style) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return s.UnmarshalText([]byte(v))
}

// StyleBundle holds the theme-dependent styles of one render.
type StyleBundle struct {
	Page  Style `json:"page"`
	Panel Style `json:"panel"`
	Title Style `json:"title"`
	// Accent colors the figure annotations.
	Accent string `json:"accent"`
}

// Control is one of the five filter buttons.
type Control struct {
	ID     string        `json:"id"`
	Label  string        `json:"label"`
	Season season.Season `json:"season"`
	Active bool          `json:"active"`
	Style  Style         `json:"style"`
}

// StylesFor derives the style bundle for a theme. filtered selects the
// single-season panel tint; the unfiltered view keeps the plain background.
// The panel's top border always carries the theme's primary color.
func StylesFor(th season.Theme, filtered bool) StyleBundle {
	panelColor := th.BackgroundColor
	accent := TitleColor
	if filtered {
		// 8-digit hex: the primary color at roughly 12% opacity
		panelColor = th.PrimaryColor + "20"
		accent = th.PrimaryColor
	}

	return StyleBundle{
		Page: Style{
			{"height", "100vh"},
			{"width", "100%"},
			{"display", "flex"},
			{"flex-direction", "column"},
			{"align-items", "center"},
			{"justify-content", "space-evenly"},
			{"background-color", th.BackgroundColor},
			{"transition", "background-color 0.8s ease"},
		},
		Panel: Style{
			{"width", "95%"},
			{"max-width", "1200px"},
			{"flex-grow", "1"},
			{"max-height", "80vh"},
			{"background-color", panelColor},
			{"border-top", "6px solid " + th.PrimaryColor},
			{"border-radius", "20px"},
			{"box-shadow", "0px 8px 25px rgba(0,0,0,0.2)"},
			{"padding", "30px"},
			{"transition", "background-color 0.8s ease, box-shadow 0.8s ease"},
		},
		Title: Style{
			{"text-align", "center"},
			{"color", TitleColor},
			{"font-size", "2.5rem"},
			{"margin-top", "10px"},
		},
		Accent: accent,
	}
}

func buttonStyle(color string, active bool) Style {
	s := Style{
		{"background-color", color},
		{"color", "white"},
		{"border", "none"},
		{"padding", "10px 18px"},
		{"margin", "0 5px"},
		{"border-radius", "8px"},
		{"cursor", "pointer"},
		{"font-weight", "bold"},
		{"box-shadow", "0 2px 4px rgba(0,0,0,0.2)"},
		{"transition", "all 0.3s ease"},
	}
	if active {
		s = append(s, Declaration{"outline", "3px solid " + TitleColor})
	}
	return s
}

// Controls lists the four season buttons followed by the clear button.
func Controls(themes season.ThemeTable, sel season.Season) []Control {
	out := make([]Control, 0, len(season.All)+1)
	for _, s := range season.All {
		th := themes.For(s)
		out = append(out, Control{
			ID:     s.ControlID(),
			Label:  th.Icon + " " + s.Name(),
			Season: s,
			Active: s == sel,
			Style:  buttonStyle(th.PrimaryColor, s == sel),
		})
	}
	out = append(out, Control{
		ID:     season.ClearControlID,
		Label:  "Limpar Filtros",
		Season: season.None,
		Active: !sel.Valid(),
		Style:  buttonStyle(ClearButtonColor, false),
	})
	return out
}
