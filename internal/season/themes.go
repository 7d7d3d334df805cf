package season

import "fmt"

// Theme is the presentation bundle for a season or for the unfiltered view.
type Theme struct {
	Key             string `json:"key"`
	PrimaryColor    string `json:"primary_color"`
	BackgroundColor string `json:"background_color"`
	Icon            string `json:"icon"`
	Caption         string `json:"caption"`
}

// ThemeTable assigns a Theme to every season plus a Default used when no
// season is selected.
type ThemeTable struct {
	Name    string           `json:"name"`
	Seasons map[Season]Theme `json:"-"`
	Default Theme            `json:"default"`
}

// For returns the theme of s, or the Default theme when s is not a real season.
func (t ThemeTable) For(s Season) Theme {
	if th, ok := t.Seasons[s]; ok {
		return th
	}
	return t.Default
}

// Ordered returns the season themes in display order.
func (t ThemeTable) Ordered() []Theme {
	out := make([]Theme, 0, len(All))
	for _, s := range All {
		out = append(out, t.For(s))
	}
	return out
}

var seasonThemes = map[Season]Theme{
	Spring: {Key: "Primavera", PrimaryColor: "#F4A7B9", BackgroundColor: "#FDEDEF", Icon: "🌸", Caption: "Alta umidade e clima agradável"},
	Summer: {Key: "Verão", PrimaryColor: "#FFA726", BackgroundColor: "#FFF3E0", Icon: "☀️", Caption: "Maior uso de água devido ao calor"},
	Autumn: {Key: "Outono", PrimaryColor: "#FFD54F", BackgroundColor: "#FFF8E1", Icon: "🍂", Caption: "Transição com menor irrigação"},
	Winter: {Key: "Inverno", PrimaryColor: "#64B5F6", BackgroundColor: "#E3F2FD", Icon: "❄️", Caption: "Menor uso de água e umidade baixa"},
}

// Classic is the light-blue table used by default.
var Classic = ThemeTable{
	Name:    "classic",
	Seasons: seasonThemes,
	Default: Theme{Key: "Padrão", PrimaryColor: "#2196F3", BackgroundColor: "#E3F2FD", Icon: "💧", Caption: "Uso geral da irrigação e umidade"},
}

// Deep differs from Classic only in its darker Default primary color.
var Deep = ThemeTable{
	Name:    "deep",
	Seasons: seasonThemes,
	Default: Theme{Key: "Padrão", PrimaryColor: "#1565C0", BackgroundColor: "#E3F2FD", Icon: "💧", Caption: "Uso geral da irrigação e umidade"},
}

// ThemeTableByName looks up a built-in theme table. An empty name selects Classic.
func ThemeTableByName(name string) (ThemeTable, error) {
	switch name {
	case "", Classic.Name:
		return Classic, nil
	case Deep.Name:
		return Deep, nil
	default:
		return ThemeTable{}, fmt.Errorf("unknown theme table %q (want %q or %q)", name, Classic.Name, Deep.Name)
	}
}
