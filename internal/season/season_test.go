package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected Season
	}{
		{name: "spring control", id: "btn-Primavera", expected: Spring},
		{name: "summer control", id: "btn-Verão", expected: Summer},
		{name: "autumn control", id: "btn-Outono", expected: Autumn},
		{name: "winter control", id: "btn-Inverno", expected: Winter},
		{name: "clear control", id: "btn-limpar", expected: None},
		{name: "empty", id: "", expected: None},
		{name: "bare display name", id: "Outono", expected: Autumn},
		{name: "ascii folded", id: "verao", expected: Summer},
		{name: "english upper case", id: "WINTER", expected: Winter},
		{name: "surrounding whitespace", id: "  spring ", expected: Spring},
		{name: "unknown", id: "btn-Monção", expected: None},
		{name: "decomposed tilde", id: "btn-Vera\u0303o", expected: Summer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSelection(tt.id))
		})
	}
}

func TestControlIDRoundTrip(t *testing.T) {
	for _, s := range All {
		assert.Equal(t, s, ParseSelection(s.ControlID()), "control id %q", s.ControlID())
	}
	assert.Equal(t, ClearControlID, None.ControlID())
}

func TestRecordsOrderAndValues(t *testing.T) {
	rs := Records()
	require.Len(t, rs, 4)

	for i, s := range All {
		assert.Equal(t, s, rs[i].Season)
	}
	assert.Equal(t, []float64{5200, 7500, 4500, 2500}, WaterUseValues(rs))
	assert.Equal(t, []float64{70, 78, 65, 60}, SoilHumidityValues(rs))

	for _, r := range rs {
		assert.GreaterOrEqual(t, r.WaterUse, 0.0)
		assert.GreaterOrEqual(t, r.SoilHumidity, 0.0)
		assert.LessOrEqual(t, r.SoilHumidity, 100.0)
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	rs := Records()
	rs[0].WaterUse = -1

	r, ok := RecordFor(Spring)
	require.True(t, ok)
	assert.Equal(t, 5200.0, r.WaterUse)
}

func TestRecordForInvalid(t *testing.T) {
	_, ok := RecordFor(None)
	assert.False(t, ok)

	_, ok = RecordFor(Season(42))
	assert.False(t, ok)
}

func TestThemeTables(t *testing.T) {
	assert.Equal(t, "#2196F3", Classic.Default.PrimaryColor)
	assert.Equal(t, "#1565C0", Deep.Default.PrimaryColor)

	for _, s := range All {
		assert.Equal(t, Classic.For(s), Deep.For(s), "season %s", s)
		assert.Equal(t, s.Name(), Classic.For(s).Key)
	}

	assert.Equal(t, Classic.Default, Classic.For(None))
	assert.Equal(t, Classic.Default, Classic.For(Season(-3)))
	assert.Len(t, Classic.Ordered(), 4)
}

func TestThemeTableByName(t *testing.T) {
	tbl, err := ThemeTableByName("")
	require.NoError(t, err)
	assert.Equal(t, "classic", tbl.Name)

	tbl, err = ThemeTableByName("deep")
	require.NoError(t, err)
	assert.Equal(t, "deep", tbl.Name)

	_, err = ThemeTableByName("neon")
	assert.Error(t, err)
}

func TestSeasonMarshalText(t *testing.T) {
	b, err := Summer.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Verão", string(b))

	b, err = None.MarshalText()
	require.NoError(t, err)
	assert.Empty(t, b)
}
