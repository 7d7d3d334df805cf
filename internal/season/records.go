package season

// Record is one row of the seasonal irrigation table.
type Record struct {
	Season       Season  `json:"season"`
	WaterUse     float64 `json:"water_use_m3"`
	SoilHumidity float64 `json:"soil_humidity_pct"`
}

// records is indexed by Season-1 and kept in display order. Water demand
// peaks in summer and bottoms out in winter.
var records = [...]Record{
	{Season: Spring, WaterUse: 5200, SoilHumidity: 70},
	{Season: Summer, WaterUse: 7500, SoilHumidity: 78},
	{Season: Autumn, WaterUse: 4500, SoilHumidity: 65},
	{Season: Winter, WaterUse: 2500, SoilHumidity: 60},
}

// Records returns a fresh copy of the full table in display order.
func Records() []Record {
	out := make([]Record, len(records))
	copy(out, records[:])
	return out
}

// RecordFor returns the row for s. ok is false when s is not a real season.
func RecordFor(s Season) (Record, bool) {
	if !s.Valid() {
		return Record{}, false
	}
	return records[s-1], true
}

// WaterUseValues returns the water use column of rs.
func WaterUseValues(rs []Record) []float64 {
	v := make([]float64, len(rs))
	for i, r := range rs {
		v[i] = r.WaterUse
	}
	return v
}

// SoilHumidityValues returns the soil humidity column of rs.
func SoilHumidityValues(rs []Record) []float64 {
	v := make([]float64, len(rs))
	for i, r := range rs {
		v[i] = r.SoilHumidity
	}
	return v
}
