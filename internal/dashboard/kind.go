package dashboard

import (
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// ChartKind selects how water use is charted.
type ChartKind int

const (
	// DonutShare draws each season's share of water use as a ring.
	DonutShare ChartKind = iota
	// HorizontalBarWithMeanLine draws horizontal bars with a reference line
	// at the unfiltered mean.
	HorizontalBarWithMeanLine
)

func (k ChartKind) String() string {
	switch k {
	case HorizontalBarWithMeanLine:
		return "hbar"
	default:
		return "donut"
	}
}

// MarshalText encodes the kind by its configuration name.
func (k ChartKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (k *ChartKind) UnmarshalText(b []byte) error {
	parsed, err := ParseChartKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k ChartKind) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(k.String())
}

func (k *ChartKind) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return k.UnmarshalText([]byte(v))
}

// ParseChartKind reads a chart kind from configuration. An empty value means DonutShare.
func ParseChartKind(s string) (ChartKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "donut", "ring", "pie":
		return DonutShare, nil
	case "hbar", "horizontal", "horizontal-bar", "bar":
		return HorizontalBarWithMeanLine, nil
	default:
		return DonutShare, fmt.Errorf("unknown chart kind %q (want donut or hbar)", s)
	}
}
