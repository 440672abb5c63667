package timeseries

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Alignment record keys.
const (
	KeyScale           = "scale"
	KeyOffset          = "offset"
	KeySensorOffset    = "db_offset"
	KeyReferenceOffset = "aria_offset"
)

// ClockMap converts sensor timestamps into the reference (ground truth)
// clock: (t - Offset + SensorOffset - ReferenceOffset) / Scale.
type ClockMap struct {
	Scale           float64
	Offset          float64
	SensorOffset    float64
	ReferenceOffset float64
}

// IdentityClock maps every timestamp to itself.
var IdentityClock = ClockMap{Scale: 1}

func (c ClockMap) Validate() error {
	if c.Scale == 0 || math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, c.Scale)
	}

	return nil
}

func (c ClockMap) ToReference(t float64) float64 {
	return (t - c.Offset + c.SensorOffset - c.ReferenceOffset) / c.Scale
}

// ParseClockMap reads a clock mapping from one alignment record. Values may
// carry surrounding blanks.
func ParseClockMap(record map[string]string) (ClockMap, error) {
	var (
		c   ClockMap
		err error
	)

	fields := []struct {
		key string
		dst *float64
	}{
		{KeyScale, &c.Scale},
		{KeyOffset, &c.Offset},
		{KeySensorOffset, &c.SensorOffset},
		{KeyReferenceOffset, &c.ReferenceOffset},
	}
	for _, f := range fields {
		raw, ok := record[f.key]
		if !ok {
			return ClockMap{}, fmt.Errorf("%w: missing %q", ErrBadRecord, f.key)
		}

		*f.dst, err = cast.ToFloat64E(strings.TrimSpace(raw))
		if err != nil {
			return ClockMap{}, fmt.Errorf("%w: %q: %v", ErrBadRecord, f.key, err)
		}
	}

	if err = c.Validate(); err != nil {
		return ClockMap{}, err
	}

	return c, nil
}
