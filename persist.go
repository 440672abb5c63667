package beziercurve

import (
	"encoding/json"
	"slices"
)

// Dump is a serializable representation of a Curve.
// Only the anchor points are stored, control points are rebuilt on load.
type Dump struct {
	Points []Point `json:"points"`
}

// FromDump rebuilds a curve from a dump. The dump may come from an untrusted
// source so it is validated the same way New validates its input.
func (c *Curve) FromDump(d *Dump) error {
	restored, err := New(d.Points)
	if err != nil {
		return err
	}

	*c = *restored
	return nil
}

// Dump generates a serializable dump for a curve.
func (c *Curve) Dump() *Dump {
	return &Dump{
		Points: slices.Clone(c.points),
	}
}

// MarshalJSON implements the json.Marshaler interface for Curve.
func (c *Curve) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Curve.
func (c *Curve) UnmarshalJSON(bytes []byte) error {
	var dump Dump
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return err
	}

	return c.FromDump(&dump)
}
