package beziercurve

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theothertomelliott/acyclic"
)

func TestDumpRoundTrip(t *testing.T) {
	c, err := New([]Point{{0, 0}, {0.5, 2}, {1.5, -1}, {2, 0.25}})
	require.NoError(t, err)

	dump := c.Dump()
	require.NoError(t, acyclic.Check(dump))

	restored := &Curve{}
	require.NoError(t, restored.FromDump(dump))

	if diff := pretty.Compare(c.Dump(), restored.Dump()); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
	wantA, wantB := c.Controls()
	gotA, gotB := restored.Controls()
	assert.Equal(t, wantA, gotA)
	assert.Equal(t, wantB, gotB)
}

func TestDumpIsDetached(t *testing.T) {
	c, err := New([]Point{{0, 0}, {1, 1}})
	require.NoError(t, err)

	dump := c.Dump()
	dump.Points[0] = Point{5, 5}
	assert.Equal(t, Point{0, 0}, c.Segment(0).P0)
}

func TestFromDumpRejectsInvalid(t *testing.T) {
	c, err := New([]Point{{0, 0}, {1, 1}})
	require.NoError(t, err)

	err = c.FromDump(&Dump{Points: []Point{{1, 1}}})
	assert.ErrorIs(t, err, ErrTooFewPoints)
	// a failed load leaves the curve untouched
	assert.Equal(t, 1, c.Len())

	err = c.FromDump(&Dump{Points: []Point{{1, 1}, {math.NaN(), 2}}})
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestJSON(t *testing.T) {
	c, err := New([]Point{{0, 0}, {1, 1}, {2, 0}})
	require.NoError(t, err)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"points":[{"x":0,"y":0},{"x":1,"y":1},{"x":2,"y":0}]}`, string(data))

	var restored Curve
	require.NoError(t, json.Unmarshal(data, &restored))
	require.Equal(t, c.Len(), restored.Len())
	for i := 0; i < c.Len(); i++ {
		assert.Equal(t, c.Segment(i), restored.Segment(i))
	}

	assert.Error(t, json.Unmarshal([]byte(`{"points":[{"x":0,"y":0}]}`), &restored))
	assert.Error(t, json.Unmarshal([]byte(`{"points":`), &restored))
}
