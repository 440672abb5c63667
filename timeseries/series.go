// Package timeseries resamples ground truth trajectories at the timestamps of
// other sensor streams, one Bezier curve per channel.
package timeseries

import (
	"fmt"
	"math"
	"slices"
	"sync"

	beziercurve "github.com/Maxime2/bezier-curve"
	"github.com/sgostarter/i/l"
	"go.uber.org/multierr"
)

// Series is a set of channels sampled at shared, strictly increasing
// timestamps. It is immutable and safe for concurrent use.
type Series struct {
	timestamps []float64
	curves     []*beziercurve.Curve
	opts       *Options
}

// New builds one curve per channel over (timestamp, value) points.
func New(timestamps []float64, channels [][]float64, opts ...Option) (*Series, error) {
	o := optionNew(opts...)

	if len(channels) == 0 {
		return nil, ErrNoChannels
	}
	if len(timestamps) < 2 {
		return nil, fmt.Errorf("%w: got %d timestamps", beziercurve.ErrTooFewPoints, len(timestamps))
	}
	for i, ts := range timestamps {
		if math.IsNaN(ts) || math.IsInf(ts, 0) || (i > 0 && ts <= timestamps[i-1]) {
			return nil, fmt.Errorf("%w: index %d", ErrNotIncreasing, i)
		}
	}
	for ch, values := range channels {
		if len(values) != len(timestamps) {
			return nil, fmt.Errorf("%w: channel %d has %d values, want %d",
				ErrChannelLength, ch, len(values), len(timestamps))
		}
	}

	var (
		wg       sync.WaitGroup
		errMutex sync.Mutex
		err      error
	)

	curves := make([]*beziercurve.Curve, len(channels))
	for ch, values := range channels {
		wg.Add(1)
		go func(ch int, values []float64) {
			defer wg.Done()

			points := make([]beziercurve.Point, len(values))
			for i, v := range values {
				points[i] = beziercurve.Point{X: timestamps[i], Y: v}
			}

			curve, e := beziercurve.New(points)
			if e != nil {
				o.logger.WithFields(l.ErrorField(e), l.IntField("channel", ch)).Error("build channel curve failed")

				errMutex.Lock()
				err = multierr.Append(err, fmt.Errorf("channel %d: %w", ch, e))
				errMutex.Unlock()

				return
			}

			curves[ch] = curve
		}(ch, values)
	}
	wg.Wait()

	if err != nil {
		return nil, err
	}

	return &Series{
		timestamps: slices.Clone(timestamps),
		curves:     curves,
		opts:       o,
	}, nil
}

func (s *Series) Channels() int {
	return len(s.curves)
}

// Span returns the first and last timestamps.
func (s *Series) Span() (first, last float64) {
	return s.timestamps[0], s.timestamps[len(s.timestamps)-1]
}

func (s *Series) Curve(channel int) *beziercurve.Curve {
	return s.curves[channel]
}

// Locate maps ts to a segment index and its parameter within the segment.
// A segment i covers [T[i], T[i+1]); the last timestamp maps to the end of
// the last segment. ok is false outside [T[0], T[n-1]].
func (s *Series) Locate(ts float64) (segment int, t float64, ok bool) {
	n := len(s.timestamps)

	k, found := slices.BinarySearch(s.timestamps, ts)
	if found {
		if k == n-1 {
			return n - 2, 1, true
		}
		return k, 0, true
	}
	if k == 0 || k == n {
		return 0, 0, false
	}

	return k - 1, s.param(k-1, ts), true
}

func (s *Series) param(segment int, ts float64) float64 {
	return (ts - s.timestamps[segment]) / (s.timestamps[segment+1] - s.timestamps[segment])
}

// At evaluates every channel at ts. Outside the series the configured
// Extrapolation decides the result.
func (s *Series) At(ts float64) ([]float64, bool) {
	segment, t, ok := s.Locate(ts)
	if !ok {
		return s.extrapolate(ts)
	}

	return s.evaluate(segment, t), true
}

func (s *Series) evaluate(segment int, t float64) []float64 {
	values := make([]float64, len(s.curves))
	for ch, c := range s.curves {
		values[ch] = c.Segment(segment).At(t).Y
	}
	return values
}

func (s *Series) extrapolate(ts float64) ([]float64, bool) {
	if math.IsNaN(ts) {
		return nil, false
	}

	last := len(s.timestamps) - 2
	before := ts < s.timestamps[0]

	switch s.opts.extrapolation {
	case ExtrapolateClamp:
		values := make([]float64, len(s.curves))
		for ch, c := range s.curves {
			if before {
				values[ch] = c.Segment(0).P0.Y
			} else {
				values[ch] = c.Segment(last).P3.Y
			}
		}
		return values, true
	case ExtrapolateCurve:
		segment := last
		if before {
			segment = 0
		}
		t := s.param(segment, ts)
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, false
		}
		values := s.evaluate(segment, t)
		for _, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, false
			}
		}
		return values, true
	}

	return nil, false
}
