package timeseries

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/l"
)

type Row struct {
	SensorTime    float64
	ReferenceTime float64
	Values        []float64
}

type Result struct {
	Rows []Row
	// Dropped counts queries that had no value in the reference range.
	Dropped int
}

// Resample evaluates the series at every query, after mapping it through
// clock into the reference time base. Queries without a value are dropped.
func (s *Series) Resample(queries []float64, clock ClockMap) (Result, error) {
	if err := clock.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{Rows: make([]Row, 0, len(queries))}
	for _, q := range queries {
		ref := clock.ToReference(q)

		values, ok := s.At(ref)
		if !ok {
			res.Dropped++
			continue
		}

		res.Rows = append(res.Rows, Row{SensorTime: q, ReferenceTime: ref, Values: values})
	}

	logger := s.opts.logger.WithFields(l.IntField("rows", len(res.Rows)), l.IntField("dropped", res.Dropped),
		l.StringField("extrapolation", s.opts.extrapolation.String()))

	if len(res.Rows) == 0 && len(queries) > 0 {
		first, last := s.Span()
		err := fmt.Errorf("%w: reference range [%v, %v]", ErrNoOverlap, first, last)
		logger.WithFields(l.ErrorField(err)).Error("resample produced no rows")

		return res, err
	}

	logger.Debug("resampled")

	return res, nil
}

// FillGaps returns timestamps with synthetic instants inserted every step
// wherever two consecutive timestamps are more than maxGap apart, so that
// stretches without sensor readings still get reference samples.
// Inserted instants always stay strictly before the next timestamp.
// Non-positive or non-finite maxGap or step disables filling, as does a
// non-finite gap.
//
// One instant is inserted per step of each gap, so a gap of g costs about
// g/step entries: pick step relative to the longest expected gap.
func FillGaps(timestamps []float64, maxGap, step float64) []float64 {
	out := make([]float64, 0, len(timestamps))
	enabled := maxGap > 0 && step > 0 && !math.IsInf(maxGap, 0) && !math.IsInf(step, 0)

	for i, ts := range timestamps {
		out = append(out, ts)
		if i == len(timestamps)-1 || !enabled {
			continue
		}

		next := timestamps[i+1]
		if math.IsNaN(next-ts) || math.IsInf(next-ts, 0) {
			continue
		}

		for prev := ts; next-prev > maxGap; {
			cur := prev + step
			if cur == prev || cur >= next {
				// step below the float resolution at prev, or past next
				break
			}
			out = append(out, cur)
			prev = cur
		}
	}

	return out
}
