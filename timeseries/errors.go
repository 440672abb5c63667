package timeseries

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrNoChannels    = fmt.Errorf("%w: series needs at least one channel", commerr.ErrInvalidArgument)
	ErrChannelLength = fmt.Errorf("%w: channel length differs from timestamps", commerr.ErrInvalidArgument)
	ErrNotIncreasing = fmt.Errorf("%w: timestamps must be finite and strictly increasing", commerr.ErrInvalidArgument)
	ErrInvalidScale  = fmt.Errorf("%w: clock scale must be finite and non-zero", commerr.ErrInvalidArgument)
	ErrBadRecord     = fmt.Errorf("%w: malformed alignment record", commerr.ErrInvalidArgument)
	ErrNoOverlap     = fmt.Errorf("%w: no query falls inside the reference time range", commerr.ErrOutOfRange)
)
