package beziercurve

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrTooFewPoints = fmt.Errorf("%w: curve needs at least two points", commerr.ErrInvalidArgument)
	ErrNonFinite    = fmt.Errorf("%w: point coordinates must be finite", commerr.ErrInvalidArgument)
	ErrDimension    = fmt.Errorf("%w: tridiagonal band lengths do not match", commerr.ErrInvalidArgument)
)
