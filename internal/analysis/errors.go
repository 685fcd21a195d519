package analysis

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrUnsupportedCondition = fmt.Errorf("unsupported condition: %w", commerr.ErrNotFound)
	ErrUnsupportedQuantity  = fmt.Errorf("unsupported quantity: %w", commerr.ErrNotFound)
	ErrInvalidGeometry      = fmt.Errorf("invalid geometry: %w", commerr.ErrInvalidArgument)
	ErrMissingProperty      = fmt.Errorf("missing material property: %w", commerr.ErrInvalidArgument)
	ErrInvalidLoad          = fmt.Errorf("invalid load: %w", commerr.ErrInvalidArgument)
)
