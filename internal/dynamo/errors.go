package dynamo

import "errors"

// Domain errors for motion engine operations.
var (
	// ErrInvalidConfiguration indicates spring coefficients that cannot produce motion.
	ErrInvalidConfiguration = errors.New("dynamo: invalid spring configuration")

	// ErrInvalidColor indicates a color string that could not be parsed.
	ErrInvalidColor = errors.New("dynamo: invalid color")
)
