package foil

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates an input outside the accepted domain.
	ErrInvalidArgument = errors.New("foil: invalid argument")
	// ErrZeroEmitted indicates a deflection ratio over zero emitted particles.
	ErrZeroEmitted = fmt.Errorf("%w: no particles emitted", ErrInvalidArgument)
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
