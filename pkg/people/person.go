package people

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidPerson is returned (wrapped) by every failed person verification
var ErrInvalidPerson = errors.New("invalid person")

var validate = validator.New()

// Person is anything that can be placed in an advisory: it is identified by its
// name (String) and can verify its own data.
type Person interface {
	fmt.Stringer
	Verify() error
}

// VerifyAll verifies every person of the batch; the first failure rejects the whole batch
func VerifyAll[T Person](persons []T) error {
	for index, person := range persons {
		if err := person.Verify(); err != nil {
			return fmt.Errorf("entry %d: %w", index, err)
		}
	}
	return nil
}

func invalid(kind, name string, err error) error {
	return fmt.Errorf("%w: %s %q: %v", ErrInvalidPerson, kind, name, err)
}
