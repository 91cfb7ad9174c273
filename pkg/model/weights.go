package model

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is returned (wrapped) whenever settings or people fail validation.
// Nothing is allocated once it has been returned.
var ErrValidation = errors.New("validation failed")

var validate = validator.New()

// Weights is the relative importance (from 1 to 10) of each criterion in an advisory's score
type Weights struct {
	// Importance of a student sharing a teacher with one of the advisors
	HasTeacher int `json:"hasTeacher" mapstructure:"hasTeacher" validate:"min=1,max=10"`
	// Importance of sex diversity within the advisory
	SexDiverse int `json:"sexDiverse" mapstructure:"sexDiverse" validate:"min=1,max=10"`
	// Importance of grade diversity within the advisory
	GradeDiverse int `json:"gradeDiverse" mapstructure:"gradeDiverse" validate:"min=1,max=10"`
	// Importance of advisories having the same number of students
	EqualPeople int `json:"equalPeople" mapstructure:"equalPeople" validate:"min=1,max=10"`
}

func DefaultWeights() Weights {
	return Weights{
		HasTeacher:   10,
		SexDiverse:   5,
		GradeDiverse: 5,
		EqualPeople:  5,
	}
}

// Verify fails unless every weight lies in [1, 10]
func (weights Weights) Verify() error {
	if err := validate.Struct(weights); err != nil {
		return fmt.Errorf("%w: weights %+v out of range: %v", ErrValidation, weights, err)
	}
	return nil
}
