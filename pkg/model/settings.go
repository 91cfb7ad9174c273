package model

import (
	"fmt"

	"github.com/limaJavier/advisories/pkg/people"
	"github.com/samber/lo"
)

// Grouping is the set of teachers seeded into one advisory before students are placed
type Grouping struct {
	ID       string           `json:"id,omitempty" mapstructure:"id"`
	Teachers []people.Teacher `json:"teachers" mapstructure:"teachers" validate:"dive"`
}

// Settings configures a single allocation run
type Settings struct {
	Weights Weights `json:"weights" mapstructure:"weights"`
	// Number of advisories to be generated
	NumAdvisories int `json:"numAdvisories" mapstructure:"numAdvisories" validate:"gt=0"`
	// One grouping per advisory; grouping i seeds advisory i
	TeacherGroupings []Grouping `json:"teacherGroupings" mapstructure:"teacherGroupings" validate:"dive"`
	// When set, a ban listed by an already placed student also keeps the candidate away
	MutualBans bool `json:"mutualBans" mapstructure:"mutualBans"`
}

// Groups returns the teacher groupings in advisory order, each one carrying an explicit ID
// (advisory-<index> when none was supplied)
func (settings Settings) Groups() []Grouping {
	return lo.Map(settings.TeacherGroupings, func(grouping Grouping, index int) Grouping {
		if grouping.ID == "" {
			grouping.ID = fmt.Sprintf("advisory-%d", index)
		}
		return grouping
	})
}

// Verify checks the weights, the advisory count and that exactly one valid grouping
// was supplied per advisory
func (settings Settings) Verify() error {
	if err := validate.Struct(settings); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if len(settings.TeacherGroupings) != settings.NumAdvisories {
		return fmt.Errorf("%w: %d teacher groupings supplied for %d advisories", ErrValidation, len(settings.TeacherGroupings), settings.NumAdvisories)
	}

	duplicates := lo.FindDuplicates(lo.Map(settings.Groups(), func(grouping Grouping, _ int) string { return grouping.ID }))
	if len(duplicates) > 0 {
		return fmt.Errorf("%w: duplicate advisory ids %v", ErrValidation, duplicates)
	}
	return nil
}
