package model

import (
	"github.com/limaJavier/advisories/pkg/logging"
	"github.com/limaJavier/advisories/pkg/people"
)

type Allocator interface {
	// Generate places every student into one of the advisories described by the settings.
	// It fails with ErrValidation, before building anything, when settings or students are invalid.
	Generate(
		settings Settings,
		students []people.Student,
	) (Organization, error)

	// Verify checks that the organization is a consistent result of allocating the students with the settings
	Verify(
		organization Organization,
		settings Settings,
		students []people.Student,
	) bool
}

// Generate runs the greedy allocator without logging
func Generate(settings Settings, students []people.Student) (Organization, error) {
	return NewGreedyAllocator(logging.NewNop()).Generate(settings, students)
}
