package model

import (
	"fmt"

	"github.com/limaJavier/advisories/pkg/logging"
	"github.com/limaJavier/advisories/pkg/people"
)

type greedyAllocator struct {
	logger logging.Logger
}

// NewGreedyAllocator returns the single-pass allocator: students are taken in input order and each one
// is committed to the advisory with the highest score, the last one winning ties. No placement is ever revisited.
func NewGreedyAllocator(logger logging.Logger) Allocator {
	return &greedyAllocator{
		logger: logger,
	}
}

func (allocator *greedyAllocator) Generate(settings Settings, students []people.Student) (Organization, error) {
	//** Validate input
	if err := settings.Verify(); err != nil {
		return Organization{}, err
	}
	if err := people.VerifyAll(students); err != nil {
		return Organization{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	//** Build advisories
	organization := newOrganization(len(students), settings.NumAdvisories)
	organization.assignTeachers(settings.Groups())
	allocator.logger.Info("building advisories",
		"students", len(students),
		"advisories", settings.NumAdvisories,
		"studentsPerAdvisory", organization.StudentsPerAdvisory,
	)

	//** Place students
	for _, student := range students {
		best, bestScore := -1, 0
		for index := range organization.Advisories {
			advisory := &organization.Advisories[index]
			score := allocator.score(advisory, student, settings, organization.StudentsPerAdvisory)
			allocator.logger.Debug("calculated weight", "student", student.Name, "advisory", advisory.ID, "score", score)

			// ">=" keeps the last advisory among those sharing the highest score
			if best < 0 || score >= bestScore {
				best, bestScore = index, score
			}
		}

		target := &organization.Advisories[best]
		if target.HasBannedPairing(student) {
			allocator.logger.Warn("no advisory free of banned pairings", "student", student.Name, "advisory", target.ID)
		}
		target.AddStudent(student)
		allocator.logger.Info("placed student", "student", student.Name, "advisory", target.ID, "advisors", target.String(), "score", bestScore)
	}

	allocator.logger.Info("advisories built", "advisories", len(organization.Advisories))
	return organization, nil
}

func (allocator *greedyAllocator) score(advisory *Advisory, student people.Student, settings Settings, studentsPerAdvisory int) int {
	score := advisory.CalculateWeight(student, settings.Weights, studentsPerAdvisory)
	if settings.MutualBans && !advisory.HasBannedPairing(student) && advisory.BannedBy(student) {
		score += BannedPairingPenalty
	}
	return score
}

func (allocator *greedyAllocator) Verify(organization Organization, settings Settings, students []people.Student) bool {
	return verify(organization, settings, students)
}
