package model

import (
	"reflect"
	"slices"

	"github.com/limaJavier/advisories/pkg/people"
	"github.com/samber/lo"
)

func verify(organization Organization, settings Settings, students []people.Student) bool {
	if settings.Verify() != nil || len(organization.Advisories) != settings.NumAdvisories {
		return false
	}
	groups := settings.Groups()
	studentsPerAdvisory := len(students) / settings.NumAdvisories
	if organization.StudentsPerAdvisory != studentsPerAdvisory {
		return false
	}

	//** Group students by name so that each placed student can be matched against one input student
	pending := lo.GroupBy(students, func(student people.Student) string { return student.Name })

	for index, advisory := range organization.Advisories {
		if people.VerifyAll(advisory.Students) != nil {
			return false
		}

		// Check that:
		// - The advisory keeps the position and id of its grouping
		// - Its advisors are exactly the seeded teachers
		// - Its counters equal the initial quotas minus its members
		if advisory.ID != groups[index].ID ||
			!slices.Equal(advisory.Advisors, groups[index].Teachers) ||
			expectedQuotas(studentsPerAdvisory, advisory.Students) != quotasOf(advisory) {
			return false
		}

		for _, student := range advisory.Students {
			candidates := pending[student.Name]
			position := slices.IndexFunc(candidates, func(candidate people.Student) bool {
				return reflect.DeepEqual(candidate, student)
			})
			// The student was not an input or has already been placed elsewhere
			if position < 0 {
				return false
			}
			pending[student.Name] = slices.Delete(candidates, position, position+1)
		}
	}

	// Every input student must have been placed
	return lo.EveryBy(lo.Values(pending), func(candidates []people.Student) bool { return len(candidates) == 0 })
}

type quotas struct {
	sex    [sexSlots]int
	grade  [gradeSlots]int
	people int
}

func quotasOf(advisory Advisory) quotas {
	return quotas{
		sex:    advisory.RemainingSex,
		grade:  advisory.RemainingGrade,
		people: advisory.RemainingPeople,
	}
}

func expectedQuotas(capacity int, students []people.Student) quotas {
	advisory := NewAdvisory(capacity)
	for _, student := range students {
		advisory.AddStudent(student)
	}
	return quotasOf(advisory)
}

// sharesTeacher checks whether any of the student's teachers belongs to the given teachers
func sharesTeacher(student people.Student, teachers []people.Teacher) bool {
	return lo.SomeBy(student.Teachers, func(teacher people.Teacher) bool {
		return slices.Contains(teachers, teacher)
	})
}
