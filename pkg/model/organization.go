package model

import (
	"github.com/limaJavier/advisories/pkg/people"
	"github.com/samber/lo"
)

// Organization is the set of advisories produced by one allocation run
type Organization struct {
	Advisories []Advisory `json:"advisories"`
	// Nominal number of students per advisory (the remainder of the division is not reflected in any quota)
	StudentsPerAdvisory int `json:"studentsPerAdvisory"`
}

// newOrganization allocates advisoryCount empty advisories sharing the same nominal capacity
func newOrganization(studentCount, advisoryCount int) Organization {
	studentsPerAdvisory := studentCount / advisoryCount

	return Organization{
		Advisories: lo.Times(advisoryCount, func(_ int) Advisory {
			return NewAdvisory(studentsPerAdvisory)
		}),
		StudentsPerAdvisory: studentsPerAdvisory,
	}
}

// assignTeachers seeds advisory i with grouping i
func (organization *Organization) assignTeachers(groups []Grouping) {
	for index := range organization.Advisories {
		advisory := &organization.Advisories[index]
		advisory.ID = groups[index].ID
		for _, teacher := range groups[index].Teachers {
			advisory.AddTeacher(teacher)
		}
	}
}

// Advisory looks an advisory up by its ID
func (organization Organization) Advisory(id string) (Advisory, bool) {
	return lo.Find(organization.Advisories, func(advisory Advisory) bool { return advisory.ID == id })
}

// Students returns every placed student in advisory order
func (organization Organization) Students() []people.Student {
	return lo.FlatMap(organization.Advisories, func(advisory Advisory, _ int) []people.Student {
		return advisory.Students
	})
}
