package model

import (
	"fmt"

	"github.com/limaJavier/advisories/pkg/people"
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

type AdvisorySummary struct {
	ID       string   `json:"id"`
	Advisors []string `json:"advisors"`
	Students int      `json:"students"`
	// Students sharing at least one teacher with the advisors
	WithTeacher int            `json:"withTeacher"`
	Sexes       map[string]int `json:"sexes"`
	Grades      map[string]int `json:"grades"`
	// Co-located pairs where the first person lists the second one as banned
	BannedConflicts [][2]string `json:"bannedConflicts,omitempty"`
}

type Summary struct {
	Advisories  []AdvisorySummary `json:"advisories"`
	Students    int               `json:"students"`
	WithTeacher int               `json:"withTeacher"`
	Conflicts   int               `json:"conflicts"`
}

// Summarize reports the composition of every advisory of the organization
func Summarize(organization Organization) Summary {
	advisories := lo.Map(organization.Advisories, func(advisory Advisory, _ int) AdvisorySummary {
		return summarizeAdvisory(advisory)
	})

	return Summary{
		Advisories:  advisories,
		Students:    lo.SumBy(advisories, func(summary AdvisorySummary) int { return summary.Students }),
		WithTeacher: lo.SumBy(advisories, func(summary AdvisorySummary) int { return summary.WithTeacher }),
		Conflicts:   lo.SumBy(advisories, func(summary AdvisorySummary) int { return len(summary.BannedConflicts) }),
	}
}

func summarizeAdvisory(advisory Advisory) AdvisorySummary {
	members := append(
		lo.Map(advisory.Students, func(student people.Student, _ int) string { return student.Name }),
		lo.Map(advisory.Advisors, func(teacher people.Teacher, _ int) string { return teacher.Name })...,
	)

	conflicts := make([][2]string, 0)
	for _, student := range advisory.Students {
		for _, member := range members {
			if member != student.Name && student.Bans(member) {
				conflicts = append(conflicts, [2]string{student.Name, member})
			}
		}
	}

	return AdvisorySummary{
		ID:          advisory.ID,
		Advisors:    lo.Map(advisory.Advisors, func(teacher people.Teacher, _ int) string { return teacher.Name }),
		Students:    len(advisory.Students),
		WithTeacher: lo.CountBy(advisory.Students, advisory.HasTeacher),
		Sexes: lo.CountValuesBy(advisory.Students, func(student people.Student) string {
			if !student.Sex.Known() {
				return "Unknown"
			}
			return student.Sex.String()
		}),
		Grades:          lo.CountValuesBy(advisory.Students, func(student people.Student) string { return student.Grade.String() }),
		BannedConflicts: conflicts,
	}
}

type seat struct {
	advisory int
	index    int
}

// ContinuityBound returns the largest number of students that could share an advisory with one of their
// teachers if no advisory held more than ceil(students/advisories) students. It is an upper bound for
// Summary.WithTeacher under balanced advisories, computed as a maximum bipartite matching between students
// and advisory seats.
func ContinuityBound(settings Settings, students []people.Student) (int, error) {
	if err := settings.Verify(); err != nil {
		return 0, err
	}
	groups := settings.Groups()

	//** Only students taught by some seeded teacher can be matched
	affiliated := lo.Filter(students, func(student people.Student, _ int) bool {
		return lo.SomeBy(groups, func(group Grouping) bool { return sharesTeacher(student, group.Teachers) })
	})
	if len(affiliated) == 0 {
		return 0, nil
	}

	seatsPerAdvisory := (len(students) + len(groups) - 1) / len(groups)
	seats := make([]any, 0, seatsPerAdvisory*len(groups))
	for advisory := range groups {
		for index := range seatsPerAdvisory {
			seats = append(seats, seat{advisory: advisory, index: index})
		}
	}
	candidates := lo.Map(affiliated, func(_ people.Student, index int) any { return index })

	neighbours := func(candidateAny any, seatAny any) (bool, error) {
		student := affiliated[candidateAny.(int)]
		group := groups[seatAny.(seat).advisory]
		return sharesTeacher(student, group.Teachers), nil
	}

	graph, err := bipartitegraph.NewBipartiteGraph(candidates, seats, neighbours)
	if err != nil {
		return 0, fmt.Errorf("building continuity graph: %w", err)
	}

	return len(graph.LargestMatching()), nil
}
