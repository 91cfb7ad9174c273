package model

import (
	"strings"

	"github.com/limaJavier/advisories/pkg/people"
	"github.com/samber/lo"
)

// BannedPairingPenalty is added to an advisory's score when it already holds someone the
// candidate must not be placed with. It does not scale with the number of conflicts.
const BannedPairingPenalty = -10000

const (
	sexSlots   = len(people.Sexes)
	gradeSlots = len(people.Grades)
)

// Advisory is one group being filled. Its remaining counters start at the nominal quotas and are
// decremented on every added student; they go negative once the advisory is over quota.
type Advisory struct {
	ID       string           `json:"id"`
	Advisors []people.Teacher `json:"advisors"`
	Students []people.Student `json:"students"`
	// Remaining spots per sex (Male, Female)
	RemainingSex [sexSlots]int `json:"remainingSex"`
	// Remaining spots per grade (Freshman, Sophomore, Junior, Senior)
	RemainingGrade  [gradeSlots]int `json:"remainingGrade"`
	RemainingPeople int             `json:"remainingPeople"`
}

// NewAdvisory returns an empty advisory whose quotas are derived from the target number of students
func NewAdvisory(capacity int) Advisory {
	advisory := Advisory{
		Advisors:        make([]people.Teacher, 0),
		Students:        make([]people.Student, 0),
		RemainingPeople: capacity,
	}
	for i := range advisory.RemainingSex {
		advisory.RemainingSex[i] = capacity / sexSlots
	}
	for i := range advisory.RemainingGrade {
		advisory.RemainingGrade[i] = capacity / gradeSlots
	}
	return advisory
}

func (advisory *Advisory) AddTeacher(teacher people.Teacher) {
	advisory.Advisors = append(advisory.Advisors, teacher)
}

// AddStudent consumes one spot of the student's sex (when known), one of its grade and one overall
func (advisory *Advisory) AddStudent(student people.Student) {
	if index, ok := student.Sex.Index(); ok {
		advisory.RemainingSex[index]--
	}
	advisory.RemainingGrade[student.Grade]--
	advisory.RemainingPeople--

	advisory.Students = append(advisory.Students, student)
}

// RemainingForSex returns the spots left for the sex, 0 when it is unknown
func (advisory *Advisory) RemainingForSex(sex people.Sex) int {
	if index, ok := sex.Index(); ok {
		return advisory.RemainingSex[index]
	}
	return 0
}

func (advisory *Advisory) RemainingForGrade(grade people.Grade) int {
	return advisory.RemainingGrade[grade]
}

// HasTeacher checks whether one of the advisors teaches the student
func (advisory *Advisory) HasTeacher(student people.Student) bool {
	return sharesTeacher(student, advisory.Advisors)
}

// HasBannedPairing checks whether anyone already in the advisory (student or advisor) is on the
// student's banned list
func (advisory *Advisory) HasBannedPairing(student people.Student) bool {
	if len(student.BannedPairings) == 0 {
		return false
	}
	return lo.SomeBy(advisory.Students, func(member people.Student) bool { return student.Bans(member.Name) }) ||
		lo.SomeBy(advisory.Advisors, func(advisor people.Teacher) bool { return student.Bans(advisor.Name) })
}

// BannedBy checks whether a student already in the advisory lists the candidate on its banned list
func (advisory *Advisory) BannedBy(student people.Student) bool {
	return lo.SomeBy(advisory.Students, func(member people.Student) bool { return member.Bans(student.Name) })
}

// CalculateWeight scores how well the student fits in the advisory; the higher, the better
func (advisory *Advisory) CalculateWeight(student people.Student, weights Weights, studentsPerAdvisory int) int {
	teacherTerm := weights.HasTeacher * studentsPerAdvisory * boolToInt(advisory.HasTeacher(student))
	sexTerm := sexSlots * weights.SexDiverse * advisory.RemainingForSex(student.Sex)
	gradeTerm := gradeSlots * weights.GradeDiverse * advisory.RemainingForGrade(student.Grade)
	peopleTerm := 2 * weights.EqualPeople * advisory.RemainingPeople
	bannedTerm := BannedPairingPenalty * boolToInt(advisory.HasBannedPairing(student))

	return teacherTerm + sexTerm + gradeTerm + peopleTerm + bannedTerm
}

// String renders the advisors, e.g. "(Jane Doe, John Smith)"
func (advisory *Advisory) String() string {
	names := lo.Map(advisory.Advisors, func(teacher people.Teacher, _ int) string { return teacher.Name })
	return "(" + strings.Join(names, ", ") + ")"
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
