package model

import (
	"fmt"
	"math/rand/v2"

	"github.com/limaJavier/advisories/pkg/people"
	"github.com/samber/lo"
)

// GenerateTeacherGroupings builds count groupings of teachersPerGroup distinct dummy teachers
func GenerateTeacherGroupings(count, teachersPerGroup int) []Grouping {
	return lo.Times(count, func(group int) Grouping {
		return Grouping{
			Teachers: lo.Times(teachersPerGroup, func(index int) people.Teacher {
				return people.NewTeacher(fmt.Sprintf("Dummy Teacher %d", group*teachersPerGroup+index+1))
			}),
		}
	})
}

// GenerateStudents builds count dummy students taught by up to teachersPerStudent of the given teachers.
// Roughly one student out of twenty bans a previously generated one. The same generator state yields the same students.
func GenerateStudents(generator *rand.Rand, count, teachersPerStudent int, teachers []people.Teacher) []people.Student {
	students := make([]people.Student, 0, count)
	for i := range count {
		teacherCount := min(len(teachers), 1+generator.IntN(max(teachersPerStudent, 1)))
		chosen := lo.Map(generator.Perm(len(teachers))[:teacherCount], func(index int, _ int) people.Teacher {
			return teachers[index]
		})

		student := people.Student{
			Name:     fmt.Sprintf("Dummy Student %d", i+1),
			Teachers: chosen,
			Grade:    people.Grades[generator.IntN(len(people.Grades))],
			Sex:      people.Sex(generator.IntN(int(people.Female) + 1)),
		}
		if i > 0 && generator.IntN(20) == 0 {
			student.BannedPairings = []string{students[generator.IntN(i)].Name}
		}
		students = append(students, student)
	}
	return students
}

// AllTeachers flattens the teachers of every grouping
func AllTeachers(groupings []Grouping) []people.Teacher {
	return lo.FlatMap(groupings, func(grouping Grouping, _ int) []people.Teacher { return grouping.Teachers })
}
