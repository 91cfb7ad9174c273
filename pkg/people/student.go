package people

import (
	"fmt"
	"slices"
)

type Student struct {
	Name string `json:"name" mapstructure:"name" validate:"required"`
	// Teachers the student is taught by during the current school year
	Teachers []Teacher `json:"teachers" mapstructure:"teachers" validate:"min=1,dive"`
	Grade    Grade     `json:"grade" mapstructure:"grade"`
	Sex      Sex       `json:"sex" mapstructure:"sex"`
	// Names of people the student must not share an advisory with
	BannedPairings []string `json:"bannedPairings,omitempty" mapstructure:"bannedPairings"`
}

func (student Student) String() string {
	return student.Name
}

// Verify fails if the name is empty, if the student has no teachers or if any of its teachers is invalid
func (student Student) Verify() error {
	if err := validate.Struct(student); err != nil {
		return invalid("student", student.Name, err)
	}
	if !student.Grade.Valid() {
		return invalid("student", student.Name, fmt.Errorf("grade %v out of range", student.Grade))
	}
	if !student.Sex.Valid() {
		return invalid("student", student.Name, fmt.Errorf("sex %v out of range", student.Sex))
	}
	return nil
}

// TaughtBy reports whether the teacher is one of the student's teachers
func (student Student) TaughtBy(teacher Teacher) bool {
	return slices.Contains(student.Teachers, teacher)
}

// Bans reports whether the student must not be placed with the named person
func (student Student) Bans(name string) bool {
	return slices.Contains(student.BannedPairings, name)
}
