package people

import (
	"fmt"
	"strconv"
	"strings"
)

// Grade is the grade level of a student. Only the four declared values are valid.
type Grade uint8

const (
	Freshman Grade = iota
	Sophomore
	Junior
	Senior
)

// Grades lists every valid grade in counter order
var Grades = [...]Grade{Freshman, Sophomore, Junior, Senior}

var gradeNames = [...]string{"Freshman", "Sophomore", "Junior", "Senior"}

const firstGradeNumber = 9

func (grade Grade) Valid() bool {
	return grade <= Senior
}

func (grade Grade) String() string {
	if !grade.Valid() {
		return fmt.Sprintf("Grade(%d)", uint8(grade))
	}
	return gradeNames[grade]
}

// Number returns the school year of the grade (9 through 12)
func (grade Grade) Number() int {
	return int(grade) + firstGradeNumber
}

// GradeFromNumber maps a school year (9 through 12) into a Grade
func GradeFromNumber(number int) (Grade, error) {
	if number < firstGradeNumber || number > firstGradeNumber+int(Senior) {
		return 0, fmt.Errorf("grade must be from 9 to 12: %d", number)
	}
	return Grade(number - firstGradeNumber), nil
}

// ParseGrade accepts either a grade name (case-insensitive) or a school year from 9 to 12
func ParseGrade(value string) (Grade, error) {
	value = strings.TrimSpace(value)
	for grade, name := range gradeNames {
		if strings.EqualFold(name, value) {
			return Grade(grade), nil
		}
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid grade", value)
	}
	return GradeFromNumber(number)
}

func (grade Grade) MarshalText() ([]byte, error) {
	if !grade.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid grade %d", uint8(grade))
	}
	return []byte(grade.String()), nil
}

func (grade *Grade) UnmarshalText(text []byte) error {
	parsed, err := ParseGrade(string(text))
	if err != nil {
		return err
	}
	*grade = parsed
	return nil
}
