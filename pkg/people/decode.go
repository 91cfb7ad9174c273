package people

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

var (
	gradeType   = reflect.TypeOf(Grade(0))
	sexType     = reflect.TypeOf(SexUnknown)
	teacherType = reflect.TypeOf(Teacher{})
)

// DecodeHook converts raw decoded values (JSON, YAML or configuration maps) into people types:
// grades from names or school years, sexes from names and teachers from plain names.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		gradeHook,
		sexHook,
		teacherHook,
	)
}

func gradeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != gradeType {
		return data, nil
	}

	switch from.Kind() {
	case reflect.String:
		return ParseGrade(reflect.ValueOf(data).String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return GradeFromNumber(int(reflect.ValueOf(data).Int()))
	case reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return GradeFromNumber(int(reflect.ValueOf(data).Uint()))
	case reflect.Float32, reflect.Float64:
		number := reflect.ValueOf(data).Float()
		if number != float64(int(number)) {
			return nil, fmt.Errorf("grade must be a whole number: %v", number)
		}
		return GradeFromNumber(int(number))
	}
	return data, nil
}

func sexHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != sexType {
		return data, nil
	}
	if from.Kind() == reflect.String {
		return ParseSex(reflect.ValueOf(data).String())
	}
	return data, nil
}

func teacherHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != teacherType || from.Kind() != reflect.String {
		return data, nil
	}
	return NewTeacher(reflect.ValueOf(data).String()), nil
}
