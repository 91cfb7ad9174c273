package people

import (
	"fmt"
	"strings"
)

// Sex of a student. SexUnknown is a valid state and means the student does not
// take part in sex diversity scoring.
type Sex uint8

const (
	SexUnknown Sex = iota
	Male
	Female
)

// Sexes lists the known sexes in counter order
var Sexes = [...]Sex{Male, Female}

func (sex Sex) Valid() bool {
	return sex <= Female
}

// Known reports whether the sex takes part in diversity scoring
func (sex Sex) Known() bool {
	return sex == Male || sex == Female
}

// Index returns the counter slot of a known sex
func (sex Sex) Index() (int, bool) {
	if !sex.Known() {
		return 0, false
	}
	return int(sex) - 1, true
}

func (sex Sex) String() string {
	switch sex {
	case SexUnknown:
		return ""
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return fmt.Sprintf("Sex(%d)", uint8(sex))
	}
}

// ParseSex accepts "Male" or "Female" (case-insensitive); the empty string is SexUnknown
func ParseSex(value string) (Sex, error) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return SexUnknown, nil
	case strings.EqualFold(value, "Male"):
		return Male, nil
	case strings.EqualFold(value, "Female"):
		return Female, nil
	}
	return SexUnknown, fmt.Errorf("%q not in list of sexes", value)
}

func (sex Sex) MarshalText() ([]byte, error) {
	if !sex.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid sex %d", uint8(sex))
	}
	return []byte(sex.String()), nil
}

func (sex *Sex) UnmarshalText(text []byte) error {
	parsed, err := ParseSex(string(text))
	if err != nil {
		return err
	}
	*sex = parsed
	return nil
}
