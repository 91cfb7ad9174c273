package people

// Teacher is identified by its name; two teachers with the same name are the same teacher
type Teacher struct {
	Name string `json:"name" mapstructure:"name" validate:"required"`
}

func NewTeacher(name string) Teacher {
	return Teacher{Name: name}
}

func (teacher Teacher) String() string {
	return teacher.Name
}

// Verify fails if the name is empty
func (teacher Teacher) Verify() error {
	if err := validate.Struct(teacher); err != nil {
		return invalid("teacher", teacher.Name, err)
	}
	return nil
}
