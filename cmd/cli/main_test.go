package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/limaJavier/advisories/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	studentsJson = `{
  "students": [
    { "name": "Amara", "teachers": ["Ms First"], "grade": 9, "sex": "Male" },
    { "name": "Ben", "teachers": ["Ms First", "Mr Elsewhere"], "grade": 10, "sex": "Female" },
    { "name": "Chloe", "teachers": ["Mr Elsewhere"], "grade": 11, "sex": "Male" },
    { "name": "Diego", "teachers": ["Mr Elsewhere"], "grade": 12, "sex": "Female" }
  ]
}`
	configYaml = `numAdvisories: 2
weights:
  hasTeacher: 10
  sexDiverse: 1
  gradeDiverse: 1
  equalPeople: 1
teacherGroupings:
  - [Ms First]
  - id: second
    teachers: [Mr Second]
`
)

type fixture struct {
	students string
	config   string
	dir      string
}

func newFixture(t *testing.T) fixture {
	dir := t.TempDir()
	students := filepath.Join(dir, "students.json")
	config := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(students, []byte(studentsJson), 0o644))
	require.NoError(t, os.WriteFile(config, []byte(configYaml), 0o644))
	return fixture{students: students, config: config, dir: dir}
}

func run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	command := newRootCommand()
	command.SetArgs(args)
	command.SetOut(&stdout)
	command.SetErr(&stderr)
	err := command.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerate(t *testing.T) {
	//** Arrange
	files := newFixture(t)

	//** Act
	stdout, stderr, err := run("generate", "--students", files.students, "--config", files.config)

	//** Assert
	require.NoError(t, err)

	var organization model.Organization
	require.NoError(t, json.Unmarshal([]byte(stdout), &organization))
	require.Len(t, organization.Advisories, 2)
	assert.Equal(t, 2, organization.StudentsPerAdvisory)
	assert.Equal(t, "advisory-0", organization.Advisories[0].ID)
	assert.Equal(t, "second", organization.Advisories[1].ID)

	placed := func(advisory model.Advisory) []string {
		names := make([]string, 0, len(advisory.Students))
		for _, student := range advisory.Students {
			names = append(names, student.Name)
		}
		return names
	}
	assert.Equal(t, []string{"Amara", "Ben"}, placed(organization.Advisories[0]))
	assert.Equal(t, []string{"Chloe", "Diego"}, placed(organization.Advisories[1]))

	assert.Contains(t, stderr, "run=")
	assert.Contains(t, stderr, `msg="placed student"`)
	assert.NotContains(t, stderr, `msg="calculated weight"`)
}

func TestGenerateWithReportIntoFile(t *testing.T) {
	//** Arrange
	files := newFixture(t)
	out := filepath.Join(files.dir, "advisories.json")

	//** Act
	stdout, stderr, err := run("generate", "--students", files.students, "--config", files.config,
		"--out", out, "--report", "--log-level", "debug", "--log-format", "json")

	//** Assert
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `"msg":"calculated weight"`)

	content, err := os.ReadFile(out)
	require.NoError(t, err)

	var output report
	require.NoError(t, json.Unmarshal(content, &output))
	require.NotNil(t, output.Organization)
	assert.Len(t, output.Organization.Advisories, 2)
	assert.Equal(t, 4, output.Summary.Students)
	assert.Equal(t, 2, output.Summary.WithTeacher)
	assert.Equal(t, 2, output.ContinuityBound)
}

func TestReport(t *testing.T) {
	files := newFixture(t)

	stdout, _, err := run("report", "--students", files.students, "--config", files.config, "--log-level", "error")

	require.NoError(t, err)
	var output report
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	assert.Nil(t, output.Organization)
	assert.Equal(t, 0, output.Summary.Conflicts)
	assert.Len(t, output.Summary.Advisories, 2)
}

func TestValidate(t *testing.T) {
	files := newFixture(t)

	stdout, _, err := run("validate", "--students", files.students, "--config", files.config)

	require.NoError(t, err)
	assert.Equal(t, "4 students and 2 advisories are valid\n", stdout)
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	files := newFixture(t)

	t.Setenv("ADVISORIES_WEIGHTS_EQUALPEOPLE", "11")
	_, _, err := run("validate", "--students", files.students, "--config", files.config)

	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Equal(t, exitValidation, exitCode(err))
}

func TestFailures(t *testing.T) {
	files := newFixture(t)
	invalidStudents := filepath.Join(files.dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalidStudents, []byte("students:\n  - {name: Nobody, teachers: [], grade: 9}\n"), 0o644))
	tooManyAdvisories := filepath.Join(files.dir, "advisories.yaml")
	require.NoError(t, os.WriteFile(tooManyAdvisories, []byte("numAdvisories: 3\nteacherGroupings: [[A], [B]]\n"), 0o644))

	scenarios := map[string]struct {
		args     []string
		exitCode int
	}{
		"Student without teachers": {
			[]string{"generate", "--students", invalidStudents, "--config", files.config},
			exitValidation,
		},
		"Grouping count mismatch": {
			[]string{"generate", "--students", files.students, "--config", tooManyAdvisories},
			exitValidation,
		},
		"No config at all": {
			[]string{"report", "--students", files.students},
			exitValidation,
		},
		"Missing students file": {
			[]string{"generate", "--students", filepath.Join(files.dir, "missing.json"), "--config", files.config},
			exitFailure,
		},
		"Missing config file": {
			[]string{"generate", "--students", files.students, "--config", filepath.Join(files.dir, "missing.yaml")},
			exitFailure,
		},
		"Missing students flag": {
			[]string{"validate", "--config", files.config},
			exitFailure,
		},
		"Unknown log format": {
			[]string{"validate", "--students", files.students, "--config", files.config, "--log-format", "xml"},
			exitFailure,
		},
		"Unknown log level": {
			[]string{"validate", "--students", files.students, "--config", files.config, "--log-level", "loud"},
			exitFailure,
		},
	}

	for name, scenario := range scenarios {
		t.Run(name, func(t *testing.T) {
			_, _, err := run(scenario.args...)

			require.Error(t, err)
			assert.Equal(t, scenario.exitCode, exitCode(err))
		})
	}
}
