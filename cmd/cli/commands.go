package main

import (
	"errors"
	"fmt"

	"github.com/limaJavier/advisories/pkg/model"
	"github.com/limaJavier/advisories/pkg/people"
	"github.com/spf13/cobra"
)

var errVerification = errors.New("generated advisories failed verification")

type report struct {
	Organization    *model.Organization `json:"organization,omitempty"`
	Summary         model.Summary       `json:"summary"`
	ContinuityBound int                 `json:"continuityBound"`
}

func (cli *cli) generateCommand() *cobra.Command {
	var (
		outFile       string
		includeReport bool
	)

	command := &cobra.Command{
		Use:   "generate",
		Short: "Place every student into an advisory and print the advisories as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, students, err := cli.load()
			if err != nil {
				return err
			}

			organization, err := cli.generate(settings, students)
			if err != nil {
				return err
			}

			if !includeReport {
				return write(cmd, outFile, organization)
			}
			output, err := summarize(settings, students, organization)
			if err != nil {
				return err
			}
			output.Organization = &organization
			return write(cmd, outFile, output)
		},
	}

	cli.addStudentsFlag(command)
	command.Flags().StringVar(&outFile, "out", "", "file the advisories are written to; standard output when empty")
	command.Flags().BoolVar(&includeReport, "report", false, "wrap the advisories together with their summary")
	return command
}

func (cli *cli) validateCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "validate",
		Short: "Check the settings and the students without building any advisory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, students, err := cli.load()
			if err != nil {
				return err
			}

			if err := settings.Verify(); err != nil {
				return err
			}
			if err := people.VerifyAll(students); err != nil {
				return fmt.Errorf("%w: %w", model.ErrValidation, err)
			}

			cli.logger.Info("input is valid", "students", len(students), "advisories", settings.NumAdvisories)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d students and %d advisories are valid\n", len(students), settings.NumAdvisories)
			return err
		},
	}

	cli.addStudentsFlag(command)
	return command
}

func (cli *cli) reportCommand() *cobra.Command {
	var outFile string

	command := &cobra.Command{
		Use:   "report",
		Short: "Build the advisories and print only their summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, students, err := cli.load()
			if err != nil {
				return err
			}

			organization, err := cli.generate(settings, students)
			if err != nil {
				return err
			}

			output, err := summarize(settings, students, organization)
			if err != nil {
				return err
			}
			return write(cmd, outFile, output)
		},
	}

	cli.addStudentsFlag(command)
	command.Flags().StringVar(&outFile, "out", "", "file the summary is written to; standard output when empty")
	return command
}

func (cli *cli) generate(settings model.Settings, students []people.Student) (model.Organization, error) {
	allocator := model.NewGreedyAllocator(cli.logger)

	organization, err := allocator.Generate(settings, students)
	if err != nil {
		return model.Organization{}, err
	}
	if !allocator.Verify(organization, settings, students) {
		cli.logger.Error("generated advisories are inconsistent with the input", "advisories", len(organization.Advisories))
		return model.Organization{}, errVerification
	}
	return organization, nil
}

func summarize(settings model.Settings, students []people.Student, organization model.Organization) (report, error) {
	bound, err := model.ContinuityBound(settings, students)
	if err != nil {
		return report{}, err
	}
	return report{
		Summary:         model.Summarize(organization),
		ContinuityBound: bound,
	}, nil
}
