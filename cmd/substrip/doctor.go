package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/deepharbor/substrip/internal/config"
	"github.com/deepharbor/substrip/internal/doctor"
	"github.com/deepharbor/substrip/internal/messages"
)

func newDoctorCmd() *cobra.Command {
	var inputFlag string

	cmd := &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cwd, err := getwd()
			if err != nil {
				return err
			}

			inputDir := resolveDoctorInput(cwd, inputFlag, cmd.Flags().Changed("input"))
			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, inputDir)

			var allResults []doctor.Result
			inputResults, names := doctor.CheckInput(inputDir)
			allResults = append(allResults, inputResults...)
			allResults = append(allResults, doctor.CheckConfig(cwd)...)
			allResults = append(allResults, doctor.CheckFiles(inputDir, names)...)

			hasFail := false
			for _, r := range allResults {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}

			_, _ = fmt.Fprintln(out)
			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return fmt.Errorf(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}

	cmd.Flags().StringVar(&inputFlag, "input", "", messages.StripFlagInput)
	return cmd
}

// resolveDoctorInput prefers the flag, then the config file, then the default.
func resolveDoctorInput(cwd string, flag string, flagSet bool) string {
	if flagSet {
		return resolvePath(cwd, flag)
	}
	cfg, err := config.LoadLenient(cwd)
	if err != nil {
		cfg = config.Default()
	}
	return resolvePath(cwd, cfg.Paths.Input)
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, "       -> %s\n", r.Recommendation)
	}
}
