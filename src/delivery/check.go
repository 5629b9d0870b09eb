package delivery

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/fnvhash/src"
	"github.com/Blackdeer1524/fnvhash/src/digest"
)

func newCheckCommand(fs afero.Fs, log src.Logger, opts *options) *cobra.Command {
	quiet := false

	cmd := &cobra.Command{
		Use:   "check <manifest>",
		Short: "Verify files against a digest manifest",
		Long: "check recomputes every file named in the manifest and compares\n" +
			"digests. The digest width follows each manifest entry; the variant\n" +
			"and key follow the flags.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDigester(fs, log, opts)
			if err != nil {
				return err
			}

			report, err := d.Check(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printReport(cmd, report, quiet)

			if report.Failed() {
				return fmt.Errorf(
					"%d of %d entries failed verification",
					report.Mismatched+report.Unreadable, len(report.Results),
				)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only failing entries")

	return cmd
}

func printReport(cmd *cobra.Command, report digest.CheckReport, quiet bool) {
	out := cmd.OutOrStdout()

	for _, res := range report.Results {
		switch res.Status {
		case digest.CheckOK:
			if !quiet {
				fmt.Fprintf(out, "%s: %s\n", res.Entry.Path, color.GreenString("OK"))
			}
		case digest.CheckMismatch:
			fmt.Fprintf(out, "%s: %s\n", res.Entry.Path, color.RedString("FAILED"))
		case digest.CheckUnreadable:
			fmt.Fprintf(out, "%s: %s: %v\n", res.Entry.Path, color.YellowString("ERROR"), res.Err)
		}
	}
}
