package delivery

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/fnvhash/src"
	"github.com/Blackdeer1524/fnvhash/src/digest"
)

// Defaults come from the environment and seed the flag values, so
// FNVSUM_ALGORITHM etc. can be overridden per invocation.
type Defaults struct {
	Algorithm string
	Workers   int
}

type options struct {
	algorithm string
	key       string
	workers   int
}

// NewRootCommand builds the fnvsum command tree. The root command is sum
// mode: hash the named files and directories, or stdin when none are given,
// printing md5sum-style "<hex>  <path>" lines.
func NewRootCommand(fs afero.Fs, log src.Logger, defaults Defaults) *cobra.Command {
	if defaults.Algorithm == "" {
		defaults.Algorithm = string(digest.DefaultAlgorithm)
	}

	opts := &options{}

	root := &cobra.Command{
		Use:   "fnvsum [flags] [path ...]",
		Short: "Compute and verify FNV digests",
		Long: "fnvsum hashes files with the Fowler-Noll-Vo hash family\n" +
			"(FNV-1 and FNV-1a at 32, 64 and 128 bits) and verifies the\n" +
			"md5sum-style manifests it produces.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDigester(fs, log, opts)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return sumStdin(cmd, d)
			}

			return sumPaths(cmd, d, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(
		&opts.algorithm, "algorithm", "a", defaults.Algorithm,
		"digest algorithm, one of: "+algorithmList(),
	)
	pf.StringVarP(
		&opts.key, "key", "k", "",
		"hex key seeding each hash instead of the offset basis",
	)
	pf.IntVarP(
		&opts.workers, "workers", "w", defaults.Workers,
		"concurrent hashing workers (0 means one per CPU)",
	)

	root.AddCommand(
		newCheckCommand(fs, log, opts),
		newSelftestCommand(),
	)

	return root
}

func newDigester(fs afero.Fs, log src.Logger, opts *options) (*digest.Digester, error) {
	alg, err := digest.ParseAlgorithm(opts.algorithm)
	if err != nil {
		return nil, err
	}

	return digest.New(fs, log, digest.Config{
		Algorithm: alg,
		Key:       opts.key,
		Workers:   opts.workers,
	})
}

func sumStdin(cmd *cobra.Command, d *digest.Digester) error {
	sum, _, err := d.Sum(cmd.InOrStdin())
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), digest.FormatLine(sum, "-"))

	return nil
}

func sumPaths(cmd *cobra.Command, d *digest.Digester, paths []string) error {
	results, err := d.SumFiles(cmd.Context(), paths)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "fnvsum: %s: %v\n", res.Path, res.Err)

			continue
		}

		fmt.Fprint(cmd.OutOrStdout(), digest.FormatLine(res.Digest, res.Path))
	}

	if failed > 0 {
		return fmt.Errorf("failed to hash %d of %d files", failed, len(results))
	}

	return nil
}

func algorithmList() string {
	names := make([]string, 0, len(digest.Algorithms()))
	for _, a := range digest.Algorithms() {
		names = append(names, string(a))
	}

	return strings.Join(names, " ")
}
