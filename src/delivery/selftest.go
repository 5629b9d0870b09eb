package delivery

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/fnvhash/src/fnv"
)

type selfCheck struct {
	name string
	ok   func() bool
}

// The derivation checks recompute the offset basis constants from scratch;
// the vector checks pin the published digests. Between them a miscompiled
// or corrupted build cannot pass.
func selfChecks() []selfCheck {
	return []selfCheck{
		{
			name: "fnv0 over the signature string derives the 32-bit offset basis",
			ok: func() bool {
				h := fnv.NewFnv0[fnv.U32]()
				_, _ = h.Write([]byte(fnv.OffsetBasisInput))

				return h.Sum() == fnv.U32(0).OffsetBasis()
			},
		},
		{
			name: "fnv0 over the signature string derives the 64-bit offset basis",
			ok: func() bool {
				h := fnv.NewFnv0[fnv.U64]()
				_, _ = h.Write([]byte(fnv.OffsetBasisInput))

				return h.Sum() == fnv.U64(0).OffsetBasis()
			},
		},
		{
			name: "fnv0 over the signature string derives the 128-bit offset basis",
			ok: func() bool {
				h := fnv.NewFnv0[fnv.U128]()
				_, _ = h.Write([]byte(fnv.OffsetBasisInput))

				return h.Sum() == fnv.U128{}.OffsetBasis()
			},
		},
		{
			name: `fnv1-32("a") = 050c5d7e`,
			ok:   func() bool { return fnv.Sum32([]byte("a")) == 0x050c5d7e },
		},
		{
			name: `fnv1a-32("foobar") = bf9cf968`,
			ok:   func() bool { return fnv.Sum32a([]byte("foobar")) == 0xbf9cf968 },
		},
		{
			name: `fnv1-64("a") = af63bd4c8601b7be`,
			ok:   func() bool { return fnv.Sum64([]byte("a")) == 0xaf63bd4c8601b7be },
		},
		{
			name: `fnv1a-64("foobar") = 85944171f73967e8`,
			ok:   func() bool { return fnv.Sum64a([]byte("foobar")) == 0x85944171f73967e8 },
		},
		{
			name: `fnv1a-128("foobar") = 343e1662793c64bf6f0d3597ba446f18`,
			ok: func() bool {
				want := fnv.U128{Hi: 0x343e1662793c64bf, Lo: 0x6f0d3597ba446f18}

				return fnv.Sum128a([]byte("foobar")) == want
			},
		},
	}
}

func newSelftestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Recompute hash constants and known vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			failures := 0
			for _, check := range selfChecks() {
				if check.ok() {
					fmt.Fprintf(out, "%s    %s\n", color.GreenString("ok"), check.name)
				} else {
					failures++
					fmt.Fprintf(out, "%s  %s\n", color.RedString("FAIL"), check.name)
				}
			}

			if failures > 0 {
				return fmt.Errorf("%d self checks failed", failures)
			}

			return nil
		},
	}
}
