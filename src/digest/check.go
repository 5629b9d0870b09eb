package digest

import (
	"bytes"
	"context"
	"fmt"
	"hash"

	"golang.org/x/sync/errgroup"

	"github.com/Blackdeer1524/fnvhash/src/pkg/assert"
)

type CheckStatus int

const (
	CheckOK CheckStatus = iota
	CheckMismatch
	CheckUnreadable
)

func (s CheckStatus) String() string {
	switch s {
	case CheckOK:
		return "OK"
	case CheckMismatch:
		return "FAILED"
	case CheckUnreadable:
		return "ERROR"
	default:
		assert.Assert(false, "unknown check status %d", int(s))

		return ""
	}
}

// CheckResult pairs a manifest entry with its verification outcome. Got
// holds the recomputed digest on mismatch; Err explains CheckUnreadable.
type CheckResult struct {
	Entry  ManifestEntry
	Status CheckStatus
	Got    []byte
	Err    error
}

type CheckReport struct {
	Results    []CheckResult
	OK         int
	Mismatched int
	Unreadable int
}

// Failed reports whether anything other than a clean pass happened.
func (r *CheckReport) Failed() bool {
	return r.Mismatched+r.Unreadable > 0
}

// Check verifies every entry of the manifest at manifestPath against the
// filesystem, recomputing files concurrently. The digest width follows each
// entry (a 64-bit run can verify a 128-bit manifest); the variant and
// optional key follow the configuration. Mismatches and unreadable files
// are recorded per entry; the returned error covers the manifest itself and
// cancellation.
func (d *Digester) Check(ctx context.Context, manifestPath string) (CheckReport, error) {
	f, err := d.fs.Open(manifestPath)
	if err != nil {
		return CheckReport{}, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	entries, err := ParseManifest(f)
	if err != nil {
		return CheckReport{}, fmt.Errorf("parse %s: %w", manifestPath, err)
	}

	results := make([]CheckResult, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Workers)

	for i, entry := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = d.checkEntry(entry)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return CheckReport{}, err
	}

	report := CheckReport{Results: results}
	for _, res := range results {
		switch res.Status {
		case CheckOK:
			report.OK++
		case CheckMismatch:
			report.Mismatched++
		case CheckUnreadable:
			report.Unreadable++
		}
	}

	return report, nil
}

func (d *Digester) checkEntry(entry ManifestEntry) CheckResult {
	h, err := d.hasherFor(entry)
	if err != nil {
		return CheckResult{Entry: entry, Status: CheckUnreadable, Err: err}
	}

	f, err := d.fs.Open(entry.Path)
	if err != nil {
		return CheckResult{
			Entry:  entry,
			Status: CheckUnreadable,
			Err:    fmt.Errorf("open: %w", err),
		}
	}
	defer f.Close()

	got, _, err := d.sumInto(h, f)
	if err != nil {
		return CheckResult{Entry: entry, Status: CheckUnreadable, Err: err}
	}

	if !bytes.Equal(got, entry.Digest) {
		return CheckResult{Entry: entry, Status: CheckMismatch, Got: got}
	}

	return CheckResult{Entry: entry, Status: CheckOK}
}

// hasherFor picks the hasher matching the entry's digest width. When a key
// is configured it must fit that width, which can only fail for entries at
// a different width than the configured algorithm.
func (d *Digester) hasherFor(entry ManifestEntry) (hash.Hash, error) {
	alg, err := d.cfg.Algorithm.withSize(len(entry.Digest))
	if err != nil {
		return nil, err
	}

	if d.cfg.Key == "" {
		return alg.New(), nil
	}

	return alg.NewWithKey(d.cfg.Key)
}
