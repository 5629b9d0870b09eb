package digest

import (
	"context"
	"fmt"
	"hash"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/panjf2000/ants"
	"github.com/spf13/afero"

	"github.com/Blackdeer1524/fnvhash/src"
	"github.com/Blackdeer1524/fnvhash/src/pkg/assert"
	"github.com/Blackdeer1524/fnvhash/src/pkg/utils"
)

type Config struct {
	// Algorithm defaults to DefaultAlgorithm when empty.
	Algorithm Algorithm
	// Key optionally seeds every hasher instead of the offset basis, as one
	// digest worth of hex digits.
	Key string
	// Workers bounds hashing concurrency; non-positive means NumCPU.
	Workers int
}

// Digester hashes streams and file trees with one fixed algorithm. The
// constructor resolution happens here, once; the per-byte path never
// consults the registry.
type Digester struct {
	fs  afero.Fs
	log src.Logger
	cfg Config

	newHash func() hash.Hash
}

// Result is the outcome for a single file. Err is a per-file condition
// (unreadable, vanished mid-run); it never aborts the surrounding run.
type Result struct {
	Path   string
	Digest []byte
	Size   int64
	Err    error
}

func New(fs afero.Fs, log src.Logger, cfg Config) (*Digester, error) {
	assert.Assert(fs != nil, "digester needs a filesystem")

	if log == nil {
		log = src.NoLogs()
	}

	if cfg.Algorithm == "" {
		cfg.Algorithm = DefaultAlgorithm
	}
	if _, err := ParseAlgorithm(string(cfg.Algorithm)); err != nil {
		return nil, err
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	newHash := cfg.Algorithm.New
	if cfg.Key != "" {
		// Validate once so the factory below cannot fail.
		if _, err := cfg.Algorithm.NewWithKey(cfg.Key); err != nil {
			return nil, err
		}

		newHash = func() hash.Hash {
			return utils.Must(cfg.Algorithm.NewWithKey(cfg.Key))
		}
	}

	return &Digester{fs: fs, log: log, cfg: cfg, newHash: newHash}, nil
}

// Sum streams r through the configured algorithm in constant memory and
// returns the digest and the byte count consumed.
func (d *Digester) Sum(r io.Reader) ([]byte, int64, error) {
	return d.sumInto(d.newHash(), r)
}

func (d *Digester) sumInto(h hash.Hash, r io.Reader) ([]byte, int64, error) {
	n, err := io.Copy(h, r)
	if err != nil {
		return nil, n, fmt.Errorf("hash stream: %w", err)
	}

	return h.Sum(nil), n, nil
}

// SumFile hashes one file. Failures land in Result.Err.
func (d *Digester) SumFile(path string) Result {
	f, err := d.fs.Open(path)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("open: %w", err)}
	}
	defer f.Close()

	digest, n, err := d.Sum(f)
	if err != nil {
		return Result{Path: path, Err: err}
	}

	return Result{Path: path, Digest: digest, Size: n}
}

// SumFiles hashes every regular file reachable from paths (directories are
// walked) on a bounded worker pool. Results keep the expanded input order,
// one per file, with per-file errors recorded in place. The returned error
// covers infrastructure only: walking, pool setup, cancellation.
func (d *Digester) SumFiles(ctx context.Context, paths []string) ([]Result, error) {
	files, err := d.expand(paths)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	start := time.Now()

	pool, err := ants.NewPool(d.cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]Result, len(files))

	wg := sync.WaitGroup{}
	for i, path := range files {
		wg.Add(1)

		err := pool.Submit(func() {
			defer wg.Done()

			if ctx.Err() != nil {
				results[i] = Result{Path: path, Err: ctx.Err()}

				return
			}

			results[i] = d.SumFile(path)
		})
		if err != nil {
			wg.Done()

			return nil, fmt.Errorf("submit hash task: %w", err)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}

	hashedBytes := int64(0)
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		} else {
			hashedBytes += res.Size
		}
	}

	d.log.Infow("hashing run finished",
		"run_id", runID,
		"algorithm", d.cfg.Algorithm,
		"files", len(files),
		"failed", failed,
		"hashed", humanize.IBytes(uint64(hashedBytes)),
		"took", time.Since(start).String(),
	)

	return results, nil
}

// expand resolves the mixed file/directory argument list into regular
// files. A path that cannot be stat'ed stays in the list so the hashing
// pass reports it as a per-file error.
func (d *Digester) expand(paths []string) ([]string, error) {
	files := make([]string, 0, len(paths))

	for _, p := range paths {
		info, err := d.fs.Stat(p)
		if err != nil || !info.IsDir() {
			files = append(files, p)

			continue
		}

		err = afero.Walk(d.fs, p, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.Mode().IsRegular() {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
	}

	return files, nil
}
