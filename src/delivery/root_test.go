package delivery

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Blackdeer1524/fnvhash/src"
	"github.com/Blackdeer1524/fnvhash/src/digest"
)

func TestMain(m *testing.M) {
	// Deterministic output regardless of where the tests run.
	color.NoColor = true
	os.Exit(m.Run())
}

func runCommand(
	t *testing.T,
	fs afero.Fs,
	stdin io.Reader,
	args ...string,
) (stdout, stderr string, err error) {
	t.Helper()

	root := NewRootCommand(fs, src.NoLogs(), Defaults{})

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	if stdin != nil {
		root.SetIn(stdin)
	}

	// SetArgs(nil) falls back to os.Args, which holds test flags here.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err = root.Execute()

	return out.String(), errOut.String(), err
}

func TestSumStdin(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCommand(t, afero.NewMemMapFs(), strings.NewReader("foobar"))
	require.NoError(t, err)

	assert.Equal(t, "85944171f73967e8  -\n", stdout)
}

func TestSumFilesOutput(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.txt", []byte("foobar"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "dir/b.txt", []byte("a"), 0o644))

	stdout, stderr, err := runCommand(t, fs, nil, "a.txt", "dir")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Equal(t,
		"85944171f73967e8  a.txt\n"+
			"af63dc4c8601ec8c  dir/b.txt\n",
		stdout,
	)
}

func TestSumReportsUnreadableFiles(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.txt", []byte("foobar"), 0o644))

	stdout, stderr, err := runCommand(t, fs, nil, "a.txt", "missing.txt")
	require.Error(t, err)
	assert.ErrorContains(t, err, "1 of 2")

	assert.Contains(t, stdout, "85944171f73967e8  a.txt")
	assert.Contains(t, stderr, "missing.txt")
}

func TestSumAlgorithmAndKeyFlags(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCommand(
		t, afero.NewMemMapFs(), strings.NewReader("foobar"),
		"--algorithm", "fnv1a-32",
	)
	require.NoError(t, err)
	assert.Equal(t, "bf9cf968  -\n", stdout)

	stdout, _, err = runCommand(
		t, afero.NewMemMapFs(), strings.NewReader("foobar"),
		"-a", "fnv1a-128",
	)
	require.NoError(t, err)
	assert.Equal(t, "343e1662793c64bf6f0d3597ba446f18  -\n", stdout)

	// Keyed digests diverge from the canonical ones.
	stdout, _, err = runCommand(
		t, afero.NewMemMapFs(), strings.NewReader("foobar"),
		"-k", "deadbeefcafef00d",
	)
	require.NoError(t, err)
	assert.NotEqual(t, "85944171f73967e8  -\n", stdout)
	assert.True(t, strings.HasSuffix(stdout, "  -\n"))
}

func TestSumRejectsUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	_, _, err := runCommand(
		t, afero.NewMemMapFs(), strings.NewReader(""),
		"-a", "crc32",
	)
	assert.ErrorIs(t, err, digest.ErrUnknownAlgorithm)
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.txt", []byte("foobar"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "b.txt", []byte("payload"), 0o644))

	manifest, _, err := runCommand(t, fs, nil, "a.txt", "b.txt")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "sums.fnv", []byte(manifest), 0o644))

	stdout, _, err := runCommand(t, fs, nil, "check", "sums.fnv")
	require.NoError(t, err)
	assert.Equal(t, "a.txt: OK\nb.txt: OK\n", stdout)

	// Corrupt one file: its line flips to FAILED and the command fails.
	require.NoError(t, afero.WriteFile(fs, "b.txt", []byte("tampered"), 0o644))

	stdout, _, err = runCommand(t, fs, nil, "check", "sums.fnv")
	require.Error(t, err)
	assert.ErrorContains(t, err, "1 of 2")
	assert.Contains(t, stdout, "a.txt: OK")
	assert.Contains(t, stdout, "b.txt: FAILED")
}

func TestCheckQuietPrintsOnlyFailures(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.txt", []byte("foobar"), 0o644))

	manifest, _, err := runCommand(t, fs, nil, "a.txt")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "sums.fnv", []byte(manifest), 0o644))

	stdout, _, err := runCommand(t, fs, nil, "check", "--quiet", "sums.fnv")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	require.NoError(t, afero.WriteFile(fs, "a.txt", []byte("tampered"), 0o644))

	stdout, _, err = runCommand(t, fs, nil, "check", "-q", "sums.fnv")
	require.Error(t, err)
	assert.Equal(t, "a.txt: FAILED\n", stdout)
}

func TestSelftestPasses(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCommand(t, afero.NewMemMapFs(), nil, "selftest")
	require.NoError(t, err)

	assert.Contains(t, stdout, "offset basis")
	assert.NotContains(t, stdout, "FAIL")
	assert.Equal(t, len(selfChecks()), strings.Count(stdout, "\n"))
}
