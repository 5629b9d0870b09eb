package digest

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Manifest lines follow the md5sum convention: lowercase hex digest, two
// spaces, file path. Blank lines are skipped on read.

var ErrMalformedManifest = errors.New("malformed manifest")

type ManifestEntry struct {
	Digest []byte
	Path   string
}

// FormatLine renders one manifest line, newline included.
func FormatLine(digest []byte, path string) string {
	return fmt.Sprintf("%s  %s\n", hex.EncodeToString(digest), path)
}

// ParseLine parses a single manifest line without its trailing newline.
func ParseLine(line string) (ManifestEntry, error) {
	digestHex, path, ok := strings.Cut(line, "  ")
	if !ok || digestHex == "" || path == "" {
		return ManifestEntry{}, fmt.Errorf(
			"%w: want \"<hex>  <path>\", got %q", ErrMalformedManifest, line,
		)
	}

	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return ManifestEntry{}, fmt.Errorf(
			"%w: digest %q is not hex: %v", ErrMalformedManifest, digestHex, err,
		)
	}

	return ManifestEntry{Digest: digest, Path: path}, nil
}

// ParseManifest reads every entry from r, reporting the first bad line with
// its line number.
func ParseManifest(r io.Reader) ([]ManifestEntry, error) {
	var entries []ManifestEntry

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++

		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		entry, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		entries = append(entries, entry)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return entries, nil
}
