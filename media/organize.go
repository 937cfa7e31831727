package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rzauls/exif-tools/metadata"
)

// DefaultDestName is the subdirectory dated files are gathered into when the
// caller does not name one.
const DefaultDestName = "dated_media"

// Outcome describes what happened to a single scanned file.
type Outcome int

const (
	// OutcomeMoved means a capture timestamp was found and the file was
	// renamed into the destination subdirectory.
	OutcomeMoved Outcome = iota
	// OutcomeNoDate means no capture timestamp could be determined and the
	// file was left in place.
	OutcomeNoDate
)

// Event reports the outcome for one scanned file.
type Event struct {
	Name    string
	NewName string
	Outcome Outcome
}

// OrganizeResult holds the counters reported after a full scan.
type OrganizeResult struct {
	Processed   int
	Moved       int
	WithoutDate int
}

// Organize moves every dateable file at the top level of srcDir into the
// destName subdirectory under a YYYYMMDD_HHMMSS name derived from its
// capture timestamp. Files without a determinable timestamp stay where they
// are. The observe callback, if non-nil, is invoked once per scanned file.
func Organize(srcDir, destName string, observe func(Event)) (OrganizeResult, error) {
	if destName == "" {
		destName = DefaultDestName
	}
	destDir := filepath.Join(srcDir, destName)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return OrganizeResult{}, fmt.Errorf("failed to create destination directory: %w", err)
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return OrganizeResult{}, fmt.Errorf("failed to read source directory: %w", err)
	}

	var result OrganizeResult
	for _, entry := range entries {
		// The destination subdirectory itself is never a candidate.
		if entry.IsDir() || entry.Name() == destName {
			continue
		}
		result.Processed++

		srcPath := filepath.Join(srcDir, entry.Name())
		taken, ok := metadata.FromFile(srcPath)
		if !ok {
			result.WithoutDate++
			if observe != nil {
				observe(Event{Name: entry.Name(), Outcome: OutcomeNoDate})
			}
			continue
		}

		destPath := nextAvailableName(destDir, taken, filepath.Ext(entry.Name()))
		if err := moveFile(srcPath, destPath); err != nil {
			return result, fmt.Errorf("failed to move %s: %w", entry.Name(), err)
		}
		result.Moved++
		if observe != nil {
			observe(Event{
				Name:    entry.Name(),
				NewName: filepath.Base(destPath),
				Outcome: OutcomeMoved,
			})
		}
	}
	return result, nil
}

// timestampName formats a capture timestamp as a filename stem.
func timestampName(t time.Time) string {
	return t.Format("20060102_150405")
}

// nextAvailableName returns the first collision-free destination path for
// the timestamp, appending _1, _2, ... before the lowercased extension until
// one is free. Existence is re-checked on every iteration because earlier
// moves in the same run create files in destDir.
func nextAvailableName(destDir string, taken time.Time, ext string) string {
	ext = strings.ToLower(ext)
	stem := timestampName(taken)

	candidate := filepath.Join(destDir, stem+ext)
	for counter := 1; ; counter++ {
		// Only a successful stat means the name is taken. Any stat failure
		// ends the search; if the path is truly unusable, the move that
		// follows reports the underlying error.
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
		candidate = filepath.Join(destDir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
	}
}

// moveFile renames src to dst, falling back to copy-then-remove when the
// rename crosses a device boundary.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() { _ = dstFile.Close() }()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
