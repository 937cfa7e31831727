package media

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// DedupScan is the outcome of a redundant-clip scan: clips whose base name
// matches a still image in the same directory, and clips that stay.
type DedupScan struct {
	Redundant []string
	Kept      []string
}

// FindLivePhotoVideos scans a single directory level for .mov clips that
// duplicate a still image with the same base name. Two passes over one
// listing are required: a clip may be enumerated before its paired image,
// so the image set must be complete before any membership test.
func FindLivePhotoVideos(dir string) (DedupScan, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return DedupScan{}, fmt.Errorf("failed to read directory: %w", err)
	}

	imageBases := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsLivePhotoImage(entry.Name()) {
			imageBases[BaseName(entry.Name())] = true
		}
	}

	var scan DedupScan
	for _, entry := range entries {
		if entry.IsDir() || !IsPairableVideo(entry.Name()) {
			continue
		}
		if imageBases[BaseName(entry.Name())] {
			scan.Redundant = append(scan.Redundant, entry.Name())
		} else {
			scan.Kept = append(scan.Kept, entry.Name())
		}
	}
	return scan, nil
}

// RemoveLivePhotoVideos scans dir and deletes every redundant clip. A failed
// deletion is logged and counted as skipped rather than aborting the run.
// Returns the number of clips removed and the number kept or skipped.
func RemoveLivePhotoVideos(dir string) (int, int, error) {
	scan, err := FindLivePhotoVideos(dir)
	if err != nil {
		return 0, 0, err
	}

	removed := 0
	skipped := len(scan.Kept)
	for _, name := range scan.Redundant {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			fmt.Printf("%s\n", errorStyle.Render(fmt.Sprintf("❌ Error removing %s: %v", name, err)))
			skipped++
			continue
		}
		fmt.Printf("%s\n", successStyle.Render(fmt.Sprintf("✅ Removed: %s", name)))
		removed++
	}
	return removed, skipped, nil
}

// Styling definitions
var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)
