// Package metadata extracts capture timestamps from media file content.
// Extraction never fails with an error: unsupported formats, unreadable
// containers and malformed date fields all report the timestamp as absent.
package metadata

import (
	"path/filepath"
	"strings"
	"time"
)

type kind int

const (
	kindNone kind = iota
	kindImage
	kindVideo
)

// dispatch maps a normalized extension to the extractor that handles it.
// Anything not listed here is never opened.
var dispatch = map[string]kind{
	".jpg":  kindImage,
	".jpeg": kindImage,
	".png":  kindImage,
	".gif":  kindImage,
	".bmp":  kindImage,
	".tiff": kindImage,
	".webp": kindImage,
	".mp4":  kindVideo,
	".mov":  kindVideo,
	".avi":  kindVideo,
	".mkv":  kindVideo,
	".wmv":  kindVideo,
	".flv":  kindVideo,
	".webm": kindVideo,
}

// FromFile returns the capture timestamp embedded in the file's metadata.
func FromFile(path string) (time.Time, bool) {
	switch dispatch[strings.ToLower(filepath.Ext(path))] {
	case kindImage:
		return ImageTimestamp(path)
	case kindVideo:
		return VideoTimestamp(path)
	}
	return time.Time{}, false
}
