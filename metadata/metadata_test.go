package metadata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromFile_UnsupportedExtensions(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"Text file", "notes.txt"},
		{"No extension", "README"},
		{"Empty string", ""},
		{"PDF", "doc.pdf"},
		// HEIC pairs with live photos but has no supported extractor here.
		{"HEIC", "photo.heic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Paths deliberately do not exist: unsupported extensions must
			// be rejected without touching the file system.
			if _, ok := FromFile(tt.path); ok {
				t.Errorf("FromFile(%q) = ok, expected no timestamp", tt.path)
			}
		})
	}
}

func TestFromFile_MissingMediaFile(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"Missing image", "/path/to/nonexistent/photo.jpg"},
		{"Missing video", "/path/to/nonexistent/clip.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := FromFile(tt.path); ok {
				t.Errorf("FromFile(%q) = ok, expected no timestamp", tt.path)
			}
		})
	}
}

func TestFromFile_CorruptMediaFiles(t *testing.T) {
	testDir := t.TempDir()

	names := []string{
		"img.jpg", "img.jpeg", "img.png", "img.gif", "img.bmp",
		"img.tiff", "img.webp",
		"clip.mp4", "clip.mov", "clip.avi", "clip.mkv", "clip.wmv",
		"clip.flv", "clip.webm",
	}
	for _, name := range names {
		path := filepath.Join(testDir, name)
		if err := os.WriteFile(path, []byte("not real media content"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			if _, ok := FromFile(filepath.Join(testDir, name)); ok {
				t.Errorf("FromFile(%q) = ok, expected no timestamp for corrupt content", name)
			}
		})
	}
}
