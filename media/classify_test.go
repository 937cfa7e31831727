package media

import (
	"testing"
)

func TestIsLivePhotoImage(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		// Valid image files
		{"JPG lowercase", "photo.jpg", true},
		{"JPG uppercase", "photo.JPG", true},
		{"JPEG", "photo.jpeg", true},
		{"PNG", "photo.png", true},
		{"GIF", "photo.gif", true},
		{"BMP", "photo.bmp", true},
		{"TIFF", "photo.tiff", true},
		{"WebP", "photo.webp", true},
		{"HEIC", "photo.heic", true},
		{"HEIC uppercase", "IMG_0001.HEIC", true},

		// Invalid files
		{"MOV clip", "clip.mov", false},
		{"MP4 video", "clip.mp4", false},
		{"Text file", "notes.txt", false},
		{"No extension", "photo", false},
		{"Empty string", "", false},

		// Edge cases
		{"Multiple dots", "vacation.2023.jpg", true},
		{"Hidden file", ".hidden.png", true},
		{"Bare dotfile", ".jpg", false},
		{"Space in name", "my photo.jpeg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsLivePhotoImage(tt.path)
			if result != tt.expected {
				t.Errorf("IsLivePhotoImage(%q) = %v, expected %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestIsPairableVideo(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"MOV lowercase", "clip.mov", true},
		{"MOV uppercase", "clip.MOV", true},
		{"MOV mixed case", "clip.Mov", true},
		{"MP4", "clip.mp4", false},
		{"AVI", "clip.avi", false},
		{"Image", "photo.jpg", false},
		{"No extension", "clip", false},
		{"MOV in base name only", "mov.jpg", false},
		{"Bare dotfile", ".mov", false},
		{"Hidden clip", ".hidden.mov", true},
		{"Empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsPairableVideo(tt.path)
			if result != tt.expected {
				t.Errorf("IsPairableVideo(%q) = %v, expected %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Simple name", "photo.jpg", "photo"},
		{"Uppercase extension", "IMG_0001.MOV", "IMG_0001"},
		{"Case preserved", "Photo.jpg", "Photo"},
		{"Only final suffix stripped", "vacation.2023.jpg", "vacation.2023"},
		{"No extension", "photo", "photo"},
		{"Bare dotfile kept whole", ".mov", ".mov"},
		{"Empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BaseName(tt.path)
			if result != tt.expected {
				t.Errorf("BaseName(%q) = %q, expected %q", tt.path, result, tt.expected)
			}
		})
	}
}
