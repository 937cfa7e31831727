package media

import (
	"path/filepath"
	"strings"
)

// livePhotoImageExts are the still-image extensions that can pair with a
// live photo video clip.
var livePhotoImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
	".heic": true,
}

// BaseName returns the file name with its final extension removed. Case is
// preserved: base names match case-sensitively even though extensions do not.
// A bare dotfile like ".mov" is all name and no extension, so it is returned
// unchanged.
func BaseName(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

func normalizedExt(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return strings.ToLower(ext)
}

// IsLivePhotoImage checks if the file name has a still-image extension that
// a live photo clip can duplicate.
func IsLivePhotoImage(name string) bool {
	return livePhotoImageExts[normalizedExt(name)]
}

// IsPairableVideo checks if the file name is a .mov clip, the only container
// phones write for the video half of a live photo.
func IsPairableVideo(name string) bool {
	return normalizedExt(name) == ".mov"
}
