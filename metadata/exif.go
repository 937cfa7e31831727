package metadata

import (
	"os"
	"strings"
	"time"

	exifv3 "github.com/dsoprea/go-exif/v3"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
)

// exifTimeLayout is the date string format EXIF writers use.
const exifTimeLayout = "2006:01:02 15:04:05"

func init() {
	exif.RegisterParsers(mknote.All...)
}

// ImageTimestamp returns the capture timestamp from an image's EXIF data,
// preferring DateTimeOriginal over the generic DateTime tag. If the goexif
// decoder rejects the container outright, a raw EXIF blob search is
// attempted with the same tag priority before giving up.
func ImageTimestamp(path string) (time.Time, bool) {
	if t, ok := decodeExifDate(path); ok {
		return t, true
	}
	return searchRawExifDate(path)
}

func decodeExifDate(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer func() { _ = f.Close() }()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}

	for _, field := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime} {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		value, err := tag.StringVal()
		if err != nil {
			continue
		}
		if t, ok := parseExifDate(value); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// searchRawExifDate scans the file for an embedded EXIF blob without relying
// on the container format. Covers images whose wrapper goexif cannot decode
// but which still carry a standard TIFF-structured EXIF segment.
func searchRawExifDate(path string) (time.Time, bool) {
	rawExif, err := exifv3.SearchFileAndExtractExif(path)
	if err != nil {
		return time.Time{}, false
	}

	entries, _, err := exifv3.GetFlatExifDataUniversalSearch(rawExif, nil, true)
	if err != nil {
		return time.Time{}, false
	}

	for _, name := range []string{"DateTimeOriginal", "DateTime"} {
		for _, entry := range entries {
			if entry.TagName != name {
				continue
			}
			value, ok := entry.Value.(string)
			if !ok {
				continue
			}
			if t, ok := parseExifDate(value); ok {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// parseExifDate parses an EXIF date string. Some writers pad the value with
// trailing NUL bytes, so those are stripped first.
func parseExifDate(value string) (time.Time, bool) {
	value = strings.TrimRight(strings.TrimSpace(value), "\x00")
	t, err := time.Parse(exifTimeLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
