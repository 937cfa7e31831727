package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abema/go-mp4"
)

// appleEpochOffset converts seconds since 1904-01-01 (the ISO BMFF epoch)
// to Unix time.
const appleEpochOffset = 2082844800

// isoBMFFExts are the containers that store creation time in ISO Base Media
// File Format boxes. Other video containers yield no timestamp.
var isoBMFFExts = map[string]bool{
	".mp4": true,
	".mov": true,
	".m4v": true,
}

// VideoTimestamp returns the creation time recorded in a video container.
// Boxes are checked in a fixed priority order: the movie header (mvhd)
// first, then each track's media header (mdhd). The first plausible value
// wins; whether that ordering is right for every real-world container is
// unverified.
func VideoTimestamp(path string) (time.Time, bool) {
	if !isoBMFFExts[strings.ToLower(filepath.Ext(path))] {
		return time.Time{}, false
	}

	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer func() { _ = f.Close() }()

	boxes, err := mp4.ExtractBoxesWithPayload(f, nil, []mp4.BoxPath{
		{mp4.BoxTypeMoov(), mp4.BoxTypeMvhd()},
		{mp4.BoxTypeMoov(), mp4.BoxTypeTrak(), mp4.BoxTypeMdia(), mp4.BoxTypeMdhd()},
	})
	if err != nil {
		return time.Time{}, false
	}

	var mvhdTimes, mdhdTimes []uint64
	for _, box := range boxes {
		switch payload := box.Payload.(type) {
		case *mp4.Mvhd:
			mvhdTimes = append(mvhdTimes, payload.GetCreationTime())
		case *mp4.Mdhd:
			mdhdTimes = append(mdhdTimes, mdhdCreationTime(payload))
		}
	}

	for _, epoch := range append(mvhdTimes, mdhdTimes...) {
		if t, ok := bmffTime(epoch); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func mdhdCreationTime(box *mp4.Mdhd) uint64 {
	if box.Version == 0 {
		return uint64(box.CreationTimeV0)
	}
	return box.CreationTimeV1
}

// bmffTime rejects zero and pre-Unix-epoch values, which cameras write when
// their clock was never set.
func bmffTime(epoch uint64) (time.Time, bool) {
	if epoch == 0 {
		return time.Time{}, false
	}
	t := time.Unix(int64(epoch)-appleEpochOffset, 0).UTC()
	if t.Year() < 1970 {
		return time.Time{}, false
	}
	return t, true
}
