// Package cue lit et écrit les descripteurs de chapitrage au format cue
// sheet : blocs TRACK / TITLE / INDEX, timecodes en minutes:secondes:frames
// à 75 frames par seconde (standard du CD audio).
package cue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/patrickprogramme/splitbook/pkg/model"
)

// FramesPerSecond : granularité des timecodes cue (75 frames = 1 seconde).
const FramesPerSecond = 75

// ParseTimecode convertit un timecode "mm:ss:ff" en millisecondes.
// ms = (mm*60+ss)*1000 + round(ff*1000/75).
// mm peut dépasser 99 (les cue sheets longs l'autorisent).
func ParseTimecode(tc string) (model.Milliseconds, error) {
	parts := strings.Split(strings.TrimSpace(tc), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("timecode %q invalide : attendu mm:ss:ff", tc)
	}

	mm, err := strconv.Atoi(parts[0])
	if err != nil || mm < 0 {
		return 0, fmt.Errorf("timecode %q : minutes invalides", tc)
	}
	ss, err := strconv.Atoi(parts[1])
	if err != nil || ss < 0 || ss > 59 {
		return 0, fmt.Errorf("timecode %q : secondes invalides", tc)
	}
	ff, err := strconv.Atoi(parts[2])
	if err != nil || ff < 0 || ff >= FramesPerSecond {
		return 0, fmt.Errorf("timecode %q : frames invalides (0-%d)", tc, FramesPerSecond-1)
	}

	// arrondi au plus proche : (ff*1000*2 + 75) / (75*2)
	frameMs := (int64(ff)*2000 + FramesPerSecond) / (2 * FramesPerSecond)
	return model.Milliseconds(int64(mm*60+ss)*1000 + frameMs), nil
}

// FormatTimecode convertit des millisecondes en timecode "mm:ss:ff".
// Minutes et secondes par troncature entière, frames par division entière
// (floor). L'aller-retour avec ParseTimecode est avec perte sous la frame :
// erreur maximale < 1 frame (~13.3 ms), borne de précision assumée.
func FormatTimecode(ms model.Milliseconds) string {
	total := int64(ms)
	if total < 0 {
		total = 0
	}
	mm := total / 60_000
	ss := (total % 60_000) / 1000
	ff := (total % 1000) * FramesPerSecond / 1000
	return fmt.Sprintf("%02d:%02d:%02d", mm, ss, ff)
}
