package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/patrickprogramme/splitbook/pkg/model"
)

// Probe interroge ffprobe pour obtenir la durée totale du flux en
// millisecondes. C'est la seule grandeur que le cue sheet ne fournit pas :
// il n'enregistre que des instants de départ.
func (f *FFmpeg) Probe(ctx context.Context, path string) (model.Milliseconds, error) {
	exe := f.ProbePath
	if exe == "" {
		p, err := exec.LookPath(f.ProbeName)
		if err != nil {
			return 0, fmt.Errorf("ffprobe introuvable dans le PATH (%s) : %w", f.ProbeName, err)
		}
		exe = p
		f.ProbePath = p
	}

	cmd := exec.CommandContext(ctx, exe,
		"-v", "quiet",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("sondage de la durée de %s : %w", path, err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("durée ffprobe illisible %q : %w", strings.TrimSpace(string(out)), err)
	}
	return model.Milliseconds(seconds * 1000), nil
}
