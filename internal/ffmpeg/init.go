package ffmpeg

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickprogramme/splitbook/internal/config"
)

const defaultVersionTimeout = 5 * time.Second

// Init initialise le client ffmpeg depuis la configuration, vérifie le
// binaire et récupère la version. Retourne le client (implémentant
// Interface) et la version.
func Init(ctx context.Context, cfg *config.Config) (Interface, string, error) {
	ffCfg := NewConfig(cfg.FFmpeg.ShowWarnings)
	eng := New(cfg.FFmpeg.Name, cfg.FFmpeg.ResolvedPath,
		cfg.FFmpeg.ProbeName, cfg.FFmpeg.ResolvedProbePath, *ffCfg)

	if err := eng.CheckBinary(); err != nil {
		return nil, "", fmt.Errorf("ffmpeg introuvable : %w", err)
	}

	vctx, cancel := context.WithTimeout(ctx, defaultVersionTimeout)
	defer cancel()
	version, err := eng.GetVersion(vctx)
	if err != nil {
		return eng, "", fmt.Errorf("échec récupération version ffmpeg : %w", err)
	}
	return eng, version, nil
}
