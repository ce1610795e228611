package ffmpeg

import (
	"path/filepath"
	"strings"
)

// Config représente les flags ajoutables aux invocations ffmpeg.
type Config struct {
	Overwrite    bool // true => -y (écraser les sorties existantes)
	ShowWarnings bool // false => -loglevel error
	NoStdin      bool // true => -nostdin (jamais d'interaction)
	FastStart    bool // true => -movflags +faststart pour les sorties mp4/m4a/m4b
}

// NewConfig initialise une configuration standard, showWarnings vient du
// yaml de config.
func NewConfig(showWarnings bool) *Config {
	return &Config{
		Overwrite:    true,
		ShowWarnings: showWarnings,
		NoStdin:      true,
		FastStart:    true,
	}
}

// BuildExtractArgs construit la slice d'arguments d'une extraction :
// -ss/-to côté entrée (découpe de la plage absolue), deuxième entrée =
// descripteur FFMETADATA, -map_metadata/-map_chapters pour la fusion,
// -map 0 -c copy pour transporter tous les flux (artwork compris) sans
// ré-encodage.
func (c *Config) BuildExtractArgs(req ExtractRequest) []string {
	args := make([]string, 0, 24)
	if c.NoStdin {
		args = append(args, "-nostdin")
	}
	args = append(args, "-hide_banner")
	if c.ShowWarnings {
		args = append(args, "-loglevel", "warning")
	} else {
		args = append(args, "-loglevel", "error")
	}
	if c.Overwrite {
		args = append(args, "-y")
	}

	args = append(args,
		"-ss", req.Start.WallClock(),
		"-to", req.End.WallClock(),
		"-i", req.SourcePath,
		"-i", req.MetadataPath,
		"-map_metadata", "1",
		"-map_chapters", "1",
		"-map", "0",
		"-c", "copy",
	)

	if c.FastStart && isMP4Family(req.OutputPath) {
		args = append(args, "-movflags", "+faststart")
	}

	args = append(args, req.OutputPath)
	return args
}

// isMP4Family : le muxer mov/mp4 est le seul à connaître -movflags.
func isMP4Family(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".m4b", ".m4a", ".mp4":
		return true
	}
	return false
}
