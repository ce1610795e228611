package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateFFmpegPresence vérifie de manière statique que si un ResolvedPath
// est défini, le fichier existe et que le répertoire parent est accessible.
// Retourne warnings (non-fataux) et une erreur si c'est critique.
func (c *Config) ValidateFFmpegPresence() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}

	// assure que les resolved paths sont calculés
	c.ResolveFFmpegPaths()

	p := strings.TrimSpace(c.FFmpeg.ResolvedPath)
	if p == "" {
		// pas de chemin résolu : la découverte dans PATH sera tentée plus tard
		warnings = append(warnings, "aucun chemin résolu pour ffmpeg; recherche dans PATH possible")
		return warnings, nil
	}

	parent := filepath.Dir(p)
	if st, serr := os.Stat(parent); serr != nil {
		if os.IsNotExist(serr) {
			warnings = append(warnings, fmt.Sprintf("le dossier parent du chemin ffmpeg n'existe pas : %s", parent))
		} else {
			return warnings, fmt.Errorf("impossible d'accéder au dossier parent %s : %w", parent, serr)
		}
	} else if !st.IsDir() {
		return warnings, fmt.Errorf("le parent du chemin ffmpeg n'est pas un répertoire : %s", parent)
	}

	// vérifier si les binaires existent (stat)
	for _, bin := range []string{p, c.FFmpeg.ResolvedProbePath} {
		info, serr := os.Stat(bin)
		if serr != nil {
			if os.IsNotExist(serr) {
				warnings = append(warnings, fmt.Sprintf("binaire introuvable à l'emplacement configuré : %s", bin))
				continue
			}
			return warnings, fmt.Errorf("erreur lors du test du fichier %s : %w", bin, serr)
		}
		if info.IsDir() {
			return warnings, fmt.Errorf("le chemin configuré est un répertoire : %s", bin)
		}
	}

	return warnings, nil
}
