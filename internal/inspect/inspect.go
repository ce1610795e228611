// Package inspect ouvre le conteneur source avec audiometa pour afficher une
// fiche d'information avant la découpe. Lecture seule et purement
// consultative : la durée faisant foi pour le plan reste celle sondée par
// ffprobe, et aucune incompatibilité de codec n'est recherchée ici.
package inspect

import (
	"fmt"
	"strings"

	"github.com/patrickprogramme/splitbook/pkg/model"
	"github.com/simonhull/audiometa"
)

// SourceInfo : métadonnées utiles du conteneur source.
type SourceInfo struct {
	Path         string
	Format       string
	Title        string
	Author       string
	Narrator     string
	Duration     model.Milliseconds
	ChapterCount int // chapitres déjà embarqués dans le conteneur
	ArtworkCount int
	Warnings     []string
}

// Inspect lit les métadonnées du conteneur. Les avertissements de parsing
// non fatals sont reportés dans SourceInfo.Warnings.
func Inspect(path string) (*SourceInfo, error) {
	f, err := audiometa.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lecture des métadonnées de %s : %w", path, err)
	}
	defer f.Close()

	info := &SourceInfo{
		Path:         path,
		Format:       f.Format.String(),
		Title:        f.Tags.Title,
		Author:       f.Tags.Artist,
		Narrator:     f.Tags.Narrator,
		Duration:     model.Milliseconds(f.Audio.Duration.Milliseconds()),
		ChapterCount: len(f.Chapters),
	}
	if info.Title == "" {
		info.Title = f.Tags.Album
	}
	if info.Author == "" {
		info.Author = f.Tags.AlbumArtist
	}

	// l'artwork est chargé paresseusement ; un échec ici n'est pas bloquant
	if art, aerr := f.ExtractArtwork(); aerr == nil {
		info.ArtworkCount = len(art)
	}

	for _, w := range f.Warnings {
		info.Warnings = append(info.Warnings, w.Message)
	}
	return info, nil
}

// Pretty retourne une fiche multi-lignes simple.
func (s *SourceInfo) Pretty() string {
	orUnknown := func(v string) string {
		if strings.TrimSpace(v) == "" {
			return "<inconnu>"
		}
		return v
	}

	return fmt.Sprintf(
		"Source:\n"+
			"  Fichier   : %s\n"+
			"  Format    : %s\n"+
			"  Titre     : %s\n"+
			"  Auteur    : %s\n"+
			"  Narrateur : %s\n"+
			"  Durée     : %s\n"+
			"  Chapitres : %d (embarqués)\n"+
			"  Artwork   : %d\n",
		s.Path,
		orUnknown(s.Format),
		orUnknown(s.Title),
		orUnknown(s.Author),
		orUnknown(s.Narrator),
		s.Duration.WallClock(),
		s.ChapterCount,
		s.ArtworkCount,
	)
}
