// Package ffmpeg encapsule les deux collaborateurs externes du pipeline :
// ffprobe (sonde de durée) et ffmpeg (extraction stream-copy d'un segment
// avec fusion des chapitres). Aucune donnée audio n'est décodée ici.
package ffmpeg

import (
	"errors"
	"fmt"

	"github.com/patrickprogramme/splitbook/pkg/model"
)

// ErrEngineFailed : le moteur externe a retourné un code d'échec pour un
// segment. Récupérable au niveau du segment, jamais fatal pour le run.
var ErrEngineFailed = errors.New("échec du moteur ffmpeg")

// FFmpeg représente les binaires à exécuter (noms ou chemins résolus) + la
// configuration des invocations.
type FFmpeg struct {
	Name      string // nom du binaire ffmpeg (fallback si Path vide)
	Path      string // chemin résolu vers ffmpeg
	ProbeName string // nom du binaire ffprobe
	ProbePath string // chemin résolu vers ffprobe
	Config    Config
}

// ExtractRequest décrit une extraction de segment : plage absolue
// [Start, End) dans le conteneur source, descripteur de chapitres à
// fusionner, chemin de sortie.
type ExtractRequest struct {
	SourcePath   string
	MetadataPath string // fichier FFMETADATA1 du segment
	OutputPath   string
	Start        model.Milliseconds
	End          model.Milliseconds
}

func (r ExtractRequest) String() string {
	return fmt.Sprintf("extract [%s, %s) -> %s", r.Start, r.End, r.OutputPath)
}
