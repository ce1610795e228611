package ffmpeg

import (
	"context"

	"github.com/patrickprogramme/splitbook/pkg/model"
)

// Interface est l'abstraction utilisée par l'application. Elle facilite le
// test en autorisant une implémentation factice dans les tests.
type Interface interface {
	CheckBinary() error
	GetVersion(ctx context.Context) (string, error)

	// Probe retourne la durée totale du flux du conteneur en millisecondes.
	Probe(ctx context.Context, path string) (model.Milliseconds, error)

	// Extract matérialise un segment : stream-copy de la plage demandée,
	// chapitres fusionnés, artwork embarqué transporté tel quel.
	Extract(ctx context.Context, req ExtractRequest) error
}
