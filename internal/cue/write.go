package cue

import (
	"fmt"
	"strings"

	"github.com/patrickprogramme/splitbook/pkg/model"
)

// Write rend un descripteur cue pour un segment recalé : mêmes lignes
// TRACK / TITLE / INDEX 01 que la grammaire d'entrée, pistes renumérotées
// à partir de 01, timecodes relatifs au début du segment. La sortie est
// déterministe : deux rendus des mêmes pistes sont identiques octet à octet.
func Write(fileName string, tracks []model.RebasedTrack) []byte {
	var b strings.Builder

	if fileName != "" {
		fmt.Fprintf(&b, "FILE %s WAVE\n", quote(fileName))
	}
	for i, t := range tracks {
		fmt.Fprintf(&b, "TRACK %02d AUDIO\n", i+1)
		fmt.Fprintf(&b, "  TITLE %s\n", quote(t.Title))
		fmt.Fprintf(&b, "  INDEX 01 %s\n", FormatTimecode(t.Start))
	}
	return []byte(b.String())
}

// quote encadre une valeur de guillemets cue. Le format ne prévoit pas
// d'échappement : les guillemets internes sont remplacés par des apostrophes
// pour que la valeur reste relisible par Parse.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `'`) + `"`
}
