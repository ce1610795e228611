// Package ffmeta rend le descripteur de métadonnées de chapitres consommé
// par ffmpeg (format FFMETADATA1) : un en-tête, des clés globales, puis un
// bloc [CHAPTER] par chapitre en base de temps milliseconde.
package ffmeta

import (
	"fmt"
	"strings"

	"github.com/patrickprogramme/splitbook/pkg/model"
)

// Header : première ligne obligatoire du format.
const Header = ";FFMETADATA1"

// escaper protège les caractères spéciaux du format FFMETADATA :
// '=', ';', '#', '\' et le saut de ligne doivent être échappés par '\'.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`=`, `\=`,
	`;`, `\;`,
	`#`, `\#`,
	"\n", `\`+"\n",
)

// Render produit le descripteur complet pour un livre : titre global puis
// un bloc par chapitre (TIMEBASE=1/1000, START, END, title). La sortie est
// déterministe pour des entrées identiques.
func Render(bookTitle string, tracks []model.RebasedTrack) []byte {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	if bookTitle != "" {
		fmt.Fprintf(&b, "title=%s\n", escaper.Replace(bookTitle))
	}

	for _, t := range tracks {
		b.WriteString("[CHAPTER]\n")
		b.WriteString("TIMEBASE=1/1000\n")
		fmt.Fprintf(&b, "START=%d\n", int64(t.Start))
		fmt.Fprintf(&b, "END=%d\n", int64(t.End))
		fmt.Fprintf(&b, "title=%s\n", escaper.Replace(t.Title))
	}
	return []byte(b.String())
}
