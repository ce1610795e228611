package ffmeta

import (
	"strings"
	"testing"

	"github.com/patrickprogramme/splitbook/pkg/model"
)

func TestRenderNominal(t *testing.T) {
	tracks := []model.RebasedTrack{
		{Start: 0, End: 600000, Title: "Chapitre un"},
		{Start: 600000, End: 1200000, Title: "Chapitre deux"},
	}

	got := string(Render("Mon livre", tracks))
	want := `;FFMETADATA1
title=Mon livre
[CHAPTER]
TIMEBASE=1/1000
START=0
END=600000
title=Chapitre un
[CHAPTER]
TIMEBASE=1/1000
START=600000
END=1200000
title=Chapitre deux
`
	if got != want {
		t.Fatalf("sortie inattendue:\n%s\n--- attendu ---\n%s", got, want)
	}
}

func TestRenderStartsWithHeader(t *testing.T) {
	out := string(Render("", nil))
	if !strings.HasPrefix(out, Header+"\n") {
		t.Fatalf("l'en-tête %q doit ouvrir le descripteur, obtenu:\n%s", Header, out)
	}
	if strings.Contains(out, "title=") {
		t.Error("pas de ligne title attendue pour un titre vide")
	}
}

// Les caractères réservés du format doivent être échappés dans les valeurs.
func TestRenderEscapesReservedCharacters(t *testing.T) {
	tracks := []model.RebasedTrack{
		{Start: 0, End: 1000, Title: `a=b;c#d\e`},
	}
	out := string(Render("x;y", tracks))

	for _, want := range []string{
		`title=x\;y`,
		`title=a\=b\;c\#d\\e`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("échappement manquant, attendu %q dans:\n%s", want, out)
		}
	}
}

func TestRenderEscapesNewlineInTitle(t *testing.T) {
	tracks := []model.RebasedTrack{
		{Start: 0, End: 1000, Title: "ligne1\nligne2"},
	}
	out := string(Render("", tracks))
	if !strings.Contains(out, "title=ligne1\\\nligne2") {
		t.Fatalf("saut de ligne non échappé:\n%s", out)
	}
}
