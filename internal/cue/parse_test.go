package cue

import (
	"errors"
	"testing"
)

const sampleCue = `FILE "omnibus.m4b" WAVE
TITLE "Intégrale Fondation"
PERFORMER "Isaac Asimov"
REM COMMENT "généré par m4b-tool"
  TRACK 01 AUDIO
    TITLE "01: Les psychohistoriens"
    INDEX 01 00:00:00
  TRACK 02 AUDIO
    TITLE "02: Les encyclopédistes"
    INDEX 01 10:00:00
  TRACK 03 AUDIO
    TITLE "03: Les maires"
    INDEX 01 20:00:00
`

func TestParseNominal(t *testing.T) {
	tl, err := Parse(sampleCue)
	if err != nil {
		t.Fatalf("Parse: erreur inattendue: %v", err)
	}
	if got := tl.TotalTracks(); got != 3 {
		t.Fatalf("TotalTracks = %d, attendu 3", got)
	}
	if tl[0].Number != 1 || tl[0].Title != "01: Les psychohistoriens" || tl[0].Start != 0 {
		t.Errorf("piste 1 inattendue: %+v", tl[0])
	}
	if tl[1].Start != 600000 {
		t.Errorf("piste 2 : Start = %d ms, attendu 600000", tl[1].Start)
	}
	if tl[2].Start != 1200000 {
		t.Errorf("piste 3 : Start = %d ms, attendu 1200000", tl[2].Start)
	}
	if !tl.IsMonotonic() {
		t.Error("timeline attendue strictement croissante")
	}
}

// Le TITLE d'en-tête (avant tout TRACK) ne doit pas produire de chapitre ni
// contaminer le premier bloc.
func TestParseHeaderLinesIgnored(t *testing.T) {
	tl, err := Parse(sampleCue)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, mark := range tl {
		if mark.Title == "Intégrale Fondation" {
			t.Fatalf("le TITLE d'en-tête a été pris pour un titre de chapitre: %+v", mark)
		}
	}
}

// Un bloc TRACK+TITLE sans INDEX 01 est abandonné, pas inventé.
func TestParseDropsBlockMissingIndex(t *testing.T) {
	text := `TRACK 01 AUDIO
TITLE "Premier"
INDEX 01 00:00:00
TRACK 02 AUDIO
TITLE "Sans index"
TRACK 03 AUDIO
TITLE "Troisième"
INDEX 01 05:00:00
`
	tl, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tl) != 2 {
		t.Fatalf("attendu 2 chapitres (bloc incomplet abandonné), obtenu %d", len(tl))
	}
	if tl[0].Title != "Premier" || tl[1].Title != "Troisième" {
		t.Errorf("titres inattendus: %q / %q", tl[0].Title, tl[1].Title)
	}
}

// Un INDEX 01 sans TITLE préalable n'a pas de chapitre à finaliser.
func TestParseDropsBlockMissingTitle(t *testing.T) {
	text := `TRACK 01 AUDIO
INDEX 01 00:00:00
TRACK 02 AUDIO
TITLE "Complet"
INDEX 01 02:00:00
`
	tl, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tl) != 1 || tl[0].Title != "Complet" {
		t.Fatalf("attendu uniquement le bloc complet, obtenu: %+v", tl)
	}
}

// INDEX 00 (pregap) ne finalise jamais un chapitre : seul INDEX 01 compte.
func TestParseIgnoresPregapIndex(t *testing.T) {
	text := `TRACK 01 AUDIO
TITLE "Avec pregap"
INDEX 00 00:58:00
INDEX 01 01:00:00
`
	tl, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tl) != 1 {
		t.Fatalf("attendu 1 chapitre, obtenu %d", len(tl))
	}
	if tl[0].Start != 60000 {
		t.Errorf("Start = %d ms, attendu 60000 (INDEX 01, pas INDEX 00)", tl[0].Start)
	}
}

func TestParseEmptyTimeline(t *testing.T) {
	for _, text := range []string{
		"",
		"REM rien d'utile\nPERFORMER \"A\"\n",
		"TRACK 01 AUDIO\nTITLE \"seul\"\n", // jamais finalisé
	} {
		if _, err := Parse(text); !errors.Is(err, ErrEmptyTimeline) {
			t.Errorf("Parse(%q): attendu ErrEmptyTimeline, obtenu %v", text, err)
		}
	}
}

func TestParseInvalidTrackNumber(t *testing.T) {
	if _, err := Parse("TRACK zz AUDIO\n"); err == nil {
		t.Fatal("numéro de piste invalide : erreur attendue")
	}
}

func TestParseInvalidTimecodeSurfaces(t *testing.T) {
	text := `TRACK 01 AUDIO
TITLE "Cassé"
INDEX 01 00:99:00
`
	if _, err := Parse(text); err == nil {
		t.Fatal("timecode invalide : erreur attendue")
	}
}

func TestUnquote(t *testing.T) {
	cases := map[string]string{
		`"entre guillemets"`: "entre guillemets",
		`sans guillemets`:    "sans guillemets",
		`"`:                  `"`, // guillemet seul, pas une paire
		``:                   "",
	}
	for in, want := range cases {
		if got := unquote(in); got != want {
			t.Errorf("unquote(%q) = %q, attendu %q", in, got, want)
		}
	}
}
