package cue

import (
	"fmt"
	"testing"

	"github.com/patrickprogramme/splitbook/pkg/model"
)

func TestParseTimecodeNominal(t *testing.T) {
	cases := []struct {
		in   string
		want int64 // millisecondes
	}{
		{"00:00:00", 0},
		{"00:01:00", 1000},
		{"01:00:00", 60000},
		{"00:00:37", 493},  // round(37*1000/75) = round(493.33)
		{"00:00:74", 987},  // dernière frame : round(986.66)
		{"10:30:00", 630000},
		{"125:00:00", 7_500_000}, // mm > 99 autorisé sur les cue longs
		{" 00:05:00 ", 5000},     // espaces tolérés
	}
	for _, c := range cases {
		got, err := ParseTimecode(c.in)
		if err != nil {
			t.Fatalf("ParseTimecode(%q): erreur inattendue: %v", c.in, err)
		}
		if int64(got) != c.want {
			t.Errorf("ParseTimecode(%q) = %d ms, attendu %d ms", c.in, got, c.want)
		}
	}
}

func TestParseTimecodeRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"00:00",       // deux champs
		"00:00:00:00", // quatre champs
		"aa:00:00",
		"00:bb:00",
		"00:00:cc",
		"-1:00:00", // minutes négatives
		"00:60:00", // secondes hors [0,59]
		"00:00:75", // frames hors [0,74]
	}
	for _, in := range bad {
		if _, err := ParseTimecode(in); err == nil {
			t.Errorf("ParseTimecode(%q): erreur attendue, obtenu nil", in)
		}
	}
}

func TestFormatTimecode(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "00:00:00"},
		{1000, "00:01:00"},
		{60000, "01:00:00"},
		{493, "00:00:36"},      // floor(493*75/1000) = 36
		{630000, "10:30:00"},
		{7_500_000, "125:00:00"}, // les minutes ne sont pas bornées à 99
		{-5, "00:00:00"},         // valeur négative écrêtée
	}
	for _, c := range cases {
		if got := FormatTimecode(model.Milliseconds(c.ms)); got != c.want {
			t.Errorf("FormatTimecode(%d) = %q, attendu %q", c.ms, got, c.want)
		}
	}
}

// L'aller-retour parse -> format -> parse perd au plus une frame (~13.3 ms).
func TestTimecodeRoundTripWithinOneFrame(t *testing.T) {
	const frameMs = 1000.0 / FramesPerSecond // 13.33...
	for ff := 0; ff < FramesPerSecond; ff++ {
		in := fmt.Sprintf("%02d:%02d:%02d", 3, 25, ff)
		ms, err := ParseTimecode(in)
		if err != nil {
			t.Fatalf("ParseTimecode(%q): %v", in, err)
		}
		back, err := ParseTimecode(FormatTimecode(ms))
		if err != nil {
			t.Fatalf("re-parse de FormatTimecode(%d): %v", ms, err)
		}
		diff := int64(ms) - int64(back)
		if diff < 0 {
			diff = -diff
		}
		if float64(diff) >= frameMs {
			t.Errorf("aller-retour %q : écart %d ms >= 1 frame", in, diff)
		}
	}
}
