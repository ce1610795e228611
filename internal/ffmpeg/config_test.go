package ffmpeg

import (
	"strings"
	"testing"
)

func sampleRequest(out string) ExtractRequest {
	return ExtractRequest{
		SourcePath:   "/in/omnibus.m4b",
		MetadataPath: "/tmp/meta.txt",
		OutputPath:   out,
		Start:        600000,  // 00:10:00.000
		End:          1200000, // 00:20:00.000
	}
}

func TestBuildExtractArgsShape(t *testing.T) {
	cfg := NewConfig(false)
	args := cfg.BuildExtractArgs(sampleRequest("/out/livre.m4b"))
	joined := " " + strings.Join(args, " ") + " "

	// ordre critique : -ss/-to AVANT -i (découpe côté entrée)
	for _, want := range []string{
		" -nostdin ",
		" -loglevel error ",
		" -y ",
		" -ss 00:10:00.000 -to 00:20:00.000 -i /in/omnibus.m4b ",
		" -i /tmp/meta.txt ",
		" -map_metadata 1 ",
		" -map_chapters 1 ",
		" -map 0 ",
		" -c copy ",
		" -movflags +faststart ",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("argument manquant %q dans: %v", strings.TrimSpace(want), args)
		}
	}
	if args[len(args)-1] != "/out/livre.m4b" {
		t.Errorf("le chemin de sortie doit être le dernier argument, obtenu %q", args[len(args)-1])
	}
}

func TestBuildExtractArgsShowWarnings(t *testing.T) {
	cfg := NewConfig(true)
	joined := strings.Join(cfg.BuildExtractArgs(sampleRequest("/out/x.m4b")), " ")
	if !strings.Contains(joined, "-loglevel warning") {
		t.Errorf("attendu -loglevel warning, obtenu: %s", joined)
	}
}

// -movflags n'existe que pour le muxer mov/mp4.
func TestFastStartOnlyForMP4Family(t *testing.T) {
	cfg := NewConfig(false)
	cases := []struct {
		out  string
		want bool
	}{
		{"/out/a.m4b", true},
		{"/out/a.M4A", true}, // extension insensible à la casse
		{"/out/a.mp4", true},
		{"/out/a.mp3", false},
		{"/out/a.flac", false},
		{"/out/a.ogg", false},
	}
	for _, c := range cases {
		joined := strings.Join(cfg.BuildExtractArgs(sampleRequest(c.out)), " ")
		got := strings.Contains(joined, "+faststart")
		if got != c.want {
			t.Errorf("%s : faststart = %v, attendu %v", c.out, got, c.want)
		}
	}
}

func TestParseVersionLine(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ffmpeg version 6.1.1 Copyright (c) 2000-2023\nbuilt with gcc", "6.1.1"},
		{"ffmpeg version n7.0-12-gabc123 Copyright", "n7.0-12-gabc123"},
		{"sortie inattendue", "sortie inattendue"},
		{"", ""},
	}
	for _, c := range cases {
		if got := parseVersionLine(c.in); got != c.want {
			t.Errorf("parseVersionLine(%q) = %q, attendu %q", c.in, got, c.want)
		}
	}
}
