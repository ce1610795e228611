package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatalf("touch %s: %v", p, err)
	}
	return p
}

func TestFindOneByExtsingle(t *testing.T) {
	dir := t.TempDir()
	want := touch(t, dir, "omnibus.m4b")
	touch(t, dir, "omnibus.cue")
	touch(t, dir, "notes.txt")

	got, err := FindOneByExt(dir, []string{".m4b", ".mp3"})
	if err != nil {
		t.Fatalf("FindOneByExt: %v", err)
	}
	if got != want {
		t.Errorf("FindOneByExt = %q, attendu %q", got, want)
	}
}

func TestFindOneByExtCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "LIVRE.M4B")

	if _, err := FindOneByExt(dir, []string{".m4b"}); err != nil {
		t.Fatalf("extension majuscule refusée: %v", err)
	}
}

func TestFindOneByExtNoMatch(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "readme.md")

	_, err := FindOneByExt(dir, []string{".m4b"})
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("attendu ErrNoMatch, obtenu %v", err)
	}
}

func TestFindOneByExtAmbiguous(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.m4b")
	touch(t, dir, "b.m4b")

	_, err := FindOneByExt(dir, []string{".m4b"})
	if !errors.Is(err, ErrAmbiguous) {
		t.Fatalf("attendu ErrAmbiguous, obtenu %v", err)
	}
}

// Les sous-dossiers ne participent pas à la découverte (non récursif).
func TestFindOneByExtIgnoresSubdirs(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "seul.m4b")
	sub := filepath.Join(dir, "autres")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, sub, "cache.m4b")

	if _, err := FindOneByExt(dir, []string{".m4b"}); err != nil {
		t.Fatalf("le fichier du sous-dossier ne doit pas créer d'ambiguïté: %v", err)
	}
}

func TestSameBaseName(t *testing.T) {
	if err := SameBaseName("/a/livre.m4b", "/b/Livre.cue"); err != nil {
		t.Errorf("comparaison insensible à la casse attendue: %v", err)
	}
	err := SameBaseName("/a/livre.m4b", "/a/autre.cue")
	if !errors.Is(err, ErrBaseNameMixup) {
		t.Errorf("attendu ErrBaseNameMixup, obtenu %v", err)
	}
}

func TestStem(t *testing.T) {
	cases := map[string]string{
		"/chemin/vers/livre.m4b": "livre",
		"livre.cue":              "livre",
		"sans_extension":         "sans_extension",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, attendu %q", in, got, want)
		}
	}
}
