package fsutil

import "testing"

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "untitled"},
		{"Dune : Messie", "Dune - Messie"},
		{"a<b>c", "A b c"},
		{"fin...", "Fin"},
		{"   espaces    multiples   ", "Espaces multiples"},
	}
	for _, c := range cases {
		if got := SanitizeFilename(c.in); got != c.want {
			t.Errorf("SanitizeFilename(%q) = %q, attendu %q", c.in, got, c.want)
		}
	}
}

func TestSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Le Comte de Monte-Cristo", "le-comte-de-monte-cristo"},
		{"  Dune : Messie  ", "dune-messie"},
		{"Fondation_et_Empire", "fondation-et-empire"},
		{"éàü!!!", ""}, // rien d'exploitable en ASCII
		{"---", ""},
		{"Déjà Vu", "dj-vu"}, // accents retirés, pas translittérés
	}
	for _, c := range cases {
		if got := Slug(c.in); got != c.want {
			t.Errorf("Slug(%q) = %q, attendu %q", c.in, got, c.want)
		}
	}
}

func TestBookStemStripsLeadingNumber(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"01: Les psychohistoriens", "les-psychohistoriens"},
		{"12. Chapitre douze", "chapitre-douze"},
		{"3 - Troisième livre", "troisime-livre"},
		{"Sans préfixe", "sans-prfixe"},
	}
	for _, c := range cases {
		if got := BookStem(c.title, 0); got != c.want {
			t.Errorf("BookStem(%q) = %q, attendu %q", c.title, got, c.want)
		}
	}
}

// Titre inexploitable -> repli "book-N" (N 1-indexé pour l'utilisateur).
func TestBookStemFallback(t *testing.T) {
	for _, title := range []string{"", "42: ", "!!!"} {
		if got := BookStem(title, 2); got != "book-3" {
			t.Errorf("BookStem(%q, 2) = %q, attendu \"book-3\"", title, got)
		}
	}
}
