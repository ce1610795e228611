package fsutil

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// limite de longueur de la chaine
const max = 200

// invalidFileRunes définit les caractères interdits dans les noms de fichiers
// \x00-\x1F sont les caractères de contrôle
var invalidFileRunes = regexp.MustCompile(`[<>"/\\|?*\x00-\x1F]`)

// multiSpace détecte les séquences de plusieurs espaces pour les réduire à un seul.
var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeFilename nettoie une chaîne de caractères pour en faire un nom de fichier valide.
// Étapes :
// - Remplace ":" par "-" explicitement
// - Remplace les autres caractères interdits par " "
// - Supprime les espaces superflus
// - Limite la longueur du nom
// - Fournit un nom par défaut si la chaîne est vide
func SanitizeFilename(name string) string {
	if name == "" {
		return "untitled"
	}

	// Remplacement de ":" par "-"
	name = strings.ReplaceAll(name, ":", "-")

	// Remplacement des autres caractères interdits par " "
	clean := invalidFileRunes.ReplaceAllString(name, " ")

	// Suppression des espaces en début/fin
	clean = strings.TrimSpace(clean)

	// Réduction des espaces multiples à un seul espace
	clean = multiSpace.ReplaceAllString(clean, " ")

	// Suppression des points terminaux (un ou plusieurs)
	clean = strings.TrimRight(clean, ".")

	if clean == "" {
		return "untitled"
	}

	if len(clean) > max {
		clean = clean[:max]
	}

	return CapitalizeFirst(clean)
}

// CapitalizeFirst met en majuscule le premier caractère (rune) de s.
// Ne touche pas au reste de la chaîne. Vide -> retourne "".
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	rs := []rune(s)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}

var (
	// séparateurs de mots remplacés par des tirets
	wordSeparatorRe = regexp.MustCompile(`[\s_/]+`)
	// tout ce qui n'est ni lettre, ni chiffre, ni tiret
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9-]`)
	// séquences de tirets à réduire
	multipleDashRe = regexp.MustCompile(`-+`)
	// préfixe de numérotation "12: " / "12. " / "12 - " en tête de titre
	leadingNumberRe = regexp.MustCompile(`^\d+\s*[:.\-]\s*`)
)

// Slug réduit une chaîne arbitraire à un radical sûr pour le système de
// fichiers : lettres/chiffres/tirets uniquement, tirets répétés réduits,
// tirets de tête et de queue retirés. Fonction pure et totale, aucune
// dépendance à la locale.
//
// Exemples :
//
//	"Le Comte de Monte-Cristo" -> "le-comte-de-monte-cristo"
//	"  Dune : Messie  "        -> "dune-messie"
func Slug(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = wordSeparatorRe.ReplaceAllString(s, "-")
	s = nonAlphanumericRe.ReplaceAllString(s, "")
	s = multipleDashRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// BookStem dérive le radical du fichier d'un livre à partir du titre de son
// premier chapitre : retire un éventuel préfixe de numérotation du type
// "<nombre>: ", puis applique Slug. Si le résultat est vide, retombe sur
// "book-<index>" (index 1-indexé pour l'utilisateur).
func BookStem(firstChapterTitle string, index int) string {
	title := leadingNumberRe.ReplaceAllString(strings.TrimSpace(firstChapterTitle), "")
	if stem := Slug(title); stem != "" {
		return stem
	}
	return fmt.Sprintf("book-%d", index+1)
}
