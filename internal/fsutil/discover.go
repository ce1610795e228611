package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Erreurs de pré-vol : le répertoire d'entrée doit contenir exactement un
// conteneur source et exactement un cue sheet de même nom de base.
var (
	ErrNoMatch       = errors.New("aucun fichier correspondant")
	ErrAmbiguous     = errors.New("plusieurs fichiers correspondants")
	ErrBaseNameMixup = errors.New("noms de base différents")
)

// FindOneByExt cherche dans dir l'unique fichier (non récursif) dont
// l'extension appartient à exts (comparaison insensible à la casse, point
// inclus, ex: ".m4b"). Erreurs : ErrNoMatch si aucun, ErrAmbiguous si
// plusieurs.
func FindOneByExt(dir string, exts []string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("lecture du répertoire %s : %w", dir, err)
	}

	allowed := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		allowed[strings.ToLower(e)] = struct{}{}
	}

	var matches []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := allowed[strings.ToLower(filepath.Ext(e.Name()))]; ok {
			matches = append(matches, filepath.Join(dir, e.Name()))
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w dans %s (extensions %s)", ErrNoMatch, dir, strings.Join(exts, ", "))
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w dans %s (extensions %s) : %s",
			ErrAmbiguous, dir, strings.Join(exts, ", "), strings.Join(matches, ", "))
	}
}

// SameBaseName vérifie que deux chemins partagent le même nom de base hors
// extension (insensible à la casse).
func SameBaseName(a, b string) error {
	stem := func(p string) string {
		base := filepath.Base(p)
		return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if stem(a) != stem(b) {
		return fmt.Errorf("%w : %s / %s", ErrBaseNameMixup, filepath.Base(a), filepath.Base(b))
	}
	return nil
}

// Stem retourne le nom de base d'un chemin sans son extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
