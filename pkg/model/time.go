package model

import (
	"fmt"
	"time"
)

// Milliseconds est un alias explicite pour représenter une position ou une
// durée en millisecondes depuis le début du conteneur source.
type Milliseconds int64

// WallClock formate la valeur en "HH:MM:SS.mmm" (chaque composant zero-padded).
// C'est le format attendu par ffmpeg pour les options -ss / -to.
// Exemple : 3661013 -> "01:01:01.013".
func (ms Milliseconds) WallClock() string {
	total := int64(ms)
	h := total / 3_600_000
	m := (total % 3_600_000) / 60_000
	s := (total % 60_000) / 1000
	frac := total % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, frac)
}

// Duration convertit en time.Duration (pratique pour l'affichage).
func (ms Milliseconds) Duration() time.Duration {
	return time.Duration(int64(ms)) * time.Millisecond
}

func (ms Milliseconds) String() string {
	return ms.WallClock()
}
