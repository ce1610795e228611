package model

import "fmt"

// TrackMark représente un chapitre du conteneur source : son numéro de piste
// (1-indexé), son titre et son instant de départ absolu en millisecondes.
type TrackMark struct {
	Number int
	Title  string
	Start  Milliseconds
}

func (t TrackMark) String() string {
	return fmt.Sprintf("TRACK %02d %q @ %s", t.Number, t.Title, t.Start)
}

// Timeline est la séquence ordonnée des TrackMark issue du cue sheet.
// Elle est construite une seule fois par exécution puis traitée en lecture
// seule : aucune étape du pipeline ne la modifie après le parsing.
type Timeline []TrackMark

// TotalTracks retourne le nombre de pistes de la timeline.
func (tl Timeline) TotalTracks() int {
	return len(tl)
}

// IsMonotonic vérifie l'invariant du cue sheet : les instants de départ
// sont non-décroissants quand le numéro de piste croît.
func (tl Timeline) IsMonotonic() bool {
	for i := 1; i < len(tl); i++ {
		if tl[i].Start < tl[i-1].Start {
			return false
		}
	}
	return true
}
