package model

import "fmt"

// Segment décrit un livre de sortie : une plage contiguë de pistes
// [StartTrack, EndTrack] et sa fenêtre temporelle absolue [Start, End).
// End du dernier segment vaut la durée totale sondée du conteneur source ;
// End de chaque autre segment vaut le Start de la première piste du segment
// suivant.
type Segment struct {
	Index      int // 0-indexé dans l'ordre d'émission
	StartTrack int // 1-indexé, inclus
	EndTrack   int // 1-indexé, inclus
	Start      Milliseconds
	End        Milliseconds
}

// Duration retourne la durée propre du segment.
func (s Segment) Duration() Milliseconds {
	return s.End - s.Start
}

// TrackCount retourne le nombre de pistes couvertes par le segment.
func (s Segment) TrackCount() int {
	return s.EndTrack - s.StartTrack + 1
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment %d: pistes %d-%d, [%s, %s)",
		s.Index+1, s.StartTrack, s.EndTrack, s.Start, s.End)
}

// RebasedTrack est un chapitre recalé relativement au début de son segment.
// Valeur transitoire : produite pour l'émission d'un segment puis jetée.
type RebasedTrack struct {
	Start Milliseconds // relatif au début du segment
	End   Milliseconds // relatif au début du segment
	Title string
}
