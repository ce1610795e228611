package split

import "github.com/patrickprogramme/splitbook/pkg/model"

// Rebase recalcule les chapitres d'un segment relativement à son début.
// Pour chaque piste : Start relatif = départ absolu - seg.Start ; End relatif
// = départ absolu de la piste suivante du même segment (ou seg.End pour la
// dernière) - seg.Start.
//
// Invariants : la première piste démarre à 0 ; la dernière se termine à
// seg.Duration() ; les pistes consécutives sont jointives (End de la piste k
// == Start de la piste k+1).
func Rebase(tl model.Timeline, seg model.Segment) []model.RebasedTrack {
	out := make([]model.RebasedTrack, 0, seg.TrackCount())
	for n := seg.StartTrack; n <= seg.EndTrack; n++ {
		mark := tl[n-1]

		end := seg.End
		if n < seg.EndTrack {
			end = tl[n].Start
		}
		out = append(out, model.RebasedTrack{
			Start: mark.Start - seg.Start,
			End:   end - seg.Start,
			Title: mark.Title,
		})
	}
	return out
}
