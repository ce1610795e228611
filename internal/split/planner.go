// Package split découpe une Timeline en segments contigus (un par livre)
// puis recale les chapitres de chaque segment relativement à son début.
package split

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/patrickprogramme/splitbook/pkg/model"
)

// ErrInvalidSplitPoint : liste de points de découpe vide ou hors bornes.
var ErrInvalidSplitPoint = errors.New("points de découpe invalides")

// ParseStartTracks lit la liste "1,8,15" donnée sur la ligne de commande :
// numéros de piste séparés par des virgules, espaces tolérés.
func ParseStartTracks(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w : %q n'est pas un numéro de piste", ErrInvalidSplitPoint, p)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w : liste vide", ErrInvalidSplitPoint)
	}
	return out, nil
}

// Plan partitionne la timeline en segments à partir des points de découpe
// (numéros de la première piste de chaque livre) et de la durée totale
// sondée du conteneur source — la seule grandeur que le descripteur ne
// fournit pas, puisqu'il n'enregistre que des instants de départ.
//
// Validation : dédoublonnage + tri ; échec avec ErrInvalidSplitPoint si la
// liste est vide ou si une valeur sort de [1, totalTracks].
//
// Garantie : les segments sont contigus, sans recouvrement, et leurs plages
// de pistes couvrent chaque piste de la timeline exactement une fois.
func Plan(tl model.Timeline, startTracks []int, totalMs model.Milliseconds) ([]model.Segment, error) {
	total := tl.TotalTracks()
	if total == 0 {
		return nil, fmt.Errorf("%w : timeline vide", ErrInvalidSplitPoint)
	}
	if len(startTracks) == 0 {
		return nil, fmt.Errorf("%w : liste vide", ErrInvalidSplitPoint)
	}

	// dédoublonner puis trier (ordre strictement croissant garanti ensuite)
	seen := make(map[int]struct{}, len(startTracks))
	splits := make([]int, 0, len(startTracks))
	for _, n := range startTracks {
		if n < 1 || n > total {
			return nil, fmt.Errorf("%w : piste %d hors de [1, %d]", ErrInvalidSplitPoint, n, total)
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		splits = append(splits, n)
	}
	sort.Ints(splits)

	// terminateur implicite : première piste d'un livre fictif après la fin
	splits = append(splits, total+1)

	segments := make([]model.Segment, 0, len(splits)-1)
	for i := 0; i < len(splits)-1; i++ {
		seg := model.Segment{
			Index:      i,
			StartTrack: splits[i],
			EndTrack:   splits[i+1] - 1,
			Start:      tl[splits[i]-1].Start,
		}
		if i == len(splits)-2 {
			seg.End = totalMs // dernier segment : durée totale sondée
		} else {
			seg.End = tl[splits[i+1]-1].Start
		}
		segments = append(segments, seg)
	}
	return segments, nil
}
