package cue

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/patrickprogramme/splitbook/pkg/model"
)

// ErrEmptyTimeline : le descripteur n'a produit aucun TrackMark.
var ErrEmptyTimeline = errors.New("aucun chapitre exploitable dans le cue sheet")

// parseState : état du parseur ligne à ligne. Un bloc de chapitre n'est
// finalisé que lorsque les trois lignes TRACK, TITLE puis INDEX 01 ont été
// vues dans cet ordre ; tout bloc incomplet est abandonné.
type parseState int

const (
	awaitingTrack parseState = iota // en attente d'une ligne TRACK
	awaitingTitle                   // TRACK vu, en attente du TITLE
	ready                           // TRACK + TITLE vus, en attente de l'INDEX 01
)

// pending accumule le bloc de chapitre en cours de lecture.
type pending struct {
	state  parseState
	number int
	title  string
}

func (p *pending) reset() {
	*p = pending{state: awaitingTrack}
}

// Parse lit le texte complet d'un cue sheet et retourne la Timeline ordonnée
// des chapitres. Contrat :
//   - les lignes d'en-tête (TITLE/PERFORMER/FILE/REM avant le premier TRACK)
//     sont ignorées ;
//   - un chapitre dont il manque le TRACK ou le TITLE au moment de l'INDEX
//     est abandonné (limitation documentée, pas une corruption silencieuse) ;
//   - seul INDEX 01 finalise un chapitre ; INDEX 00 (pregap) est ignoré ;
//   - retourne ErrEmptyTimeline si aucun chapitre n'est produit.
func Parse(text string) (model.Timeline, error) {
	var (
		tl model.Timeline
		p  pending
	)
	p.reset()

	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		keyword := strings.ToUpper(fields[0])

		switch keyword {
		case "TRACK":
			// nouvelle piste : tout bloc précédent non finalisé est perdu
			p.reset()
			if len(fields) < 2 {
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("ligne %d : numéro de piste %q invalide", lineNo, fields[1])
			}
			p.number = n
			p.state = awaitingTitle

		case "TITLE":
			// le TITLE d'en-tête (avant tout TRACK) ne concerne pas un chapitre
			if p.state != awaitingTitle {
				continue
			}
			p.title = unquote(strings.TrimSpace(strings.TrimPrefix(line, fields[0])))
			p.state = ready

		case "INDEX":
			if len(fields) < 3 || fields[1] != "01" {
				// INDEX 00 (pregap) et variantes exotiques : ignorés
				continue
			}
			if p.state != ready {
				// bloc incomplet : chapitre abandonné, on attend le TRACK suivant
				p.reset()
				continue
			}
			start, err := ParseTimecode(fields[2])
			if err != nil {
				return nil, fmt.Errorf("ligne %d : %w", lineNo, err)
			}
			tl = append(tl, model.TrackMark{
				Number: p.number,
				Title:  p.title,
				Start:  start,
			})
			p.reset()

		default:
			// FILE, PERFORMER, REM, FLAGS... : sans effet sur la timeline
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lecture du cue sheet : %w", err)
	}

	if len(tl) == 0 {
		return nil, ErrEmptyTimeline
	}
	return tl, nil
}

// unquote retire les guillemets englobants d'un titre cue ("..." ou rien).
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
