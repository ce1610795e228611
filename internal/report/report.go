// Package report rend le rapport de découpe (markdown) écrit dans le dossier
// de sortie en fin de run.
package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/patrickprogramme/splitbook/pkg/model"
)

// BookEntry : une ligne du tableau des livres.
type BookEntry struct {
	Number     int
	Title      string
	StartTrack int
	EndTrack   int
	Duration   string
	Range      string
	Status     string
}

// Failure : détail d'un segment en échec.
type Failure struct {
	Title  string
	Detail string
}

// Data regroupe tout ce que le template du rapport consomme.
type Data struct {
	SourceName    string
	SourcePath    string
	TotalDuration string
	TotalTracks   int
	GeneratedAt   string
	Books         []BookEntry
	Failures      []Failure
}

// NewData construit les données du rapport depuis l'état final du pipeline.
func NewData(sourcePath string, totalMs model.Milliseconds, totalTracks int) *Data {
	return &Data{
		SourceName:    filepath.Base(sourcePath),
		SourcePath:    sourcePath,
		TotalDuration: totalMs.WallClock(),
		TotalTracks:   totalTracks,
		GeneratedAt:   time.Now().Format("2006-01-02 15:04"),
	}
}

// AddBook enregistre un segment émis (ou en échec) dans le rapport.
func (d *Data) AddBook(seg model.Segment, title string, emitErr error) {
	status := "✅"
	if emitErr != nil {
		status = "❌"
		d.Failures = append(d.Failures, Failure{Title: title, Detail: emitErr.Error()})
	}
	d.Books = append(d.Books, BookEntry{
		Number:     seg.Index + 1,
		Title:      title,
		StartTrack: seg.StartTrack,
		EndTrack:   seg.EndTrack,
		Duration:   seg.Duration().WallClock(),
		Range:      fmt.Sprintf("[%s, %s)", seg.Start, seg.End),
		Status:     status,
	})
}
