package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/patrickprogramme/splitbook/internal/cue"
	"github.com/patrickprogramme/splitbook/internal/ffmeta"
	"github.com/patrickprogramme/splitbook/internal/ffmpeg"
	"github.com/patrickprogramme/splitbook/internal/fsutil"
	"github.com/patrickprogramme/splitbook/internal/split"
	"github.com/patrickprogramme/splitbook/internal/updater"
	"github.com/patrickprogramme/splitbook/pkg/model"
)

// audioExts : conteneurs acceptés en entrée. ffmpeg opère en stream-copy,
// la sortie garde donc la même extension que la source.
var audioExts = []string{".m4b", ".m4a", ".mp4", ".mp3", ".flac", ".ogg"}

// DiscoverInputs localise dans dir l'unique conteneur audio et l'unique cue
// sheet, et vérifie qu'ils partagent le même nom de base.
func DiscoverInputs(dir string) (sourcePath, cuePath string, err error) {
	sourcePath, err = fsutil.FindOneByExt(dir, audioExts)
	if err != nil {
		return "", "", fmt.Errorf("conteneur audio: %w", err)
	}
	cuePath, err = fsutil.FindOneByExt(dir, []string{".cue"})
	if err != nil {
		return "", "", fmt.Errorf("cue sheet: %w", err)
	}
	if err = fsutil.SameBaseName(sourcePath, cuePath); err != nil {
		return "", "", err
	}
	return sourcePath, cuePath, nil
}

// firstTrackTitle retourne le titre de la première piste du segment.
// StartTrack est une position 1-indexée dans la timeline (bornes garanties
// par le planner), pas le numéro de piste du descripteur : les deux
// divergent dès qu'un bloc incomplet a été abandonné au parsing.
func firstTrackTitle(tl model.Timeline, seg model.Segment) string {
	return tl[seg.StartTrack-1].Title
}

// BookTitle dérive le titre d'un livre : titre de son premier chapitre,
// ou un libellé de repli si celui-ci est vide.
func BookTitle(tl model.Timeline, seg model.Segment, index int) string {
	if title := strings.TrimSpace(firstTrackTitle(tl, seg)); title != "" {
		return title
	}
	return fmt.Sprintf("Livre %d", index+1)
}

// BookStems dérive le radical de fichier de chaque segment depuis le titre de
// son premier chapitre, puis désambiguïse les collisions avec un suffixe
// "-2", "-3", ... (la première occurrence garde le radical nu).
func BookStems(tl model.Timeline, segments []model.Segment) []string {
	stems := make([]string, len(segments))
	seen := make(map[string]int, len(segments))
	for i, seg := range segments {
		stem := fsutil.BookStem(firstTrackTitle(tl, seg), i)
		seen[stem]++
		if n := seen[stem]; n > 1 {
			stem = fmt.Sprintf("%s-%d", stem, n)
		}
		stems[i] = stem
	}
	return stems
}

// FormatPlan rend le plan de découpe lisible pour confirmation.
func FormatPlan(segments []model.Segment, stems []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan de découpe : %d livre(s)\n", len(segments))
	for i, seg := range segments {
		fmt.Fprintf(&b, "  %d. %-40s pistes %d-%d  [%s, %s)  (%s)\n",
			seg.Index+1, stems[i],
			seg.StartTrack, seg.EndTrack,
			seg.Start.WallClock(), seg.End.WallClock(),
			seg.Duration().WallClock())
	}
	return b.String()
}

// EmitSegment matérialise un livre : cue sheet rebasé écrit à côté de la
// sortie, descripteur FFMETADATA temporaire, puis extraction stream-copy.
// L'erreur retournée est propre au segment, jamais fatale pour le run.
func (a *App) EmitSegment(ctx context.Context, tl model.Timeline, seg model.Segment,
	stem, ext, sourcePath, outDir string) error {

	rebased := split.Rebase(tl, seg)
	outName := stem + ext
	outPath := filepath.Join(outDir, outName)

	// cue sheet du livre, offsets rebasés à zéro
	cuePath := filepath.Join(outDir, stem+".cue")
	if err := fsutil.WriteFileAtomic(cuePath, cue.Write(outName, rebased), filePerm); err != nil {
		return fmt.Errorf("écriture du cue sheet %s: %w", cuePath, err)
	}

	// descripteur FFMETADATA éphémère, supprimé sur tous les chemins de sortie
	meta, err := os.CreateTemp("", "splitbook-ffmeta-*.txt")
	if err != nil {
		return fmt.Errorf("création du fichier ffmetadata: %w", err)
	}
	metaPath := meta.Name()
	defer os.Remove(metaPath)

	title := BookTitle(tl, seg, seg.Index)
	if _, err := meta.Write(ffmeta.Render(title, rebased)); err != nil {
		meta.Close()
		return fmt.Errorf("écriture du fichier ffmetadata: %w", err)
	}
	if err := meta.Close(); err != nil {
		return fmt.Errorf("fermeture du fichier ffmetadata: %w", err)
	}

	req := ffmpeg.ExtractRequest{
		SourcePath:   sourcePath,
		MetadataPath: metaPath,
		OutputPath:   outPath,
		Start:        seg.Start,
		End:          seg.End,
	}
	if err := a.engine.Extract(ctx, req); err != nil {
		return fmt.Errorf("extraction [%s, %s): %w", seg.Start.WallClock(), seg.End.WallClock(), err)
	}
	return nil
}

// AppUpdateCheck interroge GitHub pour signaler une éventuelle nouvelle
// version de splitbook. Purement informatif, jamais bloquant.
func (a *App) AppUpdateCheck(ctx context.Context, timeout time.Duration) error {
	uc, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	check, err := updater.CheckAppUpdate(uc, Version)
	if err != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("vérification de mise à jour a échoué : %v", err))
		return err
	}

	if check.IsUpToDate {
		a.ui.PrintInfo(ctx, fmt.Sprintf("✅ splitbook est à jour (%s)", check.CurrentVersion))
		return nil
	}

	a.ui.PrintInfo(ctx, "⚠️ Nouvelle version de splitbook disponible :")
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Installée : %s", check.CurrentVersion))
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Dernière  : %s", check.LatestRelease.TagName))
	a.ui.PrintInfo(ctx, "Téléchargez-la ici:")
	a.ui.PrintInfo(ctx, check.GetUpdateLink(runtime.GOOS))

	return nil
}
