package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/patrickprogramme/splitbook/internal/clipboard"
	"github.com/patrickprogramme/splitbook/internal/config"
	"github.com/patrickprogramme/splitbook/internal/cue"
	"github.com/patrickprogramme/splitbook/internal/ffmpeg"
	"github.com/patrickprogramme/splitbook/internal/fsutil"
	"github.com/patrickprogramme/splitbook/internal/inspect"
	"github.com/patrickprogramme/splitbook/internal/report"
	"github.com/patrickprogramme/splitbook/internal/split"
	"github.com/patrickprogramme/splitbook/internal/ui"
)

// Version de splitbook, comparée au dernier tag GitHub par l'update check.
const Version = "1.0.0"

const (
	defaultUpdateTimeout = 15 * time.Second
	defaultProbeTimeout  = 30 * time.Second
	dirPerm              = 0o755
	filePerm             = 0o644

	reportBaseName = "rapport_decoupe"
)

// CLIFlags contient les informations venant des flags et arguments de l'app
type CLIFlags struct {
	ConfigPath  string
	Dir         string // répertoire contenant le conteneur source + le cue sheet
	StartTracks string // liste "1,5,9" des pistes de début de livre
	Auto        bool
	FFmpegPath  string
}

// App orchestre les différentes dépendances (UI, ffmpeg, FS...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *CLIFlags
	engine   ffmpeg.Interface // **présent** : client ffmpeg initialisé dans Run
	renderer *report.Renderer
}

// New construit l'application en initialisant les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags, renderer *report.Renderer) *App {
	return &App{
		cfg:      cfg,
		ui:       uiClient,
		flags:    flags,
		renderer: renderer,
	}
}

// Run exécute le flux principal : découverte des entrées, parse du cue sheet,
// plan de découpe, émission des livres. L'initialisation de ffmpeg passe par
// le ctx afin de respecter annulation/signaux.
func (a *App) Run(ctx context.Context) error {
	// si l'utilisateur a passé -ffmpeg-path, l'appliquer et re-résoudre
	if a.flags.FFmpegPath != "" {
		a.cfg.FFmpeg.Path = a.flags.FFmpegPath
		a.cfg.ResolveFFmpegPaths()
	}

	// Init ffmpeg/ffprobe (CheckBinary + version), sauf si un moteur a été injecté
	if a.engine == nil {
		eng, version, err := ffmpeg.Init(ctx, a.cfg)
		if err != nil {
			return fmt.Errorf("ffmpeg init: %w", err)
		}
		a.engine = eng
		a.ui.PrintInfo(ctx, fmt.Sprintf("ffmpeg %s détecté", version))
	}

	// Update check de splitbook (optionnel)
	if a.cfg.AutoUpdateCheck {
		a.AppUpdateCheck(ctx, defaultUpdateTimeout)
	}

	// Découverte des entrées : exactement un conteneur + un cue de même nom
	sourcePath, cuePath, err := DiscoverInputs(a.flags.Dir)
	if err != nil {
		return fmt.Errorf("découverte des entrées: %w", err)
	}

	// Fiche d'information (lecture des métadonnées, non bloquant si échec)
	info, ierr := inspect.Inspect(sourcePath)
	if ierr != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("warning: inspection de la source impossible: %v", ierr))
	} else {
		a.ui.PrintInfo(ctx, info.Pretty())
		for _, w := range info.Warnings {
			a.ui.PrintError(ctx, fmt.Sprintf("warning (métadonnées): %s", w))
		}
	}

	// Points de découpe demandés
	starts, err := split.ParseStartTracks(a.flags.StartTracks)
	if err != nil {
		return fmt.Errorf("points de découpe: %w", err)
	}

	// Parse du cue sheet -> timeline
	cueBytes, err := os.ReadFile(cuePath)
	if err != nil {
		return fmt.Errorf("lecture du cue sheet %s: %w", cuePath, err)
	}
	timeline, err := cue.Parse(string(cueBytes))
	if err != nil {
		return fmt.Errorf("parse du cue sheet %s: %w", cuePath, err)
	}
	if !timeline.IsMonotonic() {
		return fmt.Errorf("cue sheet %s malformé : timecodes non monotones", cuePath)
	}

	// cohérence consultative : la timeline fait foi, on signale seulement
	if info != nil && info.ChapterCount > 0 && info.ChapterCount != timeline.TotalTracks() {
		a.ui.PrintError(ctx, fmt.Sprintf(
			"warning: %d chapitres embarqués dans le conteneur, %d pistes dans le cue sheet",
			info.ChapterCount, timeline.TotalTracks()))
	}

	// Durée totale sondée par ffprobe : borne de fin du dernier segment
	pctx, pcancel := context.WithTimeout(ctx, defaultProbeTimeout)
	defer pcancel()
	totalMs, err := a.engine.Probe(pctx, sourcePath)
	if err != nil {
		return fmt.Errorf("sonde de durée: %w", err)
	}

	// Plan de découpe
	segments, err := split.Plan(timeline, starts, totalMs)
	if err != nil {
		return fmt.Errorf("plan de découpe: %w", err)
	}
	stems := BookStems(timeline, segments)

	a.ui.PrintInfo(ctx, FormatPlan(segments, stems))

	// Confirmation du plan (sauf mode auto) : rien n'est écrit avant l'accord
	if !a.cfg.AutoMode {
		ok, err := a.ui.Confirm(ctx, "Lancer la découpe ?")
		if err != nil {
			return fmt.Errorf("confirmation du plan: %w", err)
		}
		if !ok {
			a.ui.PrintInfo(ctx, "Découpe annulée, aucun fichier écrit.")
			return nil
		}
	}

	// préparation du dossier de sortie
	outDir := a.cfg.OutputDir
	if a.cfg.SaveInSubdir {
		outDir = filepath.Join(outDir, fsutil.SanitizeFilename(fsutil.Stem(sourcePath)))
	}
	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	// émission des livres : un échec de segment n'arrête pas les suivants
	rep := report.NewData(sourcePath, totalMs, timeline.TotalTracks())
	ext := filepath.Ext(sourcePath)
	failed := 0
	for i, seg := range segments {
		title := BookTitle(timeline, seg, i)
		emitErr := a.EmitSegment(ctx, timeline, seg, stems[i], ext, sourcePath, outDir)
		rep.AddBook(seg, title, emitErr)
		if emitErr != nil {
			failed++
			a.ui.PrintError(ctx, fmt.Sprintf("❌ livre %d (%s) : %v", seg.Index+1, title, emitErr))
			continue
		}
		a.ui.PrintInfo(ctx, fmt.Sprintf("✅ livre %d (%s) écrit : %s%s", seg.Index+1, title, stems[i], ext))
	}

	// Rapport de découpe
	if a.cfg.WriteReport && a.renderer != nil {
		content, rerr := a.renderer.Render("split_report.md.tmpl", rep)
		if rerr != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("warning: rendu du rapport impossible: %v", rerr))
		} else {
			outPath, serr := fsutil.SaveMarkdownAtomic(outDir, reportBaseName, content, true)
			if serr != nil {
				a.ui.PrintError(ctx, fmt.Sprintf("warning: écriture du rapport impossible: %v", serr))
			} else {
				a.ui.PrintInfo(ctx, fmt.Sprintf("Rapport écrit : %s", outPath))
			}
		}
	}

	// copie du chemin de sortie dans le presse-papier
	if a.cfg.CopyPathToClipboard {
		if cerr := clipboard.WriteAll(outDir); cerr != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("warning: copie presse-papier impossible: %v", cerr))
		} else {
			a.ui.PrintInfo(ctx, "Chemin du dossier de sortie copié dans le presse-papier.")
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d livre(s) sur %d en échec, sorties partielles conservées", failed, len(segments))
	}

	if a.cfg.AutoMode {
		return nil
	}
	// Attendre terminaison (Ctrl+C) via UI
	return a.ui.WaitForExit(ctx)
}
