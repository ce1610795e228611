package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/patrickprogramme/splitbook/internal/app"
	"github.com/patrickprogramme/splitbook/internal/assets"
	"github.com/patrickprogramme/splitbook/internal/bootstrap"
	"github.com/patrickprogramme/splitbook/internal/config"
	"github.com/patrickprogramme/splitbook/internal/report"
	"github.com/patrickprogramme/splitbook/internal/ui"
)

func main() {
	flags := parseFlags()

	// déterminer exePath/binDir
	binDir := "."
	exePath, err := os.Executable()
	if err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
	}

	// emplacement config par défaut
	if flags.ConfigPath == "splitbook.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "splitbook.yaml")
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	}

	// s'assurer que les templates existent (dans binDir/templates)
	tplDir := filepath.Join(binDir, "templates")
	if err := bootstrap.EnsureTemplatesPresent(
		tplDir,
		assets.Embedded,
		assets.DefaultTemplatePaths,
	); err != nil {
		log.Printf("warning: ensure templates present: %v", err)
	}

	// charger la config depuis flags.ConfigPath (binDir/splitbook.yaml par défaut)
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	// appliquer le flag -auto par-dessus la config
	if flags.Auto {
		cfg.AutoMode = true
	}

	// avertissements de pré-vol sur la présence de ffmpeg/ffprobe
	if warnings, err := cfg.ValidateFFmpegPresence(); err == nil {
		for _, w := range warnings {
			log.Printf("warning: %s", w)
		}
	}

	// construction du renderer du rapport (non fatal : run sans rapport)
	var renderer *report.Renderer
	if cfg.WriteReport {
		renderer, err = report.DefaultRenderer(exePath)
		if err != nil {
			log.Printf("warning: impossible de construire le renderer: %v", err)
			renderer = nil
		}
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal()
	a := app.New(cfg, tui, flags, renderer)
	if err := a.Run(ctx); err != nil {
		log.Fatalf("splitbook: %v", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <répertoire> <pistes_de_début>\n", filepath.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "  <répertoire>       dossier contenant le conteneur audio et son cue sheet")
	fmt.Fprintln(os.Stderr, "  <pistes_de_début>  liste \"1,5,9\" des pistes qui ouvrent un livre")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func parseFlags() *app.CLIFlags {
	f := &app.CLIFlags{}
	flag.StringVar(&f.ConfigPath, "config", "splitbook.yaml", "chemin du fichier de configuration")
	flag.BoolVar(&f.Auto, "auto", false, "exécution automatique sans confirmation du plan")
	flag.StringVar(&f.FFmpegPath, "ffmpeg-path", "", "chemin absolu vers l'exécutable ffmpeg (ffprobe supposé voisin)")
	flag.Usage = usage
	flag.Parse()

	// deux arguments positionnels obligatoires
	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	f.Dir = flag.Arg(0)
	f.StartTracks = flag.Arg(1)
	return f
}
