package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCreatesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splitbook.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("le fichier de configuration aurait dû être créé: %v", err)
	}

	// valeurs de l'asset embarqué
	if !cfg.SaveInSubdir || !cfg.WriteReport {
		t.Errorf("défauts inattendus: save_in_subdir=%v write_report=%v", cfg.SaveInSubdir, cfg.WriteReport)
	}
	if cfg.AutoMode || cfg.CopyPathToClipboard {
		t.Errorf("défauts inattendus: auto_mode=%v copy_path=%v", cfg.AutoMode, cfg.CopyPathToClipboard)
	}
	if cfg.FFmpeg.Name == "" || cfg.FFmpeg.ProbeName == "" {
		t.Errorf("noms ffmpeg/ffprobe vides: %q / %q", cfg.FFmpeg.Name, cfg.FFmpeg.ProbeName)
	}
	if cfg.ConfigVersion != CurrentConfigVersion {
		t.Errorf("config_version = %d, attendu %d", cfg.ConfigVersion, CurrentConfigVersion)
	}
}

// Les champs absents du YAML conservent les valeurs par défaut.
func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splitbook.yaml")
	partial := "output_dir: \"/sorties\"\nauto_mode: true\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "/sorties" {
		t.Errorf("output_dir = %q, attendu /sorties", cfg.OutputDir)
	}
	if !cfg.AutoMode {
		t.Error("auto_mode aurait dû être true")
	}
	if !cfg.WriteReport {
		t.Error("write_report absent du fichier : défaut true attendu")
	}
}

// Les backslashes Windows dans les chemins sont convertis avant le parsing YAML.
func TestLoadNormalizesBackslashPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splitbook.yaml")
	raw := "output_dir: \"D:\\livres\\sorties\"\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if strings.Contains(cfg.OutputDir, `\`) {
		t.Errorf("backslash résiduel dans output_dir: %q", cfg.OutputDir)
	}
}

func TestResolveFFmpegPathsFromDirectory(t *testing.T) {
	cfg := defaultConfig()
	cfg.FFmpeg.Path = "/opt/ffmpeg/bin"
	cfg.ResolveFFmpegPaths()

	if cfg.FFmpeg.ResolvedPath != filepath.Join("/opt/ffmpeg/bin", cfg.FFmpeg.Name) {
		t.Errorf("ResolvedPath = %q", cfg.FFmpeg.ResolvedPath)
	}
	if cfg.FFmpeg.ResolvedProbePath != filepath.Join("/opt/ffmpeg/bin", cfg.FFmpeg.ProbeName) {
		t.Errorf("ResolvedProbePath = %q", cfg.FFmpeg.ResolvedProbePath)
	}
}

// Si le chemin pointe déjà sur l'exécutable, ffprobe est supposé voisin.
func TestResolveFFmpegPathsFromExecutable(t *testing.T) {
	cfg := defaultConfig()
	cfg.FFmpeg.Path = filepath.Join("/usr/local/bin", cfg.FFmpeg.Name)
	cfg.ResolveFFmpegPaths()

	if cfg.FFmpeg.ResolvedPath != filepath.Join("/usr/local/bin", cfg.FFmpeg.Name) {
		t.Errorf("ResolvedPath = %q", cfg.FFmpeg.ResolvedPath)
	}
	if cfg.FFmpeg.ResolvedProbePath != filepath.Join("/usr/local/bin", cfg.FFmpeg.ProbeName) {
		t.Errorf("ResolvedProbePath = %q", cfg.FFmpeg.ResolvedProbePath)
	}
}

func TestResolveFFmpegPathsEmptyMeansPATHLookup(t *testing.T) {
	cfg := defaultConfig()
	cfg.FFmpeg.Path = "   "
	cfg.ResolveFFmpegPaths()

	if cfg.FFmpeg.ResolvedPath != "" || cfg.FFmpeg.ResolvedProbePath != "" {
		t.Errorf("chemins résolus attendus vides (découverte PATH), obtenu %q / %q",
			cfg.FFmpeg.ResolvedPath, cfg.FFmpeg.ResolvedProbePath)
	}
}

// Un fichier en version 0 est migré et sauvegardé.
func TestLoadMigratesOldVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "splitbook.yaml")
	old := "output_dir: \".\"\nconfig_version: 0\n"
	if err := os.WriteFile(path, []byte(old), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ConfigVersion != CurrentConfigVersion {
		t.Errorf("config_version = %d, attendu %d après migration", cfg.ConfigVersion, CurrentConfigVersion)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	foundBackup := false
	for _, e := range entries {
		if strings.Contains(e.Name(), ".bak.") {
			foundBackup = true
		}
	}
	if !foundBackup {
		t.Error("sauvegarde .bak attendue après migration")
	}
}
