package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// New construit une instance. ffmpegPath/probePath doivent être les chemins
// résolus vers les exécutables (vides => recherche via les noms).
func New(name, ffmpegPath, probeName, probePath string, cfg Config) *FFmpeg {
	return &FFmpeg{
		Name:      name,
		Path:      ffmpegPath,
		ProbeName: probeName,
		ProbePath: probePath,
		Config:    cfg,
	}
}

// exe retourne le chemin effectif de ffmpeg (fallback sur le nom, résolu
// dans le PATH par exec).
func (f *FFmpeg) exe() string {
	if f.Path != "" {
		return f.Path
	}
	return f.Name
}

// CheckBinary vérifie que le binaire ffmpeg existe et n'est pas un répertoire.
// Si aucun chemin n'est résolu, on tente la découverte dans le PATH.
func (f *FFmpeg) CheckBinary() error {
	if f == nil {
		return fmt.Errorf("ffmpeg non initialisé")
	}

	exe := f.Path
	if exe == "" {
		p, err := exec.LookPath(f.Name)
		if err != nil {
			return fmt.Errorf("ffmpeg introuvable dans le PATH (%s) : %w", f.Name, err)
		}
		f.Path = p
		return nil
	}

	info, err := os.Stat(exe)
	if err != nil {
		return fmt.Errorf("ffmpeg introuvable (%s) à l'emplacement spécifié : %w", exe, err)
	}
	if info.IsDir() {
		return fmt.Errorf("le chemin spécifié pour ffmpeg est un répertoire, pas un fichier exécutable")
	}
	return nil
}

// GetVersion exécute `ffmpeg -version` et retourne la version courte
// (ex: "6.1.1"). CombinedOutput facilite le diagnostic en cas d'échec.
func (f *FFmpeg) GetVersion(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, f.exe(), "-version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("échec exécution ffmpeg -version : %w, output: %s", err, string(out))
	}
	return parseVersionLine(string(out)), nil
}

// parseVersionLine extrait le numéro de la première ligne
// "ffmpeg version X ...". Retourne la sortie brute trimée si inattendue.
func parseVersionLine(out string) string {
	line := out
	if i := strings.IndexByte(out, '\n'); i >= 0 {
		line = out[:i]
	}
	fields := strings.Fields(line)
	if len(fields) >= 3 && fields[0] == "ffmpeg" && fields[1] == "version" {
		return fields[2]
	}
	return strings.TrimSpace(line)
}

// Extract exécute une extraction stream-copy. Un code de sortie non nul est
// enveloppé dans ErrEngineFailed avec la fin de la sortie du moteur : le
// pipeline récupère cette erreur au niveau du segment.
func (f *FFmpeg) Extract(ctx context.Context, req ExtractRequest) error {
	args := f.Config.BuildExtractArgs(req)

	cmd := exec.CommandContext(ctx, f.exe(), args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w : %v, output: %s", ErrEngineFailed, err, tail(string(out), 800))
	}
	return nil
}

// tail retourne au plus n derniers octets de s (diagnostic compact).
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
