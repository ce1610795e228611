package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/patrickprogramme/splitbook/internal/assets"
	"github.com/patrickprogramme/splitbook/internal/fsutil"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	OutputDir string `yaml:"output_dir"`

	// Organisation : ranger les livres dans un sous-dossier nommé d'après la source
	SaveInSubdir bool `yaml:"save_in_subdir"`

	// Rapport de découpe (markdown, rendu par template)
	WriteReport bool `yaml:"write_report"`

	// Copier le chemin du dossier de sortie dans le presse-papier en fin de run
	CopyPathToClipboard bool `yaml:"copy_path_to_clipboard"`

	// Mode automatique : pas de confirmation du plan, pas d'attente finale
	AutoMode bool `yaml:"auto_mode"`

	// Vérification de mise à jour de splitbook au démarrage
	AutoUpdateCheck bool `yaml:"auto_update_check"`

	// ffmpeg / ffprobe
	FFmpeg struct {
		Name         string `yaml:"name"`
		ProbeName    string `yaml:"probe_name"`
		Path         string `yaml:"path"`
		ShowWarnings bool   `yaml:"show_warnings"`

		// Chemins effectifs vers les exécutables (résolus, non sérialisés)
		ResolvedPath      string `yaml:"-"`
		ResolvedProbePath string `yaml:"-"`
	} `yaml:"ffmpeg"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	// Chemins
	c.OutputDir = "."

	// Organisation
	c.SaveInSubdir = true

	// Rapport
	c.WriteReport = true

	// Presse-papier
	c.CopyPathToClipboard = false

	// Mode automatique
	c.AutoMode = false

	// Mise à jour
	c.AutoUpdateCheck = false

	// ffmpeg
	c.FFmpeg.Name = "ffmpeg"
	c.FFmpeg.ProbeName = "ffprobe"
	c.FFmpeg.Path = ""
	c.FFmpeg.ShowWarnings = false

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué
// depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = "splitbook.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	// lire le YAML brut et déserialiser dans cfg (les champs présents écraseront les defaults)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		// re-normaliser au cas où la migration a modifié des valeurs
		cfg.normalizeConfig()
	}

	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = filepath.Clean(c.OutputDir)

	// centraliser la résolution/normalisation de ffmpeg/ffprobe
	c.ResolveFFmpegPaths()
}

// ResolveFFmpegPaths normalise les noms et résout les chemins complets vers
// les exécutables ffmpeg et ffprobe. Appeler après avoir modifié
// cfg.FFmpeg.Name ou cfg.FFmpeg.Path.
func (c *Config) ResolveFFmpegPaths() {
	if c == nil {
		return
	}

	c.FFmpeg.Name = normalizeExeName(c.FFmpeg.Name, "ffmpeg")
	c.FFmpeg.ProbeName = normalizeExeName(c.FFmpeg.ProbeName, "ffprobe")

	// cfg.Path vide => découverte dans le PATH (faite par le client ffmpeg)
	cfgPath := strings.TrimSpace(c.FFmpeg.Path)
	if cfgPath == "" {
		c.FFmpeg.ResolvedPath = ""
		c.FFmpeg.ResolvedProbePath = ""
		return
	}
	cleanPath := filepath.Clean(cfgPath)

	// si le chemin fourni finit déjà par l'exécutable -> on l'utilise,
	// sinon on considère cfgPath comme un répertoire et on y joint l'exe.
	// ffprobe est supposé voisin de ffmpeg.
	if filepath.Base(cleanPath) == c.FFmpeg.Name {
		c.FFmpeg.ResolvedPath = cleanPath
		c.FFmpeg.ResolvedProbePath = filepath.Join(filepath.Dir(cleanPath), c.FFmpeg.ProbeName)
	} else {
		c.FFmpeg.ResolvedPath = filepath.Join(cleanPath, c.FFmpeg.Name)
		c.FFmpeg.ResolvedProbePath = filepath.Join(cleanPath, c.FFmpeg.ProbeName)
	}
}

// normalizeExeName : trim, valeur par défaut, suffixe .exe sur Windows.
func normalizeExeName(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fallback
	}
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(name), ".exe") {
		name = name + ".exe"
	}
	return name
}
