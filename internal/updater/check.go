package updater

import (
	"context"
	"fmt"
	"strings"
)

// UpdateCheck contient le résultat de la comparaison
type UpdateCheck struct {
	CurrentVersion string       // version du binaire en cours d'exécution
	LatestRelease  *ReleaseInfo // info complète de la release distante
	IsUpToDate     bool         // true si CurrentVersion == LatestRelease.TagName
}

// CheckAppUpdate compare la version locale et la dernière release GitHub de
// splitbook. La comparaison tolère un préfixe "v" d'un côté ou de l'autre.
func CheckAppUpdate(ctx context.Context, localVer string) (*UpdateCheck, error) {
	latest, err := GetLatestRelease(ctx)
	if err != nil {
		return nil, fmt.Errorf("impossible de récupérer la release GitHub : %w", err)
	}

	isUpToDate := strings.TrimPrefix(localVer, "v") == strings.TrimPrefix(latest.TagName, "v")

	return &UpdateCheck{
		CurrentVersion: localVer,
		LatestRelease:  latest,
		IsUpToDate:     isUpToDate,
	}, nil
}

// GetUpdateLink retourne le lien de téléchargement adapté au système
// ("windows" ou autre). Retombe sur la page de la release si l'asset manque.
func (u UpdateCheck) GetUpdateLink(system string) string {
	var url string
	if system == "windows" {
		url = u.LatestRelease.WindowsRelease.BrowserDownloadURL
	} else {
		url = u.LatestRelease.LinuxRelease.BrowserDownloadURL
	}
	if url == "" {
		url = u.LatestRelease.HTMLURL
	}
	return url
}
