package updater

import (
	"time"
)

// ReleaseAsset représente un exécutable Windows ou Linux attaché à la release.
type ReleaseAsset struct {
	Name               string
	BrowserDownloadURL string
	ContentType        string
}

// ReleaseInfo contient les métadonnées de la release
// et les deux assets spécifiques à la mise à jour.
type ReleaseInfo struct {
	TagName        string
	Name           string
	PublishedAt    time.Time
	Body           string
	HTMLURL        string
	WindowsRelease ReleaseAsset
	LinuxRelease   ReleaseAsset
}
