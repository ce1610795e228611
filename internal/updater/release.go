package updater

import (
	"context"
	"time"

	"github.com/patrickprogramme/splitbook/pkg/github"
)

// Dépôt des releases de splitbook.
const (
	releaseOwner = "patrickprogramme"
	releaseRepo  = "splitbook"
)

type rawRelease struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	Body        string    `json:"body"`
	HTMLURL     string    `json:"html_url"`
	Assets      []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
		ContentType        string `json:"content_type"`
	} `json:"assets"`
}

// GetLatestRelease découpe clairement les responsabilités : fetch JSON
// (borné) puis mise en forme dans ReleaseInfo.
func GetLatestRelease(ctx context.Context) (*ReleaseInfo, error) {
	var raw rawRelease
	if err := github.FetchLatestReleaseInto(ctx, releaseOwner, releaseRepo, &raw); err != nil {
		return nil, err
	}

	info := &ReleaseInfo{
		TagName:     raw.TagName,
		Name:        raw.Name,
		PublishedAt: raw.PublishedAt,
		Body:        raw.Body,
		HTMLURL:     raw.HTMLURL,
	}

	for _, a := range raw.Assets {
		switch a.Name {
		case "splitbook.exe":
			info.WindowsRelease = ReleaseAsset{a.Name, a.BrowserDownloadURL, a.ContentType}
		case "splitbook":
			info.LinuxRelease = ReleaseAsset{a.Name, a.BrowserDownloadURL, a.ContentType}
		}
	}

	return info, nil
}
