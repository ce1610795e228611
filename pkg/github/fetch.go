package github

import (
	"context"
	"fmt"

	"github.com/patrickprogramme/splitbook/internal/fetch"
)

// LatestReleaseURL construit l'URL de l'API GitHub pour la dernière release
// d'un dépôt donné.
func LatestReleaseURL(owner, repo string) string {
	return fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", owner, repo)
}

// FetchLatestReleaseInto interroge l'API GitHub pour la dernière release d'un
// dépôt et décode la réponse JSON dans dst (pointeur). Taille et durée sont
// bornées par les défauts du package fetch.
func FetchLatestReleaseInto(ctx context.Context, owner, repo string, dst interface{}) error {
	url := LatestReleaseURL(owner, repo)
	if err := fetch.FetchJSONInto(ctx, url, 0, 0, dst); err != nil {
		return fmt.Errorf("requête GitHub %s/%s: %w", owner, repo, err)
	}
	return nil
}
