// Package version checks GitHub releases for a newer build.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/valtips-cli/valtips/filesystem"
	"github.com/valtips-cli/valtips/network"
	"github.com/valtips-cli/valtips/util"
	"github.com/valtips-cli/valtips/where"
)

// ReleasesURL points at the latest release of the repository.
var ReleasesURL = "https://api.github.com/repos/valtips-cli/valtips/releases/latest"

var latestCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   48 * time.Hour,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version without the v prefix.
// The answer is cached for two days.
func Latest(ctx context.Context) (string, error) {
	if cached, expired, err := latestCacher.Get(); err == nil && !expired && cached != "" {
		return cached, nil
	}

	resp, err := network.Get(ctx, nil, ReleasesURL)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}
	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	_ = latestCacher.Set(latest)
	return latest, nil
}

// Compare returns 1 if a > b, -1 if a < b and 0 if they are equal.
func Compare(a, b string) (int, error) {
	parse := func(s string) ([3]int, error) {
		var v [3]int
		_, err := fmt.Sscanf(strings.TrimPrefix(s, "v"), "%d.%d.%d", &v[0], &v[1], &v[2])
		return v, err
	}

	av, err := parse(a)
	if err != nil {
		return 0, err
	}
	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range lo.Zip2(av[:], bv[:]) {
		switch {
		case pair.A > pair.B:
			return 1, nil
		case pair.A < pair.B:
			return -1, nil
		}
	}
	return 0, nil
}
