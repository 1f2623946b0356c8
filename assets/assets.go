package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/rocket-lander/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

const levelDir = "levels"

// LoadSites parses every embedded landing site, sorted by name.
func LoadSites() ([]*leveldata.Site, error) {
	sites, err := leveldata.LoadAllSites(assetFS, levelDir)
	if err != nil {
		return nil, err
	}
	if len(sites) == 0 {
		return nil, fmt.Errorf("no landing sites found in assets/%s", levelDir)
	}
	return sites, nil
}

// Site returns the embedded site with the given name.
func Site(name string) (*leveldata.Site, error) {
	sites, err := LoadSites()
	if err != nil {
		return nil, err
	}
	site, ok := leveldata.Find(sites, name)
	if !ok {
		return nil, fmt.Errorf("unknown landing site %q", name)
	}
	return site, nil
}
