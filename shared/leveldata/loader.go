package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names a site must define.
const (
	GroupFloor = "Floor"
	GroupPad   = "Pad"
	GroupSpawn = "Spawn"
)

var ErrIncompleteSite = errors.New("site is missing an object group")

// LoadSite parses a TMX file into a Site. It takes an fs.FS so callers can
// pass embed.FS (game) or os.DirFS (tools).
func LoadSite(fsys fs.FS, tmxPath string) (*Site, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	site := &Site{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	found := map[string]bool{}
	for _, og := range levelMap.ObjectGroups {
		if len(og.Objects) == 0 {
			continue
		}
		// Only the first object of each group is used.
		o := og.Objects[0]
		switch og.Name {
		case GroupFloor:
			site.FloorX = o.X
			site.FloorY = o.Y
			site.FloorWidth = o.Width
		case GroupPad:
			site.PadX = o.X
			site.PadY = o.Y
			site.PadWidth = o.Width
			site.PadHeight = o.Height
		case GroupSpawn:
			site.SpawnX = o.X
			site.SpawnY = o.Y
			site.Title = o.Name
		default:
			continue
		}
		found[og.Name] = true
	}

	for _, group := range []string{GroupFloor, GroupPad, GroupSpawn} {
		if !found[group] {
			return nil, fmt.Errorf("%s: %w: %s", tmxPath, ErrIncompleteSite, group)
		}
	}
	if site.Title == "" {
		site.Title = site.Name
	}

	return site, nil
}

// LoadAllSites discovers all .tmx files in dir within fsys and returns the
// sites sorted by name.
func LoadAllSites(fsys fs.FS, dir string) ([]*Site, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	sites := make([]*Site, 0, len(matches))
	for _, path := range matches {
		site, err := LoadSite(fsys, path)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}

	sort.Slice(sites, func(i, j int) bool {
		return sites[i].Name < sites[j].Name
	})
	return sites, nil
}

// Find returns the site with the given stem name.
func Find(sites []*Site, name string) (*Site, bool) {
	for _, s := range sites {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}
