package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="30" tilewidth="20" tileheight="20" infinite="0">
 <objectgroup id="1" name="Floor">
  <object id="1" x="0" y="580" width="800" height="20"/>
 </objectgroup>
 <objectgroup id="2" name="Pad">
  <object id="2" x="350" y="570" width="100" height="10"/>
 </objectgroup>
 <objectgroup id="3" name="Spawn">
  <object id="3" name="Classic" x="400" y="150">
   <point/>
  </object>
 </objectgroup>
</map>`

const noPadTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="30" tilewidth="20" tileheight="20" infinite="0">
 <objectgroup id="1" name="Floor">
  <object id="1" x="0" y="580" width="800" height="20"/>
 </objectgroup>
 <objectgroup id="3" name="Spawn">
  <object id="3" x="400" y="150">
   <point/>
  </object>
 </objectgroup>
</map>`

func TestLoadSite(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/classic.tmx": {Data: []byte(siteTMX)},
	}

	site, err := LoadSite(fsys, "levels/classic.tmx")
	require.NoError(t, err)

	assert.Equal(t, "classic", site.Name)
	assert.Equal(t, "Classic", site.Title)
	assert.Equal(t, 800, site.MapWidth)
	assert.Equal(t, 600, site.MapHeight)
	assert.Equal(t, 580.0, site.FloorY)
	assert.Equal(t, 800.0, site.FloorWidth)
	assert.Equal(t, 350.0, site.PadX)
	assert.Equal(t, 570.0, site.PadY)
	assert.Equal(t, 100.0, site.PadWidth)
	assert.Equal(t, 400.0, site.PadCenter())
	assert.Equal(t, 400.0, site.SpawnX)
	assert.Equal(t, 150.0, site.SpawnY)
}

func TestSite_FloorHeight(t *testing.T) {
	tests := []struct {
		name string
		site Site
		want float64
	}{
		{name: "classic", site: Site{MapHeight: 600, FloorY: 580}, want: 20},
		{name: "raised floor", site: Site{MapHeight: 600, FloorY: 560}, want: 40},
		{name: "floor at map bottom", site: Site{MapHeight: 600, FloorY: 600}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.site.FloorHeight())
		})
	}
}

func TestLoadSite_MissingGroup(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/broken.tmx": {Data: []byte(noPadTMX)},
	}

	_, err := LoadSite(fsys, "levels/broken.tmx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteSite)
	assert.Contains(t, err.Error(), GroupPad)
}

func TestLoadSite_MissingFile(t *testing.T) {
	_, err := LoadSite(fstest.MapFS{}, "levels/none.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load TMX")
}

func TestLoadAllSites(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/zeta.tmx":  {Data: []byte(siteTMX)},
		"levels/alpha.tmx": {Data: []byte(siteTMX)},
		"levels/notes.txt": {Data: []byte("ignored")},
	}

	sites, err := LoadAllSites(fsys, "levels")
	require.NoError(t, err)
	require.Len(t, sites, 2)
	assert.Equal(t, "alpha", sites[0].Name)
	assert.Equal(t, "zeta", sites[1].Name)

	found, ok := Find(sites, "zeta")
	assert.True(t, ok)
	assert.Same(t, sites[1], found)

	_, ok = Find(sites, "missing")
	assert.False(t, ok)
}

func TestLoadAllSites_Empty(t *testing.T) {
	_, err := LoadAllSites(fstest.MapFS{}, "levels")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .tmx files")
}
