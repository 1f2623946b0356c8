package components

import (
	"github.com/automoto/rocket-lander/shared/leveldata"
	"github.com/yohamta/donburi"
)

type SiteData struct {
	Site *leveldata.Site
}

var Site = donburi.NewComponentType[SiteData]()
