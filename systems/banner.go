package systems

import (
	"image/color"

	"github.com/automoto/rocket-lander/components"
	cfg "github.com/automoto/rocket-lander/config"
	"github.com/automoto/rocket-lander/fonts"
	"github.com/automoto/rocket-lander/shared/rocket"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateBanner(ecs *ecs.ECS) {
	dt := float32(1 / cfg.C.ReferenceRate)
	components.Banner.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Banner.Get(e)
		b.Alpha, _ = b.Fade.Update(dt)
	})
}

// DrawBanner shows the outcome of a finished round.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	b := components.Banner.Get(entry)

	title, base := "LANDED", cfg.UI.WinColor
	if b.Outcome == rocket.Lose {
		title, base = "CRASHED", cfg.UI.LoseColor
	}
	alpha := uint8(b.Alpha * 255)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	titleX := (width - fonts.Width(fonts.Title, title)) / 2
	text.Draw(screen, title, fonts.Title.Get(), titleX, height/3,
		color.NRGBA{R: base.R, G: base.G, B: base.B, A: alpha})

	hint := "R restart    M menu"
	hintX := (width - fonts.Width(fonts.Small, hint)) / 2
	text.Draw(screen, hint, fonts.Small.Get(), hintX, height/3+28,
		color.NRGBA{R: cfg.UI.HUDTextColor.R, G: cfg.UI.HUDTextColor.G, B: cfg.UI.HUDTextColor.B, A: alpha})
}
