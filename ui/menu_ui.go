package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/rocket-lander/shared/leveldata"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SitePickerUI lists the landing sites, one button each.
type SitePickerUI struct {
	UI *ebitenui.UI

	OnSelect func(site *leveldata.Site)
	OnQuit   func()

	sites []*leveldata.Site

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewSitePickerUI(sites []*leveldata.Site, onSelect func(*leveldata.Site), onQuit func()) (*SitePickerUI, error) {
	ui := &SitePickerUI{
		OnSelect: onSelect,
		OnQuit:   onQuit,
		sites:    sites,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	return ui, nil
}

func (ui *SitePickerUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
	return nil
}

func (ui *SitePickerUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("ROCKET LANDING", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Choose a landing site", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 200, 255},
		}),
	))

	for _, site := range ui.sites {
		contentContainer.AddChild(ui.siteButton(site))
	}

	contentContainer.AddChild(ui.button("Quit", color.RGBA{255, 200, 200, 255}, func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("UP thrust   LEFT/RIGHT gimbal   P pause   R restart   F3 hitboxes", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 160, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *SitePickerUI) siteButton(site *leveldata.Site) *widget.Button {
	label := fmt.Sprintf("%s  (pad %.0f-%.0f)", site.Title, site.PadX, site.PadX+site.PadWidth)
	return ui.button(label, color.RGBA{200, 255, 200, 255}, func() {
		if ui.OnSelect != nil {
			ui.OnSelect(site)
		}
	})
}

func (ui *SitePickerUI) button(label string, hover color.RGBA, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   hover,
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *SitePickerUI) Update() {
	ui.UI.Update()
}
