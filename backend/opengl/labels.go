package opengl

import (
	"image"
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/glshell"
)

// LabelSize is the point size of menu labels.
const LabelSize = 13

// labelGap separates labels in the atlas so sampling never bleeds.
const labelGap = 2

// LoadLabelFace returns Go Regular at LabelSize, or basicfont.Face7x13 if the
// TrueType font cannot be parsed.
func LoadLabelFace() font.Face {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("label font parse failed, using basicfont: %v", err)
		return basicfont.Face7x13
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    LabelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// RasterizeLabels draws each distinct label once, stacked vertically, into a
// single coverage image. It returns the image and the pixel bounds of each
// label.
func RasterizeLabels(face font.Face, labels []string) (*image.Alpha, map[string]image.Rectangle) {
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	regions := make(map[string]image.Rectangle, len(labels))
	order := make([]string, 0, len(labels))
	width := 1
	for _, text := range labels {
		if _, seen := regions[text]; seen || text == "" {
			continue
		}
		w := font.MeasureString(face, text).Ceil()
		y := len(order) * (lineHeight + labelGap)
		regions[text] = image.Rect(0, y, w, y+lineHeight)
		order = append(order, text)
		width = max(width, w)
	}

	height := max(len(order)*(lineHeight+labelGap), 1)
	img := image.NewAlpha(image.Rect(0, 0, width, height))

	drawer := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for _, text := range order {
		r := regions[text]
		drawer.Dot = fixed.P(r.Min.X, r.Min.Y+ascent)
		drawer.DrawString(text)
	}
	return img, regions
}

// LabelAtlas is a GL texture holding every menu label. It implements
// glshell.LabelAtlas.
type LabelAtlas struct {
	texture uint32
	width   int
	height  int
	regions map[string]image.Rectangle
}

// NewLabelAtlas rasterises labels with face and uploads them through r.
func NewLabelAtlas(r *Renderer, face font.Face, labels []string) *LabelAtlas {
	img, regions := RasterizeLabels(face, labels)
	return &LabelAtlas{
		texture: r.UploadAlpha(img),
		width:   img.Rect.Dx(),
		height:  img.Rect.Dy(),
		regions: regions,
	}
}

// Label implements glshell.LabelAtlas.
func (a *LabelAtlas) Label(text string) (uint32, [4]float32, glshell.Vec2, bool) {
	r, ok := a.regions[text]
	if !ok || a.texture == 0 {
		return 0, [4]float32{}, glshell.Vec2{}, false
	}
	w, h := float32(a.width), float32(a.height)
	uv := [4]float32{
		float32(r.Min.X) / w, float32(r.Min.Y) / h,
		float32(r.Max.X) / w, float32(r.Max.Y) / h,
	}
	size := glshell.Vec2{X: float32(r.Dx()), Y: float32(r.Dy())}
	return a.texture, uv, size, true
}

// Texture returns the GL texture ID.
func (a *LabelAtlas) Texture() uint32 {
	return a.texture
}
