package opengl

import (
	"image"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/glshell"
)

func TestRasterizeLabels(t *testing.T) {
	labels := append(glshell.NewContextMenu().Labels(), glshell.SubmenuMarker, "Quit", "")
	img, regions := RasterizeLabels(basicfont.Face7x13, labels)

	// Duplicates and empty labels are dropped.
	if len(regions) != 5 {
		t.Fatalf("expected 5 regions, got %d", len(regions))
	}
	if _, ok := regions[""]; ok {
		t.Error("empty label should not be rasterised")
	}

	// basicfont glyphs are 7 pixels wide and 13 tall.
	if r := regions["Quit"]; r.Dx() != 4*7 || r.Dy() != 13 {
		t.Errorf("Quit region %v, want 28x13", r)
	}

	var seen []image.Rectangle
	for text, r := range regions {
		if !r.In(img.Rect) {
			t.Errorf("%q region %v outside atlas %v", text, r, img.Rect)
		}
		for _, other := range seen {
			if r.Overlaps(other) {
				t.Errorf("%q region %v overlaps %v", text, r, other)
			}
		}
		seen = append(seen, r)

		if !hasCoverage(img, r) {
			t.Errorf("%q region is blank", text)
		}
	}
}

func TestRasterizeNoLabels(t *testing.T) {
	img, regions := RasterizeLabels(basicfont.Face7x13, nil)
	if len(regions) != 0 {
		t.Errorf("expected no regions, got %d", len(regions))
	}
	if img.Rect.Empty() {
		t.Error("atlas image should never be zero-sized")
	}
}

func TestLabelAtlasLookup(t *testing.T) {
	_, regions := RasterizeLabels(basicfont.Face7x13, []string{"Quit"})
	atlas := &LabelAtlas{texture: 9, width: 28, height: 15, regions: regions}

	tex, uv, size, ok := atlas.Label("Quit")
	if !ok || tex != 9 {
		t.Fatalf("Label(Quit) = %d, %v", tex, ok)
	}
	if size != (glshell.Vec2{X: 28, Y: 13}) {
		t.Errorf("size %+v", size)
	}
	if uv[0] != 0 || uv[1] != 0 || uv[2] != 1 || uv[3] != float32(13)/15 {
		t.Errorf("uv %v", uv)
	}

	if _, _, _, ok := atlas.Label("missing"); ok {
		t.Error("unknown label should not be found")
	}
}

func TestLoadLabelFace(t *testing.T) {
	face := LoadLabelFace()
	if face == nil {
		t.Fatal("expected a face")
	}
	if face.Metrics().Height.Ceil() <= 0 {
		t.Error("face should have a positive line height")
	}
}

func hasCoverage(img *image.Alpha, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.AlphaAt(x, y).A > 0 {
				return true
			}
		}
	}
	return false
}
