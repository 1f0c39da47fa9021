package scenegraph

import (
	"image"
	"image/color"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/engine2d/internal/geom"
)

// Renderer draws an object. Bounds is in local, untransformed space; geo
// maps local space to the destination image.
type Renderer interface {
	Bounds() geom.Rect
	Render(dst *ebiten.Image, geo ebiten.GeoM)
}

var (
	whiteOnce  sync.Once
	whitePixel *ebiten.Image
)

// whiteSubImage is the 1x1 source used for solid-colour triangles.
func whiteSubImage() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whitePixel
}

// Polygon is a convex polygon with optional fill and outline.
type Polygon struct {
	Points       []geom.Pointf
	Fill         color.Color
	Outline      color.Color
	OutlineWidth float32
}

// NewPolygon creates a filled polygon.
func NewPolygon(fill color.Color, pts ...geom.Pointf) *Polygon {
	return &Polygon{Points: pts, Fill: fill}
}

// NewRectangle creates a filled w x h rectangle with its top-left at the
// local origin.
func NewRectangle(w, h float64, fill color.Color) *Polygon {
	c := geom.Rect{W: w, H: h}.Corners()
	return NewPolygon(fill, c[:]...)
}

// Bounds implements Renderer.
func (p *Polygon) Bounds() geom.Rect {
	return geom.RectFromPoints(p.Points...)
}

// Render implements Renderer.
func (p *Polygon) Render(dst *ebiten.Image, geo ebiten.GeoM) {
	if len(p.Points) < 3 {
		return
	}

	pts := make([]geom.Pointf, len(p.Points))
	for i, pt := range p.Points {
		x, y := geo.Apply(pt.X, pt.Y)
		pts[i] = geom.Pt(x, y)
	}

	if p.Fill != nil {
		var path vector.Path
		path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, pt := range pts[1:] {
			path.LineTo(float32(pt.X), float32(pt.Y))
		}
		path.Close()

		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		r, g, b, a := p.Fill.RGBA()
		for i := range vs {
			vs[i].SrcX = 1
			vs[i].SrcY = 1
			vs[i].ColorR = float32(r) / 0xffff
			vs[i].ColorG = float32(g) / 0xffff
			vs[i].ColorB = float32(b) / 0xffff
			vs[i].ColorA = float32(a) / 0xffff
		}
		dst.DrawTriangles(vs, is, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}

	if p.Outline != nil {
		w := p.OutlineWidth
		if w <= 0 {
			w = 1
		}
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), w, p.Outline, true)
		}
	}
}

// Glyph size of the built-in debug font.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// Text draws a string with the built-in bitmap font. Size is the line
// height in pixels; zero means the font's native 16px.
type Text struct {
	Content string
	Color   color.Color
	Size    float64

	cached     *ebiten.Image
	cachedText string
}

// NewText creates a text renderer.
func NewText(content string, c color.Color, size float64) *Text {
	return &Text{Content: content, Color: c, Size: size}
}

func (t *Text) scale() float64 {
	if t.Size <= 0 {
		return 1
	}
	return t.Size / glyphHeight
}

// textSize returns the glyph grid of s: longest line and line count.
func textSize(s string) (cols, rows int) {
	lines := strings.Split(s, "\n")
	for _, l := range lines {
		cols = max(cols, utf8.RuneCountInString(l))
	}
	return cols, len(lines)
}

// Bounds implements Renderer.
func (t *Text) Bounds() geom.Rect {
	cols, rows := textSize(t.Content)
	s := t.scale()
	return geom.Rect{W: float64(cols*glyphWidth) * s, H: float64(rows*glyphHeight) * s}
}

// Render implements Renderer.
func (t *Text) Render(dst *ebiten.Image, geo ebiten.GeoM) {
	cols, rows := textSize(t.Content)
	if cols == 0 {
		return
	}
	if t.cached == nil || t.cachedText != t.Content {
		if t.cached != nil {
			t.cached.Deallocate()
		}
		t.cached = ebiten.NewImage(cols*glyphWidth, rows*glyphHeight)
		ebitenutil.DebugPrint(t.cached, t.Content)
		t.cachedText = t.Content
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(t.scale(), t.scale())
	op.GeoM.Concat(geo)
	if t.Color != nil {
		op.ColorScale.ScaleWithColor(t.Color)
	}
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(t.cached, op)
}

// Sprite draws an image with its top-left at the local origin.
type Sprite struct {
	Image *ebiten.Image
}

// Bounds implements Renderer.
func (s *Sprite) Bounds() geom.Rect {
	if s.Image == nil {
		return geom.Rect{}
	}
	b := s.Image.Bounds()
	return geom.Rect{W: float64(b.Dx()), H: float64(b.Dy())}
}

// Render implements Renderer.
func (s *Sprite) Render(dst *ebiten.Image, geo ebiten.GeoM) {
	if s.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{GeoM: geo}
	dst.DrawImage(s.Image, op)
}
