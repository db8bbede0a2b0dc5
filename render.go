package cardtilt

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp(c.R, 0, 1) * 255),
		G: uint8(clamp(c.G, 0, 1) * 255),
		B: uint8(clamp(c.B, 0, 1) * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}

const (
	defaultFocal         = 1200.0 // perspective focal distance in pixels
	defaultGridCols      = 8      // mesh subdivisions across the card
	defaultGridRows      = 5      // mesh subdivisions down the card
	defaultFaceCacheSize = 16
)

// CardRenderer is the reference Renderer for Ebitengine. It rasterizes the
// card's two faces into cached images and, each Draw, projects a subdivided
// quad through the displayed yaw/pitch with a simple perspective term,
// submitting it via DrawTriangles. Subdividing keeps texture mapping
// reasonable under perspective, where a two-triangle quad would visibly
// shear.
//
// Commit hints are honored by tweening the displayed pose toward the
// committed one, so the visual card glides between pointer samples while the
// controller's state stays exact.
type CardRenderer struct {
	// Card size in pixels at scale 1.
	Width, Height int
	// Focal is the perspective distance; larger is flatter.
	Focal float64

	cols, rows int
	cache      *faceCache

	data   CardData
	style  Style
	fields FieldSet
	built  bool

	front *ebiten.Image
	back  *ebiten.Image

	// Displayed pose, possibly trailing the committed one under a hint.
	shown  Pose
	target Pose
	yawTw  *gween.Tween
	pitTw  *gween.Tween
	sclTw  *gween.Tween

	// Preallocated geometry buffers (high-water, never shrink).
	verts   []ebiten.Vertex
	indices []uint16
}

// NewCardRenderer creates a renderer for a card of the given pixel size.
func NewCardRenderer(width, height int) *CardRenderer {
	r := &CardRenderer{
		Width:  width,
		Height: height,
		Focal:  defaultFocal,
		cols:   defaultGridCols,
		rows:   defaultGridRows,
		cache:  newFaceCache(defaultFaceCacheSize),
	}
	r.shown = Pose{Scale: 1}
	r.target = r.shown
	r.buildIndices()
	return r
}

// Commit implements Renderer. A zero-duration hint snaps the displayed pose;
// otherwise the displayed pose tweens toward the committed one.
func (r *CardRenderer) Commit(pose Pose, hint Hint) {
	r.target = pose
	r.shown.ShowingBack = pose.ShowingBack

	if hint.Duration <= 0 {
		r.shown = pose
		r.yawTw, r.pitTw, r.sclTw = nil, nil, nil
		return
	}
	fn := hint.Ease
	if fn == nil {
		fn = ease.Linear
	}
	r.yawTw = gween.New(float32(r.shown.Yaw), float32(pose.Yaw), hint.Duration, fn)
	r.pitTw = gween.New(float32(r.shown.Pitch), float32(pose.Pitch), hint.Duration, fn)
	r.sclTw = gween.New(float32(r.shown.Scale), float32(pose.Scale), hint.Duration, fn)
}

// Rebuild implements Renderer. Face images come from the bounded cache, so
// flipping between a handful of styles re-rasterizes nothing.
func (r *CardRenderer) Rebuild(data CardData, style Style, fields FieldSet) {
	r.data = data
	r.style = style
	r.fields = fields
	r.front = r.face(faceKey{data: data, style: style, fields: fields, back: false})
	r.back = r.face(faceKey{data: data, style: style, fields: fields, back: true})
	r.built = true
}

// Update advances any hint interpolation by dt seconds.
func (r *CardRenderer) Update(dt float64) {
	if r.yawTw == nil {
		return
	}
	yv, yDone := r.yawTw.Update(float32(dt))
	pv, _ := r.pitTw.Update(float32(dt))
	sv, _ := r.sclTw.Update(float32(dt))
	r.shown.Yaw = float64(yv)
	r.shown.Pitch = float64(pv)
	r.shown.Scale = float64(sv)
	if yDone {
		r.shown = r.target
		r.yawTw, r.pitTw, r.sclTw = nil, nil, nil
	}
}

// Shown returns the currently displayed pose (after hint smoothing).
func (r *CardRenderer) Shown() Pose { return r.shown }

// Draw renders the card centered at (cx, cy). A renderer that has never
// been rebuilt draws nothing.
func (r *CardRenderer) Draw(screen *ebiten.Image, cx, cy float64) {
	if !r.built {
		return
	}

	img := r.front
	mirror := false
	if backFaceVisible(r.shown.Yaw, r.shown.Pitch) {
		img = r.back
		// Mirror U so the back face reads left-to-right when turned over.
		mirror = true
	}

	r.buildVertices(img, cx, cy, mirror)

	opts := &ebiten.DrawTrianglesOptions{}
	screen.DrawTriangles(r.verts, r.indices, img, opts)
}

// --- Projection ---

// projectPoint rotates a card-local point (x, y, z=0) by pitch about the X
// axis then yaw about the Y axis, applies scale, and projects it with focal
// perspective. Returns the screen offset from the card center.
func projectPoint(x, y, yaw, pitch, scale, focal float64) (sx, sy float64) {
	sinY, cosY := math.Sincos(yaw)
	sinP, cosP := math.Sincos(pitch)

	// Pitch about X (z starts at 0).
	y1 := y * cosP
	z1 := y * sinP
	// Yaw about Y.
	x2 := x * cosY
	z2 := -x*sinY + z1*cosY

	f := 1.0
	if focal > 0 {
		f = focal / (focal + z2)
	}
	return x2 * scale * f, y1 * scale * f
}

// backFaceVisible reports whether the rotated card presents its back to the
// viewer. The face normal's z component after pitch-then-yaw rotation is
// cos(pitch)*cos(yaw); the back shows when it flips sign.
func backFaceVisible(yaw, pitch float64) bool {
	return math.Cos(pitch)*math.Cos(yaw) < 0
}

func (r *CardRenderer) buildIndices() {
	cols, rows := r.cols, r.rows
	r.indices = r.indices[:0]
	stride := cols + 1
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := uint16(row*stride + col)
			r.indices = append(r.indices,
				i, i+1, i+uint16(stride),
				i+1, i+uint16(stride)+1, i+uint16(stride))
		}
	}
}

func (r *CardRenderer) buildVertices(img *ebiten.Image, cx, cy float64, mirror bool) {
	cols, rows := r.cols, r.rows
	need := (cols + 1) * (rows + 1)
	if cap(r.verts) < need {
		r.verts = make([]ebiten.Vertex, need)
	}
	r.verts = r.verts[:need]

	w := float64(r.Width)
	h := float64(r.Height)
	iw := float64(img.Bounds().Dx())
	ih := float64(img.Bounds().Dy())

	i := 0
	for row := 0; row <= rows; row++ {
		v := float64(row) / float64(rows)
		for col := 0; col <= cols; col++ {
			u := float64(col) / float64(cols)
			lx := (u - 0.5) * w
			ly := (v - 0.5) * h
			sx, sy := projectPoint(lx, ly, r.shown.Yaw, r.shown.Pitch, r.shown.Scale, r.Focal)

			su := u
			if mirror {
				su = 1 - u
			}
			r.verts[i] = ebiten.Vertex{
				DstX:   float32(cx + sx),
				DstY:   float32(cy + sy),
				SrcX:   float32(su * iw),
				SrcY:   float32(v * ih),
				ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
			}
			i++
		}
	}
}

// --- Face rasterization ---

// face returns the cached image for a face key, rasterizing on miss.
func (r *CardRenderer) face(key faceKey) *ebiten.Image {
	if img := r.cache.get(key); img != nil {
		return img
	}
	var img *ebiten.Image
	if key.back {
		img = r.drawBackFace(key.data, key.style, key.fields)
	} else {
		img = r.drawFrontFace(key.data, key.style, key.fields)
	}
	r.cache.put(key, img)
	return img
}

func (r *CardRenderer) drawFrontFace(data CardData, style Style, fields FieldSet) *ebiten.Image {
	img := ebiten.NewImage(r.Width, r.Height)
	img.Fill(style.Face.toRGBA())

	w := r.Width
	h := r.Height

	// Chip.
	fillRect(img, w/12, h/4, w/8, h/8, color.RGBA{R: 212, G: 175, B: 55, A: 255})

	if text := fieldText(data, fields, FieldNumber); text != "" {
		ebitenutil.DebugPrintAt(img, text, w/12, h/2)
	}
	if text := fieldText(data, fields, FieldHolder); text != "" {
		ebitenutil.DebugPrintAt(img, text, w/12, h-h/4)
	}
	if text := fieldText(data, fields, FieldExpiry); text != "" {
		ebitenutil.DebugPrintAt(img, text, w-w/4, h-h/4)
	}
	return img
}

func (r *CardRenderer) drawBackFace(data CardData, style Style, fields FieldSet) *ebiten.Image {
	img := ebiten.NewImage(r.Width, r.Height)
	img.Fill(style.Back.toRGBA())

	w := r.Width
	h := r.Height

	// Magnetic stripe and signature band.
	fillRect(img, 0, h/8, w, h/6, color.RGBA{R: 20, G: 20, B: 24, A: 255})
	fillRect(img, w/12, h/2, w/2, h/10, color.RGBA{R: 235, G: 235, B: 235, A: 255})

	if text := fieldText(data, fields, FieldSecurityCode); text != "" {
		ebitenutil.DebugPrintAt(img, text, w/12+w/2+8, h/2)
	}
	return img
}

// fillRect fills an axis-aligned rectangle on dst via a subimage view.
func fillRect(dst *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	dst.SubImage(image.Rect(x, y, x+w, y+h)).(*ebiten.Image).Fill(clr)
}
