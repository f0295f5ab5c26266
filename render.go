package multitouch

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// circleSegments is the number of triangles used to draw a circle node.
const circleSegments = 32

// whiteImage is a 3x3 white image; drawing from its center pixel avoids
// sampling the transparent border.
var whiteImage *ebiten.Image

func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(ColorWhite.toRGBA(1))
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Draw renders the visible nodes of the scene onto screen in painter order
// (DFS, ZIndex-sorted): rect nodes as filled rectangles, circle nodes as
// filled circles, polygon nodes as filled convex polygons. All geometry goes out in one DrawTriangles32 call.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA(1))
	}
	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
	s.view = s.viewMatrix()
	s.appendNode(s.root)
	if len(s.inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	screen.DrawTriangles32(s.verts, s.inds, whiteSubImage(), &op)
}

func (s *Scene) appendNode(n *Node) {
	if !n.Visible {
		return
	}
	switch n.Type {
	case NodeTypeRect:
		s.appendRect(n)
	case NodeTypeCircle:
		s.appendCircle(n)
	case NodeTypePolygon:
		s.appendPolygon(n)
	}
	for _, child := range sortedChildrenOf(n) {
		s.appendNode(child)
	}
}

func (s *Scene) appendRect(n *Node) {
	base := uint32(len(s.verts))
	lx := [4]float64{0, n.Width, 0, n.Width}
	ly := [4]float64{0, 0, n.Height, n.Height}
	for i := 0; i < 4; i++ {
		s.verts = append(s.verts, nodeVertex(s.view, n, lx[i], ly[i]))
	}
	// Two triangles: TL-TR-BL, TR-BR-BL
	s.inds = append(s.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

func (s *Scene) appendCircle(n *Node) {
	rx, ry := n.Width/2, n.Height/2
	center := uint32(len(s.verts))
	s.verts = append(s.verts, nodeVertex(s.view, n, rx, ry))
	for i := 0; i < circleSegments; i++ {
		theta := 2 * math.Pi * float64(i) / circleSegments
		s.verts = append(s.verts, nodeVertex(s.view, n, rx+rx*math.Cos(theta), ry+ry*math.Sin(theta)))
	}
	for i := uint32(0); i < circleSegments; i++ {
		next := (i+1)%circleSegments + 1
		s.inds = append(s.inds, center, center+i+1, center+next)
	}
}

// appendPolygon fans triangles out from the first point; the outline must
// be convex.
func (s *Scene) appendPolygon(n *Node) {
	poly, ok := n.HitShape.(HitPolygon)
	if !ok || len(poly.Points) < 3 {
		return
	}
	base := uint32(len(s.verts))
	for _, p := range poly.Points {
		s.verts = append(s.verts, nodeVertex(s.view, n, p.X, p.Y))
	}
	for i := uint32(1); i+1 < uint32(len(poly.Points)); i++ {
		s.inds = append(s.inds, base, base+i, base+i+1)
	}
}

// nodeVertex maps a local point of n through view to a screen vertex
// carrying n's premultiplied color scaled by its inherited alpha.
func nodeVertex(view [6]float64, n *Node, lx, ly float64) ebiten.Vertex {
	wx, wy := n.LocalToWorld(lx, ly)
	sx, sy := transformPoint(view, wx, wy)
	a := float32(clamp01(n.Color.A * n.worldAlpha))
	return ebiten.Vertex{
		DstX:   float32(sx),
		DstY:   float32(sy),
		SrcX:   1.5,
		SrcY:   1.5,
		ColorR: float32(clamp01(n.Color.R)) * a,
		ColorG: float32(clamp01(n.Color.G)) * a,
		ColorB: float32(clamp01(n.Color.B)) * a,
		ColorA: a,
	}
}
