package pocketcube

import "fmt"

// Color represents a sticker color.
type Color byte

const (
	Green  Color = 0 // Front face when solved
	Red    Color = 1 // Right face when solved
	Blue   Color = 2 // Back face when solved
	Orange Color = 3 // Left face when solved
	White  Color = 4 // Top face when solved
	Yellow Color = 5 // Bottom face when solved
)

func (c Color) String() string {
	switch c {
	case Green:
		return "G"
	case Red:
		return "R"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case White:
		return "W"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Face represents a cube face.
type Face int

const (
	FaceFront  Face = 0
	FaceRight  Face = 1
	FaceBack   Face = 2
	FaceLeft   Face = 3
	FaceTop    Face = 4
	FaceBottom Face = 5
)

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceRight:
		return "right"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	default:
		return "?"
	}
}

// NumFacelets is the total sticker count: six faces of four stickers each.
const NumFacelets = 24

// Cube is one configuration of a 2x2 pocket cube: a color for each of the
// 24 facelets. Faces occupy four consecutive indices in the order front,
// right, back, left, top, bottom, laid out as:
//
//	(16,17)
//	(19,18)
//	   |
//	( 0, 1) _ ( 4, 5) _ ( 8, 9) _ (12,13)
//	( 3, 2)   ( 7, 6)   (11,10)   (15,14)
//	   |
//	(20,21)
//	(23,22)
//
// A Cube is immutable once created. Cubes produced by Transform keep a
// reference to the configuration they came from and the move that produced
// them, which is how search results carry their solution path. The parent
// link is provenance only: it takes no part in Equal or Hash.
type Cube struct {
	facelets   [NumFacelets]Color
	parent     *Cube
	parentMove Move
}

// New creates a solved cube: all four stickers of face k hold color k.
func New() *Cube {
	c := &Cube{}
	for i := range c.facelets {
		c.facelets[i] = Color(i / 4)
	}
	return c
}

// Root creates a copy of c with no move history, used to seed search roots
// from an existing configuration.
func Root(c *Cube) *Cube {
	return &Cube{facelets: c.facelets}
}

// Transform returns the configuration reached by applying move m to c, with
// c recorded as its parent. The move index must be one of the six defined
// moves; anything else is a programming error and panics.
func (c *Cube) Transform(m Move) *Cube {
	if !m.Valid() {
		panic(fmt.Sprintf("pocketcube: invalid move index %d", int(m)))
	}
	child := &Cube{parent: c, parentMove: m}
	perm := &transforms[m]
	for i := range child.facelets {
		child.facelets[i] = c.facelets[perm[i]]
	}
	return child
}

// Equal reports whether c and o are the same configuration, comparing
// facelets element-wise. Ancestry is ignored.
func (c *Cube) Equal(o *Cube) bool {
	return c.facelets == o.facelets
}

// Distance counts the facelet positions where c and o differ, in [0, 24].
// It is the heuristic used by the greedy search strategy. Note that it is
// not a move-count distance: one quarter-turn already changes 12 stickers.
func (c *Cube) Distance(o *Cube) int {
	d := 0
	for i := range c.facelets {
		if c.facelets[i] != o.facelets[i] {
			d++
		}
	}
	return d
}

// Facelets returns the facelet array in documented index order.
func (c *Cube) Facelets() [NumFacelets]Color {
	return c.facelets
}

// Parent returns the configuration this cube was derived from and the move
// that produced it. ok is false for search roots and freshly built cubes.
func (c *Cube) Parent() (parent *Cube, move Move, ok bool) {
	if c.parent == nil {
		return nil, 0, false
	}
	return c.parent, c.parentMove, true
}

// IsSolved reports whether the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	return c.Equal(solved)
}

// solved is the canonical goal configuration shared by IsSolved.
var solved = New()

// String returns the unfolded 2D text layout of the cube, with the top face
// above the front, the bottom below it, and front/right/back/left in a row.
func (c *Cube) String() string {
	f := &c.facelets
	return fmt.Sprintf(
		"(%v,%v)\n(%v,%v)\n  |\n(%v,%v) _ (%v,%v) _ (%v,%v) _ (%v,%v)\n(%v,%v)   (%v,%v)   (%v,%v)   (%v,%v)\n  |\n(%v,%v)\n(%v,%v)\n",
		f[16], f[17],
		f[19], f[18],
		f[0], f[1], f[4], f[5], f[8], f[9], f[12], f[13],
		f[3], f[2], f[7], f[6], f[11], f[10], f[15], f[14],
		f[20], f[21],
		f[23], f[22],
	)
}
