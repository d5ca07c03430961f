package object

// Sprite is a monochrome pixel mask. Frontends scale it to the entity rect.
type Sprite struct {
	Name   string
	Width  int
	Height int
	pixels []bool
}

// NewSprite builds a sprite from rows where '#' marks a set pixel.
// All rows must have the same length.
func NewSprite(name string, rows []string) *Sprite {
	s := &Sprite{Name: name, Height: len(rows)}
	if len(rows) > 0 {
		s.Width = len(rows[0])
	}
	s.pixels = make([]bool, s.Width*s.Height)
	for y, row := range rows {
		for x := 0; x < len(row) && x < s.Width; x++ {
			s.pixels[y*s.Width+x] = row[x] == '#'
		}
	}
	return s
}

// At reports whether the pixel at (x, y) is set.
func (s *Sprite) At(x, y int) bool {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return false
	}
	return s.pixels[y*s.Width+x]
}

// SampleAt maps a point inside a w×h rectangle to the sprite mask.
func (s *Sprite) SampleAt(px, py, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	return s.At(px*s.Width/w, py*s.Height/h)
}

// ShipSprite is the player's ship.
var ShipSprite = NewSprite("ship", []string{
	"......##......",
	".....####.....",
	".....####.....",
	"....######....",
	"..##########..",
	".############.",
	"##############",
	"####..##..####",
	"###........###",
})

// AlienSprite is a fleet member.
var AlienSprite = NewSprite("alien", []string{
	"..#.....#..",
	"...#...#...",
	"..#######..",
	".##.###.##.",
	"###########",
	"#.#######.#",
	"#.#.....#.#",
	"...##.##...",
})
