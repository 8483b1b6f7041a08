// pkg/render/engo/assets.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
)

// Palette holds the colours sprites are drawn with
type Palette struct {
	Ship      color.Color
	Flare     color.Color
	Bullet    color.Color
	Asteroid  color.Color
	Explosion color.Color
	Text      color.Color
}

// DefaultPalette returns white vector shapes with an orange flare
func DefaultPalette() Palette {
	return Palette{
		Ship:      color.RGBA{255, 255, 255, 255},
		Flare:     color.RGBA{255, 160, 32, 255},
		Bullet:    color.RGBA{255, 255, 255, 255},
		Asteroid:  color.RGBA{200, 200, 200, 255},
		Explosion: color.RGBA{255, 220, 120, 255},
		Text:      color.RGBA{255, 255, 255, 255},
	}
}

// Ship outline in ship units, nose along +x. Drawn into a square sprite
// spanning -shipExtent..shipExtent on both axes.
var (
	shipNose  = engo.Point{X: 10, Y: 0}
	shipOuter = [4]engo.Point{{X: -10, Y: -5}, {X: -8, Y: -2.5}, {X: -8, Y: 2.5}, {X: -10, Y: 5}}
	flareTri  = [3]engo.Point{{X: -8, Y: 1.5}, {X: -12, Y: 0}, {X: -8, Y: -1.5}}
)

const shipExtent = 12

// AssetManager builds and caches the shapes sprites are drawn with.
// Shapes are expressed in the unit square of their sprite.
type AssetManager struct {
	ship      common.ComplexTriangles
	flare     common.ComplexTriangles
	asteroids map[int]common.ComplexTriangles
}

// NewAssetManager creates the ship shapes up front; asteroid outlines
// are built on first use
func NewAssetManager() *AssetManager {
	am := &AssetManager{asteroids: make(map[int]common.ComplexTriangles)}

	var ship []engo.Point
	for i := 0; i+1 < len(shipOuter); i++ {
		ship = append(ship, unitShip(shipNose), unitShip(shipOuter[i]), unitShip(shipOuter[i+1]))
	}
	am.ship = common.ComplexTriangles{Points: ship}
	am.flare = common.ComplexTriangles{Points: []engo.Point{
		unitShip(flareTri[0]), unitShip(flareTri[1]), unitShip(flareTri[2]),
	}}
	return am
}

// unitShip maps ship units into the sprite's unit square
func unitShip(p engo.Point) engo.Point {
	return engo.Point{
		X: (p.X + shipExtent) / (2 * shipExtent),
		Y: (p.Y + shipExtent) / (2 * shipExtent),
	}
}

// Ship returns the ship hull
func (am *AssetManager) Ship() common.ComplexTriangles {
	return am.ship
}

// Flare returns the exhaust drawn behind a thrusting ship
func (am *AssetManager) Flare() common.ComplexTriangles {
	return am.flare
}

// Asteroid returns a regular polygon with style sides, fanned from its
// centre like the collision triangles
func (am *AssetManager) Asteroid(style int) common.ComplexTriangles {
	if shape, ok := am.asteroids[style]; ok {
		return shape
	}

	step := 2 * math.Pi / float64(style)
	vertex := func(i int) engo.Point {
		sin, cos := math.Sincos(step * float64(i))
		return engo.Point{X: float32(0.5 + 0.5*cos), Y: float32(0.5 + 0.5*sin)}
	}
	centre := engo.Point{X: 0.5, Y: 0.5}
	points := make([]engo.Point, 0, 3*style)
	for i := 0; i < style; i++ {
		points = append(points, centre, vertex(i), vertex((i+1)%style))
	}

	shape := common.ComplexTriangles{Points: points}
	am.asteroids[style] = shape
	return shape
}
