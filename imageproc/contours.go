package imageproc

import (
	"math"

	log "github.com/sirupsen/logrus"
	simplifier "github.com/yrsh/simplify-go"

	ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"
)

// approxEpsilon is the Douglas-Peucker tolerance relative to the contour perimeter.
const approxEpsilon = 0.02

type point struct{ x, y int }

// Moore neighbourhood in clockwise order (y grows downwards), starting west.
var moore = [8]point{{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}}

type contour struct {
	points     []point
	minX, minY int
	maxX, maxY int
}

// ExtractShape describes the largest outer contour of the Canny edge map.
// It reports false when the image has no edges.
func ExtractShape(img *DecodedImage) (ds.ShapeFeatures, bool) {
	contours := externalContours(img.Edges(), img.Width(), img.Height())
	if len(contours) == 0 {
		return ds.ShapeFeatures{}, false
	}

	largest, largestArea := 0, -1.0
	for i, c := range contours {
		if a := polygonArea(c.points); a > largestArea {
			largest, largestArea = i, a
		}
	}

	c := contours[largest].points
	perimeter := polygonPerimeter(c)
	features := ds.ShapeFeatures{
		Area:         largestArea,
		Vertices:     approxVertices(c, perimeter),
		ContourCount: len(contours),
	}
	if perimeter > 0 {
		features.Circularity = 4 * math.Pi * largestArea / (perimeter * perimeter)
	}

	log.Debug("[Shape] Extracted shape features: contours=", features.ContourCount, " vertices=", features.Vertices)
	return features, true
}

// externalContours traces the outer boundary of every 8-connected edge
// component, skipping components that lie inside the boundary of one found
// earlier. Boundaries are compressed to their direction changes.
func externalContours(edges []bool, w, h int) []contour {
	visited := make([]bool, len(edges))
	var contours []contour

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if !edges[i] || visited[i] {
				continue
			}
			markComponent(edges, visited, w, h, i)

			start := point{x, y}
			nested := false
			for _, c := range contours {
				if c.encloses(start) {
					nested = true
					break
				}
			}
			if nested {
				continue
			}
			contours = append(contours, newContour(compressChain(traceBoundary(edges, w, h, start))))
		}
	}
	return contours
}

func markComponent(edges, visited []bool, w, h, seed int) {
	stack := []int{seed}
	visited[seed] = true
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w
		for _, d := range moore {
			nx, ny := x+d.x, y+d.y
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			j := ny*w + nx
			if edges[j] && !visited[j] {
				visited[j] = true
				stack = append(stack, j)
			}
		}
	}
}

// traceBoundary follows the outer boundary of the component containing
// start, which must be its first pixel in raster order. Tracing stops when
// the walk re-enters start with the same move it first left by.
func traceBoundary(edges []bool, w, h int, start point) []point {
	isEdge := func(p point) bool {
		return p.x >= 0 && p.y >= 0 && p.x < w && p.y < h && edges[p.y*w+p.x]
	}

	boundary := []point{start}
	p := start
	back := 0
	var first point
	moved := false

	for steps := 0; steps < 4*len(edges); steps++ {
		dir := -1
		for i := 1; i <= 8; i++ {
			d := (back + i) % 8
			if isEdge(point{p.x + moore[d].x, p.y + moore[d].y}) {
				dir = d
				break
			}
		}
		if dir < 0 {
			break
		}
		q := point{p.x + moore[dir].x, p.y + moore[dir].y}
		if !moved {
			first, moved = q, true
		} else if p == start && q == first {
			break
		}
		if dir%2 == 0 {
			back = (dir + 6) % 8
		} else {
			back = (dir + 5) % 8
		}
		p = q
		boundary = append(boundary, p)
	}

	if n := len(boundary); n > 1 && boundary[n-1] == start {
		boundary = boundary[:n-1]
	}
	return boundary
}

// compressChain keeps only the points where a closed chain changes direction.
func compressChain(chain []point) []point {
	n := len(chain)
	if n <= 2 {
		return chain
	}
	out := make([]point, 0, n)
	for i, p := range chain {
		prev := chain[(i+n-1)%n]
		next := chain[(i+1)%n]
		in := point{p.x - prev.x, p.y - prev.y}
		outd := point{next.x - p.x, next.y - p.y}
		if in != outd {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return chain[:1]
	}
	return out
}

func newContour(points []point) contour {
	c := contour{points: points, minX: points[0].x, maxX: points[0].x, minY: points[0].y, maxY: points[0].y}
	for _, p := range points[1:] {
		c.minX = min(c.minX, p.x)
		c.maxX = max(c.maxX, p.x)
		c.minY = min(c.minY, p.y)
		c.maxY = max(c.maxY, p.y)
	}
	return c
}

// encloses reports whether p lies strictly inside the contour polygon.
func (c contour) encloses(p point) bool {
	if len(c.points) < 3 || p.x <= c.minX || p.x >= c.maxX || p.y <= c.minY || p.y >= c.maxY {
		return false
	}
	inside := false
	px, py := float64(p.x), float64(p.y)
	n := len(c.points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := c.points[i], c.points[j]
		ay, by := float64(a.y), float64(b.y)
		if (ay > py) != (by > py) {
			xCross := float64(a.x) + (py-ay)*float64(b.x-a.x)/(by-ay)
			if px < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

func polygonArea(pts []point) float64 {
	var s int
	n := len(pts)
	for i := range pts {
		j := (i + 1) % n
		s += pts[i].x*pts[j].y - pts[j].x*pts[i].y
	}
	return math.Abs(float64(s)) / 2
}

func polygonPerimeter(pts []point) float64 {
	if len(pts) < 2 {
		return 0
	}
	var total float64
	n := len(pts)
	for i := range pts {
		j := (i + 1) % n
		total += math.Hypot(float64(pts[j].x-pts[i].x), float64(pts[j].y-pts[i].y))
	}
	return total
}

// approxVertices counts the vertices of the closed Douglas-Peucker
// approximation of pts.
func approxVertices(pts []point, perimeter float64) int {
	closed := make([][]float64, 0, len(pts)+1)
	for _, p := range pts {
		closed = append(closed, []float64{float64(p.x), float64(p.y)})
	}
	closed = append(closed, closed[0])

	approx := simplifier.Simplify(closed, approxEpsilon*perimeter, true)
	if v := len(approx) - 1; v >= 1 {
		return v
	}
	return 1
}
