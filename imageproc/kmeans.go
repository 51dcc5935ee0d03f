package imageproc

import (
	"image"
	"math"
	"math/rand"
	"sort"

	"github.com/disintegration/imaging"

	ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"
)

const (
	dominantColorCount = 5
	kmeansSampleSide   = 150
	kmeansAttempts     = 10
	kmeansMaxIter      = 20
	kmeansEpsilon      = 1.0
	kmeansSeed         = 42
)

type rgb [3]float64

func (a rgb) dist2(b rgb) float64 {
	d0, d1, d2 := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return d0*d0 + d1*d1 + d2*d2
}

// dominantColors clusters the pixels of a 150x150 downsample into at most
// five colors, most frequent first. Frequencies count downsampled pixels.
func dominantColors(img *image.NRGBA) []ds.DominantColor {
	small := imaging.Resize(img, kmeansSampleSide, kmeansSampleSide, imaging.Linear)
	b := small.Bounds()

	points := make([]rgb, 0, b.Dx()*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := small.Pix[y*small.Stride:]
		for x := 0; x < b.Dx(); x++ {
			points = append(points, rgb{float64(row[x*4]), float64(row[x*4+1]), float64(row[x*4+2])})
		}
	}

	rng := rand.New(rand.NewSource(kmeansSeed))
	centers, labels := kmeans(points, dominantColorCount, rng)

	counts := make([]int, len(centers))
	for _, l := range labels {
		counts[l]++
	}

	colors := make([]ds.DominantColor, 0, len(centers))
	for i, c := range centers {
		if counts[i] == 0 {
			continue
		}
		colors = append(colors, ds.DominantColor{RGB: c, Frequency: counts[i]})
	}
	sort.SliceStable(colors, func(a, b int) bool {
		return colors[a].Frequency > colors[b].Frequency
	})
	return colors
}

// kmeans runs Lloyd's algorithm kmeansAttempts times from random centers
// drawn inside the bounding box of points and keeps the most compact run.
// Each run stops after kmeansMaxIter iterations or once no center moves
// further than kmeansEpsilon.
func kmeans(points []rgb, k int, rng *rand.Rand) ([]rgb, []int) {
	if k > len(points) {
		k = len(points)
	}
	if k == 0 {
		return nil, nil
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		for d := 0; d < 3; d++ {
			lo[d] = math.Min(lo[d], p[d])
			hi[d] = math.Max(hi[d], p[d])
		}
	}

	labels := make([]int, len(points))
	best := math.Inf(1)
	var bestCenters []rgb
	var bestLabels []int

	for attempt := 0; attempt < kmeansAttempts; attempt++ {
		centers := make([]rgb, k)
		for i := range centers {
			for d := 0; d < 3; d++ {
				centers[i][d] = lo[d] + rng.Float64()*(hi[d]-lo[d])
			}
		}

		for iter := 0; iter < kmeansMaxIter; iter++ {
			assign(points, centers, labels)
			shift := recenter(points, centers, labels)
			if shift <= kmeansEpsilon*kmeansEpsilon {
				break
			}
		}

		compactness := assign(points, centers, labels)
		if compactness < best {
			best = compactness
			bestCenters = append([]rgb(nil), centers...)
			bestLabels = append([]int(nil), labels...)
		}
	}
	return bestCenters, bestLabels
}

// assign labels every point with its nearest center and returns the sum of
// squared distances.
func assign(points, centers []rgb, labels []int) float64 {
	var total float64
	for i, p := range points {
		bi, bd := 0, p.dist2(centers[0])
		for c := 1; c < len(centers); c++ {
			if d := p.dist2(centers[c]); d < bd {
				bi, bd = c, d
			}
		}
		labels[i] = bi
		total += bd
	}
	return total
}

// recenter moves every center to the mean of its points and returns the
// largest squared move. An empty cluster takes the point of the largest
// cluster that lies farthest from its center.
func recenter(points, centers []rgb, labels []int) float64 {
	k := len(centers)
	sums := make([]rgb, k)
	counts := make([]int, k)
	for i, p := range points {
		l := labels[i]
		counts[l]++
		for d := 0; d < 3; d++ {
			sums[l][d] += p[d]
		}
	}

	for c := 0; c < k; c++ {
		if counts[c] != 0 {
			continue
		}
		largest := 0
		for j := 1; j < k; j++ {
			if counts[j] > counts[largest] {
				largest = j
			}
		}
		if counts[largest] <= 1 {
			continue
		}
		far, farDist := -1, -1.0
		for i, p := range points {
			if labels[i] != largest {
				continue
			}
			if d := p.dist2(centers[largest]); d > farDist {
				far, farDist = i, d
			}
		}
		p := points[far]
		for d := 0; d < 3; d++ {
			sums[largest][d] -= p[d]
			sums[c][d] += p[d]
		}
		counts[largest]--
		counts[c]++
		labels[far] = c
	}

	var shift float64
	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			continue
		}
		next := rgb{sums[c][0] / float64(counts[c]), sums[c][1] / float64(counts[c]), sums[c][2] / float64(counts[c])}
		shift = math.Max(shift, next.dist2(centers[c]))
		centers[c] = next
	}
	return shift
}
