package imageproc

// tan(22.5°) in Q15 fixed point.
const tg22 = 13573

// canny runs Canny edge detection on a row-major luma plane: 3x3 Sobel
// gradients with a replicated border, L1 magnitude, non-maximum suppression
// along four quantized directions, then hysteresis over 8-connected
// neighbours. A pixel is a candidate when its magnitude exceeds low and a
// seed when it exceeds high.
func canny(gray []uint8, w, h int, low, high int) []bool {
	n := w * h
	dx := make([]int, n)
	dy := make([]int, n)
	mag := make([]int, n)

	at := func(x, y int) int {
		return int(gray[clamp(y, h)*w+clamp(x, w)])
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1)
			gy := at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1)
			i := y*w + x
			dx[i], dy[i] = gx, gy
			mag[i] = abs(gx) + abs(gy)
		}
	}

	magAt := func(x, y int) int {
		if x < 0 || y < 0 || x >= w || y >= h {
			return 0
		}
		return mag[y*w+x]
	}

	const (
		notEdge = iota
		weak
		strong
	)
	state := make([]uint8, n)
	stack := make([]int, 0, n/8)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			m := mag[i]
			if m <= low {
				continue
			}
			xs, ys := abs(dx[i]), abs(dy[i])<<15
			tg22x := xs * tg22

			var isMax bool
			switch {
			case ys < tg22x:
				isMax = m > magAt(x-1, y) && m >= magAt(x+1, y)
			case ys > tg22x+(xs<<16):
				isMax = m > magAt(x, y-1) && m >= magAt(x, y+1)
			default:
				s := 1
				if (dx[i] ^ dy[i]) < 0 {
					s = -1
				}
				isMax = m > magAt(x-s, y-1) && m > magAt(x+s, y+1)
			}
			if !isMax {
				continue
			}
			if m > high {
				state[i] = strong
				stack = append(stack, i)
			} else {
				state[i] = weak
			}
		}
	}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w
		for ny := y - 1; ny <= y+1; ny++ {
			for nx := x - 1; nx <= x+1; nx++ {
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				j := ny*w + nx
				if state[j] == weak {
					state[j] = strong
					stack = append(stack, j)
				}
			}
		}
	}

	edges := make([]bool, n)
	for i, s := range state {
		edges[i] = s == strong
	}
	return edges
}

// laplacianVariance is the population variance of the 4-neighbour Laplacian
// of a luma plane, with a reflect-101 border.
func laplacianVariance(gray []uint8, w, h int) float64 {
	at := func(x, y int) float64 {
		return float64(gray[reflect101(y, h)*w+reflect101(x, w)])
	}
	var sum, sumSq float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := at(x-1, y) + at(x+1, y) + at(x, y-1) + at(x, y+1) - 4*at(x, y)
			sum += v
			sumSq += v * v
		}
	}
	n := float64(w * h)
	mean := sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		return 0
	}
	return variance
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// reflect101 mirrors an out-of-range index without repeating the edge
// sample: -1 maps to 1, n maps to n-2.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		} else {
			i = 2*n - 2 - i
		}
	}
	return i
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
