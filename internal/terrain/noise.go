package terrain

import (
	"math"
	"math/rand"
)

// heightNoise is seeded 2D simplex noise, sampled along one row to give a
// 1D surface profile.
type heightNoise struct {
	perm [512]int
}

func newHeightNoise(rng *rand.Rand) *heightNoise {
	p := rng.Perm(256)
	n := &heightNoise{}
	for i := range n.perm {
		n.perm[i] = p[i&255]
	}
	return n
}

const (
	skew   = 0.3660254037844386  // (sqrt(3)-1)/2
	unskew = 0.21132486540518713 // (3-sqrt(3))/6
)

func gradient(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

func (n *heightNoise) corner(hash int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t <= 0 {
		return 0
	}
	t *= t
	return t * t * gradient(hash, x, y)
}

// at returns simplex noise at (x, y), roughly in [-1, 1].
func (n *heightNoise) at(x, y float64) float64 {
	s := (x + y) * skew
	i := math.Floor(x + s)
	j := math.Floor(y + s)
	t := (i + j) * unskew
	x0 := x - (i - t)
	y0 := y - (j - t)

	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}
	x1 := x0 - float64(i1) + unskew
	y1 := y0 - float64(j1) + unskew
	x2 := x0 - 1 + 2*unskew
	y2 := y0 - 1 + 2*unskew

	ii := int(i) & 255
	jj := int(j) & 255
	sum := n.corner(n.perm[ii+n.perm[jj]], x0, y0) +
		n.corner(n.perm[ii+i1+n.perm[jj+j1]], x1, y1) +
		n.corner(n.perm[ii+1+n.perm[jj+1]], x2, y2)
	return 70 * sum
}

// profile returns fractal noise at column x normalized to [0, 1].
func (n *heightNoise) profile(x, freq float64, octaves int) float64 {
	var total, norm float64
	amp := 1.0
	for o := 0; o < octaves; o++ {
		total += n.at(x*freq, 0.5) * amp
		norm += amp
		freq *= 2
		amp *= 0.5
	}
	v := (total/norm + 1) / 2
	return math.Max(0, math.Min(1, v))
}
