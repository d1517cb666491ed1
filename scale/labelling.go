// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on the gonum/plot labelling as carried in cogentcore plot:
// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is an implementation of the Talbot, Lin and Hanrahan algorithm
// described in doi:10.1109/TVCG.2010.130.

package scale

import "math"

const (
	// dlamchP is base * machine epsilon for IEEE float64.
	dlamchP = 2.0 / (1 << 53)

	// labelEps is the tolerance used when comparing label positions.
	labelEps = dlamchP * 100
)

// containment constrains the relation between labels and data.
type containment int

const (
	// free indicates no restriction on label containment.
	free containment = iota

	// containData requires [lMin, lMax] to cover all the data.
	containData

	// withinData requires all labels to lie within [dMin, dMax].
	withinData
)

// niceQ are the preferred step multipliers, in order of preference.
var niceQ = []float64{1, 5, 2, 2.5, 4, 3}

// weights combines the four sub-scores of a labelling.
type weights struct {
	simplicity, coverage, density, legibility float64
}

var defaultWeights = weights{simplicity: 0.25, coverage: 0.2, density: 0.5, legibility: 0.05}

func (w *weights) score(s, c, d, l float64) float64 {
	return w.simplicity*s + w.coverage*c + w.density*d + w.legibility*l
}

// talbotLinHanrahan returns about want nice label values for the data
// range [dMin, dMax], subject to the given containment.
// dMin must not be greater than dMax.
func talbotLinHanrahan(dMin, dMax float64, want int, cont containment) []float64 {
	if dMin > dMax {
		panic("scale: invalid data range: min greater than max")
	}
	if want < 2 {
		want = 2
	}
	w := &defaultWeights

	if r := dMax - dMin; r < labelEps {
		l := make([]float64, want)
		step := r / float64(want-1)
		for i := range l {
			l[i] = dMin + float64(i)*step
		}
		return l
	}

	type selection struct {
		n                int
		lMin, lMax, step float64
		score            float64
	}
	best := selection{score: -2}

outer:
	for skip := 1; ; skip++ {
		for _, q := range niceQ {
			sm := maxSimplicity(q, skip)
			if w.score(sm, 1, 1, 1) < best.score {
				break outer
			}

			for have := 2; ; have++ {
				dm := maxDensity(have, want)
				if w.score(sm, 1, dm, 1) < best.score {
					break
				}

				delta := (dMax - dMin) / float64(have+1) / float64(skip) / q

				const maxExp = 309
				for mag := int(math.Ceil(math.Log10(delta))); mag < maxExp; mag++ {
					step := float64(skip) * q * math.Pow10(mag)

					cm := maxCoverage(dMin, dMax, step*float64(have-1))
					if w.score(sm, cm, dm, 1) < best.score {
						break
					}

					fracStep := step / float64(skip)
					kStep := step * float64(have-1)

					minStart := (math.Floor(dMax/step) - float64(have-1)) * float64(skip)
					maxStart := math.Ceil(dMax/step) * float64(skip)
					for start := minStart; start <= maxStart && start != start-1; start++ {
						lMin := start * fracStep
						lMax := lMin + kStep

						switch cont {
						case containData:
							if dMin < lMin || lMax < dMax {
								continue
							}
						case withinData:
							if lMin < dMin || dMax < lMax {
								continue
							}
						}

						score := w.score(
							simplicity(q, skip, lMin, lMax, step),
							coverage(dMin, dMax, lMin, lMax),
							density(have, want, dMin, dMax, lMin, lMax),
							1,
						)
						if score > best.score {
							best = selection{n: have, lMin: lMin, lMax: lMax, step: step, score: score}
						}
					}
				}
			}
		}
	}

	if best.score == -2 {
		l := make([]float64, want)
		step := (dMax - dMin) / float64(want-1)
		for i := range l {
			l[i] = dMin + float64(i)*step
		}
		return l
	}

	l := make([]float64, best.n)
	for i := range l {
		l[i] = best.lMin + float64(i)*best.step
	}
	return l
}

func qIndex(q float64) int {
	for i, v := range niceQ {
		if v == q {
			return i
		}
	}
	panic("scale: invalid q for Q")
}

// simplicity scores how nice the step multiplier q is, with a bonus
// when zero is one of the labels.
func simplicity(q float64, skip int, lMin, lMax, lStep float64) float64 {
	i := qIndex(q)
	m := math.Mod(lMin, lStep)
	v := 0.0
	if (m < labelEps || lStep-m < labelEps) && lMin <= 0 && 0 <= lMax {
		v = 1
	}
	return 1 - float64(i)/float64(len(niceQ)-1) - float64(skip) + v
}

func maxSimplicity(q float64, skip int) float64 {
	i := qIndex(q)
	return 1 - float64(i)/float64(len(niceQ)-1) - float64(skip) + 1
}

// coverage penalizes labels extending beyond the data.
func coverage(dMin, dMax, lMin, lMax float64) float64 {
	r := 0.1 * (dMax - dMin)
	mx := dMax - lMax
	mn := dMin - lMin
	return 1 - 0.5*(mx*mx+mn*mn)/(r*r)
}

func maxCoverage(dMin, dMax, span float64) float64 {
	r := dMax - dMin
	if span <= r {
		return 1
	}
	h := 0.5 * (span - r)
	r *= 0.1
	return 1 - (h*h)/(r*r)
}

// density compares the label density with the wanted density.
func density(have, want int, dMin, dMax, lMin, lMax float64) float64 {
	rho := float64(have-1) / (lMax - lMin)
	rhot := float64(want-1) / (math.Max(lMax, dMax) - math.Min(dMin, lMin))
	if d := rho / rhot; d >= 1 {
		return 2 - d
	}
	return 2 - rhot/rho
}

func maxDensity(have, want int) float64 {
	if have < want {
		return 1
	}
	return 2 - float64(have-1)/float64(want-1)
}
