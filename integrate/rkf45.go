// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrate implements the embedded Runge-Kutta-Fehlberg 4(5)
// integrator, its two step controllers, and the bounded evolution buffer
//.
package integrate

// VecFunc is a right-hand side ẋ = F(t, x) over a fixed 4-component
// vector. It is deliberately untyped (a plain array, not orbit.State) so
// the same Fehlberg stage machinery serves both the main (θ, ψp, ρ∥, ζ)
// integration and the event layer's independent-variable swap, whose
// vector has a different component meaning.
type VecFunc func(t float64, y [4]float64) ([4]float64, error)

// Fehlberg's classical RKF4(5) tableau (Fehlberg, 1969). c are the stage
// abscissae, a the stage coupling coefficients, b4/b5 the 4th- and
// 5th-order weight vectors.
var (
	fehlbergC = [6]float64{0, 1.0 / 4, 3.0 / 8, 12.0 / 13, 1, 1.0 / 2}

	fehlbergA = [6][5]float64{
		{},
		{1.0 / 4},
		{3.0 / 32, 9.0 / 32},
		{1932.0 / 2197, -7200.0 / 2197, 7296.0 / 2197},
		{439.0 / 216, -8, 3680.0 / 513, -845.0 / 4104},
		{-8.0 / 27, 2, -3544.0 / 2565, 1859.0 / 4104, -11.0 / 40},
	}

	fehlbergB4 = [6]float64{25.0 / 216, 0, 1408.0 / 2565, 2197.0 / 4104, -1.0 / 5, 0}
	fehlbergB5 = [6]float64{16.0 / 135, 0, 6656.0 / 12825, 28561.0 / 56430, -9.0 / 50, 2.0 / 55}
)

func addScaled(y, k [4]float64, scale float64) [4]float64 {
	var out [4]float64
	for i := range y {
		out[i] = y[i] + scale*k[i]
	}
	return out
}

// Stage evaluates the six Fehlberg stages of f at (t, y, h) and returns
// the resulting 4th- and 5th-order estimates. Exported so the event
// layer's Hénon-trick step can drive the same tableau over its own
// swapped vector.
func Stage(f VecFunc, t, h float64, y [4]float64) (y4, y5 [4]float64, err error) {
	var k [6][4]float64

	for i := 0; i < 6; i++ {
		yi := y
		for j := 0; j < i; j++ {
			yi = addScaled(yi, k[j], h*fehlbergA[i][j])
		}
		k[i], err = f(t+fehlbergC[i]*h, yi)
		if err != nil {
			return [4]float64{}, [4]float64{}, err
		}
	}

	y4, y5 = y, y
	for i := 0; i < 6; i++ {
		y4 = addScaled(y4, k[i], h*fehlbergB4[i])
		y5 = addScaled(y5, k[i], h*fehlbergB5[i])
	}
	return y4, y5, nil
}
