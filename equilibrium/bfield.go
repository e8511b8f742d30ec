// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import "github.com/George-Tsiamasiotis/poincare-maps/spline"

// Bfield wraps b(ψp,θ), R(ψp,θ) and Z(ψp,θ). db_dpsip_data and
// db_dtheta_data, when the dataset supplies them, are interpolated by
// their own splines and take priority over differentiating the b
// spline; otherwise DBDpsip/DBDtheta fall back to differentiating b
// directly.
type Bfield struct {
	b, r, z      spline.Spline2D
	psip, theta  []float64
	dbDpsipData  [][]float64
	dbDthetaData [][]float64
	dbDpsipSpl   spline.Spline2D
	dbDthetaSpl  spline.Spline2D
}

// NewBfield builds the b, R, Z tensor-product splines from the dataset.
func NewBfield(d *Dataset, variant spline.Variant2D) (*Bfield, error) {
	b, err := spline.NewSpline2D(variant, d.PsipData, d.ThetaData, d.BData)
	if err != nil {
		return nil, err
	}
	r, err := spline.NewSpline2D(variant, d.PsipData, d.ThetaData, d.RData)
	if err != nil {
		return nil, err
	}
	z, err := spline.NewSpline2D(variant, d.PsipData, d.ThetaData, d.ZData)
	if err != nil {
		return nil, err
	}

	o := &Bfield{
		b: b, r: r, z: z,
		psip:  append([]float64(nil), d.PsipData...),
		theta: append([]float64(nil), d.ThetaData...),
	}

	if d.DBDpsipData != nil && d.DBDthetaData != nil {
		o.dbDpsipData = copyGrid(d.DBDpsipData)
		o.dbDthetaData = copyGrid(d.DBDthetaData)
		o.dbDpsipSpl, err = spline.NewSpline2D(variant, d.PsipData, d.ThetaData, o.dbDpsipData)
		if err != nil {
			return nil, err
		}
		o.dbDthetaSpl, err = spline.NewSpline2D(variant, d.PsipData, d.ThetaData, o.dbDthetaData)
		if err != nil {
			return nil, err
		}
	} else {
		accX, accY := spline.NewAccelerator(), spline.NewAccelerator()
		o.dbDpsipData = make([][]float64, len(o.psip))
		o.dbDthetaData = make([][]float64, len(o.psip))
		for i, p := range o.psip {
			o.dbDpsipData[i] = make([]float64, len(o.theta))
			o.dbDthetaData[i] = make([]float64, len(o.theta))
			for j, t := range o.theta {
				o.dbDpsipData[i][j] = b.DDx(p, t, accX, accY)
				o.dbDthetaData[i][j] = b.DDy(p, t, accX, accY)
			}
		}
	}
	return o, nil
}

func copyGrid(g [][]float64) [][]float64 {
	out := make([][]float64, len(g))
	for i, row := range g {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// B evaluates b(ψp,θ).
func (o *Bfield) B(psip, theta float64, accPsip, accTheta *spline.Accelerator) float64 {
	return o.b.Eval(psip, theta, accPsip, accTheta)
}

// DBDpsip evaluates db/dψp, preferring the file-supplied db_dpsip_data
// spline when present and otherwise differentiating b directly.
func (o *Bfield) DBDpsip(psip, theta float64, accPsip, accTheta *spline.Accelerator) float64 {
	if o.dbDpsipSpl != nil {
		return o.dbDpsipSpl.Eval(psip, theta, accPsip, accTheta)
	}
	return o.b.DDx(psip, theta, accPsip, accTheta)
}

// DBDtheta evaluates db/dθ, preferring the file-supplied db_dtheta_data
// spline when present and otherwise differentiating b directly.
func (o *Bfield) DBDtheta(psip, theta float64, accPsip, accTheta *spline.Accelerator) float64 {
	if o.dbDthetaSpl != nil {
		return o.dbDthetaSpl.Eval(psip, theta, accPsip, accTheta)
	}
	return o.b.DDy(psip, theta, accPsip, accTheta)
}

// D2BDpsip2 evaluates d²b/dψp².
func (o *Bfield) D2BDpsip2(psip, theta float64, accPsip, accTheta *spline.Accelerator) float64 {
	return o.b.D2Dx2(psip, theta, accPsip, accTheta)
}

// D2BDtheta2 evaluates d²b/dθ².
func (o *Bfield) D2BDtheta2(psip, theta float64, accPsip, accTheta *spline.Accelerator) float64 {
	return o.b.D2Dy2(psip, theta, accPsip, accTheta)
}

// D2BDpsipDtheta evaluates the mixed partial d²b/(dψp dθ).
func (o *Bfield) D2BDpsipDtheta(psip, theta float64, accPsip, accTheta *spline.Accelerator) float64 {
	return o.b.D2DxDy(psip, theta, accPsip, accTheta)
}

// R evaluates R(ψp,θ), the major-radius map.
func (o *Bfield) R(psip, theta float64, accPsip, accTheta *spline.Accelerator) float64 {
	return o.r.Eval(psip, theta, accPsip, accTheta)
}

// DRDpsip evaluates dR/dψp.
func (o *Bfield) DRDpsip(psip, theta float64, accPsip, accTheta *spline.Accelerator) float64 {
	return o.r.DDx(psip, theta, accPsip, accTheta)
}

// DRDtheta evaluates dR/dθ.
func (o *Bfield) DRDtheta(psip, theta float64, accPsip, accTheta *spline.Accelerator) float64 {
	return o.r.DDy(psip, theta, accPsip, accTheta)
}

// Z evaluates Z(ψp,θ), the vertical-coordinate map.
func (o *Bfield) Z(psip, theta float64, accPsip, accTheta *spline.Accelerator) float64 {
	return o.z.Eval(psip, theta, accPsip, accTheta)
}

// DZDpsip evaluates dZ/dψp.
func (o *Bfield) DZDpsip(psip, theta float64, accPsip, accTheta *spline.Accelerator) float64 {
	return o.z.DDx(psip, theta, accPsip, accTheta)
}

// DZDtheta evaluates dZ/dθ.
func (o *Bfield) DZDtheta(psip, theta float64, accPsip, accTheta *spline.Accelerator) float64 {
	return o.z.DDy(psip, theta, accPsip, accTheta)
}

// DBDpsipData returns the (possibly file-supplied) db/dψp array on the
// (psip_data × theta_data) grid.
func (o *Bfield) DBDpsipData() [][]float64 { return o.dbDpsipData }

// DBDthetaData returns the (possibly file-supplied) db/dθ array on the
// (psip_data × theta_data) grid.
func (o *Bfield) DBDthetaData() [][]float64 { return o.dbDthetaData }
