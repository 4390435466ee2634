package physics

import (
	"math"

	"weldsim/material"
)

// Calibration constants for the pool shape model. These are empirical
// factors tuned against typical arc-weld pool sections, not derived values;
// they are kept exactly for output compatibility with earlier studies.
const (
	poolWidthFactor       = 2.5 // width per characteristic length
	poolElongationRatio   = 3.2 // length / width for a moving source
	thickPlatePenFactor   = 0.8 // penetration per characteristic length, 3D conduction
	thinPlatePenFactor    = 0.6 // penetration per characteristic length, 2D conduction
	thinPlateDepthLimit   = 0.9 // max penetration fraction of a thin plate
	reinforcementCapMM    = 3.0 // assumed cap height for the dilution ratio, mm
	thickPlateWidthFactor = 3.0 // plate counts as thick above this multiple of the width
)

// Pool is the estimated weld-pool geometry. Lengths are mm, the volume is
// mm³, ratios are dimensionless.
type Pool struct {
	Width                float64 `json:"width"`
	Length               float64 `json:"length"`
	Penetration          float64 `json:"penetration"`
	AspectRatio          float64 `json:"aspect_ratio"`
	DilutionRatio        float64 `json:"dilution_ratio"`
	Volume               float64 `json:"volume"`
	HeatInput            float64 `json:"heat_input"`
	CharacteristicLength float64 `json:"characteristic_length"`
}

// PoolGeometry estimates the weld-pool dimensions for the given heat input
// (J/mm), material and plate thickness (mm), using the steady-state
// point-source melting isotherm plus the empirical factors above.
func PoolGeometry(heatInputJmm float64, props material.Properties, plateThickness float64) (Pool, error) {
	if err := requirePositive("heat_input", heatInputJmm); err != nil {
		return Pool{}, err
	}
	if err := requirePositive("plate_thickness", plateThickness); err != nil {
		return Pool{}, err
	}
	if err := validateMaterial(props); err != nil {
		return Pool{}, err
	}
	return poolGeometry(heatInputJmm, props, plateThickness), nil
}

func poolGeometry(heatInputJmm float64, props material.Properties, plateThickness float64) Pool {
	k := props.ThermalConductivity

	q := heatInputJmm * 1000 // J/mm -> J/m
	deltaT := props.LiquidusTemp - material.RoomTemperature

	// Characteristic length of the melting isotherm around a steady point
	// source, in meters.
	lc := q / (2 * math.Pi * k * deltaT)

	width := poolWidthFactor * lc * 1000 // mm

	// The elongation is applied to the raw width; the plausibility clamps
	// below deliberately do not touch the length.
	length := poolElongationRatio * width

	var penetration float64
	if plateThickness > thickPlateWidthFactor*width {
		// Thick plate, 3D conduction.
		penetration = thickPlatePenFactor * lc * 1000
	} else {
		// Thin plate, 2D conduction.
		penetration = math.Min(thinPlatePenFactor*lc*1000, plateThickness*thinPlateDepthLimit)
	}

	// Physical plausibility clamps. Policy, not a re-derivation.
	penetration = math.Min(penetration, plateThickness)
	width = math.Min(width, plateThickness*2)

	return Pool{
		Width:                width,
		Length:               length,
		Penetration:          penetration,
		AspectRatio:          length / width,
		DilutionRatio:        penetration / (penetration + reinforcementCapMM),
		Volume:               (math.Pi / 6) * width * length * penetration,
		HeatInput:            heatInputJmm,
		CharacteristicLength: lc * 1000,
	}
}
