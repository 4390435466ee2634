package physics

import (
	"math"
	"sync"

	"weldsim/material"
)

// Fixed evaluation grid around the moving source, mm. x runs along the
// travel direction (positive ahead of the arc), y across the seam.
const (
	gridXMinMM  = -20.0
	gridXMaxMM  = 40.0
	gridXPoints = 61
	gridYMinMM  = -15.0
	gridYMaxMM  = 15.0
	gridYPoints = 31

	// Ceiling on reported temperatures. A numerical-stability cap near the
	// singular source point, not a physical limit.
	maxFieldTemperature = 3500.0

	// Effective source radius (m) substituted at R=0 so the point-source
	// solution stays finite.
	sourceRadiusM = 0.001

	fieldWorkers = 4
)

// Field is the steady-state temperature field in the source frame.
// Temperature is indexed [y][x] and is in Kelvin; the coordinate axes are
// in mm.
type Field struct {
	X           []float64   `json:"x"`
	Y           []float64   `json:"y"`
	Temperature [][]float64 `json:"temperature"`
	MaxTemp     float64     `json:"max_temp"`
	MinTemp     float64     `json:"min_temp"`
}

// TemperatureField evaluates Rosenthal's 3D moving point-source solution
//
//	T(x,y) = T0 + q/(2π·k·R) · exp(−v·(R−x)/(2α))
//
// over the fixed grid, for the given heat input (J/mm), material and travel
// speed (mm/s). Every grid point is independent; rows are split across a
// small fixed worker set.
func TemperatureField(heatInputJmm float64, props material.Properties, travelSpeed float64) (*Field, error) {
	if err := requirePositive("heat_input", heatInputJmm); err != nil {
		return nil, err
	}
	if err := requirePositive(ParamTravelSpeed, travelSpeed); err != nil {
		return nil, err
	}
	if err := validateMaterial(props); err != nil {
		return nil, err
	}
	return temperatureField(heatInputJmm, props, travelSpeed), nil
}

func temperatureField(heatInputJmm float64, props material.Properties, travelSpeed float64) *Field {
	k := props.ThermalConductivity
	alpha := props.ThermalDiffusivity()

	q := heatInputJmm * 1000 // J/mm -> J/m
	v := travelSpeed / 1000  // mm/s -> m/s

	f := &Field{
		X:           linspace(gridXMinMM, gridXMaxMM, gridXPoints),
		Y:           linspace(gridYMinMM, gridYMaxMM, gridYPoints),
		Temperature: make([][]float64, gridYPoints),
	}

	var wg sync.WaitGroup
	rowsPerWorker := (gridYPoints + fieldWorkers - 1) / fieldWorkers
	for w := 0; w < fieldWorkers; w++ {
		first := w * rowsPerWorker
		last := first + rowsPerWorker
		if last > gridYPoints {
			last = gridYPoints
		}
		if first >= last {
			continue
		}
		wg.Add(1)
		go func(first, last int) {
			defer wg.Done()
			for i := first; i < last; i++ {
				row := make([]float64, gridXPoints)
				y := f.Y[i] / 1000
				for j := 0; j < gridXPoints; j++ {
					x := f.X[j] / 1000
					row[j] = pointTemperature(x, y, q, v, k, alpha)
				}
				f.Temperature[i] = row
			}
		}(first, last)
	}
	wg.Wait()

	f.MaxTemp = math.Inf(-1)
	f.MinTemp = math.Inf(1)
	for _, row := range f.Temperature {
		for _, t := range row {
			f.MaxTemp = math.Max(f.MaxTemp, t)
			f.MinTemp = math.Min(f.MinTemp, t)
		}
	}
	return f
}

// pointTemperature evaluates the solution at one grid point given in
// meters. The result carries the system-wide ceiling.
func pointTemperature(x, y, q, v, k, alpha float64) float64 {
	r := math.Sqrt(x*x + y*y)
	var t float64
	if r > 0 {
		t = material.RoomTemperature + q/(2*math.Pi*k*r)*math.Exp(-v*(r-x)/(2*alpha))
	} else {
		// Singular source point: substitute the effective radius.
		t = material.RoomTemperature + q/(4*math.Pi*k*sourceRadiusM)
	}
	return math.Min(t, maxFieldTemperature)
}

func linspace(min, max float64, n int) []float64 {
	step := (max - min) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	return out
}
