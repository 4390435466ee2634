package material

// Thermophysical property set for one weldable alloy. Values are held in
// the units the engine consumes directly; temperatures are Kelvin.
type Properties struct {
	ThermalConductivity   float64 `json:"thermal_conductivity" yaml:"thermal_conductivity"`       // W/m·K
	Density               float64 `json:"density" yaml:"density"`                                 // kg/m³
	SpecificHeatSolid     float64 `json:"specific_heat_solid" yaml:"specific_heat_solid"`         // J/kg·K
	SpecificHeatLiquid    float64 `json:"specific_heat_liquid" yaml:"specific_heat_liquid"`       // J/kg·K
	SolidusTemp           float64 `json:"solidus_temp" yaml:"solidus_temp"`                       // K
	LiquidusTemp          float64 `json:"liquidus_temp" yaml:"liquidus_temp"`                     // K
	LatentHeat            float64 `json:"latent_heat" yaml:"latent_heat"`                         // J/kg
	Permeability          float64 `json:"permeability" yaml:"permeability"`                       // H/m
	SurfaceTension        float64 `json:"surface_tension" yaml:"surface_tension"`                 // N/m
	ArcEfficiencyGTAW     float64 `json:"arc_efficiency_gtaw" yaml:"arc_efficiency_gtaw"`
	ArcEfficiencyGMAW     float64 `json:"arc_efficiency_gmaw" yaml:"arc_efficiency_gmaw"`
	DropletEfficiencyGMAW float64 `json:"droplet_efficiency_gmaw" yaml:"droplet_efficiency_gmaw"`
}

// ThermalDiffusivity returns α = k / (ρ·cp) in m²/s, using the solid-phase
// specific heat.
func (p Properties) ThermalDiffusivity() float64 {
	return p.ThermalConductivity / (p.Density * p.SpecificHeatSolid)
}

// ConductivityAt approximates the thermal conductivity at temperature T (K)
// with a linear drop toward the liquidus. The drop fraction is per-family:
// steels lose ~30%, aluminum ~20%, everything else ~15%. The family switch
// runs on the raw name, so an unknown material pairs Steel's base values
// with the generic 15% drop. The factor is held inside [0.3, 1.0].
func ConductivityAt(name string, T float64) float64 {
	p := Lookup(name)
	var drop float64
	switch name {
	case Steel, StainlessSteel:
		drop = 0.3
	case Aluminum:
		drop = 0.2
	default:
		drop = 0.15
	}
	factor := 1.0 - drop*(T-RoomTemperature)/(p.LiquidusTemp-RoomTemperature)
	if factor < 0.3 {
		factor = 0.3
	}
	if factor > 1.0 {
		factor = 1.0
	}
	return p.ThermalConductivity * factor
}

// ComparisonRow is one line of the material comparison table shown by the
// dashboard.
type ComparisonRow struct {
	Material            string  `json:"material"`
	ThermalConductivity float64 `json:"thermal_conductivity"` // W/m·K
	Density             float64 `json:"density"`              // kg/m³
	MeltingPointC       float64 `json:"melting_point_c"`      // °C
	ThermalDiffusivity  float64 `json:"thermal_diffusivity"`  // mm²/s
	GTAWEfficiency      float64 `json:"gtaw_efficiency"`
	GMAWEfficiency      float64 `json:"gmaw_efficiency"`
}

// ComparisonTable returns one row per catalog material, in catalog order.
func ComparisonTable() []ComparisonRow {
	rows := make([]ComparisonRow, 0, len(Names()))
	for _, name := range Names() {
		p := Lookup(name)
		rows = append(rows, ComparisonRow{
			Material:            name,
			ThermalConductivity: p.ThermalConductivity,
			Density:             p.Density,
			MeltingPointC:       p.LiquidusTemp - 273.15,
			ThermalDiffusivity:  p.ThermalDiffusivity() * 1e6,
			GTAWEfficiency:      p.ArcEfficiencyGTAW,
			GMAWEfficiency:      p.ArcEfficiencyGMAW,
		})
	}
	return rows
}
