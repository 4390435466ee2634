package material

// Catalog names. The set is closed; anything else resolves to Steel.
const (
	Steel          = "Steel"
	Aluminum       = "Aluminum"
	StainlessSteel = "Stainless Steel"
	Titanium       = "Titanium"
)

// RoomTemperature is the fixed ambient reference, K.
const RoomTemperature = 298.0

var catalog = map[string]Properties{
	Steel: {
		ThermalConductivity:   50.0,
		Density:               7800.0,
		SpecificHeatSolid:     726000.0,
		SpecificHeatLiquid:    732000.0,
		SolidusTemp:           1768.0,
		LiquidusTemp:          1798.0,
		LatentHeat:            2.77e5,
		Permeability:          1.26e-6,
		SurfaceTension:        1.8,
		ArcEfficiencyGTAW:     0.7,
		ArcEfficiencyGMAW:     0.56,
		DropletEfficiencyGMAW: 0.24,
	},
	Aluminum: {
		ThermalConductivity:   237.0,
		Density:               2700.0,
		SpecificHeatSolid:     903000.0,
		SpecificHeatLiquid:    1080000.0,
		SolidusTemp:           933.0,
		LiquidusTemp:          943.0,
		LatentHeat:            3.97e5,
		Permeability:          1.26e-6,
		SurfaceTension:        0.9,
		ArcEfficiencyGTAW:     0.65,
		ArcEfficiencyGMAW:     0.50,
		DropletEfficiencyGMAW: 0.20,
	},
	StainlessSteel: {
		ThermalConductivity:   16.0,
		Density:               8000.0,
		SpecificHeatSolid:     500000.0,
		SpecificHeatLiquid:    520000.0,
		SolidusTemp:           1673.0,
		LiquidusTemp:          1723.0,
		LatentHeat:            2.60e5,
		Permeability:          1.26e-6,
		SurfaceTension:        1.6,
		ArcEfficiencyGTAW:     0.68,
		ArcEfficiencyGMAW:     0.54,
		DropletEfficiencyGMAW: 0.22,
	},
	Titanium: {
		ThermalConductivity:   22.0,
		Density:               4500.0,
		SpecificHeatSolid:     520000.0,
		SpecificHeatLiquid:    610000.0,
		SolidusTemp:           1933.0,
		LiquidusTemp:          1943.0,
		LatentHeat:            4.20e5,
		Permeability:          1.26e-6,
		SurfaceTension:        1.5,
		ArcEfficiencyGTAW:     0.72,
		ArcEfficiencyGMAW:     0.58,
		DropletEfficiencyGMAW: 0.26,
	},
}

func canonical(name string) string {
	if _, ok := catalog[name]; ok {
		return name
	}
	return Steel
}

// Lookup returns the properties for name. Unknown names fall back to Steel
// silently; callers that need to distinguish should check Known first.
func Lookup(name string) Properties {
	return catalog[canonical(name)]
}

// Known reports whether name is in the catalog.
func Known(name string) bool {
	_, ok := catalog[name]
	return ok
}

// Names returns the catalog names in their fixed display order.
func Names() []string {
	return []string{Steel, Aluminum, StainlessSteel, Titanium}
}
