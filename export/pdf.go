package export

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"weldsim/physics"
)

// WriteReport renders a one-page PDF summary of the analysis: process
// parameters, pool geometry and the sensitivity table.
func WriteReport(w io.Writer, a *physics.Analysis) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Welding Analysis Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Material: %s", a.MaterialName))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Process Parameters")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Current: %.0f A", a.Parameters.Current),
		fmt.Sprintf("Voltage: %.1f V", a.Parameters.Voltage),
		fmt.Sprintf("Travel speed: %.2f mm/s", a.Parameters.TravelSpeed),
		fmt.Sprintf("Arc efficiency: %.2f", a.Parameters.ArcEfficiency),
		fmt.Sprintf("Plate thickness: %.1f mm", a.PlateThickness),
		fmt.Sprintf("Heat input: %.1f J/mm", a.HeatInput),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Weld Pool Geometry")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	lines = []string{
		fmt.Sprintf("Width: %.2f mm", a.Pool.Width),
		fmt.Sprintf("Length: %.2f mm", a.Pool.Length),
		fmt.Sprintf("Penetration: %.2f mm", a.Pool.Penetration),
		fmt.Sprintf("Aspect ratio: %.2f", a.Pool.AspectRatio),
		fmt.Sprintf("Dilution ratio: %.2f", a.Pool.DilutionRatio),
		fmt.Sprintf("Pool volume: %.1f mm3", a.Pool.Volume),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Sensitivity (width / penetration per % input)")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, s := range a.Sensitivity {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %.3f / %.3f (base %.2f)",
			s.Parameter, s.WidthSensitivity, s.PenetrationSensitivity, s.BaseValue))
		pdf.Ln(6)
	}

	return pdf.Output(w)
}
