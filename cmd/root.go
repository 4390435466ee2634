// Package cmd wires the weldsim CLI: a serve command for the dashboard
// backend and one-shot calc/sweep commands for scripted use.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"weldsim/config"
	"weldsim/export"
	"weldsim/material"
	"weldsim/model"
	"weldsim/physics"
	"weldsim/server"
)

var (
	configPath string
	logLevel   string

	materialsPath string // optional YAML property overrides

	// calc / sweep flags
	current        float64
	voltage        float64
	travelSpeed    float64
	arcEfficiency  float64
	plateThickness float64
	materialName   string
	outPath        string
	outFormat      string
	sweepParameter string
)

var rootCmd = &cobra.Command{
	Use:   "weldsim",
	Short: "Closed-form weld pool and temperature field estimation",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", logLevel)
		}
		logrus.SetLevel(level)
		if materialsPath != "" {
			if err := material.LoadOverrides(materialsPath); err != nil {
				return err
			}
		}
		return nil
	},
}

// resolveLogLevel prefers an explicit --log-level flag over the config
// file; the flag's compiled default only applies when the config is silent.
func resolveLogLevel(flagSet bool, flagValue, configValue string) string {
	if flagSet || configValue == "" {
		return flagValue
	}
	return configValue
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard backend (websocket + REST)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(configPath)
		resolved := resolveLogLevel(cmd.Flags().Changed("log-level"), logLevel, cfg.LogLevel)
		if level, err := logrus.ParseLevel(resolved); err == nil {
			logrus.SetLevel(level)
		}
		return server.New(cfg).Serve()
	},
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run one analysis and print or export the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		analysis, err := physics.Analyze(physics.Parameters{
			Current:       current,
			Voltage:       voltage,
			TravelSpeed:   travelSpeed,
			ArcEfficiency: arcEfficiency,
		}, materialName, plateThickness)
		if err != nil {
			return err
		}

		if outPath == "" {
			fmt.Printf("heat input:    %.1f J/mm\n", analysis.HeatInput)
			fmt.Printf("pool width:    %.2f mm\n", analysis.Pool.Width)
			fmt.Printf("pool length:   %.2f mm\n", analysis.Pool.Length)
			fmt.Printf("penetration:   %.2f mm\n", analysis.Pool.Penetration)
			fmt.Printf("dilution:      %.2f\n", analysis.Pool.DilutionRatio)
			fmt.Printf("peak temp:     %.0f K\n", analysis.Field.MaxTemp)
			return nil
		}

		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		switch outFormat {
		case "json":
			doc := export.NewDocument(analysis)
			data, err := doc.Encode()
			if err != nil {
				return err
			}
			_, err = f.Write(data)
			return err
		case "pdf":
			return export.WriteReport(f, analysis)
		default:
			return fmt.Errorf("unknown format %q (want json or pdf)", outFormat)
		}
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate a parameter sweep and print it or export XLSX",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := model.SweepRequest{
			AnalysisRequest: model.AnalysisRequest{
				Current:        current,
				Voltage:        voltage,
				TravelSpeed:    travelSpeed,
				ArcEfficiency:  arcEfficiency,
				Material:       materialName,
				PlateThickness: plateThickness,
			},
			Parameter: sweepParameter,
		}
		props := material.Lookup(req.Material)
		var values []float64
		switch req.Parameter {
		case physics.ParamCurrent:
			values = physics.CurrentSweepRange()
		case physics.ParamVoltage:
			values = physics.VoltageSweepRange()
		default:
			return fmt.Errorf("sweep supports current and voltage, got %q", req.Parameter)
		}
		points, err := physics.Sweep(req.Parameters(), props, req.PlateThickness, req.Parameter, values)
		if err != nil {
			return err
		}

		if outPath == "" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(model.SweepResponse{Parameter: req.Parameter, Material: req.Material, Points: points})
		}
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return export.WriteSweepWorkbook(f, []export.SweepTable{
			{Name: "Sweep", Parameter: req.Parameter, Points: points},
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the ini config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log verbosity (trace..panic)")
	rootCmd.PersistentFlags().StringVar(&materialsPath, "materials", "", "YAML file with material property overrides")

	for _, c := range []*cobra.Command{calcCmd, sweepCmd} {
		c.Flags().Float64Var(&current, "current", 200, "welding current, A")
		c.Flags().Float64Var(&voltage, "voltage", 25, "arc voltage, V")
		c.Flags().Float64Var(&travelSpeed, "travel-speed", 5, "travel speed, mm/s")
		c.Flags().Float64Var(&arcEfficiency, "arc-efficiency", 0.7, "arc efficiency, (0,1]")
		c.Flags().Float64Var(&plateThickness, "plate-thickness", 10, "plate thickness, mm")
		c.Flags().StringVar(&materialName, "material", material.Steel, "material name (unknown names fall back to Steel)")
		c.Flags().StringVar(&outPath, "out", "", "output file; stdout when empty")
	}
	calcCmd.Flags().StringVar(&outFormat, "format", "json", "output format for --out: json or pdf")
	sweepCmd.Flags().StringVar(&sweepParameter, "parameter", physics.ParamCurrent, "parameter to sweep: current or voltage")

	rootCmd.AddCommand(serveCmd, calcCmd, sweepCmd)
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
