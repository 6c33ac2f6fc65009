package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/wildstyl3r/xrop/internal/config"
	"github.com/wildstyl3r/xrop/internal/export"
	"github.com/wildstyl3r/xrop/internal/optics"
	"github.com/wildstyl3r/xrop/internal/utils"
)

var tableColumns = []string{
	"energy (keV)", "wavelength (A)", "delta", "beta", "f1", "f2",
	"critical angle (deg)", "attenuation length (cm)", "re SLD (A^-2)", "im SLD (A^-2)",
}

func formatF(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// materialLists flattens the config map into batch inputs, name-sorted for a
// reproducible dispatch order. Batch keys results by formula, so two names
// sharing one formula silently collapse; that gets a warning.
func materialLists(cfg config.Config) (names, formulas []string, densities []float64, warnings []string) {
	for name := range cfg.Materials {
		names = append(names, name)
	}
	sort.Strings(names)
	nameOfFormula := map[string]string{}
	for _, name := range names {
		material := cfg.Materials[name]
		formulas = append(formulas, material.Formula)
		densities = append(densities, material.Density)
		if prev, dup := nameOfFormula[material.Formula]; dup {
			warnings = append(warnings, fmt.Sprintf("materials %s and %s share formula %s; both tables will carry the result computed for %s", prev, name, material.Formula, name))
		}
		nameOfFormula[material.Formula] = name
	}
	return
}

func ensureOutputDir(dir string) (string, error) {
	if dir == "" || dir == "." {
		return "", nil
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir + "/", nil
}

func main() {
	var configFileNamePointer = flag.String("input", "materials", "run configuration in toml format")
	var saveTables = flag.Bool("csv", true, "save a csv table per material plus a summary")
	var saveWorkbook = flag.Bool("xlsx", false, "save every material into one xlsx workbook")
	var verbose = flag.Bool("v", false, "report progress")
	flag.Parse()

	startTime := time.Now()

	cfg, err := config.Load(*configFileNamePointer)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	names, formulas, densities, warnings := materialLists(cfg)
	for _, warning := range warnings {
		fmt.Fprintln(os.Stderr, warning)
	}

	calc := optics.New(cfg.DataDir)
	calc.SetThreads(cfg.Threads)

	results, err := calc.Batch(formulas, cfg.Energies, densities)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *verbose {
		fmt.Printf("computed %d of %d materials\n", len(results), len(names))
	}

	outputPath, err := ensureOutputDir(cfg.OutputDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var summary utils.CSV
	for _, name := range names {
		material := cfg.Materials[name]
		res, computed := results[material.Formula]
		if !computed {
			continue
		}
		summary = append(summary, []string{
			name, material.Formula,
			formatF(res.MassDensity), formatF(res.MolecularWeight),
			formatF(res.ElectronCount), formatF(res.ElectronDensity),
		})
		if *saveTables {
			rows := make(utils.CSV, 0, len(res.Energy))
			for i := range res.Energy {
				rows = append(rows, []string{
					formatF(res.Energy[i]), formatF(res.Wavelength[i]),
					formatF(res.Dispersion[i]), formatF(res.Absorption[i]),
					formatF(res.F1[i]), formatF(res.F2[i]),
					formatF(res.CriticalAngle[i]), formatF(res.AttenuationLength[i]),
					formatF(res.ReSLD[i]), formatF(res.ImSLD[i]),
				})
			}
			if err := utils.WriteCSV(outputPath+name+".csv", tableColumns, rows, false); err != nil {
				fmt.Fprintln(os.Stderr, "unable to save "+name+":", err)
			} else if *verbose {
				println(name + " saved")
			}
		}
	}
	if *saveTables && len(summary) > 0 {
		columns := []string{"material", "formula", "density (g/cm^3)", "molecular weight (g/mol)", "electrons", "electron density (A^-3)"}
		if err := utils.WriteCSV(outputPath+"summary.csv", columns, summary, true); err != nil {
			fmt.Fprintln(os.Stderr, "unable to save summary:", err)
		}
	}
	if *saveWorkbook {
		if err := export.Workbook(outputPath+"materials.xlsx", results); err != nil {
			fmt.Fprintln(os.Stderr, "unable to save workbook:", err)
		}
	}

	fmt.Printf("Elapsed time: %v\n", time.Since(startTime))
}
