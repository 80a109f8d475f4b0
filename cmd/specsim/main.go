// Command specsim scores spectra from a CSV file against a reference
// spectrum and prints a ranked similarity table.
//
// Usage:
//
//	specsim -ref <id> [flags] file.csv
//
// The CSV is expected in wide format: a header row naming the columns, the
// first column holding wavelengths in nm, and one column per spectrum.
//
// Examples:
//
//	specsim -ref blank spectra.csv
//	specsim -ref sample-007 -method pearson spectra.csv
//	specsim -ref blank -top 5 -normalize spectra.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectral/similarity"
	"github.com/cwbudde/algo-spectral/spectrum"
	"github.com/cwbudde/algo-spectral/validate"
)

func main() {
	refID := flag.String("ref", "", "ID of the reference spectrum (required)")
	methodName := flag.String("method", "sam", "ranking method: sam, cosine, or pearson")
	top := flag.Int("top", 0, "print only the n best matches (0 = all)")
	normalize := flag.Bool("normalize", false, "normalize spectra to unit peak before scoring")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: specsim -ref <id> [flags] file.csv\n\n")
		fmt.Fprintf(os.Stderr, "Scores spectra from a wide-format CSV against a reference spectrum\n")
		fmt.Fprintf(os.Stderr, "and prints a ranked similarity table.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  specsim -ref blank spectra.csv\n")
		fmt.Fprintf(os.Stderr, "  specsim -ref sample-007 -method pearson -top 5 spectra.csv\n")
	}
	flag.Parse()

	if *refID == "" || flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	method, err := similarity.ParseMethod(*methodName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	spectra, err := loadCSV(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	outcome := validate.Batch(spectra)
	if !outcome.OK {
		for _, e := range outcome.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}
		os.Exit(1)
	}

	printWarnings(outcome)

	ref, ok := findByID(spectra, *refID)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: reference spectrum %q not found\n", *refID)
		os.Exit(1)
	}

	printWarnings(validate.Reference(ref, spectra))

	if *normalize {
		for i := range spectra {
			spectra[i] = spectra[i].Normalize()
		}

		ref = ref.Normalize()
	}

	result, err := similarity.BatchCalculate(spectra, ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ranked, err := similarity.TopSimilar(result, method, *top)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printRanked(result, ranked, method)
}

// loadCSV reads a wide-format CSV: header row with column names, first
// column wavelengths, one column per spectrum. Every spectrum's wavelength
// grid must pass validation.
func loadCSV(path string) ([]spectrum.Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if len(records) < 2 || len(records[0]) < 2 {
		return nil, fmt.Errorf("%s: need a header row, a wavelength column, and at least one spectrum column", path)
	}

	header := records[0]
	rows := records[1:]

	wavelengths := make([]float64, len(rows))
	columns := make([][]float64, len(header)-1)
	for i := range columns {
		columns[i] = make([]float64, len(rows))
	}

	for r, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%s: row %d has %d fields, header has %d", path, r+2, len(row), len(header))
		}

		for c, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d, column %q: %w", path, r+2, header[c], err)
			}

			if c == 0 {
				wavelengths[r] = v
			} else {
				columns[c-1][r] = v
			}
		}
	}

	if outcome := validate.Wavelengths(wavelengths); !outcome.OK {
		return nil, fmt.Errorf("%s: %s", path, outcome.Errors[0])
	}

	spectra := make([]spectrum.Spectrum, len(columns))
	for i, col := range columns {
		spectra[i] = spectrum.New(header[i+1], wavelengths, col)
		printWarnings(validate.Absorbances(col))
	}

	return spectra, nil
}

func findByID(spectra []spectrum.Spectrum, id string) (spectrum.Spectrum, bool) {
	for _, s := range spectra {
		if s.ID == id {
			return s, true
		}
	}

	return spectrum.Spectrum{}, false
}

func printWarnings(o validate.Outcome) {
	for _, w := range o.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}

func printRanked(result similarity.Result, ranked []similarity.RankedScore, method similarity.Method) {
	byID := make(map[string]int, len(result.SampleIDs))
	for i, id := range result.SampleIDs {
		byID[id] = i
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Rank\tID\t%s\tSAM\tCosine\tPearson\n", method)

	for rank, rs := range ranked {
		i := byID[rs.ID]
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%.4f\t%.4f\n",
			rank+1, rs.ID, rs.Score, result.SAM[i], result.Cosine[i], result.Pearson[i])
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
