package sensor

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/meltforce/ftracker/internal/ingest"
	"gopkg.in/yaml.v3"
)

// packageFile is the on-disk layout of a package list:
//
//	packages:
//	  - code: SWM
//	    data: [720, 1, 80, 25, 40]
//
// JSON input with the same shape is accepted as well.
type packageFile struct {
	Packages []ingest.Package `yaml:"packages"`
}

// DemoPackages returns the sample readings printed when no input is given.
func DemoPackages() []ingest.Package {
	return []ingest.Package{
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// Parse reads a package list. An empty document yields no packages.
func Parse(r io.Reader) ([]ingest.Package, error) {
	var f packageFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding packages: %w", err)
	}
	for i, p := range f.Packages {
		if p.Code == "" {
			return nil, fmt.Errorf("package %d: code is required", i)
		}
	}
	return f.Packages, nil
}

// LoadFile parses the package list stored at path.
func LoadFile(path string) ([]ingest.Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening packages file: %w", err)
	}
	defer f.Close()

	pkgs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pkgs, nil
}
