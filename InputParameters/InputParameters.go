package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// BCSpec selects a boundary condition type and its value at one end of the
// domain.
type BCSpec struct {
	Type  string  `yaml:"Type"` // "fixedValue" or "fixedFlux"
	Value float64 `yaml:"Value"`
}

// Parameters obtained from the YAML input file
type DiffusionParameters struct {
	Title  string  `yaml:"Title"`
	Cells  int     `yaml:"Cells"`
	Length float64 `yaml:"Length"`
	Gamma  float64 `yaml:"Gamma"`
	Left   BCSpec  `yaml:"Left"`
	Right  BCSpec  `yaml:"Right"`
}

func (ip *DiffusionParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ip); err != nil {
		return err
	}
	return ip.validate()
}

func (ip *DiffusionParameters) validate() error {
	if ip.Cells < 1 {
		return fmt.Errorf("cells must be positive, got %d", ip.Cells)
	}
	if ip.Length <= 0 {
		return fmt.Errorf("length must be positive, got %g", ip.Length)
	}
	for _, b := range []BCSpec{ip.Left, ip.Right} {
		switch b.Type {
		case "fixedValue", "fixedFlux":
		default:
			return fmt.Errorf("unknown boundary condition type %q", b.Type)
		}
	}
	return nil
}

func (ip *DiffusionParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t= Cells\n", ip.Cells)
	fmt.Printf("%8.5f\t\t= Length\n", ip.Length)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("Left = %s(%g), Right = %s(%g)\n",
		ip.Left.Type, ip.Left.Value, ip.Right.Type, ip.Right.Value)
}
