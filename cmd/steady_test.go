package cmd

import (
	"math"
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/notargets/gofvm/InputParameters"
)

func TestRunSteady(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Heat Conduction
Cells: 10
Length: 1.
Gamma: 1.
Left:
  Type: fixedValue
  Value: 100.
Right:
  Type: fixedValue
  Value: 20.
`)
	var input InputParameters.DiffusionParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Cells, 10)
	assert.Equal(t, input.Left.Value, 100.)
	assert.Equal(t, input.Right.Type, "fixedValue")
	input.Print()

	// pure diffusion yields the linear profile between the end values
	x, err := solveSteady(&input)
	if err != nil {
		panic(err)
	}
	dx := input.Length / float64(input.Cells)
	for i := 0; i < input.Cells; i++ {
		xc := (0.5 + float64(i)) * dx
		want := 100. + xc*(20.-100.)
		if math.Abs(x.AtVec(i)-want) > 1.e-8 {
			t.Errorf("cell %d: phi = %v, want %v", i, x.AtVec(i), want)
		}
	}
}

func TestBadInput(t *testing.T) {
	var input InputParameters.DiffusionParameters
	err := input.Parse([]byte("Cells: 0\nLength: 1.\n"))
	if err == nil {
		t.Error("expected a validation error for zero cells")
	}
	err = input.Parse([]byte("Cells: 5\nLength: 1.\nLeft:\n  Type: adiabatic\n"))
	if err == nil {
		t.Error("expected a validation error for an unknown BC type")
	}
}
