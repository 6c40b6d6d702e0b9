/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofvm/InputParameters"
	"github.com/notargets/gofvm/bc"
	"github.com/notargets/gofvm/field"
	"github.com/notargets/gofvm/mesh"
	"github.com/notargets/gofvm/terms"
)

// SteadyCmd represents the steady command
var SteadyCmd = &cobra.Command{
	Use:   "steady",
	Short: "Steady state diffusion solution on a 1D chain of cells",
	Long: `
Assembles the implicit diffusion term with the configured boundary conditions
and solves the resulting linear system once,

gofvm steady -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			ms  = &ModelSteady{}
		)
		fmt.Println("steady called")
		if ms.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		ms.CSVFile, _ = cmd.Flags().GetString("csvFile")
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		ip := processInput(ms)
		RunSteady(ms, ip)
	},
}

func init() {
	rootCmd.AddCommand(SteadyCmd)
	SteadyCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML input parameters file")
	SteadyCmd.Flags().StringP("csvFile", "o", "", "write the solution as CSV to this file")
}

type ModelSteady struct {
	ICFile  string
	CSVFile string
}

func processInput(ms *ModelSteady) (ip *InputParameters.DiffusionParameters) {
	var (
		err error
	)
	if len(ms.ICFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Heat Conduction"
Cells: 50
Length: 1.
Gamma: 1.
Left:
  Type: fixedValue
  Value: 100.
Right:
  Type: fixedValue
  Value: 20.
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(ms.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.DiffusionParameters{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	ip.Print()
	return
}

func RunSteady(ms *ModelSteady, ip *InputParameters.DiffusionParameters) {
	x, err := solveSteady(ip)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	dx := ip.Length / float64(ip.Cells)
	for i := 0; i < ip.Cells; i++ {
		fmt.Printf("x = %8.5f, phi = %8.5f\n", (0.5+float64(i))*dx, x.AtVec(i))
	}
	if len(ms.CSVFile) != 0 {
		if err = writeCSV(ms.CSVFile, dx, x); err != nil {
			fmt.Printf("csv output failed: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", ms.CSVFile)
	}
}

func solveSteady(ip *InputParameters.DiffusionParameters) (x *mat.VecDense, err error) {
	var (
		msh = mesh.NewUniform1D(0, ip.Length, ip.Cells)
		phi = field.NewCellField("phi", msh)
	)
	// the two boundary faces follow the interior faces on the 1D chain
	leftFace, rightFace := ip.Cells-1, ip.Cells
	bcs := []bc.Condition{
		makeBC(ip.Left, leftFace),
		makeBC(ip.Right, rightFace),
	}
	var sys terms.System
	if sys, err = terms.NewImplicitDiffusion(terms.ConstantGamma(ip.Gamma)).
		Assemble(phi, bcs, terms.AssembleOpts{}); err != nil {
		return
	}
	x = &mat.VecDense{}
	err = x.SolveVec(sys.L.ToDense(), sys.B.V)
	return
}

func makeBC(spec InputParameters.BCSpec, faceID int) bc.Condition {
	if spec.Type == "fixedFlux" {
		return &bc.FixedFlux{Faces: []int{faceID}, Flux: spec.Value}
	}
	return &bc.FixedValue{Faces: []int{faceID}, Value: spec.Value}
}

func writeCSV(fileName string, dx float64, x *mat.VecDense) (err error) {
	var (
		f *os.File
	)
	if f, err = os.Create(fileName); err != nil {
		return
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err = w.Write([]string{"x", "phi"}); err != nil {
		return
	}
	for i := 0; i < x.Len(); i++ {
		record := []string{
			strconv.FormatFloat((0.5+float64(i))*dx, 'g', -1, 64),
			strconv.FormatFloat(x.AtVec(i), 'g', -1, 64),
		}
		if err = w.Write(record); err != nil {
			return
		}
	}
	w.Flush()
	err = w.Error()
	return
}
