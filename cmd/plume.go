package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/burnwise/burnsched/core/model"
	"github.com/burnwise/burnsched/core/plume"
)

var (
	plumeEmission  float64
	plumeWind      float64
	plumeHeight    float64
	plumeX         float64
	plumeY         float64
	plumeZ         float64
	plumeStability string
)

var plumeCmd = &cobra.Command{
	Use:   "plume",
	Short: "Compute a single plume concentration",
	RunE:  plumeQuery,
}

func init() {
	plumeCmd.Flags().Float64VarP(&plumeEmission, "emission", "q", 1000, "emission rate in g/s")
	plumeCmd.Flags().Float64VarP(&plumeWind, "wind", "u", 5, "wind speed in m/s")
	plumeCmd.Flags().Float64Var(&plumeHeight, "height", 2, "effective source height in m")
	plumeCmd.Flags().Float64VarP(&plumeX, "downwind", "x", 100, "downwind distance in m")
	plumeCmd.Flags().Float64VarP(&plumeY, "crosswind", "y", 0, "crosswind offset in m")
	plumeCmd.Flags().Float64VarP(&plumeZ, "receptor", "z", 0, "receptor height in m")
	plumeCmd.Flags().StringVarP(&plumeStability, "stability", "s", "D", "stability class A-F")
	rootCmd.AddCommand(plumeCmd)
}

func plumeQuery(cmd *cobra.Command, args []string) error {
	class, err := model.ParseStabilityClass(plumeStability)
	if err != nil {
		return err
	}
	c, err := plume.Concentration(plume.Query{
		EmissionRate: plumeEmission,
		WindSpeed:    plumeWind,
		Height:       plumeHeight,
		X:            plumeX,
		Y:            plumeY,
		Z:            plumeZ,
		Stability:    class,
	})
	if err != nil {
		return err
	}
	// An upwind receptor sees no plume and has no meaningful spread; only
	// print the coefficients for a downwind distance.
	if plumeX > 0 {
		sigmaY, sigmaZ, err := plume.Coefficients(plumeX, class)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "sigma_y: %.2f m\nsigma_z: %.2f m\n", sigmaY, sigmaZ)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "concentration: %.2f ug/m3\n", c*plume.GramsToMicrograms)
	return nil
}
