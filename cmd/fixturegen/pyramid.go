package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hexforge/rigidkit/internal/logger"
	"github.com/hexforge/rigidkit/pkg/fixture"
)

var (
	flagPyramidCor  float64
	flagPyramidRows int
	flagPyramidOut  string
)

var pyramidCmd = &cobra.Command{
	Use:   "pyramid",
	Short: "Generate a pyramid of unit blocks above a fixed ground",
	Long: `pyramid stacks rows of unit boxes into a triangle resting above a
fixed ground segment, each row one box narrower than the one below. The
blocks start free and at rest so the stack settles under gravity.`,
	Args: cobra.NoArgs,
	RunE: runPyramid,
}

func init() {
	pyramidCmd.Flags().Float64Var(&flagPyramidCor, "cor", -1, "coefficient of restitution")
	pyramidCmd.Flags().IntVar(&flagPyramidRows, "rows", 5, "rows of blocks in the pyramid")
	pyramidCmd.Flags().StringVar(&flagPyramidOut, "out", "", "path to save the fixture")
	rootCmd.AddCommand(pyramidCmd)
}

func runPyramid(cmd *cobra.Command, args []string) error {
	scene, err := fixture.Pyramid(flagPyramidRows, flagPyramidCor)
	if err != nil {
		return err
	}

	path := flagPyramidOut
	if path == "" {
		path = fixture.PyramidPath(cfg.Fixtures.Dir, flagPyramidCor)
	}

	if err := scene.Save(path); err != nil {
		return err
	}
	logger.Info("fixture written",
		zap.String("path", path),
		zap.Int("rows", flagPyramidRows),
		zap.Float64("cor", flagPyramidCor),
		zap.Int("bodies", len(scene.RigidBodyProblem.RigidBodies)))
	return nil
}
