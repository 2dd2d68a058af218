package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hexforge/rigidkit/internal/logger"
	"github.com/hexforge/rigidkit/pkg/fixture"
)

var chainmailCmd = &cobra.Command{
	Use:   "chainmail <links> [output.json]",
	Short: "Generate a hanging chain of simple planar links",
	Long: `chainmail replicates a fixed 10-vertex link template once per chain
link, offset vertically so each link threads through the one above. The top
link is pinned; the rest start moving downward.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runChainmail,
}

func init() {
	rootCmd.AddCommand(chainmailCmd)
}

func runChainmail(cmd *cobra.Command, args []string) error {
	links, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("link count %q is not an integer", args[0])
	}

	scene, err := fixture.Chainmail(links)
	if err != nil {
		return err
	}

	path := fixture.ChainmailPath(cfg.Fixtures.Dir, links)
	if len(args) > 1 {
		path = args[1]
	}

	if err := scene.Save(path); err != nil {
		return err
	}
	logger.Info("fixture written",
		zap.String("path", path),
		zap.Int("links", links))
	return nil
}
