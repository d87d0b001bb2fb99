package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/akeller/revu/internal/analyzer"
	"github.com/akeller/revu/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server (stdio)",
	Long: `Start an MCP server over stdio that exposes review analysis as tools.

Tools: revu_analyze_review (single review), revu_review_report (batch
analysis with a full report). Intended for use by MCP-capable clients.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newGenerator()
		if err != nil {
			return err
		}

		a := analyzer.New(gen, viper.GetFloat64("temperature"))
		srv := mcp.NewServer(a)
		return srv.ServeStdio(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
