package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion records build information injected via ldflags.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	date = d
}

// globals are the flags every command shares.
type globals struct {
	configPath string
	verbose    bool
}

// Execute runs the salesreel CLI.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:          "salesreel",
		Short:        "salesreel renders a Zelda sales history video",
		Long:         `salesreel turns a list of game sales records into an animated video: a sword intro, one slide per game and a closing chart. It renders with ffmpeg, previews in the browser or plays in the terminal.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if g.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("salesreel %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "config file (default: salesreel.yaml or salesreel.toml if present)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd(g))
	root.AddCommand(newStillCmd(g))
	root.AddCommand(newExportCmd(g))
	root.AddCommand(newTimelineCmd(g))
	root.AddCommand(newStoryboardCmd(g))
	root.AddCommand(newServeCmd(g))
	root.AddCommand(newPlayCmd(g))
	return root
}
