package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pranshuparmar/portreap/internal/tui"
)

var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

// SetVersionBuildCommitString receives the ldflags-injected build metadata
// from package main.
func SetVersionBuildCommitString(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	buildDate = d
}

func versionString() string {
	s := version
	if commit != "" {
		s += fmt.Sprintf(" (%s)", commit)
	}
	if buildDate != "" {
		s += fmt.Sprintf(" built %s", buildDate)
	}
	return s
}

const keybindingHelp = `Keybindings:
  ↑/k, ↓/j   move selection
  /          search (process name, port, or address)
  enter      kill selected process (asks for confirmation)
  ctrl+k     kill selected process immediately
  esc        clear filter / cancel
  r          refresh now
  ?          toggle help
  q, ctrl+c  quit`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "portreap",
		Short:   "Interactively find and kill processes holding TCP ports",
		Long:    "portreap shows local TCP listening sockets and kills the owning process.\n\n" + keybindingHelp,
		Version: versionString(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Start(versionString())
		},
		SilenceUsage: true,
	}
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
