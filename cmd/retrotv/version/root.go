package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ビルド時に -ldflags "-X github.com/sobadon/retrotv/cmd/retrotv/version.version=..." で埋め込む
var version = "dev"

func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "version",
		Short: "show version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ShowVersion(cmd)
			return nil
		},
	}
	return rootCmd
}

func ShowVersion(cmd *cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", version)
}
