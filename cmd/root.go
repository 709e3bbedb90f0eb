package cmd

import (
	"promptpack/pkg/clipboard"
	"promptpack/pkg/logging"
	"promptpack/pkg/pack"
	"promptpack/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootLogger *zap.Logger

var (
	debug       bool
	output      string
	noClipboard bool
)

// RootCmd is the base command. Running it with one or more paths renders
// the file map and file contents for those paths and copies the result.
var RootCmd = &cobra.Command{
	Use:   "promptpack <path> [<path> ...]",
	Short: "promptpack copies a file tree and file contents to the clipboard",
	Long: `promptpack walks the given files and directories and builds a single
prompt-ready artifact: a <file_map> tree section followed by a
<file_contents> section, placed on the system clipboard.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := rootLogger
		if debug {
			if dev, err := logging.New(true, "promptpack", version.Get().Version); err == nil {
				logger = dev
				defer dev.Sync() //nolint:errcheck // best-effort flush
			}
		}

		return pack.Run(pack.Arguments{
			Paths:       args,
			Output:      output,
			NoClipboard: noClipboard,
		}, clipboard.System(), logger)
	},
}

func init() {
	RootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	RootCmd.Flags().StringVarP(&output, "output", "o", "", "Also write the artifact to a file")
	RootCmd.Flags().BoolVar(&noClipboard, "no-clipboard", false, "Skip the clipboard write")
}

// Execute runs the root command with the provided logger.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}
