package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	xgxreport "github.com/xgx-io/xgx-report"
	"github.com/xgx-io/xgx-report/internal/chainspec"
	"github.com/xgx-io/xgx-report/internal/config"
	"github.com/xgx-io/xgx-report/internal/log"
)

var renderFile string

var renderCmd = &cobra.Command{
	Use:   "render [flags] <root message> [cause message...]",
	Short: "render a chain of messages as an error report",
	Long: `render builds an error chain from its arguments, or from --file, and
prints the report to stdout. The first message is the root error and every
following message is the cause of the one before it.

Arguments may contain \n escapes for multi-line messages. In a file, messages
are separated by a line holding only "--".`,
	Example: `  xgxreport render "db error" "connection reset" "socket closed"
  xgxreport render --file chain.txt
  xgxreport render --alternate "config invalid" "missing field name"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(viper.GetViper())
		if err != nil {
			return xgxreport.Wrap(err, "invalid settings")
		}

		msgs, err := readMessages(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		return runRender(cmd.OutOrStdout(), msgs, settings)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "read messages from a file, - for stdin")
	renderCmd.Flags().BoolP("alternate", "a", false, "dump the error structure instead of the report")
	renderCmd.Flags().Int("max-depth", 0, "list at most this many causes (0 for no practical limit)")

	_ = viper.BindPFlag(config.KeyAlternate, renderCmd.Flags().Lookup("alternate"))
	_ = viper.BindPFlag(config.KeyMaxDepth, renderCmd.Flags().Lookup("max-depth"))

	rootCmd.AddCommand(renderCmd)
}

func readMessages(stdin io.Reader, args []string) ([]string, error) {
	if renderFile == "" {
		return chainspec.FromArgs(args), nil
	}
	if len(args) > 0 {
		log.Warn().Int("args", len(args)).Msg("ignoring arguments, messages come from --file")
	}
	if renderFile == "-" {
		return chainspec.Parse(stdin)
	}
	f, err := os.Open(renderFile)
	if err != nil {
		return nil, xgxreport.Wrapf(err, "opening %s", renderFile)
	}
	defer f.Close()
	return chainspec.Parse(f)
}

// runRender builds the chain for msgs and writes its report to w.
func runRender(w io.Writer, msgs []string, settings *config.Settings) error {
	report, err := chainspec.Build(msgs)
	if err != nil {
		return err
	}
	log.Debug().
		Int("depth", xgxreport.Depth(report)).
		Bool("numbered", xgxreport.Numbered(report)).
		Bool("alternate", settings.Alternate).
		Msg("rendering")

	report = report.WithHandler(xgxreport.Minimal{MaxDepth: settings.MaxDepth})
	if err := report.Render(w, settings.Alternate); err != nil {
		return xgxreport.Wrap(err, "writing report")
	}
	_, err = io.WriteString(w, "\n")
	return err
}
