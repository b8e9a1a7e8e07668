package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"macconv/internal/app"
	"macconv/internal/domain"
)

const (
	name    = "macconv"
	version = "1.0.0"
)

// Execute runs the CLI with args and returns the process exit status.
func Execute(args []string, stdout, stderr io.Writer) int {
	var (
		format domain.Format
		debug  bool
	)

	root := &cobra.Command{
		Use:           name + " [flags] <mac>",
		Short:         "normalizes and converts mac addresses.",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := app.NewWire(app.Config{Debug: debug, LogOut: cmd.ErrOrStderr()})
			w.Log.Debug().Str("version", version).Interface("format", format).Msg("starting")

			lines, err := w.Converter.Convert(args[0], format)
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	bindFormatFlags(root.Flags(), &format)
	root.Flags().BoolVar(&debug, "debug", false, "log parse details to stderr")

	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return exitCode(root.Execute(), stderr)
}

// bindFormatFlags registers the output notation flags on fs.
func bindFormatFlags(fs *pflag.FlagSet, f *domain.Format) {
	fs.BoolVarP(&f.Dashed, "dashed", "d", false, "output mac in dashed notation")
	fs.BoolVarP(&f.Colon, "colon", "c", false, "output mac in colon notation")
	fs.BoolVarP(&f.Cisco, "cisco", "w", false, "output mac in Cisco notation")
	fs.BoolVarP(&f.Caps, "caps", "C", false, "output mac using capital letters")
}
