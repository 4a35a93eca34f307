// Command hiccount prints the total intra- and inter-chromosomal contact
// counts of a .hic file.
//
//	hiccount <inter.hic>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nimezhu/hicstat"
	"github.com/nimezhu/hicstat/hic"
	"github.com/nimezhu/hicstat/summary"
)

const usageLine = "Usage: hiccount <inter.hic>"

var errUsage = errors.New("missing input file")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit code: 0 on
// success, 2 on a usage error and 1 on any other failure.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.InfoLevel).With().Timestamp().Logger()
	summary.SetLogger(log)
	hic.SetLogger(log.With().Str("pkg", "hic").Logger())

	root := newRootCmd(stdout)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, usageLine)
		return 2
	default:
		log.Error().Err(err).Msg("hiccount")
		return 1
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "hiccount <inter.hic>",
		Short: "Count intra- and inter-chromosomal contacts of a .hic file",
		Long: "Sums the raw contact counts of every chromosome pair at 500 kb and\n" +
			"reports the genome-wide intra- and inter-chromosomal totals.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return count(cmd.Context(), args[0], stdout)
		},
	}
}

func count(ctx context.Context, uri string, stdout io.Writer) error {
	kind, err := hicstat.Magic(uri)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", hic.ErrUnreadableFile, uri, err)
	}
	if kind != "hic" {
		return fmt.Errorf("%w: %s is %s, not hic", hic.ErrUnreadableFile, uri, kind)
	}
	h, err := hic.Open(uri)
	if err != nil {
		return err
	}
	defer h.Close()

	cfg := summary.DefaultConfig()
	cfg.Workers = runtime.GOMAXPROCS(0)
	res, err := summary.Run(ctx, summary.FromHiC(h), cfg)
	if err != nil {
		return err
	}
	return summary.WriteReport(stdout, res.Totals.Report())
}
