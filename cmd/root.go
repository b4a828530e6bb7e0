package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/ftahirops/maascheck/maas"
)

// Version is set at build time via ldflags.
var Version = "0.2.0"

func printUsage() {
	fmt.Fprintf(os.Stderr, `maascheck v%s — hardware compliance audit for MAAS-managed fleets

Usage:
  maascheck <command> [OPTIONS] <profile>

Commands:
  disks             Audit storage policy: boot disk must be a 1TB+ SSD,
                    plus at least one additional 1TB+ SSD
  nics              Audit network policy: at least 3 physically connected
                    (non-VLAN) interfaces

Options (both commands):
  -tag NAME         Only audit machines carrying this MAAS tag
  -hostname NAME    Only audit the machine with this hostname
  -tui              Browse per-machine results in an interactive TUI

Positional:
  profile           Logged-in MAAS CLI profile name (required)

Examples:
  maascheck disks prod
  maascheck disks -tag storage prod
  maascheck nics prod
  maascheck nics -hostname rack3-node7 prod
  maascheck disks -tui prod
  maascheck -version
`, Version)
}

// Run parses the command line and dispatches to an analyzer.
func Run() error {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "-version", "--version", "version":
		fmt.Printf("maascheck v%s\n", Version)
		return nil
	case "-h", "-help", "--help", "help":
		printUsage()
		return nil
	case "disks":
		opts, err := parseAnalyzerArgs("disks", args[1:])
		if err != nil {
			return err
		}
		return runDisks(opts)
	case "nics":
		opts, err := parseAnalyzerArgs("nics", args[1:])
		if err != nil {
			return err
		}
		return runNICs(opts)
	}

	fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
	printUsage()
	os.Exit(1)
	return nil
}

// options holds the per-analyzer command line.
type options struct {
	query maas.Query
	tui   bool
}

func parseAnalyzerArgs(name string, args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&opts.query.Tag, "tag", "", "Filter by tag (optional)")
	fs.StringVar(&opts.query.Hostname, "hostname", "", "Filter by hostname (optional)")
	fs.BoolVar(&opts.tui, "tui", false, "Browse results in an interactive TUI")
	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() < 1 {
		return opts, fmt.Errorf("%s: missing MAAS profile name", name)
	}
	opts.query.Profile = fs.Arg(0)
	return opts, nil
}
