// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Positional URL argument plus -version, -debug, -scale, -fps, -chrome

package main

import (
	"flag"
	"fmt"
)

type cliArgs struct {
	version bool
	debug   bool
	scale   int
	fps     int
	chrome  string
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.version, "version", false, "Show version and exit")
	flag.BoolVar(&args.debug, "debug", false, "Enable debug logging")
	flag.IntVar(&args.scale, "scale", 0, "Source pixels per terminal cell (default 8)")
	flag.IntVar(&args.fps, "fps", 0, "Target render updates per second (default 30)")
	flag.StringVar(&args.chrome, "chrome", "", "Path to the Chrome/Chromium binary")

	flag.Usage = usage
	flag.Parse()
	return args
}

// url returns the positional URL argument, or "" when none was given.
func (a cliArgs) url() string {
	if flag.NArg() == 0 {
		return ""
	}
	return flag.Arg(0)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: trome [flags] <url>\n\n")
	flag.PrintDefaults()
}
