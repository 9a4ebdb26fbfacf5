/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// fontsheet is a commandline tool for turning a TrueType font into a
// monochrome glyph sheet, and a glyph sheet into a C header:
//
//	fontsheet render -font ssfiracode.ttf -o ssfiracode.png
//	fontsheet pack -img ssfiracode.png -o firacode.h
//
// Every flag may also be set with a FONTSHEET_<FLAG> environment variable or
// in a fontsheet.env file, e.g. FONTSHEET_CELL_WIDTH=8.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/zhimiaox/fontsheet/internal/config"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: fontsheet <command> [flags]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  render   rasterize a font into a glyph sheet image")
	fmt.Fprintln(os.Stderr, "  pack     convert a glyph sheet image into a C header")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "run 'fontsheet <command> -h' for the flags of a command")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "render":
		err = runRender(os.Args[2:])
	case "pack":
		err = runPack(os.Args[2:])
	case "help", "-h", "-help", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		slog.Error("fontsheet failed", "command", os.Args[1], "err", err)
		os.Exit(1)
	}
}

// common holds the flags shared by every command.
type common struct {
	config  string
	verbose bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", config.DefaultFile, "dotenv file with FONTSHEET_* defaults")
	fs.BoolVar(&c.verbose, "v", false, "verbose logging")
}

// parse parses args, then fills the remaining flags from the environment and
// the config file, and installs the logger.
func (c *common) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	if err := config.Apply(fs, c.config, explicit, "config"); err != nil {
		return err
	}
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}
