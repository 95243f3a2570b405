package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BertoldVdb/romfix/romsum"
	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

type Context struct {
	fixer *romsum.Fixer
	cfg   Config
	log   zerolog.Logger

	stdin       io.Reader
	stdout      io.Writer
	interactive bool
}

var CLI struct {
	Config     string `optional env:"ROMFIX_CONFIG" help:"TOML configuration file (default: ~/.romfix/config.toml)."`
	LogLevel   int    `optional default:"-1" help:"Higher values give more output."`
	ScanWindow int    `optional type:"int" help:"Bytes before the end of a region that are searched for the checksum cell."`

	Fix    FixCmd    `cmd help:"Repair the checksum of a patched image."`
	Watch  WatchCmd  `cmd help:"Repair a patched image every time it is written."`
	Detect DetectCmd `cmd help:"Detect the checksum scheme of an image."`
	Points PointsCmd `cmd help:"Show the drift injection points of an image."`
	Sum    SumCmd    `cmd help:"Print word sums and fingerprints of images."`

	ListRegions ListRegionsCmd `cmd help:"List the memory regions of an image."`
	Dump        DumpCmd        `cmd help:"Dump a memory region of an image."`
	Diff        DiffCmd        `cmd help:"Show the differences between two images."`
}

func main() {
	k, err := kong.New(&CLI,
		kong.Name("romfix"),
		kong.Description("Checksum fixer for patched ECU ROM images."),
		kong.NamedMapper("int", intMapper{}),
		kong.NamedMapper("hex", intMapper{base: 16}))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		return
	}

	log := newLogger(os.Stderr)

	cfg, err := loadConfig(CLI.Config)
	if err != nil {
		log.Error().Err(err).Msg("load config")
		os.Exit(1)
	}
	if CLI.LogLevel >= 0 {
		cfg.LogLevel = CLI.LogLevel
	}
	if CLI.ScanWindow != 0 {
		cfg.ScanWindow = CLI.ScanWindow
	}

	fixer, err := romsum.New(romsum.Config{
		StartOffsets: cfg.StartOffsets,
		ScanWindow:   cfg.ScanWindow,
		LogFunc:      libraryLogFunc(log, cfg.LogLevel),
	})
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	c := &Context{
		fixer: fixer,
		cfg:   cfg,
		log:   log,

		stdin:       os.Stdin,
		stdout:      os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
	}

	err = ctx.Run(c)
	ctx.FatalIfErrorf(err)
}
