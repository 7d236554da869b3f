package main

import (
	"io/ioutil"
	"log"
	"os"
	"os/signal"

	"github.com/bodgit/isotile"
	"github.com/bodgit/isotile/diamond"
	"github.com/urfave/cli/v2"
)

const defaultOutput = "out"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func sliceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			EnvVars: []string{"ISOTILE_CONFIG"},
			Usage:   "path to YAML configuration",
		},
		&cli.IntFlag{
			Name:  "width",
			Value: isotile.DefaultTileWidth,
			Usage: "tile width in pixels",
		},
		&cli.IntFlag{
			Name:  "height",
			Value: isotile.DefaultTileHeight,
			Usage: "tile height in pixels",
		},
		&cli.StringFlag{
			Name:  "background",
			Value: "transparent",
			Usage: "background color, #rrggbb, #rrggbbaa or transparent",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   defaultOutput,
			Usage:   "output directory",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: isotile.DefaultFilenameFormat,
			Usage: "tile filename format, given the tile number",
		},
		&cli.IntFlag{
			Name:  "start",
			Usage: "number of the first tile",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "number of rows sliced concurrently (default: number of CPUs)",
		},
		&cli.IntFlag{
			Name:  "colors",
			Usage: "reduce each tile to a palette of at most this many colors",
		},
		&cli.StringFlag{
			Name:  "catalog",
			Usage: "also record tiles in this SQLite database",
		},
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func config(c *cli.Context) (isotile.Config, error) {
	cfg := isotile.DefaultConfig()
	if file := c.String("config"); file != "" {
		var err error
		if cfg, err = isotile.LoadConfig(file); err != nil {
			return cfg, err
		}
	}

	if c.IsSet("width") {
		cfg.TileWidth = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.TileHeight = c.Int("height")
	}
	if c.IsSet("background") {
		bg, err := isotile.ParseColor(c.String("background"))
		if err != nil {
			return cfg, err
		}
		cfg.Background = bg
	}
	if c.IsSet("format") {
		cfg.FilenameFormat = c.String("format")
	}
	if c.IsSet("start") {
		cfg.StartIndex = c.Int("start")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}

	return cfg, cfg.Validate()
}

type job struct {
	slicer  *isotile.Slicer
	writer  *isotile.Writer
	catalog string
	logger  *log.Logger
}

func newJob(c *cli.Context) (*job, error) {
	logger := newLogger(c)

	cfg, err := config(c)
	if err != nil {
		return nil, err
	}

	s, err := isotile.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	w, err := isotile.NewWriter(c.String("output"), c.Int("colors"), logger)
	if err != nil {
		return nil, err
	}

	return &job{
		slicer:  s,
		writer:  w,
		catalog: c.String("catalog"),
		logger:  logger,
	}, nil
}

func (j *job) run(file string) error {
	tiles, l, err := j.slicer.Process(file, j.writer)
	if err != nil {
		return err
	}

	if j.catalog != "" {
		db, err := isotile.NewTileDB(j.catalog)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Import(tiles, l, j.writer); err != nil {
			return err
		}
	}

	j.logger.Printf("Sliced %s into %d tiles\n", file, len(tiles))

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "isotile"
	app.Usage = "Isometric diamond tile slicer"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "slice",
			Usage:       "Slice an image into diamond tiles",
			Description: "",
			ArgsUsage:   "IMAGE",
			Flags:       sliceFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				j, err := newJob(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := j.run(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "grid",
			Usage:       "Write the tile outline used to check alignment",
			Description: "",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "width",
					Value: isotile.DefaultTileWidth,
					Usage: "tile width in pixels",
				},
				&cli.IntFlag{
					Name:  "height",
					Value: isotile.DefaultTileHeight,
					Usage: "tile height in pixels",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   defaultOutput,
					Usage:   "output directory",
				},
			},
			Action: func(c *cli.Context) error {
				cfg := isotile.DefaultConfig()
				cfg.TileWidth, cfg.TileHeight = c.Int("width"), c.Int("height")
				if err := cfg.Validate(); err != nil {
					return cli.NewExitError(err, 1)
				}

				w, err := isotile.NewWriter(c.String("output"), 0, newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := w.SaveGrid(diamond.New(cfg.TileWidth, cfg.TileHeight).Outline(isotile.GridColor)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "watch",
			Usage:       "Slice an image again every time it changes",
			Description: "",
			ArgsUsage:   "IMAGE",
			Flags:       sliceFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				j, err := newJob(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				file := c.Args().First()
				if err := j.run(file); err != nil {
					log.Println(err)
				}

				w, err := isotile.NewWatcher(file)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer w.Close()

				sig := make(chan os.Signal, 1)
				signal.Notify(sig, os.Interrupt)

				for {
					select {
					case <-w.Events:
						if err := j.run(file); err != nil {
							log.Println(err)
						}
					case err := <-w.Errors:
						return cli.NewExitError(err, 1)
					case <-sig:
						return nil
					}
				}
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
