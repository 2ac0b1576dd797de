// Package main runs rover perception over recorded camera frames from the command line.
package main

import (
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"go.viam.com/rover/dataset"
	"go.viam.com/rover/logging"
	"go.viam.com/rover/perception"
	"go.viam.com/rover/referenceframe"
	"go.viam.com/rover/rimage"
	"go.viam.com/rover/utils"
	"go.viam.com/rover/vision/terrain"
)

const (
	// Flags.
	flagConfig      = "config"
	flagDebug       = "debug"
	flagOutDir      = "out-dir"
	flagFrame       = "frame"
	flagX           = "x"
	flagY           = "y"
	flagYaw         = "yaw"
	flagLog         = "log"
	flagBearingPlot = "bearing-plot"
	flagMapZoom     = "map-zoom"

	overlayFile   = "overlay.png"
	rectifiedFile = "rectified.png"
	worldMapFile  = "worldmap.png"
)

func main() {
	if err := realMain(os.Args[1:]); err != nil {
		logging.Global().Fatal(err)
	}
}

func realMain(args []string) error {
	logger := logging.NewLogger("perceive")
	defer func() {
		//nolint:errcheck
		logger.Sync()
	}()

	app := &cli.App{
		Name:  "perceive",
		Usage: "classify rover camera frames and map them onto the world grid",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load perception settings from JSON `FILE`",
			},
			&cli.StringFlag{
				Name:  flagOutDir,
				Value: ".",
				Usage: "write images to `DIR`",
			},
			&cli.IntFlag{
				Name:  flagMapZoom,
				Value: 1,
				Usage: "draw each world cell as an `N`xN block in " + worldMapFile,
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = logging.NewDebugLogger("perceive")
			}
			if zoom := c.Int(flagMapZoom); zoom < 1 {
				return errors.Errorf("--%s must be at least 1 but is %d", flagMapZoom, zoom)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "step",
				Usage:     "run perception on one frame",
				UsageText: "perceive step --frame robocam.jpg --x 99.7 --y 85.6 --yaw 56.8",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagFrame, Required: true, Usage: "camera `IMAGE` to classify"},
					&cli.Float64Flag{Name: flagX, Usage: "world x of the rover"},
					&cli.Float64Flag{Name: flagY, Usage: "world y of the rover"},
					&cli.Float64Flag{Name: flagYaw, Usage: "heading of the rover in degrees"},
				},
				Action: func(c *cli.Context) error {
					return stepAction(c, logger)
				},
			},
			{
				Name:  "replay",
				Usage: "run perception over every frame of a recorded telemetry log",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagLog, Required: true, Usage: "simulator telemetry `CSV`"},
					&cli.StringFlag{Name: flagBearingPlot, Usage: "also plot a histogram of navigable bearings to `PNG`"},
				},
				Action: func(c *cli.Context) error {
					return replayAction(c, logger)
				},
			},
		},
	}
	return app.Run(append([]string{"perceive"}, args...))
}

func newPerceiver(c *cli.Context, logger logging.Logger) (*perception.Perceiver, error) {
	var cfg *perception.Config
	if path := c.String(flagConfig); path != "" {
		var err error
		if cfg, err = perception.ReadConfigFile(path); err != nil {
			return nil, err
		}
	}
	p, err := perception.NewPerceiver(cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Infow("perception ready", "run", p.RunID().String(), "world_size", p.WorldSize(), "scale", p.Scale())
	return p, nil
}

func stepAction(c *cli.Context, logger logging.Logger) error {
	p, err := newPerceiver(c, logger)
	if err != nil {
		return err
	}
	frame, err := rimage.ReadImageFromFile(c.String(flagFrame))
	if err != nil {
		return err
	}
	worldMap, err := p.NewWorldMap()
	if err != nil {
		return err
	}
	pose := referenceframe.NewPose(c.Float64(flagX), c.Float64(flagY), c.Float64(flagYaw))
	res, err := p.Step(c.Context, frame, pose, worldMap)
	if err != nil {
		return err
	}
	logSteering(logger, res)

	return writeImages(c.String(flagOutDir), map[string]image.Image{
		overlayFile:   res.Overlay.Image(),
		rectifiedFile: res.Rectified,
		worldMapFile:  zoomMap(worldMap.Image(), c.Int(flagMapZoom)),
	})
}

func replayAction(c *cli.Context, logger logging.Logger) error {
	entries, err := dataset.ReadLogFile(c.String(flagLog))
	if err != nil {
		return err
	}
	p, err := newPerceiver(c, logger)
	if err != nil {
		return err
	}
	worldMap, err := p.NewWorldMap()
	if err != nil {
		return err
	}

	var bearings []float64
	skipped := 0
	for _, entry := range entries {
		if err := c.Context.Err(); err != nil {
			return err
		}
		frame, err := rimage.ReadImageFromFile(entry.ImagePath)
		if err != nil {
			logger.Warnw("cannot read frame", "path", entry.ImagePath, "error", err)
			skipped++
			continue
		}
		res, err := p.Step(c.Context, frame, entry.Pose, worldMap)
		if err != nil {
			skipped++
			continue
		}
		logSteering(logger, res)
		for _, angle := range res.Navigable.Angles {
			bearings = append(bearings, utils.RadToDeg(angle))
		}
	}
	logger.Infow("replay done", "frames", p.Frames(), "skipped", skipped, "navigable_cells", worldMap.Total(terrain.Navigable))

	if path := c.String(flagBearingPlot); path != "" {
		if err := plotBearings(bearings, path); err != nil {
			return err
		}
	}
	return writeImages(c.String(flagOutDir), map[string]image.Image{
		worldMapFile: zoomMap(worldMap.Image(), c.Int(flagMapZoom)),
	})
}

func logSteering(logger logging.Logger, res *perception.Result) {
	angle, ok := res.Navigable.MeanAngle()
	if !ok {
		logger.Infow("no navigable terrain", "frame", res.Frame)
		return
	}
	dist, _ := res.Navigable.MeanDistance()
	logger.Infow("navigable terrain",
		"frame", res.Frame,
		"mean_bearing_deg", utils.RadToDeg(angle),
		"mean_distance", dist,
		"rocks", res.Rock.Len(),
	)
}

// zoomMap scales a rendered world map up without blending neighbouring cells.
func zoomMap(img *image.NRGBA, zoom int) image.Image {
	if zoom <= 1 {
		return img
	}
	size := img.Bounds().Size()
	return imaging.Resize(img, size.X*zoom, size.Y*zoom, imaging.NearestNeighbor)
}

// writeImages writes every image into dir, keyed by file name, and reports every failure.
func writeImages(dir string, images map[string]image.Image) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	var errs error
	for name, img := range images {
		errs = multierr.Append(errs, rimage.WriteImageToFile(filepath.Join(dir, name), img))
	}
	return errs
}
