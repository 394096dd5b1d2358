// Command wfctool is a small CLI around the overlapping WFC engine: it
// loads an input image, runs one generation attempt, and saves the result.
//
//	wfctool -m overlapping -w 48 -h 48 -W 3 -H 3 -e 1 -x -r input.png output.png
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli"

	"github.com/krychu/wfc"
	"github.com/krychu/wfc/imageio"
	"github.com/krychu/wfc/tile"
)

func main() {
	// -h is taken by --height; leave help reachable as --help only.
	cli.HelpFlag = cli.BoolFlag{Name: "help", Usage: "show help"}

	app := cli.NewApp()
	app.Name = "wfctool"
	app.Usage = "generate an image with Wave Function Collapse"
	app.ArgsUsage = "input_image output_image"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "method, m", Usage: "generation method (only \"overlapping\" is supported)"},
		cli.IntFlag{Name: "width, w", Usage: "output image width in pixels"},
		cli.IntFlag{Name: "height, h", Usage: "output image height in pixels"},
		cli.IntFlag{Name: "tile-width, W", Value: 3, Usage: "tile width in pixels"},
		cli.IntFlag{Name: "tile-height, H", Value: 3, Usage: "tile height in pixels"},
		cli.IntFlag{Name: "expand-image, e", Usage: "wrap the input toroidally before cutting tiles (0|1)"},
		cli.BoolFlag{Name: "xflip, x", Usage: "augment tiles with their horizontal mirror"},
		cli.BoolFlag{Name: "yflip, y", Usage: "augment tiles with their vertical mirror"},
		cli.BoolFlag{Name: "rotate, r", Usage: "augment tiles with their 90/180/270 degree rotations"},
		cli.Int64Flag{Name: "seed, s", Usage: "PRNG seed (unset means a time-derived seed)"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Print(err)
		if coder, ok := err.(cli.ExitCoder); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.String("method") != "overlapping" {
		return cli.NewExitError("wfctool: -m/--method=overlapping is required", 2)
	}
	if c.NArg() != 2 {
		return cli.NewExitError("wfctool: expected input_image and output_image arguments", 2)
	}
	inputPath, outputPath := c.Args().Get(0), c.Args().Get(1)

	width, height := c.Int("width"), c.Int("height")
	if width < 1 || height < 1 {
		return cli.NewExitError("wfctool: -w/--width and -h/--height must be >= 1", 2)
	}

	input, err := imageio.Load(inputPath)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("wfctool: %v", err), 3)
	}

	opts := tile.BuildOptions{
		Expand: c.Int("expand-image") != 0,
		XFlip:  c.Bool("xflip"),
		YFlip:  c.Bool("yflip"),
		Rotate: c.Bool("rotate"),
	}

	var engineOpts []wfc.Option
	if c.IsSet("seed") {
		engineOpts = append(engineOpts, wfc.WithSeed(c.Int64("seed")))
	}

	engine, err := wfc.CreateOverlapping(width, height, input, c.Int("tile-width"), c.Int("tile-height"), opts, engineOpts...)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("wfctool: %v", err), 2)
	}
	log.Printf("wfctool: built %d tiles from %s", engine.TileCount(), inputPath)

	if err := engine.Run(-1); err != nil {
		return cli.NewExitError(fmt.Sprintf("wfctool: %v", err), 4)
	}
	log.Printf("wfctool: collapsed %d cells", engine.CollapsedCount())

	if err := imageio.Save(engine.OutputImage(), outputPath); err != nil {
		return cli.NewExitError(fmt.Sprintf("wfctool: %v", err), 3)
	}
	log.Printf("wfctool: wrote %s", outputPath)
	return nil
}
