// Command relief bakes an embossed decal into a product photo, or extracts
// a normal map from an image.
//
// Usage:
//
//	relief apply --base pot.jpg --mask logo.png -o out.png
//	relief apply --base pot.jpg --text "Fern & Co" --config soft.yaml -o out.png
//	relief normalmap --in logo.png --size 512 -o normal.png
package main

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
	"github.com/spf13/pflag"

	"github.com/gogpu/relief"
	"github.com/gogpu/relief/internal/decal"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return errors.New("missing command")
	}
	switch args[0] {
	case "apply":
		return runApply(args[1:])
	case "normalmap":
		return runNormalMap(args[1:])
	case "-h", "--help", "help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `relief: emboss decals into raster images.

Commands:
  apply       shade a base image with an embossed mask or text label
  normalmap   extract a tangent-space normal map from an image

Run "relief <command> --help" for the flags of a command.
`)
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	relief.SetLogger(logger)
}

func runApply(args []string) error {
	var (
		basePath   string
		maskPath   string
		label      string
		fontSize   float64
		configPath string
		outPath    string
		workers    int
		verbose    bool
	)

	fs := pflag.NewFlagSet("relief apply", pflag.ContinueOnError)
	fs.StringVar(&basePath, "base", "", "base image (any format imaging can decode)")
	fs.StringVar(&maskPath, "mask", "", "decal mask image; alpha marks the decal")
	fs.StringVar(&label, "text", "", "render this label as the mask instead of --mask")
	fs.Float64Var(&fontSize, "font-size", 0, "label font size in pixels (default: a quarter of the base height)")
	fs.StringVar(&configPath, "config", "", "YAML config preset")
	fs.StringVarP(&outPath, "out", "o", "relief.png", "output file")
	fs.IntVar(&workers, "workers", 0, "parallel workers (0 = GOMAXPROCS, -1 = serial)")
	fs.BoolVarP(&verbose, "verbose", "v", false, "log stage timings")
	bevel := fs.Int("bevel", relief.DefaultBevelPx, "bevel width in pixels")
	strength := fs.Float64("strength", relief.DefaultStrength, "bevel slope multiplier")
	ao := fs.Float64("ao", relief.DefaultAO, "ambient occlusion in [0, 1]")
	depth := fs.Int("depth", 0, "edge highlight offset in pixels (0 = auto)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if basePath == "" {
		return errors.New("apply: --base is required")
	}
	if (maskPath == "") == (label == "") {
		return errors.New("apply: exactly one of --mask and --text is required")
	}
	setupLogging(verbose)

	cfg := relief.DefaultConfig()
	if configPath != "" {
		loaded, err := relief.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if fs.Changed("bevel") {
		cfg.BevelPx = *bevel
	}
	if fs.Changed("strength") {
		cfg.Strength = *strength
	}
	if fs.Changed("ao") {
		cfg.AO = *ao
	}
	if fs.Changed("depth") {
		cfg.DepthPx = *depth
	}

	baseImg, err := imaging.Open(basePath, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("apply: open base: %w", err)
	}
	base := relief.FromImage(baseImg)

	maskImg, err := loadMask(maskPath, label, fontSize, base.Size())
	if err != nil {
		return err
	}
	mask := relief.FromImage(maskImg)

	var opts []relief.Option
	if workers >= 0 {
		opts = append(opts, relief.WithWorkers(workers))
	}
	r := relief.New(opts...)
	defer r.Close()

	if err := r.Apply(base, mask, cfg); err != nil {
		return fmt.Errorf("apply: %w", err)
	}
	if err := imaging.Save(base, outPath); err != nil {
		return fmt.Errorf("apply: save: %w", err)
	}
	slog.Info("wrote relief", "path", outPath, "width", base.Width(), "height", base.Height())
	return nil
}

// loadMask returns the decal mask at the base size. File masks of another
// size are stretched to fit.
func loadMask(path, label string, fontSize float64, size image.Point) (image.Image, error) {
	if label != "" {
		if fontSize <= 0 {
			fontSize = float64(size.Y) / 4
		}
		img, err := decal.RenderText(size.X, size.Y, label, decal.TextOptions{SizePx: fontSize})
		if err != nil {
			return nil, fmt.Errorf("apply: render label: %w", err)
		}
		return img, nil
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("apply: open mask: %w", err)
	}
	if img.Bounds().Size() != size {
		relief.Logger().Debug("resizing mask", "from", img.Bounds().Size(), "to", size)
		img = imaging.Resize(img, size.X, size.Y, imaging.Lanczos)
	}
	return decal.ToMask(img), nil
}

func runNormalMap(args []string) error {
	var (
		inPath  string
		outPath string
		verbose bool
	)
	defaults := relief.DefaultNormalMapOptions()

	fs := pflag.NewFlagSet("relief normalmap", pflag.ContinueOnError)
	fs.StringVar(&inPath, "in", "", "source image")
	fs.StringVarP(&outPath, "out", "o", "normal.png", "output file")
	fs.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	size := fs.Int("size", defaults.Size, "resample to size x size (0 = keep)")
	blur := fs.Float64("blur", defaults.BlurRadius, "Gaussian sigma before the gradient")
	strength := fs.Float64("strength", defaults.Strength, "gradient strength")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if inPath == "" {
		return errors.New("normalmap: --in is required")
	}
	setupLogging(verbose)

	img, err := imaging.Open(inPath, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("normalmap: open: %w", err)
	}

	r := relief.New(relief.WithWorkers(0))
	defer r.Close()

	out, err := r.BuildNormalMap(relief.FromImage(img), relief.NormalMapOptions{
		Size:       *size,
		BlurRadius: *blur,
		Strength:   *strength,
	})
	if err != nil {
		return fmt.Errorf("normalmap: %w", err)
	}
	if err := imaging.Save(out, outPath); err != nil {
		return fmt.Errorf("normalmap: save: %w", err)
	}
	return nil
}
