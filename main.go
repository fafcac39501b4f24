package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/imageio"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Config holds the parsed command line
type Config struct {
	SceneType       string
	Width           int
	SamplesPerPixel int
	MaxDepth        int
	Seed            uint
	NumWorkers      int
	Output          string
	Help            bool
}

func main() {
	config, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		config.Help = true
	} else if err != nil {
		os.Exit(2)
	}

	if config.Help {
		showHelp(os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := renderer.NewDefaultLogger(os.Stderr)
	if err := run(ctx, config, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet registers every command line flag against config
func newFlagSet(config *Config, errOut io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.StringVar(&config.SceneType, "scene", "default", "Scene type: "+fmt.Sprint(scene.Names()))
	fs.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default); height follows the aspect ratio")
	fs.IntVar(&config.SamplesPerPixel, "spp", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&config.MaxDepth, "depth", -1, "Maximum bounce depth (-1 = scene default)")
	fs.UintVar(&config.Seed, "seed", 0, "Random seed (0 = seed from the clock)")
	fs.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = use CPU count)")
	fs.StringVar(&config.Output, "output", "", "Output file (.ppm or .png), '-' for PPM on stdout (default output/<scene>/render_<timestamp>.png)")
	fs.BoolVar(&config.Help, "help", false, "Show help information")
	return fs
}

func parseFlags(args []string, errOut io.Writer) (Config, error) {
	var config Config
	if err := newFlagSet(&config, errOut).Parse(args); err != nil {
		return Config{}, err
	}
	return config, nil
}

func showHelp(w io.Writer) {
	fmt.Fprintln(w, "Weekend Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	newFlagSet(&Config{}, w).PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	fmt.Fprintln(w, "  default    - Random field of small spheres around three large ones")
	fmt.Fprintln(w, "  simple     - One diffuse sphere on a large ground sphere")
	fmt.Fprintln(w, "  materials  - Glass, diffuse and metal spheres side by side")
	fmt.Fprintln(w, "  spheregrid - Grid of metal spheres over a plane")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Progress is logged to stderr; use -output - to pipe a PPM image.")
}

// getSystemInfo describes the host CPU and memory for the render log
func getSystemInfo() (string, error) {
	cpuInfo, err := cpu.Info()
	if err != nil {
		return "", fmt.Errorf("cpu info: %w", err)
	}
	if len(cpuInfo) == 0 {
		return "", errors.New("no CPU information available")
	}
	logical, err := cpu.Counts(true)
	if err != nil {
		return "", fmt.Errorf("cpu count: %w", err)
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return "", fmt.Errorf("memory info: %w", err)
	}
	totalRAM := float64(memInfo.Total) / (1024 * 1024 * 1024)

	return fmt.Sprintf("%s, %d logical cores, %.1f GB RAM", cpuInfo[0].ModelName, logical, totalRAM), nil
}

// createScene builds a named scene, applying the width override
func createScene(sceneType string, seed uint32, width int) (*scene.Scene, error) {
	return scene.New(sceneType, scene.Options{Width: width, Seed: seed})
}

// run renders the configured scene and saves it
func run(ctx context.Context, config Config, logger core.Logger) error {
	seed := uint32(config.Seed)
	if seed == 0 {
		seed = core.NewRandFromTime().Next()
	}
	logger.Printf("Starting Weekend Raytracer (scene %s, seed %d)...\n", config.SceneType, seed)
	if info, err := getSystemInfo(); err != nil {
		logger.Printf("System info unavailable: %v\n", err)
	} else {
		logger.Printf("Host: %s\n", info)
	}

	selectedScene, err := createScene(config.SceneType, seed, config.Width)
	if err != nil {
		return err
	}
	if config.SamplesPerPixel > 0 {
		selectedScene.SamplingConfig.SamplesPerPixel = config.SamplesPerPixel
	}
	if config.MaxDepth >= 0 {
		selectedScene.SamplingConfig.MaxDepth = config.MaxDepth
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, renderer.Options{
		NumWorkers: config.NumWorkers,
		Seed:       seed,
	}, logger)
	if err != nil {
		return err
	}

	frame, stats, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}
	logger.Printf("Samples per pixel: %.1f over %d rows with %d workers\n",
		stats.AverageSamples, stats.Rows, stats.Workers)

	output := config.Output
	if output == "" {
		timestamp := time.Now().Format("20060102_150405")
		output = filepath.Join("output", config.SceneType, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := imageio.Save(output, frame); err != nil {
		if errors.Is(err, imageio.ErrUnsupportedFormat) {
			return fmt.Errorf("%w (use .ppm, .png or -)", err)
		}
		return err
	}

	if output != imageio.StdoutPath {
		logger.Printf("Render saved as %s\n", output)
	}
	return nil
}
