package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// ErrUnsupportedFormat is returned by Save for unknown file extensions
var ErrUnsupportedFormat = errors.New("unsupported image format")

// StdoutPath makes Save write PPM to standard output
const StdoutPath = "-"

// WritePPM writes the frame as plain-text PPM (P3): a header, then one
// "r g b" line per pixel, top row first
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			r, g, b := frame.RGB8(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("write ppm pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush ppm: %w", err)
	}
	return nil
}

// WritePNG encodes the frame as PNG
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	if err := png.Encode(w, frame.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Save writes the frame to path, picking the encoder from the extension.
// Missing parent directories are created.
func Save(path string, frame *renderer.Frame) error {
	if path == StdoutPath {
		return WritePPM(os.Stdout, frame)
	}

	var write func(io.Writer, *renderer.Frame) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		write = WritePPM
	case ".png":
		write = WritePNG
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := write(file, frame); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
