package debug

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/valerio/go-tileblit/tileblit/display"
	"github.com/valerio/go-tileblit/tileblit/video"
)

// TakeSnapshot handles the snapshot key for backends
func TakeSnapshot(frame *video.FrameBuffer, mode string) {
	if frame == nil {
		slog.Warn("No frame data available for snapshot")
		return
	}

	baseName := fmt.Sprintf("tileblit_snapshot_%s", mode)
	if _, err := SaveFramePNGToDir(frame, baseName, ""); err != nil {
		slog.Error("Failed to save snapshot", "error", err)
	}
}

// FrameImage converts a framebuffer into an image.RGBA
func FrameImage(frame *video.FrameBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width(), frame.Height()))
	for i, pixel := range frame.ToSlice() {
		c := video.Color(pixel)
		idx := i * display.RGBABytesPerPixel
		img.Pix[idx] = c.R()
		img.Pix[idx+1] = c.G()
		img.Pix[idx+2] = c.B()
		img.Pix[idx+3] = c.A()
	}
	return img
}

// SaveFramePNGToDir saves a framebuffer as PNG with timestamp to a specific
// directory, or the working directory when directory is empty. It returns
// the written path.
func SaveFramePNGToDir(frame *video.FrameBuffer, baseName, directory string) (string, error) {
	img := FrameImage(frame)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.png", baseName, timestamp)

	outputDir := directory
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		outputDir = cwd
	}

	filePath := filepath.Join(outputDir, filename)
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}

	slog.Info("Snapshot saved", "path", filePath, "size", fmt.Sprintf("%dx%d", frame.Width(), frame.Height()), "format", "PNG")
	return filePath, nil
}
