package pipeline

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"carbontrace/internal/logger"
	"carbontrace/internal/models"

	"fyne.io/fyne/v2"
	"gocv.io/x/gocv"
)

// LoadedImage is the result of decoding a chart image: the standard
// library image for display plus the normalized raster the extraction
// engine scans.
type LoadedImage struct {
	Image    image.Image
	Raster   *models.Raster
	Width    int
	Height   int
	Channels int
	Format   string
}

type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	return &Loader{logger: log}
}

func (l *Loader) LoadFromReader(reader fyne.URIReadCloser) (*LoadedImage, error) {
	originalURI := reader.URI()
	uriExtension := strings.ToLower(originalURI.Extension())

	l.logger.Debug("ImageLoader", "loading image", map[string]interface{}{
		"path":      originalURI.Path(),
		"extension": uriExtension,
	})

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return l.LoadFromBytes(data, uriExtension)
}

func (l *Loader) LoadFromFile(path string) (*LoadedImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	return l.LoadFromBytes(data, strings.ToLower(filepath.Ext(path)))
}

func (l *Loader) LoadFromBytes(data []byte, format string) (*LoadedImage, error) {
	// Decode with standard library for the display image
	img, standardLibFormat, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image with standard library: %w", err)
	}

	// Decode with OpenCV for the scan raster; IMReadColor yields BGR
	// with any alpha channel already dropped
	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image with OpenCV: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, fmt.Errorf("OpenCV decoded an empty image")
	}

	rgb := gocv.NewMat()
	defer rgb.Close()
	gocv.CvtColor(mat, &rgb, gocv.ColorBGRToRGB)

	raster := rasterFromMat(&rgb)

	actualFormat := l.determineActualFormat(format, standardLibFormat)
	bounds := img.Bounds()

	loaded := &LoadedImage{
		Image:    img,
		Raster:   raster,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Channels: rgb.Channels(),
		Format:   actualFormat,
	}

	l.logger.Info("ImageLoader", "image loaded successfully", map[string]interface{}{
		"width":    loaded.Width,
		"height":   loaded.Height,
		"channels": loaded.Channels,
		"format":   actualFormat,
	})

	return loaded, nil
}

// rasterFromMat converts an 8-bit RGB Mat into the normalized [0,1]
// raster used for color comparison.
func rasterFromMat(mat *gocv.Mat) *models.Raster {
	rows := mat.Rows()
	cols := mat.Cols()
	raster := models.NewRaster(cols, rows)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			vec := mat.GetVecbAt(y, x)
			raster.Set(x, y,
				float64(vec[0])/255.0,
				float64(vec[1])/255.0,
				float64(vec[2])/255.0,
			)
		}
	}
	return raster
}

func (l *Loader) determineActualFormat(uriExtension, stdLibFormat string) string {
	switch uriExtension {
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".png":
		return "png"
	case ".bmp":
		return "bmp"
	case ".gif":
		return "gif"
	default:
		if stdLibFormat != "" {
			return stdLibFormat
		}
		return "unknown"
	}
}
