package models

// Raster is the decoded chart image as normalized RGB: one float64
// triple per pixel, each channel in [0,1]. It is immutable once a
// session adopts it; any alpha channel is dropped at decode time.
type Raster struct {
	width  int
	height int
	pix    []float64 // row-major, 3 channels per pixel
}

func NewRaster(width, height int) *Raster {
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]float64, width*height*3),
	}
}

func (r *Raster) Width() int  { return r.width }
func (r *Raster) Height() int { return r.height }

// At returns the normalized RGB triple at column x, row y.
func (r *Raster) At(x, y int) (float64, float64, float64) {
	i := (y*r.width + x) * 3
	return r.pix[i], r.pix[i+1], r.pix[i+2]
}

// Set stores a normalized RGB triple. Only the loader and tests build
// rasters; sessions treat them as read-only.
func (r *Raster) Set(x, y int, red, green, blue float64) {
	i := (y*r.width + x) * 3
	r.pix[i] = red
	r.pix[i+1] = green
	r.pix[i+2] = blue
}
