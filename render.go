package mandel

import (
	"runtime"
	"sync"
)

// Band is a contiguous slice of rows of the full image together with the
// sub-rectangle of the viewport those rows cover.
type Band struct {
	Top   int // first row in the full image
	Rows  int
	Width int
	View  Viewport
}

// Bands partitions height rows into at most workers bands of
// ceil(height/workers) rows each. Bands cover every row exactly once; when
// workers exceeds the row count the surplus workers simply get no band.
// Each band's corners are computed from the full-image mapping, so the
// partition is deterministic for a given (height, workers) pair.
func Bands(dims Dimensions, v Viewport, workers int) []Band {
	rowsPerBand := (dims.Height + workers - 1) / workers
	bands := make([]Band, 0, workers)
	for top := 0; top < dims.Height; top += rowsPerBand {
		rows := rowsPerBand
		if top+rows > dims.Height {
			rows = dims.Height - top
		}
		bands = append(bands, Band{
			Top:   top,
			Rows:  rows,
			Width: dims.Width,
			View: Viewport{
				TopLeft:     PixelToPoint(dims, 0, top, v),
				BottomRight: PixelToPoint(dims, dims.Width, top+rows, v),
			},
		})
	}
	return bands
}

// RenderBand fills pix with the band's gray values. pix is the band's own
// slice of the image buffer and must hold b.Rows*b.Width bytes; the caller
// guarantees no other writer touches it. Points that escape at iteration n
// get value 255-n, points that never escape get 0.
func RenderBand(pix []byte, b Band) {
	dims := Dimensions{Width: b.Width, Height: b.Rows}
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Width; col++ {
			c := PixelToPoint(dims, col, row, b.View)
			var v byte
			if count, escaped := EscapeTime(c, MaxIter); escaped {
				v = byte(255 - count)
			}
			pix[row*b.Width+col] = v
		}
	}
}

// Render fills pix, a row-major buffer of dims.Width*dims.Height bytes,
// with a grayscale rendering of the viewport. workers goroutines render one
// band each; workers <= 0 means one per CPU. Render returns only after
// every band is complete, so the caller may read pix immediately.
//
// onBand, if non-nil, is called once per finished band. Calls come from the
// worker goroutines, so an observer that touches shared state must do its
// own locking.
func Render(pix []byte, dims Dimensions, v Viewport, workers int, onBand func(Band)) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var wg sync.WaitGroup
	for _, b := range Bands(dims, v, workers) {
		b := b
		wg.Add(1)
		go func() {
			defer wg.Done()
			RenderBand(pix[b.Top*b.Width:(b.Top+b.Rows)*b.Width], b)
			if onBand != nil {
				onBand(b)
			}
		}()
	}
	wg.Wait()
}
