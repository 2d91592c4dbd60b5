package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"net/http"

	"github.com/coder/websocket"

	mandel "github.com/SimonWaldherr/bbmandelbrot"
)

// renderHandler handles the http ws endpoint. Each accepted connection gets
// a fresh render of the configured viewport streamed to it band by band.
func renderHandler(dims mandel.Dimensions, view mandel.Viewport, workers int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		log.Printf("got connection from: %s", r.RemoteAddr)
		if err := streamRender(r.Context(), c, dims, view, workers); err != nil {
			log.Printf("err: stream to %q: %v", r.RemoteAddr, err)
			return
		}
		c.Close(websocket.StatusNormalClosure, "render complete")
	}
}

// streamRender renders the viewport and forwards every finished band to the
// websocket. The first frame carries the image dimensions as two big-endian
// uint32; each following frame is one band. A final zero-row frame tells
// the client the render is complete.
func streamRender(ctx context.Context, c *websocket.Conn, dims mandel.Dimensions, view mandel.Viewport, workers int) error {
	dimsFrame := make([]byte, 8)
	binary.BigEndian.PutUint32(dimsFrame[0:4], uint32(dims.Width))
	binary.BigEndian.PutUint32(dimsFrame[4:8], uint32(dims.Height))
	if err := c.Write(ctx, websocket.MessageBinary, dimsFrame); err != nil {
		return fmt.Errorf("write dimensions frame: %w", err)
	}

	pix := make([]byte, dims.Width*dims.Height)
	bands := make(chan mandel.Band)
	go func() {
		mandel.Render(pix, dims, view, workers, func(b mandel.Band) { bands <- b })
		close(bands)
	}()

	var writeErr error
	for b := range bands {
		if writeErr != nil {
			continue // keep draining so the render's callbacks don't block
		}
		if err := c.Write(ctx, websocket.MessageBinary, bandFrame(pix, b)); err != nil {
			writeErr = fmt.Errorf("write band frame: %w", err)
		}
	}
	if writeErr != nil {
		return writeErr
	}

	end := bandFrame(pix, mandel.Band{Width: dims.Width})
	if err := c.Write(ctx, websocket.MessageBinary, end); err != nil {
		return fmt.Errorf("write end frame: %w", err)
	}
	return nil
}

// bandFrame encodes one finished band: a 12 byte header holding top, rows
// and width as big-endian uint32, followed by the band's slice of the pixel
// buffer.
func bandFrame(pix []byte, b mandel.Band) []byte {
	frame := make([]byte, 12+b.Rows*b.Width)
	binary.BigEndian.PutUint32(frame[0:4], uint32(b.Top))
	binary.BigEndian.PutUint32(frame[4:8], uint32(b.Rows))
	binary.BigEndian.PutUint32(frame[8:12], uint32(b.Width))
	copy(frame[12:], pix[b.Top*b.Width:(b.Top+b.Rows)*b.Width])
	return frame
}
