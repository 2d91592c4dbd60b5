// mandelweb serves a live view of a Mandelbrot render. Every connected
// browser triggers its own render; finished bands are streamed over a
// websocket and drawn onto a canvas as they arrive.
package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"slices"
	"strings"
	"time"

	mandel "github.com/SimonWaldherr/bbmandelbrot"
)

//go:embed static
var static embed.FS

func main() {
	addr := flag.String("addr", ":8080", "http listen address")
	width := flag.Int("width", 1000, "image width in pixels")
	height := flag.Int("height", 750, "image height in pixels")
	region := flag.String("region", "", "named region to render; empty for the full set")
	workers := flag.Int("workers", 0, "render goroutines; 0 means one per CPU")
	flag.Parse()

	if err := run(*addr, mandel.Dimensions{Width: *width, Height: *height}, *region, *workers); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(addr string, dims mandel.Dimensions, regionName string, workers int) error {
	if dims.Width < 1 || dims.Height < 1 {
		return fmt.Errorf("resolution %dx%d: width and height must be at least 1", dims.Width, dims.Height)
	}
	view, ok := mandel.Regions[regionName]
	if !ok {
		return fmt.Errorf("unknown region %q (known regions: %s)", regionName, strings.Join(regionNames(), ", "))
	}

	staticDir, err := fs.Sub(static, "static")
	if err != nil {
		return fmt.Errorf("embedded static dir: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", renderHandler(dims, view, workers))
	mux.Handle("/", http.FileServer(http.FS(staticDir)))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("rendering %dx%d, region %q", dims.Width, dims.Height, regionName)
	log.Printf("listening on http://localhost%s", addr)
	return srv.ListenAndServe()
}

func regionNames() []string {
	names := make([]string, 0, len(mandel.Regions))
	for name := range mandel.Regions {
		if name != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
