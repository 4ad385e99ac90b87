// Command glyphstat lays out a string through an ArrangementCache and
// reports what the cache holds.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/glyphcache"
	"github.com/gogpu/glyphcache/text"
	"github.com/gogpu/glyphcache/text/cache"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	var (
		fontPath = flag.String("font", "", "TrueType/OpenType file (default: Go Regular)")
		size     = flag.Float64("size", 16, "font size in pixels per em")
		str      = flag.String("text", "The quick brown fox jumps over the lazy dog", "text to lay out")
		width    = flag.Int("width", 200, "layout width in pixels")
		height   = flag.Int("height", 60, "layout height in pixels")
		lines    = flag.Int("lines", 2, "maximum lines for fitted text")
		repeat   = flag.Int("repeat", 3, "number of query rounds")
		interval = flag.Duration("interval", cache.DefaultInterval, "eviction interval")
		wait     = flag.Bool("wait", false, "sleep past the interval and query once more")
		gotext   = flag.Bool("gotext", false, "shape with go-text/typesetting")
		verbose  = flag.Bool("v", false, "log cache activity")
		glyphs   = flag.Bool("glyphs", false, "print the fitted arrangement")
	)
	flag.Parse()

	if *verbose {
		glyphcache.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *gotext {
		text.SetShaper(text.NewGoTextShaper())
	}

	source, err := loadSource(*fontPath)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer func() { _ = source.Close() }()

	font := text.NewFont(source, *size)
	c := cache.New(nil, cache.WithInterval(*interval), cache.WithName("glyphstat"))
	defer c.Close()

	start := time.Now()
	for range *repeat {
		query(c, font, *str, *width, *height, *lines)
	}
	fitted := c.FittedText(font, *str, text.RectI{W: *width, H: *height}, text.Centred, *lines, 0)
	elapsed := time.Since(start)

	report(c, elapsed)
	if *glyphs {
		printGlyphs(fitted)
	}

	if *wait {
		time.Sleep(*interval + 50*time.Millisecond)
		query(c, font, *str, *width, *height, *lines)
		fmt.Println("after interval:")
		report(c, 0)
	}
}

func loadSource(path string) (*text.FontSource, error) {
	if path == "" {
		return text.NewFontSource(goregular.TTF)
	}
	return text.NewFontSourceFromFile(path)
}

// query exercises every family once.
func query(c *cache.ArrangementCache, font text.Font, s string, w, h, lines int) {
	baseline := int(font.Metrics().Ascent)
	area := text.RectI{W: w, H: h}

	c.SingleLineText(font, s, 0, baseline)
	c.MultiLineText(font, s, 0, baseline, w, text.Left, 0)
	c.Text(font, s, area.Float(), text.CentredLeft, true)
	c.FittedText(font, s, area, text.Centred, lines, 0)
}

func report(c *cache.ArrangementCache, elapsed time.Duration) {
	st := c.Stats()
	fmt.Println(c.Status())
	fmt.Printf("entries=%d fonts=%d hits=%d misses=%d hit-rate=%.2f clears=%d armed=%v\n",
		st.Len(), st.Fonts, st.Hits, st.Misses, st.HitRate(), st.Clears, st.Armed)
	if elapsed > 0 {
		fmt.Printf("elapsed=%v\n", elapsed)
	}
}

func printGlyphs(a *text.Arrangement) {
	for i, g := range a.Glyphs() {
		fmt.Printf("%3d %q x=%.2f y=%.2f w=%.2f\n", i, g.Rune, g.X, g.Y, g.Width)
	}
}
