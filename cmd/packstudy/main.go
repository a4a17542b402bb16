// Command packstudy sweeps element widths for a given capacity and reports,
// per layout, the resulting cell count, byte size, padding and utilization.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/Longor1996/unthbuf"
)

func main() {
	var (
		capacity = flag.Int("capacity", 4096, "Element count per buffer")
		outPath  = flag.String("out", "", "Output CSV path (default: stdout)")
		quiet    = flag.Bool("quiet", false, "Suppress the human-readable summary")
	)
	flag.Parse()

	if *capacity <= 0 {
		fail("capacity must be positive")
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fail("cannot create %s: %v", *outPath, err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	writeRow(w, "width", "layout", "cells", "bytes", "padding_bits", "utilization")

	layouts := []unthbuf.CellLayout{unthbuf.Aligned, unthbuf.Packed}
	for width := uint(1); width <= unthbuf.BitsPerCell; width++ {
		bits := unthbuf.MustBits(width)
		for _, layout := range layouts {
			buf := unthbuf.New(layout, bits, *capacity)
			util := float64(*capacity*int(bits)) / float64(buf.TotalBitCount())
			writeRow(w, strconv.Itoa(int(bits)), layout.Name(),
				strconv.Itoa(buf.RawLen()),
				strconv.Itoa(buf.RawByteLen()),
				strconv.Itoa(buf.PaddingBitCount()),
				strconv.FormatFloat(util, 'f', 4, 64))
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fail("csv write: %v", err)
	}

	if !*quiet && *outPath != "" {
		summarize(*capacity)
	}
}

func summarize(capacity int) {
	for _, width := range []uint{1, 5, 11, 37, 64} {
		bits := unthbuf.MustBits(width)
		aligned := unthbuf.New(unthbuf.Aligned, bits, capacity)
		packed := unthbuf.New(unthbuf.Packed, bits, capacity)
		fmt.Printf("%2d bits × %d: aligned %s (%d padding bits), packed %s\n",
			bits, capacity,
			humanize.IBytes(uint64(aligned.RawByteLen())), aligned.PaddingBitCount(),
			humanize.IBytes(uint64(packed.RawByteLen())))
	}
}

func writeRow(w *csv.Writer, fields ...string) {
	if err := w.Write(fields); err != nil {
		fail("csv write: %v", err)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "packstudy: "+format+"\n", args...)
	os.Exit(1)
}
