// Package pointfile reads and writes sample points as newline-separated x,y
// decimal pairs, the format consumed by external plotters.
package pointfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"honnef.co/go/pathsample"
)

func format(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Write writes one "x,y" line per point to w.
func Write(w io.Writer, pts []pathsample.Point) error {
	cw := csv.NewWriter(w)
	rec := make([]string, 2)
	for _, pt := range pts {
		rec[0], rec[1] = format(pt.X), format(pt.Y)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the points to the named file, creating or truncating it.
func WriteFile(name string, pts []pathsample.Point) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, pts)
}

// Read parses points written by [Write].
func Read(r io.Reader) ([]pathsample.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.ReuseRecord = true
	var pts []pathsample.Point
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return pts, nil
		}
		if err != nil {
			return nil, err
		}
		x, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("pointfile: line %d: %w", len(pts)+1, err)
		}
		y, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("pointfile: line %d: %w", len(pts)+1, err)
		}
		pts = append(pts, pathsample.Pt(x, y))
	}
}
