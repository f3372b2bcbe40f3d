package alignkit

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"alignkit/geom"
)

// LoadCSV reads a PI-method batch description and lays it out through the
// PI expansion. The first row holds the horizontal points of intersection
// interleaved with radii, `X,Y,R,...,X,Y`; every subsequent row holds one
// vertical profile as distances and heights interleaved with parabolic
// half-lengths, `D,Z,L,...,D,Z`. The first and last radius or half-length
// of each row are placeholders and discarded. Returns the number of
// segments appended; a mid-batch failure leaves the segments appended so
// far in place.
func (o *Orchestrator) LoadCSV(r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("load csv: %w", err)
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("load csv: empty input")
	}

	points, values, err := parsePIRow(rows[0])
	if err != nil {
		return 0, fmt.Errorf("load csv: row 1: %w", err)
	}
	appended, err := o.LayoutHorizontalByPI(points, values)
	if err != nil {
		return appended, fmt.Errorf("load csv: row 1: %w", err)
	}

	for i, row := range rows[1:] {
		points, values, err := parsePIRow(row)
		if err != nil {
			return appended, fmt.Errorf("load csv: row %d: %w", i+2, err)
		}
		if i > 0 {
			if _, err := o.NewVerticalProfile(); err != nil {
				return appended, fmt.Errorf("load csv: row %d: %w", i+2, err)
			}
		}
		n, err := o.LayoutVerticalByPI(points, values)
		appended += n
		if err != nil {
			return appended, fmt.Errorf("load csv: row %d: %w", i+2, err)
		}
	}
	return appended, nil
}

// parsePIRow splits a row of coordinate pairs interleaved with one scalar
// after each pair. The trailing pair may omit its scalar; missing scalars
// parse as zero.
func parsePIRow(fields []string) ([]geom.Point, []float64, error) {
	var points []geom.Point
	var values []float64
	for i := 0; i+1 < len(fields); i += 3 {
		x, err := parseField(fields[i])
		if err != nil {
			return nil, nil, err
		}
		y, err := parseField(fields[i+1])
		if err != nil {
			return nil, nil, err
		}
		v := 0.0
		if i+2 < len(fields) {
			if v, err = parseField(fields[i+2]); err != nil {
				return nil, nil, err
			}
		}
		points = append(points, geom.Pt(x, y))
		values = append(values, v)
	}
	if len(points) < 2 {
		return nil, nil, fmt.Errorf("%d points of intersection", len(points))
	}
	return points, values, nil
}

func parseField(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return v, nil
}
