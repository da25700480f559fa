package parse

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	multierror "github.com/hashicorp/go-multierror"
)

// earthRadiusKM is the sphere radius used for DMS great-circle distances,
// matching the reference problem instances' TSPLIB-style geo format.
const earthRadiusKM = 6378.388

// Point is a 2D Cartesian coordinate, produced by Coord2D.
type Point struct {
	X, Y float64
}

// DMSPoint is a geographic coordinate in decimal degrees, produced by DMS.
type DMSPoint struct {
	Lat, Long float64
}

func isBlankOrComment(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, "#")
}

// DistanceMatrix parses a square matrix of whitespace-separated
// non-negative numbers, one row per line; lines that are blank or begin
// with "#" are skipped. Every malformed row is collected before returning,
// rather than failing on the first.
func DistanceMatrix(r io.Reader) (*mat.Dense, error) {
	scanner := bufio.NewScanner(r)
	var rows [][]float64
	var errs *multierror.Error

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if isBlankOrComment(line) {
			continue
		}
		fields := strings.Fields(line)
		row := make([]float64, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%w: line %d: %q: %v", ErrMalformedRow, lineNo, f, err))
				continue
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), n)
		}
	}

	m := mat.NewDense(n, n, nil)
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m, nil
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }

func dmsToDecimal(deg, min, sec float64, negative bool) float64 {
	v := deg + min/60 + sec/3600
	if negative {
		v = -v
	}
	return v
}

func greatCircleKM(a, b DMSPoint) float64 {
	lat1, long1 := degToRad(a.Lat), degToRad(a.Long)
	lat2, long2 := degToRad(b.Lat), degToRad(b.Long)
	cosAngle := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(long1-long2)
	if cosAngle > 1 {
		cosAngle = 1
	} else if cosAngle < -1 {
		cosAngle = -1
	}
	return earthRadiusKM * math.Acos(cosAngle)
}

// DMS parses a city list in "deg min sec {N|S} deg min sec {E|W}" form, one
// city per line, and returns the pairwise great-circle distance matrix on a
// sphere of radius 6378.388km alongside the parsed points.
func DMS(r io.Reader) (*mat.Dense, []DMSPoint, error) {
	scanner := bufio.NewScanner(r)
	var points []DMSPoint
	var errs *multierror.Error

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if isBlankOrComment(line) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 8 {
			errs = multierror.Append(errs, fmt.Errorf("%w: line %d: want 8 fields, got %d", ErrMalformedRow, lineNo, len(fields)))
			continue
		}

		vals := make([]float64, 6)
		bad := false
		for i, idx := range []int{0, 1, 2, 4, 5, 6} {
			v, err := strconv.ParseFloat(fields[idx], 64)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, lineNo, err))
				bad = true
				break
			}
			vals[i] = v
		}
		if bad {
			continue
		}

		hemiNS, hemiEW := fields[3], fields[7]
		if hemiNS != "N" && hemiNS != "S" {
			errs = multierror.Append(errs, fmt.Errorf("%w: line %d: hemisphere %q must be N or S", ErrMalformedRow, lineNo, hemiNS))
			continue
		}
		if hemiEW != "E" && hemiEW != "W" {
			errs = multierror.Append(errs, fmt.Errorf("%w: line %d: hemisphere %q must be E or W", ErrMalformedRow, lineNo, hemiEW))
			continue
		}

		points = append(points, DMSPoint{
			Lat:  dmsToDecimal(vals[0], vals[1], vals[2], hemiNS == "S"),
			Long: dmsToDecimal(vals[3], vals[4], vals[5], hemiEW == "W"),
		})
	}
	if err := scanner.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, nil, err
	}

	n := len(points)
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			m.Set(i, j, greatCircleKM(points[i], points[j]))
		}
	}
	return m, points, nil
}

// Coord2D parses an "x y" Cartesian point per line and returns the pairwise
// Euclidean distance matrix alongside the parsed points.
func Coord2D(r io.Reader) (*mat.Dense, []Point, error) {
	scanner := bufio.NewScanner(r)
	var points []Point
	var errs *multierror.Error

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if isBlankOrComment(line) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			errs = multierror.Append(errs, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrMalformedRow, lineNo, len(fields)))
			continue
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			errs = multierror.Append(errs, fmt.Errorf("%w: line %d", ErrMalformedRow, lineNo))
			continue
		}
		points = append(points, Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, nil, err
	}

	n := len(points)
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dx := points[i].X - points[j].X
			dy := points[i].Y - points[j].Y
			m.Set(i, j, math.Sqrt(dx*dx+dy*dy))
		}
	}
	return m, points, nil
}

// CSV parses a generic delimited grid of numbers, collecting every
// malformed cell before returning rather than failing on the first.
func CSV(r io.Reader, delimiter rune) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	var errs *multierror.Error
	out := make([][]float64, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%w: row %d col %d: %q", ErrMalformedRow, i, j, cell))
				continue
			}
			row[j] = v
		}
		out[i] = row
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}
