package parse_test

import (
	"math"
	"strings"
	"testing"

	"github.com/milannvidia/lclgo/parse"
)

func TestDistanceMatrixParsesSquareGrid(t *testing.T) {
	input := "# comment\n0 2 5 8\n2 0 4 1\n5 4 0 7\n8 1 7 0\n"
	m, err := parse.DistanceMatrix(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DistanceMatrix: %v", err)
	}
	r, c := m.Dims()
	if r != 4 || c != 4 {
		t.Fatalf("dims = %dx%d, want 4x4", r, c)
	}
	if got := m.At(1, 3); got != 1 {
		t.Fatalf("m[1][3] = %v, want 1", got)
	}
}

func TestDistanceMatrixRejectsNonSquare(t *testing.T) {
	input := "0 2 5\n2 0 4\n"
	if _, err := parse.DistanceMatrix(strings.NewReader(input)); err == nil {
		t.Fatal("expected ErrNotSquare for a non-square grid")
	}
}

func TestDistanceMatrixAggregatesMalformedRows(t *testing.T) {
	input := "0 x 5\n2 0 y\n5 4 0\n"
	_, err := parse.DistanceMatrix(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected an aggregated error")
	}
	if !strings.Contains(err.Error(), "line 1") || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected both malformed rows reported, got: %v", err)
	}
}

func TestDMSDiagonalIsZero(t *testing.T) {
	input := "16 47 0 N 3 3 0 E\n16 47 0 N 3 3 0 E\n"
	m, points, err := parse.DMS(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DMS: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("len(points) = %d, want 2", len(points))
	}
	if got := m.At(0, 0); got != 0 {
		t.Fatalf("m[0][0] = %v, want 0", got)
	}
	if got := m.At(0, 1); math.Abs(got) > 1e-9 {
		t.Fatalf("distance between identical points = %v, want ~0", got)
	}
}

func TestDMSRejectsBadHemisphere(t *testing.T) {
	input := "16 47 0 X 3 3 0 E\n"
	if _, _, err := parse.DMS(strings.NewReader(input)); err == nil {
		t.Fatal("expected an error for an invalid hemisphere letter")
	}
}

func TestCoord2DEuclideanDistance(t *testing.T) {
	input := "0 0\n3 4\n"
	m, points, err := parse.Coord2D(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Coord2D: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("len(points) = %d, want 2", len(points))
	}
	if got := m.At(0, 1); got != 5 {
		t.Fatalf("distance = %v, want 5", got)
	}
}

func TestCSVParsesDelimitedGrid(t *testing.T) {
	input := "1,2,3\n4,5,6\n"
	rows, err := parse.CSV(strings.NewReader(input), ',')
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if len(rows) != 2 || len(rows[0]) != 3 {
		t.Fatalf("rows = %v, want 2x3", rows)
	}
	if rows[1][2] != 6 {
		t.Fatalf("rows[1][2] = %v, want 6", rows[1][2])
	}
}
