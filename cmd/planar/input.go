package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/planar/geom"
	"github.com/pkg/errors"
)

func readLines(in io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, errors.Wrap(scanner.Err(), "reading input")
}

func readPoints(in io.Reader) ([]geom.Point, error) {
	lines, err := readLines(in)
	if err != nil {
		return nil, err
	}
	points := make([]geom.Point, 0, len(lines))
	for i, line := range lines {
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		points = append(points, point)
	}
	return points, nil
}

func parsePoint(line string) (geom.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Point{}, errors.Errorf("%q: want \"x y\"", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "%q", line)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "%q", line)
	}
	return geom.Point{X: x, Y: y}, nil
}
