package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readSamples parses "x y" pairs, one per line. Blank lines and '#' comments
// are skipped; any other line must hold exactly two numbers.
func readSamples(r io.Reader) (xs, ys []float64, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("line %d: want 2 fields, got %d", line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: x: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: y: %w", line, err)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if err = sc.Err(); err != nil {
		return nil, nil, err
	}

	return xs, ys, nil
}
