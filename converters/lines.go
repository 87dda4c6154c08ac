package converters

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
)

// maxLineBytes bounds one input line; longer lines are reported as
// oversized and skipped instead of failing the import.
const maxLineBytes = 64 << 10

// eachLine calls fn for every line of r without its line ending. A line
// longer than maxLineBytes is drained and reported with ok == false.
// Only read errors are returned.
func eachLine(r io.Reader, fn func(line string, ok bool)) error {
	br := bufio.NewReaderSize(r, maxLineBytes)
	for {
		chunk, isPrefix, err := br.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !isPrefix {
			fn(string(chunk), true)
			continue
		}
		for isPrefix {
			if _, isPrefix, err = br.ReadLine(); err != nil {
				if errors.Is(err, io.EOF) {
					fn("", false)
					return nil
				}
				return err
			}
		}
		fn("", false)
	}
}

// parseNumber reads a finite float. NaN and ±Inf are rejected so every
// imported weight stays JSON-encodable.
func parseNumber(tok string) (float64, bool) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
