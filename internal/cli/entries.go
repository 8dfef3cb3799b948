package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mcoot/leaderboard/internal/model"
)

// ParseEntry parses a NAME=SCORE argument. The score is split on the last
// '=' so names may contain one. NaN and infinite scores are rejected since
// they have no JSON encoding.
func ParseEntry(arg string) (model.Entry, error) {
	i := strings.LastIndex(arg, "=")
	if i < 0 {
		return model.Entry{}, fmt.Errorf("%w: %q", model.ErrMalformedEntry, arg)
	}

	name := strings.TrimSpace(arg[:i])
	if name == "" {
		return model.Entry{}, fmt.Errorf("%w: %q", model.ErrEmptyPlayerName, arg)
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(arg[i+1:]), 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		return model.Entry{}, fmt.Errorf("%w: %q", model.ErrInvalidScore, arg)
	}

	return model.Entry{Player: name, Score: score}, nil
}

// ParseEntries parses each argument in order
func ParseEntries(args []string) ([]model.Entry, error) {
	entries := make([]model.Entry, 0, len(args))
	for _, arg := range args {
		e, err := ParseEntry(arg)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ReadEntries reads one NAME=SCORE per line. Blank lines and lines starting
// with '#' are skipped.
func ReadEntries(r io.Reader) ([]model.Entry, error) {
	var entries []model.Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := ParseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
	}
	return entries, nil
}
