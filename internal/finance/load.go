package finance

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// symbolFilePattern extracts the ticker symbol from a data file name,
// e.g. "TCS_daily.csv" -> "TCS". Files that do not match are skipped.
var symbolFilePattern = regexp.MustCompile(`^([A-Z]+)_`)

// LoadDir builds a Static provider from a directory of per-symbol CSV
// files. Each file is named SYMBOL_<anything>.csv and carries at least
// Date and Close columns; Volume is optional. A malformed file fails the
// load rather than silently producing a partial provider.
func LoadDir(dir string) (*Static, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &Error{Message: "reading price data directory " + dir, Cause: err}
	}

	provider := &Static{series: make(map[string]Series)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		m := symbolFilePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		symbol := m[1]

		series, err := loadCSV(filepath.Join(dir, entry.Name()), symbol)
		if err != nil {
			return nil, err
		}
		provider.series[symbol] = series
	}
	return provider, nil
}

func loadCSV(path, symbol string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return Series{}, &Error{Message: "opening price data file " + path, Cause: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return Series{}, &Error{Message: "reading header of " + path, Cause: err}
	}

	dateCol, closeCol, volumeCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			dateCol = i
		case "close":
			closeCol = i
		case "volume":
			volumeCol = i
		}
	}
	if dateCol < 0 || closeCol < 0 {
		return Series{}, &Error{Message: path + " is missing a Date or Close column"}
	}

	series := Series{Symbol: symbol}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Series{}, &Error{Message: "reading " + path, Cause: err}
		}

		closeVal, err := strconv.ParseFloat(strings.TrimSpace(record[closeCol]), 64)
		if err != nil {
			return Series{}, &Error{Message: "bad close value in " + path, Cause: err}
		}
		point := Point{Date: strings.TrimSpace(record[dateCol]), Close: closeVal}
		if volumeCol >= 0 && volumeCol < len(record) {
			if v, err := strconv.ParseInt(strings.TrimSpace(record[volumeCol]), 10, 64); err == nil {
				point.Volume = v
			}
		}
		series.Points = append(series.Points, point)
	}
	return series, nil
}
