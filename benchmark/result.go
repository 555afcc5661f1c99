package benchmark

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

var csvHeader = []string{"node_id", "resource", "search_method", "use_cache", "steps", "time_ms"}

// Result is one successful query. Queries that did not find the resource
// are not recorded.
type Result struct {
	NodeID       string
	Resource     string
	SearchMethod string
	UseCache     bool
	Steps        int
	TimeMs       float64
}

func (r Result) record() []string {
	return []string{
		r.NodeID,
		r.Resource,
		r.SearchMethod,
		strconv.FormatBool(r.UseCache),
		strconv.Itoa(r.Steps),
		strconv.FormatFloat(r.TimeMs, 'f', 4, 64),
	}
}

func WriteCSV(w io.Writer, results []Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, result := range results {
		if err := writer.Write(result.record()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func SaveCSV(path string, results []Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(file, results); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}

// SummaryRow aggregates the results of one strategy with or without cache.
type SummaryRow struct {
	SearchMethod string
	UseCache     bool
	Queries      int
	MeanSteps    float64
	MeanTimeMs   float64
}

func Summarize(results []Result) []SummaryRow {
	type key struct {
		method   string
		useCache bool
	}
	rows := make(map[key]*SummaryRow)
	for _, result := range results {
		k := key{result.SearchMethod, result.UseCache}
		row, ok := rows[k]
		if !ok {
			row = &SummaryRow{SearchMethod: result.SearchMethod, UseCache: result.UseCache}
			rows[k] = row
		}
		row.Queries++
		row.MeanSteps += float64(result.Steps)
		row.MeanTimeMs += result.TimeMs
	}

	summary := make([]SummaryRow, 0, len(rows))
	for _, row := range rows {
		row.MeanSteps /= float64(row.Queries)
		row.MeanTimeMs /= float64(row.Queries)
		summary = append(summary, *row)
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].SearchMethod != summary[j].SearchMethod {
			return summary[i].SearchMethod < summary[j].SearchMethod
		}
		return !summary[i].UseCache && summary[j].UseCache
	})
	return summary
}
