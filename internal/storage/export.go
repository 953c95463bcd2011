package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// ExportJSON writes a stored run's metadata as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// ExportCSV writes a stored run's results as one CSV row per repetition.
func ExportCSV(w io.Writer, meta *RunMetadata) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"benchmark", "repetition", "iterations", "elapsed_ms", "items_per_second", "avg_work_per_iteration"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range meta.Results {
		row := []string{
			r.Name,
			strconv.Itoa(r.Repetition),
			strconv.Itoa(r.Iterations),
			strconv.FormatFloat(r.ElapsedMs, 'f', 6, 64),
			strconv.FormatFloat(r.Counters["items_per_second"], 'f', 2, 64),
			strconv.FormatFloat(r.Counters["avg_work_per_iteration"], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}
