package profile

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// WriteCSV writes the series as two-column CSV with a header row.
func WriteCSV(w io.Writer, s Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"radius_from_wall_m", "drawdown_m"}); err != nil {
		return err
	}
	for _, p := range s.Points {
		rec := []string{
			strconv.FormatFloat(p.Radius, 'g', -1, 64),
			strconv.FormatFloat(p.Drawdown, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the series as indented JSON.
func WriteJSON(w io.Writer, s Series) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
