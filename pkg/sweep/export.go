package sweep

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes sweep results as CSV: the swept value, the solved
// outputs, and an error column for failed grid points.
func WriteCSV(w io.Writer, dim Dimension, points []Point) error {
	cw := csv.NewWriter(w)
	header := []string{string(dim), "radius_infl_m", "inflow_zone1_m3s", "inflow_zone2_m3s", "inflow_total_m3s", "error"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range points {
		rec := []string{
			formatFloat(p.Value), "", "", "", "", "",
		}
		if p.Err != nil {
			rec[5] = p.Err.Error()
		} else {
			rec[1] = formatFloat(p.RadiusInfl)
			rec[2] = formatFloat(p.InflowZone1)
			rec[3] = formatFloat(p.InflowZone2)
			rec[4] = formatFloat(p.InflowTotal)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
