package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/bayviewlabs/safetylens/schema"
)

// writeIncidentCSV writes canonical incidents in CSV format, one row per
// incident in stream order.
func writeIncidentCSV(w io.Writer, incidents []schema.CanonicalIncident) error {
	header := []string{
		"source_table",
		"incident_time",
		"incident_type",
		"description",
		"address",
		"neighborhood",
		"latitude",
		"longitude",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, inc := range incidents {
			rec := []string{
				string(inc.SourceTable),
				inc.IncidentTime,
				derefOr(inc.IncidentType, ""),
				derefOr(inc.Description, ""),
				derefOr(inc.Address, ""),
				derefOr(inc.Neighborhood, ""),
				formatCoord(inc.Latitude),
				formatCoord(inc.Longitude),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func formatCoord(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
