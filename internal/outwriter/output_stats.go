package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/bayviewlabs/safetylens/schema"
)

// writeBreakdownTable renders the crime/fire split.
func writeBreakdownTable(w io.Writer, breakdown *schema.TypeBreakdown) error {
	heading := color.New(color.FgCyan, color.Bold).SprintFunc()
	if _, err := fmt.Fprintf(w, "%s\n", heading("Incident type breakdown")); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Type", "Total", "Percentage"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	if breakdown.Crime != nil {
		data = append(data, []string{
			"Crime",
			strconv.Itoa(breakdown.Crime.Total),
			fmt.Sprintf("%.2f%%", breakdown.Crime.Percentage),
		})
	}
	if breakdown.Fire != nil {
		data = append(data, []string{
			"Fire",
			strconv.Itoa(breakdown.Fire.Total),
			fmt.Sprintf("%.2f%%", breakdown.Fire.Percentage),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Total incidents: %d\n\n", breakdown.TotalIncidents)
	return err
}

// writeNeighborhoodTable renders the ranked neighborhood totals.
func writeNeighborhoodTable(w io.Writer, top *schema.TopNeighborhoodsResult) error {
	heading := color.New(color.FgCyan, color.Bold).SprintFunc()
	if _, err := fmt.Fprintf(w, "%s\n", heading("Top neighborhoods by incident count")); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Neighborhood", "Incidents", "Sources", "Types"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(top.Data))
	for i, n := range top.Data {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			n.Neighborhood,
			strconv.Itoa(n.IncidentCount),
			strconv.Itoa(n.DataSources),
			strconv.Itoa(n.IncidentTypes),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if top.Summary != nil {
		if _, err := fmt.Fprintf(w, "Average %.1f, median %d, max %d, min %d incidents per neighborhood\n",
			top.Summary.AverageIncidents, top.Summary.MedianIncidents,
			top.Summary.MaxIncidents, top.Summary.MinIncidents); err != nil {
			return err
		}
	}
	return nil
}
