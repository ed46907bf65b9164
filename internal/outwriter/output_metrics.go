package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/trustgate/trustgate/internal/contract"
	"github.com/trustgate/trustgate/schema"
)

// PrintMetricsDefinitions displays the formal definitions of the trust
// components and tiers. This is a static display that does not require a
// dataset.
func PrintMetricsDefinitions(weights map[schema.ComponentKey]float64, cfg *contract.Config) error {
	renderModel := schema.BuildMetricsRenderModel(weights)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"component", "weight", "description"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, component := range renderModel.Components {
					row := []string{string(component.Key), fmtScore(component.Weight), component.Description}
					if err := cw.Write(row); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printMetricsText(w, renderModel, cfg)
		}, "Wrote text")
	}
}

// printMetricsText displays metrics in human-readable text format.
func printMetricsText(w io.Writer, renderModel *schema.MetricsRenderModel, cfg *contract.Config) error {
	title := renderModel.Title
	if cfg.UseEmojis {
		title = "🛡️ " + title
	}
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", renderModel.Description); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Component", "Weight", "Description"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})
	var data [][]string
	for _, component := range renderModel.Components {
		data = append(data, []string{string(component.Key), fmt.Sprintf("%.2f", component.Weight), component.Description})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nTrust tiers:\n"); err != nil {
		return err
	}
	for _, tier := range renderModel.Tiers {
		label := contract.GetPlainTierLabel(tier.Tier)
		if cfg.UseColors {
			label = contract.GetColorTierLabel(tier.Tier)
		}
		if _, err := fmt.Fprintf(w, "  %s (EDTI >= %.2f): %s\n", label, tier.MinScore, tier.Guidance); err != nil {
			return err
		}
	}
	return nil
}
