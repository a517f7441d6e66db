package handlers

import (
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"boqclean/services"
)

// PreviewRows is how many rows the final preview shows.
const PreviewRows = 5

// PrintPreview writes the first rows of t as an aligned table.
func PrintPreview(p *Prompter, t services.Table, n int) {
	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	tw.Write([]byte(strings.Join(t.Labels(), "\t") + "\n"))
	for i, rec := range t.Records() {
		if i >= n {
			break
		}
		tw.Write([]byte(strings.Join(rec, "\t") + "\n"))
	}
	tw.Flush()
	if len(t.Rows) > n {
		p.Printf("... %s more rows\n", humanize.Comma(int64(len(t.Rows)-n)))
	}
}

// PrintSummary writes item and section counts, the total amount and the
// median rate.
func PrintSummary(p *Prompter, s services.Summary, currency services.Currency) {
	total, _ := s.TotalAmount.Float64()
	p.Printf("Items: %s, sections: %s\n", humanize.Comma(int64(s.Items)), humanize.Comma(int64(s.Sections)))
	p.Printf("Total amount: %s, median rate: %s\n",
		services.FormatAmount(total, currency),
		services.FormatAmount(s.MedianRate, currency))
}
