package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
)

// htmlStyle is the embedded stylesheet that makes the export a
// self-contained document suitable for standalone viewing and printing.
const htmlStyle = `
    body { font-family: Arial, sans-serif; margin: 20px; background-color: #f5f5f5; }
    .container { max-width: 900px; margin: 0 auto; background: white; padding: 30px; border-radius: 8px; }
    h1 { color: #334155; border-bottom: 3px solid #334155; padding-bottom: 10px; }
    h2 { color: #475569; margin-top: 20px; }
    .info { background: #f0f9ff; padding: 15px; border-radius: 5px; margin: 10px 0; }
    .activity { background: #f8fafc; padding: 12px; margin: 8px 0; border-left: 4px solid #334155; }
    .packing { columns: 2; }
    .item { padding: 5px 0; }
    table { width: 100%; border-collapse: collapse; margin: 15px 0; }
    th, td { padding: 12px; text-align: left; border-bottom: 1px solid #e2e8f0; }
    th { background-color: #334155; color: white; }
`

// HTML renders the itinerary as a minimal self-contained HTML document.
// All user-entered text is escaped.
func HTML(trip *domain.Trip) string {
	var b strings.Builder
	dest := html.EscapeString(trip.Destination)

	fmt.Fprintf(&b, `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>%s - Trip Itinerary</title>
  <style>%s  </style>
</head>
<body>
  <div class="container">
    <h1>%s - Trip Itinerary</h1>

    <div class="info">
      <strong>Start Date:</strong> %s<br>
      <strong>End Date:</strong> %s<br>
      <strong>Travelers:</strong> %d
    </div>
`, dest, htmlStyle, dest, formatDate(trip.StartDate), formatDate(trip.EndDate), trip.Travelers)

	if acc := trip.Accommodation; acc != nil {
		fmt.Fprintf(&b, `    <h2>Accommodation</h2>
    <div class="info">
      <strong>%s</strong><br>
      Address: %s<br>
      Check-in: %s | Check-out: %s<br>
      Cost: $%s
    </div>
`, html.EscapeString(acc.Name), html.EscapeString(acc.Address),
			html.EscapeString(acc.CheckIn), html.EscapeString(acc.CheckOut), formatMoney(acc.Cost))
	}

	if len(trip.Transportation) > 0 {
		b.WriteString("    <h2>Transportation</h2>\n    <table><tr><th>Type</th><th>Details</th><th>Cost</th></tr>\n")
		for _, tr := range trip.Transportation {
			fmt.Fprintf(&b, "    <tr><td>%s</td><td>%s</td><td>$%s</td></tr>\n",
				html.EscapeString(tr.Type), html.EscapeString(tr.Details), formatMoney(tr.Cost))
		}
		b.WriteString("    </table>\n")
	}

	b.WriteString("    <h2>Daily Itinerary</h2>\n")
	for _, day := range trip.Days {
		fmt.Fprintf(&b, "    <h3>Day %d - %s</h3>\n", day.Day, formatDate(trip.DayDate(day.Day)))
		if len(day.Activities) == 0 {
			b.WriteString("    <p>No activities scheduled</p>\n")
			continue
		}
		for _, a := range day.Activities {
			fmt.Fprintf(&b, `    <div class="activity">
      <strong>%s</strong><br>
      Time: %s | Category: %s | Cost: $%s`,
				html.EscapeString(a.Title), html.EscapeString(a.Time), a.Category, formatMoney(a.Cost))
			if a.Notes != "" {
				fmt.Fprintf(&b, "<br>Notes: %s", html.EscapeString(a.Notes))
			}
			b.WriteString("\n    </div>\n")
		}
	}

	if len(trip.PackingList) > 0 {
		b.WriteString("    <h2>Packing List</h2>\n    <div class=\"packing\">\n")
		for _, item := range trip.PackingList {
			marker := "○"
			if item.Packed {
				marker = "✓"
			}
			fmt.Fprintf(&b, "      <div class=\"item\">%s %s</div>\n", marker, html.EscapeString(item.Text))
		}
		b.WriteString("    </div>\n")
	}

	b.WriteString("  </div>\n</body>\n</html>\n")
	return b.String()
}
