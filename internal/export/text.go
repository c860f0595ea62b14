package export

import (
	"fmt"
	"strings"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
)

const ruleWidth = 50

// Text renders the plain-text itinerary.
func Text(trip *domain.Trip) string {
	var b strings.Builder

	b.WriteString("TRIP ITINERARY\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n\n")
	fmt.Fprintf(&b, "Destination: %s\n", trip.Destination)
	fmt.Fprintf(&b, "Start Date: %s\n", formatDate(trip.StartDate))
	fmt.Fprintf(&b, "End Date: %s\n", formatDate(trip.EndDate))
	fmt.Fprintf(&b, "Travelers: %d\n\n", trip.Travelers)

	if acc := trip.Accommodation; acc != nil {
		b.WriteString("ACCOMMODATION\n")
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		fmt.Fprintf(&b, "Hotel: %s\n", acc.Name)
		fmt.Fprintf(&b, "Address: %s\n", acc.Address)
		fmt.Fprintf(&b, "Check-in: %s\n", acc.CheckIn)
		fmt.Fprintf(&b, "Check-out: %s\n", acc.CheckOut)
		fmt.Fprintf(&b, "Cost: $%s\n\n", formatMoney(acc.Cost))
	}

	if len(trip.Transportation) > 0 {
		b.WriteString("TRANSPORTATION\n")
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		for i, tr := range trip.Transportation {
			fmt.Fprintf(&b, "%d. %s\n", i+1, tr.Type)
			fmt.Fprintf(&b, "Details: %s\n", tr.Details)
			fmt.Fprintf(&b, "Cost: $%s\n\n", formatMoney(tr.Cost))
		}
	}

	b.WriteString("DAILY ITINERARY\n")
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	for _, day := range trip.Days {
		fmt.Fprintf(&b, "\nDay %d - %s\n", day.Day, formatDate(trip.DayDate(day.Day)))

		if len(day.Activities) == 0 {
			b.WriteString("No activities scheduled\n")
			continue
		}
		for i, a := range day.Activities {
			fmt.Fprintf(&b, "%d. %s\n", i+1, a.Title)
			fmt.Fprintf(&b, "   Time: %s | Category: %s\n", a.Time, a.Category)
			if a.Notes != "" {
				fmt.Fprintf(&b, "   Notes: %s\n", a.Notes)
			}
			fmt.Fprintf(&b, "   Cost: $%s\n", formatMoney(a.Cost))
		}
	}

	if len(trip.PackingList) > 0 {
		b.WriteString("\n\nPACKING LIST\n")
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		for _, item := range trip.PackingList {
			marker := "[ ]"
			if item.Packed {
				marker = "[x]"
			}
			fmt.Fprintf(&b, "%s %s\n", marker, item.Text)
		}
	}

	return b.String()
}
