package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fedi-wallet/models"
)

// activityLimit is how many journal entries the activity view loads.
const activityLimit = 20

type activityModel struct {
	loading bool
	items   []models.Operation
	err     string
}

func (m activityModel) View() string {
	var b strings.Builder
	b.WriteString(viewTitle("Recent activity"))

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.err != "":
		b.WriteString(errorStyle.Render("⚠ " + m.err))
		b.WriteString("\n")
	case len(m.items) == 0:
		b.WriteString("No operations yet\n")
	default:
		b.WriteString("Time     │ Kind    │ Status  │ Input                            │ Message\n")
		for _, op := range m.items {
			b.WriteString(fmt.Sprintf(
				"%-8s │ %-7s │ %-7s │ %-32s │ %s\n",
				op.CreatedAt.Local().Format("15:04:05"),
				op.Kind,
				op.Status,
				fitText(op.Input, 32),
				fitText(op.Message, 48),
			))
		}
	}

	b.WriteString("\nesc / ctrl+a close")
	return overlayBoxStyle.Render(b.String())
}
