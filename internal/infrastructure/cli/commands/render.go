package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/doeshing/roulette-go/internal/application/predictor"
	"github.com/doeshing/roulette-go/internal/domain"
)

func renderOutcome(out io.Writer, o domain.SpinOutcome) {
	fmt.Fprintf(out, "Spin: %d %s (%s)\n", o.Number, o.Color.Title(), o.Timestamp)
}

func renderPrediction(out io.Writer, p domain.PredictionRecord) {
	fmt.Fprintf(out, "Prediction: %s  confidence %d%%  trend %s  (%s)\n",
		p.Label(), p.Confidence, p.Trending, p.Timestamp)
}

func renderSpinResult(out io.Writer, res predictor.SpinResult) {
	renderOutcome(out, res.Outcome)
	if res.Prediction == nil {
		fmt.Fprintln(out, MsgTrackingDisabled)
		return
	}
	renderPrediction(out, *res.Prediction)
	if res.Notify {
		fmt.Fprintf(out, "%s (%d%%)\n", MsgNotificationTrigger, res.Prediction.Confidence)
	}
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	return table
}

func renderHistoryTable(out io.Writer, history []domain.SpinOutcome) {
	table := newTable(out, "#", "Number", "Color", "Time")
	for i, o := range history {
		table.Append([]string{strconv.Itoa(i + 1), strconv.Itoa(o.Number), o.Color.Title(), o.Timestamp})
	}
	table.Render()
}

func formatEnabled(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
