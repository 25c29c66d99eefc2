package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/doeshing/roulette-go/internal/app"
	"github.com/doeshing/roulette-go/internal/application/analytics"
	"github.com/doeshing/roulette-go/internal/domain"
)

// NewStatsCommand summarizes the recorded history.
func NewStatsCommand(container *app.Container) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show color distribution, hot and cold numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if top < 1 {
				return errors.New(ErrInvalidLimit)
			}
			renderSummary(cmd.OutOrStdout(), container.Predictor.Summary(top))
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", domain.DefaultHotColdCount, "How many hot and cold numbers to list")
	return cmd
}

func renderSummary(out io.Writer, s analytics.Summary) {
	if s.Spins == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return
	}

	fmt.Fprintf(out, "Spins: %d  mean %.2f  stddev %.2f\n", s.Spins, s.Mean, s.StdDev)
	fmt.Fprintf(out, "Longest streak: %d %s\n\n", s.LongestStreak.Length, s.LongestStreak.Color.Title())

	dist := newTable(out, "Bucket", "Count", "Share")
	for _, row := range []struct {
		name  string
		count int
	}{
		{"Red", s.Colors[string(domain.ColorRed)]},
		{"Black", s.Colors[string(domain.ColorBlack)]},
		{"Green", s.Colors[string(domain.ColorGreen)]},
		{"Even", s.Even},
		{"Odd", s.Odd},
		{"Low (1-18)", s.Low},
		{"High (19-36)", s.High},
	} {
		dist.Append([]string{row.name, strconv.Itoa(row.count), share(row.count, s.Spins)})
	}
	dist.Render()

	fmt.Fprintln(out)
	numbers := newTable(out, "Hot", "Hits", "Cold", "Hits")
	rows := len(s.Hot)
	if len(s.Cold) > rows {
		rows = len(s.Cold)
	}
	for i := 0; i < rows; i++ {
		row := make([]string, 4)
		if i < len(s.Hot) {
			row[0], row[1] = strconv.Itoa(s.Hot[i].Number), strconv.Itoa(s.Hot[i].Count)
		}
		if i < len(s.Cold) {
			row[2], row[3] = strconv.Itoa(s.Cold[i].Number), strconv.Itoa(s.Cold[i].Count)
		}
		numbers.Append(row)
	}
	numbers.Render()
}

func share(count, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", float64(count)/float64(total)*100)
}
