// Package analytics summarizes a spin history for display.
package analytics

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/doeshing/roulette-go/internal/domain"
)

// NumberCount is how often a number appeared.
type NumberCount struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

// Streak is the longest run of one color.
type Streak struct {
	Color  domain.Color `json:"color"`
	Length int          `json:"length"`
}

// Summary aggregates a history log.
type Summary struct {
	Spins         int            `json:"spins"`
	Colors        map[string]int `json:"colors"`
	Even          int            `json:"even"`
	Odd           int            `json:"odd"`
	Low           int            `json:"low"`
	High          int            `json:"high"`
	Hot           []NumberCount  `json:"hot"`
	Cold          []NumberCount  `json:"cold"`
	Mean          float64        `json:"mean"`
	StdDev        float64        `json:"stdDev"`
	LongestStreak Streak         `json:"longestStreak"`
}

// Summarize computes a Summary. top bounds the hot and cold lists.
func Summarize(history []domain.SpinOutcome, top int) Summary {
	s := Summary{
		Spins:  len(history),
		Colors: make(map[string]int, 3),
		Hot:    []NumberCount{},
		Cold:   []NumberCount{},
	}
	for _, c := range []domain.Color{domain.ColorRed, domain.ColorBlack, domain.ColorGreen} {
		s.Colors[string(c)] = 0
	}
	if len(history) == 0 {
		return s
	}

	counts := make([]int, domain.MaxNumber+1)
	numbers := make([]int, 0, len(history))
	for _, o := range history {
		s.Colors[string(o.Color)]++
		numbers = append(numbers, o.Number)
		if o.Number >= domain.MinNumber && o.Number <= domain.MaxNumber {
			counts[o.Number]++
		}
		if o.Number == 0 {
			continue
		}
		if o.Number%2 == 0 {
			s.Even++
		} else {
			s.Odd++
		}
		if o.Number <= 18 {
			s.Low++
		} else {
			s.High++
		}
	}

	data := stats.LoadRawData(numbers)
	if mean, err := stats.Mean(data); err == nil {
		s.Mean, _ = stats.Round(mean, 2)
	}
	if sd, err := stats.StandardDeviation(data); err == nil {
		s.StdDev, _ = stats.Round(sd, 2)
	}

	s.Hot, s.Cold = hotAndCold(counts, top)
	s.LongestStreak = longestStreak(history)
	return s
}

func hotAndCold(counts []int, top int) (hot, cold []NumberCount) {
	all := make([]NumberCount, 0, len(counts))
	for n, c := range counts {
		all = append(all, NumberCount{Number: n, Count: c})
	}
	switch {
	case top < 0:
		top = 0
	case top > len(all):
		top = len(all)
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Count > all[j].Count })
	for _, nc := range all[:top] {
		if nc.Count > 0 {
			hot = append(hot, nc)
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count < all[j].Count
		}
		return all[i].Number < all[j].Number
	})
	cold = append(cold, all[:top]...)
	if hot == nil {
		hot = []NumberCount{}
	}
	return hot, cold
}

func longestStreak(history []domain.SpinOutcome) Streak {
	var best, cur Streak
	for _, o := range history {
		if o.Color == cur.Color {
			cur.Length++
		} else {
			cur = Streak{Color: o.Color, Length: 1}
		}
		if cur.Length > best.Length {
			best = cur
		}
	}
	return best
}
