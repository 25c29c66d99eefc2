package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/doeshing/roulette-go/internal/domain"
)

func TestClassifyCoversWheel(t *testing.T) {
	red := map[int]bool{}
	for _, n := range domain.RedNumbers {
		red[n] = true
	}
	if len(domain.RedNumbers) != 18 || len(domain.BlackNumbers) != 18 {
		t.Fatalf("expected 18 red and 18 black numbers")
	}

	for n := 0; n <= 36; n++ {
		got, err := domain.Classify(n)
		if err != nil {
			t.Fatalf("Classify(%d) error: %v", n, err)
		}
		want := domain.ColorBlack
		switch {
		case n == 0:
			want = domain.ColorGreen
		case red[n]:
			want = domain.ColorRed
		}
		if got != want {
			t.Errorf("Classify(%d) = %s, want %s", n, got, want)
		}
		again, _ := domain.Classify(n)
		if again != got {
			t.Errorf("Classify(%d) not deterministic", n)
		}
	}
}

func TestClassifyBlackSetMatches(t *testing.T) {
	for _, n := range domain.BlackNumbers {
		if got, _ := domain.Classify(n); got != domain.ColorBlack {
			t.Errorf("Classify(%d) = %s, want black", n, got)
		}
	}
}

func TestClassifyRejectsOutOfRange(t *testing.T) {
	for _, n := range []int{-100, -1, 37, 38, 1000} {
		if _, err := domain.Classify(n); !errors.Is(err, domain.ErrInvalidNumber) {
			t.Errorf("Classify(%d) error = %v, want ErrInvalidNumber", n, err)
		}
	}
}

func TestNewSpinOutcome(t *testing.T) {
	at := time.Date(2024, 1, 2, 13, 4, 5, 0, time.Local)
	outcome, err := domain.NewSpinOutcome(32, at)
	if err != nil {
		t.Fatalf("NewSpinOutcome error: %v", err)
	}
	if outcome.Color != domain.ColorRed || outcome.Timestamp != "13:04:05" {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if !outcome.Consistent() {
		t.Fatal("fresh outcome should be consistent")
	}
	if (domain.SpinOutcome{Number: 32, Color: domain.ColorBlack}).Consistent() {
		t.Fatal("mismatched color should be inconsistent")
	}
	if _, err := domain.NewSpinOutcome(37, at); !errors.Is(err, domain.ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
}

func TestTrendFor(t *testing.T) {
	tests := []struct {
		confidence int
		want       domain.Trend
	}{
		{50, domain.TrendDown},
		{64, domain.TrendDown},
		{65, domain.TrendStable},
		{80, domain.TrendStable},
		{81, domain.TrendUp},
		{89, domain.TrendUp},
	}
	for _, tt := range tests {
		if got := domain.TrendFor(tt.confidence); got != tt.want {
			t.Errorf("TrendFor(%d) = %s, want %s", tt.confidence, got, tt.want)
		}
	}
}

func TestPredictionLabel(t *testing.T) {
	p := domain.PredictionRecord{Number: 32, Color: domain.ColorRed}
	if p.Label() != "Red 32" {
		t.Errorf("got %q", p.Label())
	}
	p = domain.PredictionRecord{Number: 0, Color: domain.ColorGreen}
	if p.Label() != "Green 0" {
		t.Errorf("got %q", p.Label())
	}
}
