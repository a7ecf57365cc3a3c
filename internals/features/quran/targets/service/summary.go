package service

import "fmt"

// DefaultDailyPace: ayat per hari kalau pemanggil & config tidak menentukan.
const DefaultDailyPace = 10

// Summary = statistik agregat satu plan.
type Summary struct {
	JuzCount          int
	SurahCount        int
	TotalTargetVerses int
	FullyCovered      int
	PartiallyCovered  int

	DailyPace     int
	EstimatedDays int

	MemorizedVerses        int
	OverallProgress        int
	RemainingVerses        int
	EstimatedRemainingDays int
}

// Summarize selalu dihitung ulang dari targets yang diberikan.
func Summarize(juzCount int, targets []SurahTarget, dailyPace int) (Summary, error) {
	if dailyPace < 1 {
		return Summary{}, fmt.Errorf("%w: daily pace must be at least 1 verse (got %d)", ErrInvalidInput, dailyPace)
	}

	s := Summary{
		JuzCount:   juzCount,
		SurahCount: len(targets),
		DailyPace:  dailyPace,
	}
	for _, t := range targets {
		s.TotalTargetVerses += t.TargetedVerses
		s.MemorizedVerses += min(t.MemorizedVerses, t.TargetedVerses)
		if t.TargetedVerses == t.TotalVerses {
			s.FullyCovered++
		}
	}
	s.PartiallyCovered = s.SurahCount - s.FullyCovered
	s.RemainingVerses = s.TotalTargetVerses - s.MemorizedVerses
	s.OverallProgress = percent(s.MemorizedVerses, s.TotalTargetVerses)
	s.EstimatedDays = ceilDiv(s.TotalTargetVerses, dailyPace)
	s.EstimatedRemainingDays = ceilDiv(s.RemainingVerses, dailyPace)
	return s, nil
}

// EstimatedDuration: teks estimasi untuk ditampilkan, mis. "15 hari".
func (s Summary) EstimatedDuration() string {
	return fmt.Sprintf("%d hari", s.EstimatedDays)
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
