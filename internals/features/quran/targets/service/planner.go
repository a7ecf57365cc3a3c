package service

import (
	"fmt"
	"time"

	refService "tahfidz_backend/internals/features/quran/reference/service"
)

// PlanInput = seleksi juz + hafalan user untuk satu kali Generate.
type PlanInput struct {
	Juz       []int
	Memorized map[int]int // opsional
	DailyPace int         // 0 = pakai default planner
}

// Plan = hasil Generate; Juz sudah dinormalisasi (unik, urut).
type Plan struct {
	Juz         []int
	Targets     []SurahTarget
	Summary     Summary
	Entries     []PlanEntry
	GeneratedAt time.Time
}

// Planner menjalankan resolve -> progress -> rencana -> statistik.
// Tidak menyimpan state per request; satu instance dipakai bersama.
type Planner struct {
	resolver    *Resolver
	defaultPace int
	now         func() time.Time
}

// PlannerOption mengatur Planner saat NewPlanner.
type PlannerOption func(*Planner)

// WithDefaultDailyPace: pace <= 0 diabaikan.
func WithDefaultDailyPace(pace int) PlannerOption {
	return func(p *Planner) {
		if pace > 0 {
			p.defaultPace = pace
		}
	}
}

// WithClock mengganti sumber waktu GeneratedAt (dipakai test).
func WithClock(now func() time.Time) PlannerOption {
	return func(p *Planner) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPlanner: default pace DefaultDailyPace, jam time.Now.
func NewPlanner(index *refService.Index, opts ...PlannerOption) *Planner {
	p := &Planner{
		resolver:    NewResolver(index),
		defaultPace: DefaultDailyPace,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Planner) DefaultDailyPace() int { return p.defaultPace }

// Generate mengembalikan plan lengkap atau error; tidak pernah setengah jadi.
func (p *Planner) Generate(in PlanInput) (*Plan, error) {
	pace := in.DailyPace
	if pace == 0 {
		pace = p.defaultPace
	}
	if pace < 1 {
		return nil, fmt.Errorf("%w: daily pace must be at least 1 verse (got %d)", ErrInvalidInput, pace)
	}

	res, err := p.resolver.Resolve(in.Juz)
	if err != nil {
		return nil, err
	}

	targets, err := ApplyProgress(res.Targets, in.Memorized)
	if err != nil {
		return nil, err
	}

	summary, err := Summarize(len(res.Juz), targets, pace)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Juz:         res.Juz,
		Targets:     targets,
		Summary:     summary,
		Entries:     ComposePlan(targets),
		GeneratedAt: p.now(),
	}, nil
}
