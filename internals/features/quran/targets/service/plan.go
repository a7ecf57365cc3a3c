package service

import (
	"fmt"
	"sort"
	"strings"
)

const (
	PrioritySingleJuz = 1
	PriorityMultiJuz  = 2
)

// PlanEntry = satu baris rencana hafalan (urutan mulai dari 1).
type PlanEntry struct {
	Sequence        int
	Surah           int
	Name            string
	Description     string
	Priority        int
	Juz             []int
	ProgressPercent int
}

// ComposePlan mengurutkan target menjadi rencana hafalan:
//  1. surat yang hanya dicakup satu juz dulu, baru yang lintas juz
//  2. juz terkecil yang mencakup surat itu
//  3. nomor surat
func ComposePlan(targets []SurahTarget) []PlanEntry {
	ordered := append([]SurahTarget(nil), targets...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if pa, pb := priorityOf(a), priorityOf(b); pa != pb {
			return pa < pb
		}
		if ma, mb := minJuz(a), minJuz(b); ma != mb {
			return ma < mb
		}
		return a.Surah < b.Surah
	})

	entries := make([]PlanEntry, 0, len(ordered))
	for i, t := range ordered {
		entries = append(entries, PlanEntry{
			Sequence:        i + 1,
			Surah:           t.Surah,
			Name:            t.Name,
			Description:     DescribeTarget(t),
			Priority:        priorityOf(t),
			Juz:             append([]int(nil), t.Juz...),
			ProgressPercent: t.ProgressPercent,
		})
	}
	return entries
}

// DescribeTarget memakai rentang hasil resolve apa adanya; target yang tidak
// dimulai dari ayat 1 (mis. ekor Al-Baqarah di juz 3) ditulis sesuai rentangnya.
func DescribeTarget(t SurahTarget) string {
	if t.FullyCovered() {
		return fmt.Sprintf("Surat lengkap (%d ayat)", t.TotalVerses)
	}
	parts := make([]string, 0, len(t.Ranges))
	for _, r := range t.Ranges {
		if r.Start == r.End {
			parts = append(parts, fmt.Sprintf("%d", r.Start))
			continue
		}
		parts = append(parts, fmt.Sprintf("%d-%d", r.Start, r.End))
	}
	return fmt.Sprintf("Ayat %s (%d ayat)", strings.Join(parts, ", "), t.TargetedVerses)
}

func priorityOf(t SurahTarget) int {
	if len(t.Juz) <= 1 {
		return PrioritySingleJuz
	}
	return PriorityMultiJuz
}

func minJuz(t SurahTarget) int {
	if len(t.Juz) == 0 {
		return 0
	}
	m := t.Juz[0]
	for _, j := range t.Juz[1:] {
		m = min(m, j)
	}
	return m
}
