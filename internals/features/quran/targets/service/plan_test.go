package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planFor(t *testing.T, juz ...int) []PlanEntry {
	t.Helper()
	res, err := NewResolver(newTestIndex(t)).Resolve(juz)
	require.NoError(t, err)
	return ComposePlan(res.Targets)
}

func surahOrder(entries []PlanEntry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Surah)
	}
	return out
}

func TestComposePlan_SingleJuzFirst(t *testing.T) {
	t.Parallel()

	// Ali 'Imran (3) hanya di juz 3, Al-Baqarah (2) di juz 2 & 3
	entries := planFor(t, 2, 3)
	require.Len(t, entries, 2)
	assert.Equal(t, []int{3, 2}, surahOrder(entries))
	assert.Equal(t, PrioritySingleJuz, entries[0].Priority)
	assert.Equal(t, PriorityMultiJuz, entries[1].Priority)
	assert.Equal(t, 1, entries[0].Sequence)
	assert.Equal(t, 2, entries[1].Sequence)
}

func TestComposePlan_TieBreaks(t *testing.T) {
	t.Parallel()

	// juz 1 & 3: Al-Fatihah (juz 1), Ali 'Imran (juz 3), lalu Al-Baqarah (1,3)
	assert.Equal(t, []int{1, 3, 2}, surahOrder(planFor(t, 3, 1)))

	// juz 15 & 16: Al-Isra' (15), Maryam (16), Taha (16), lalu Al-Kahf (15,16)
	assert.Equal(t, []int{17, 19, 20, 18}, surahOrder(planFor(t, 16, 15)))

	// juz 4 & 6: An-Nisa' kena dua juz (1-23 dan 148-176) walau tidak bersebelahan
	assert.Equal(t, []int{3, 5, 4}, surahOrder(planFor(t, 6, 4)))
}

func TestComposePlan_Descriptions(t *testing.T) {
	t.Parallel()

	entries := planFor(t, 1, 3)
	byName := map[int]string{}
	for _, e := range entries {
		byName[e.Surah] = e.Description
	}
	assert.Equal(t, "Surat lengkap (7 ayat)", byName[1])
	assert.Equal(t, "Ayat 1-141, 253-286 (175 ayat)", byName[2])
	assert.Equal(t, "Ayat 1-92 (92 ayat)", byName[3])

	tail := planFor(t, 3)
	require.NotEmpty(t, tail)
	assert.Equal(t, 2, tail[0].Surah)
	assert.Equal(t, "Ayat 253-286 (34 ayat)", tail[0].Description)
}

func TestDescribeTarget_SingleVerse(t *testing.T) {
	t.Parallel()
	tg := SurahTarget{
		Surah: 2, TotalVerses: 286, TargetedVerses: 2,
		Ranges: []VerseRange{{Start: 5, End: 5}, {Start: 9, End: 9}},
	}
	assert.Equal(t, "Ayat 5, 9 (2 ayat)", DescribeTarget(tg))
}

func TestComposePlan_Deterministic(t *testing.T) {
	t.Parallel()
	a := planFor(t, 30, 1, 15, 16, 2)
	b := planFor(t, 2, 16, 15, 1, 30)
	assert.Equal(t, a, b)

	for i, e := range a {
		assert.Equal(t, i+1, e.Sequence)
		if i > 0 {
			assert.GreaterOrEqual(t, e.Priority, a[i-1].Priority)
		}
	}
}
