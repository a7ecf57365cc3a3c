package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	refService "tahfidz_backend/internals/features/quran/reference/service"
	"tahfidz_backend/internals/features/quran/targets/service"
)

func TestParseJuzList(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     []int
		contains string
	}{
		{name: "simple", raw: "1,2,3", want: []int{1, 2, 3}},
		{name: "spaces and trailing comma", raw: " 30 , 1,", want: []int{30, 1}},
		{name: "duplicates kept for resolver", raw: "2,2", want: []int{2, 2}},
		{name: "empty", raw: "", contains: "at least one Juz required"},
		{name: "only commas", raw: ",,", contains: "at least one Juz required"},
		{name: "out of range", raw: "1,31", contains: `"31"`},
		{name: "zero", raw: "0", contains: `"0"`},
		{name: "not a number", raw: "1,abc", contains: `"abc"`},
		{name: "decimal", raw: "1.5", contains: `"1.5"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJuzList(tt.raw)
			if tt.contains != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, service.ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.contains)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpsertMemorizationRequest_ToMap(t *testing.T) {
	req := UpsertMemorizationRequest{Items: []MemorizationItem{
		{SurahNumber: 1, MemorizedVerses: 3},
		{SurahNumber: 2, MemorizedVerses: 10},
		{SurahNumber: 1, MemorizedVerses: 7},
	}}
	assert.Equal(t, map[int]int{1: 7, 2: 10}, req.ToMap())
}

func TestNewPlanResponse_Shape(t *testing.T) {
	idx, err := refService.NewIndex()
	require.NoError(t, err)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	planner := service.NewPlanner(idx, service.WithClock(func() time.Time { return now }))

	plan, err := planner.Generate(service.PlanInput{Juz: []int{1}})
	require.NoError(t, err)

	resp := NewPlanResponse(plan)
	require.NotNil(t, resp)
	assert.Equal(t, []int{1}, resp.TargetJuz)
	require.Len(t, resp.SuratTarget, 2)
	assert.True(t, resp.SuratTarget[0].Lengkap)
	assert.Equal(t, 49, resp.SuratTarget[1].PersentaseTarget)
	assert.Equal(t, []RentangAyat{{Mulai: 1, Selesai: 141}}, resp.SuratTarget[1].RentangAyat)
	assert.Equal(t, "15 hari", resp.Statistik.EstimasiWaktu)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, key := range []string{"targetJuz", "suratTarget", "statistik", "rencanaHafalan", "lastGenerated"} {
		assert.Contains(t, body, key)
	}
	stat := body["statistik"].(map[string]any)
	assert.EqualValues(t, 1, stat["totalJuz"])
	assert.EqualValues(t, 2, stat["totalSurat"])
	assert.EqualValues(t, 148, stat["totalAyatTarget"])
	assert.EqualValues(t, 1, stat["suratLengkap"])
	assert.EqualValues(t, 1, stat["suratSebagian"])
	assert.Equal(t, "2025-01-02T03:04:05Z", body["lastGenerated"])

	snap, err := SummarySnapshot(plan)
	require.NoError(t, err)
	assert.JSONEq(t, mustJSON(t, resp.Statistik), string(snap))

	assert.Nil(t, NewPlanResponse(nil))
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
