package marketdata

import (
	"encoding/json"
	"testing"
)

func TestNumberUnmarshal(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		want      float64
		wantValid bool
	}{
		{"plain number", `12345.5`, 12345.5, true},
		{"quoted number", `"987.25"`, 987.25, true},
		{"integer", `42`, 42, true},
		{"null", `null`, 0, false},
		{"garbage string", `"not a number"`, 0, false},
		{"empty string", `""`, 0, false},
		{"boolean", `true`, 0, false},
	}

	for _, tc := range cases {
		var n Number
		if err := json.Unmarshal([]byte(tc.in), &n); err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if n.Float64 != tc.want || n.Valid != tc.wantValid {
			t.Errorf("%s: got {%v %v}, want {%v %v}", tc.name, n.Float64, n.Valid, tc.want, tc.wantValid)
		}
	}
}

func TestNumberAbsentField(t *testing.T) {
	var ev Event
	if err := json.Unmarshal([]byte(`{"title":"x"}`), &ev); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if ev.Volume.Valid {
		t.Error("absent volume should be invalid")
	}
	if ev.TotalVolume() != 0 {
		t.Errorf("absent volume should rank as 0, got %v", ev.TotalVolume())
	}
}

func TestEventRawVolumePrefersVolumeNum(t *testing.T) {
	var ev Event
	data := `{"volume":"100","volumeNum":250.5}`
	if err := json.Unmarshal([]byte(data), &ev); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if ev.RawVolume() != 250.5 {
		t.Errorf("RawVolume = %v, want 250.5", ev.RawVolume())
	}

	var noNum Event
	if err := json.Unmarshal([]byte(`{"volume":"100"}`), &noNum); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if noNum.RawVolume() != 100 {
		t.Errorf("RawVolume = %v, want 100", noNum.RawVolume())
	}
}

func TestEndDateFallback(t *testing.T) {
	ev := Event{EndDate: "2026-01-01"}
	if got := ev.EndDateValue(); got != "2026-01-01" {
		t.Errorf("EndDateValue = %q", got)
	}

	ev.EndDateISO = "2026-01-01T00:00:00Z"
	if got := ev.EndDateValue(); got != "2026-01-01T00:00:00Z" {
		t.Errorf("EndDateValue should prefer ISO, got %q", got)
	}
}

func TestSortByVolume(t *testing.T) {
	events := []Event{
		{Title: "small", Volume: Number{Float64: 10, Valid: true}},
		{Title: "big", Volume: Number{Float64: 5000, Valid: true}},
		{Title: "missing"},
		{Title: "mid", Volume: Number{Float64: 300, Valid: true}},
	}

	SortByVolume(events)

	want := []string{"big", "mid", "small", "missing"}
	for i, title := range want {
		if events[i].Title != title {
			t.Fatalf("position %d: got %q, want %q", i, events[i].Title, title)
		}
	}

	for i := 1; i < len(events); i++ {
		if events[i].TotalVolume() > events[i-1].TotalVolume() {
			t.Fatalf("events not non-increasing at %d", i)
		}
	}
}
