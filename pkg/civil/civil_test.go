package civil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1990-05-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year != 1990 || d.Month != time.May || d.Day != 15 {
		t.Errorf("got %+v", d)
	}
	if d.String() != "1990-05-15" {
		t.Errorf("String() = %q", d.String())
	}

	if _, err := ParseDate("15/05/1990"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestDateAddDays(t *testing.T) {
	d, _ := ParseDate("2024-12-28")
	got := d.AddDays(7)
	if got.String() != "2025-01-04" {
		t.Errorf("AddDays(7) = %s", got)
	}
}

func TestDateBefore(t *testing.T) {
	a, _ := ParseDate("1990-05-15")
	b, _ := ParseDate("1990-06-01")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("ordering broken: %s vs %s", a, b)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, _ := ParseDate("1990-05-15")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"1990-05-15"` {
		t.Errorf("marshal = %s", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip: %v != %v", back, d)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan("2001-09-09"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.String() != "2001-09-09" {
		t.Errorf("scan string = %s", d)
	}

	if err := d.Scan(time.Date(1985, time.March, 3, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d.String() != "1985-03-03" {
		t.Errorf("scan time = %s", d)
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !d.IsZero() {
		t.Error("scan nil should zero the date")
	}

	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10:30", "10:30:00"},
		{"10:30:45", "10:30:45"},
		{"10:30:45.123456", "10:30:45"},
	}
	for _, c := range cases {
		got, err := ParseTimeOfDay(c.in)
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): %v", c.in, err)
			continue
		}
		if got.String() != c.want {
			t.Errorf("ParseTimeOfDay(%q) = %s, want %s", c.in, got, c.want)
		}
	}

	if _, err := ParseTimeOfDay("25:99"); err == nil {
		t.Error("expected error for out-of-range time")
	}
}

func TestTimeOfDayJSON(t *testing.T) {
	tod := TimeOfDay{Hour: 10, Minute: 30}
	data, err := json.Marshal(tod)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"10:30:00"` {
		t.Errorf("marshal = %s", data)
	}
	var back TimeOfDay
	if err := json.Unmarshal([]byte(`"10:30"`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != tod {
		t.Errorf("unmarshal = %+v", back)
	}
}

func TestTimeOfDayScan(t *testing.T) {
	var tod TimeOfDay
	if err := tod.Scan("14:15:16"); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if tod.String() != "14:15:16" {
		t.Errorf("scan = %s", tod)
	}
	if err := tod.Scan([]byte("09:00:00")); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if tod.Hour != 9 {
		t.Errorf("scan bytes = %+v", tod)
	}
}
