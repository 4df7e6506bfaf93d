package utils

import (
	"errors"
	"testing"
	"time"
)

func TestFetchWithFallbackSucceedsFirstTry(t *testing.T) {
	calls := 0
	v, ok := FetchWithFallback(func() (int, error) {
		calls++
		return 42, nil
	}, -1, 3, 0)
	if !ok || v != 42 {
		t.Errorf("got (%d, %v), want (42, true)", v, ok)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestFetchWithFallbackExhaustsRetries(t *testing.T) {
	calls := 0
	v, ok := FetchWithFallback(func() (string, error) {
		calls++
		return "", errors.New("down")
	}, "fallback", 3, time.Millisecond)
	if ok || v != "fallback" {
		t.Errorf("got (%q, %v), want (\"fallback\", false)", v, ok)
	}
	if calls != 4 {
		t.Errorf("fn called %d times, want 4 (1 + 3 retries)", calls)
	}
}

func TestFetchWithFallbackRecoversMidway(t *testing.T) {
	calls := 0
	v, ok := FetchWithFallback(func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 7, nil
	}, -1, 3, 0)
	if !ok || v != 7 {
		t.Errorf("got (%d, %v), want (7, true)", v, ok)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount   float64
		currency string
		want     string
	}{
		{2100.945, "USD", "USD 2,101"},
		{1498, "GBP", "GBP 1,498"},
		{998, "", "GBP 998"},
		{1234567.2, "EUR", "EUR 1,234,567"},
	}
	for _, c := range cases {
		if got := FormatAmount(c.amount, c.currency); got != c.want {
			t.Errorf("FormatAmount(%v, %q) = %q, want %q", c.amount, c.currency, got, c.want)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	if v, err := ParseDecimal(" 1.2500 "); err != nil || v != 1.25 {
		t.Errorf("ParseDecimal = (%v, %v), want (1.25, nil)", v, err)
	}
	if _, err := ParseDecimal(""); err == nil {
		t.Error("expected error for empty decimal")
	}
}

func TestIsRelativeDate(t *testing.T) {
	if !IsRelativeDate("+ 2 months") {
		t.Error("marker not recognized")
	}
	if IsRelativeDate("2026-05-01") {
		t.Error("literal date misread as marker")
	}
	if IsRelativeDate("") {
		t.Error("blank misread as marker")
	}
}
