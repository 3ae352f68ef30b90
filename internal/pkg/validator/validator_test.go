package validator

import (
	"strings"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-42d3-a456-426614174000",
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123E4567-E89B-42D3-A456-426614174000",
	}
	invalid := []string{
		"123e4567e89b42d3a456426614174000",
		"g23e4567-e89b-42d3-a456-426614174000",
		"123e4567-e89b-42d3-c456-426614174000",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidCode(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"A", true},
		{strings.Repeat("X", 20), true},
		{strings.Repeat("X", 21), false},
	}
	for _, c := range cases {
		got := IsValidCode(c.input)
		if got != c.want {
			t.Errorf("IsValidCode(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidName(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"A", false},
		{"HR", true},
		{strings.Repeat("n", 100), true},
		{strings.Repeat("n", 101), false},
	}
	for _, c := range cases {
		got := IsValidName(c.input)
		if got != c.want {
			t.Errorf("IsValidName(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidSubdomain(t *testing.T) {
	valid := []string{"acme", "acme-corp", "a1b2"}
	invalid := []string{"", "-acme", "acme-", "Acme", "a", "a_b"}
	for _, s := range valid {
		if !IsValidSubdomain(s) {
			t.Errorf("IsValidSubdomain(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidSubdomain(s) {
			t.Errorf("IsValidSubdomain(%q) = true, want false", s)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	if !IsValidClockTime("09:00") {
		t.Error(`IsValidClockTime("09:00") = false, want true`)
	}
	if IsValidClockTime("25:00") {
		t.Error(`IsValidClockTime("25:00") = true, want false`)
	}
}
