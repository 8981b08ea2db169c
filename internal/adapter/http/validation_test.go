package http

import (
	"errors"
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestActionValidation(t *testing.T) {
	type P struct {
		Action string `validate:"txaction"`
	}
	cv := NewValidator()

	for _, s := range []string{"assign", "return", "repair", "retire", "dispose", "transfer", "maintenance"} {
		if err := cv.Validate(P{Action: s}); err != nil {
			t.Fatalf("expected valid action %q, got err: %v", s, err)
		}
	}

	for _, s := range []string{"", "ASSIGN", "teleport", "assign "} {
		err := cv.Validate(P{Action: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Action", "must be one of") {
			t.Fatalf("expected action message for %q, got: %+v", s, fe)
		}
	}
}

func TestStatusValidation(t *testing.T) {
	type P struct {
		Status string `validate:"txstatus"`
	}
	cv := NewValidator()

	for _, s := range []string{"pending", "accepted", "rejected", "completed", "in_progress", "cancelled"} {
		if err := cv.Validate(P{Status: s}); err != nil {
			t.Fatalf("expected valid status %q, got err: %v", s, err)
		}
	}
	for _, s := range []string{"", "done", "Pending"} {
		err := cv.Validate(P{Status: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Status", "valid transaction status") {
			t.Fatalf("expected status message for %q, got: %+v", s, fe)
		}
	}
}

func TestPriorityValidation(t *testing.T) {
	type P struct {
		Priority string `validate:"txpriority"`
	}
	cv := NewValidator()

	for _, s := range []string{"low", "medium", "high", "urgent"} {
		if err := cv.Validate(P{Priority: s}); err != nil {
			t.Fatalf("expected valid priority %q, got err: %v", s, err)
		}
	}
	for _, s := range []string{"", "critical", "HIGH"} {
		err := cv.Validate(P{Priority: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Priority", "low, medium, high, urgent") {
			t.Fatalf("expected priority message for %q, got: %+v", s, fe)
		}
	}
}

func TestRequiredAndDateMapping(t *testing.T) {
	type P struct {
		Name string `validate:"required"`
		ID   uint64 `validate:"gte=1"`
		Date string `validate:"datetime=2006-01-02"`
	}
	cv := NewValidator()

	err := cv.Validate(P{
		Name: "",           // required
		ID:   0,            // gte=1
		Date: "20-08-2026", // wrong layout
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "ID", "greater than or equal to 1") {
		t.Fatalf("missing gte message for ID: %+v", fe)
	}
	if !containsFieldMsg(fe, "Date", "must match format 2006-01-02") {
		t.Fatalf("missing datetime message for Date: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
