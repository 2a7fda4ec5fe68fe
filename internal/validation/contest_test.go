package validation

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"contesthub/internal/domain"
)

func validContest() Payload {
	return Payload{
		FieldContestTitle:       "Spring Hackathon",
		FieldContestDescription: "A weekend of building things",
		FieldContestStartDate:   "2025-01-01T00:00:00Z",
		FieldContestEndDate:     "2025-01-03T18:30:00.000Z",
	}
}

func TestValidateContestEmptyBody(t *testing.T) {
	for _, isUpdate := range []bool{false, true} {
		res := ValidateContest(Payload{}, isUpdate)
		if !reflect.DeepEqual(res.Errors, []string{MsgEmptyRequestBody}) {
			t.Fatalf("isUpdate=%v: expected only empty body error, got %v", isUpdate, res.Errors)
		}
	}
}

func TestValidateContestCreateValidDefaultsStatus(t *testing.T) {
	in := validContest()
	res := ValidateContest(in, false)
	if !res.OK() {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
	if res.Payload[FieldContestStatus] != "upcoming" {
		t.Fatalf("expected default status upcoming, got %v", res.Payload[FieldContestStatus])
	}
	if _, ok := in[FieldContestStatus]; ok {
		t.Fatalf("input payload must not be mutated")
	}
}

func TestValidateContestDefaultIsIdempotent(t *testing.T) {
	first := ValidateContest(validContest(), false)
	second := ValidateContest(first.Payload, false)
	if !second.OK() {
		t.Fatalf("expected defaulted payload to validate, got %v", second.Errors)
	}
	if !reflect.DeepEqual(first.Payload, second.Payload) {
		t.Fatalf("expected identical payloads, got %v and %v", first.Payload, second.Payload)
	}
}

func TestValidateContestShortTitleIsSingleError(t *testing.T) {
	p := validContest()
	p[FieldContestTitle] = "ab"
	res := ValidateContest(p, false)
	if !reflect.DeepEqual(res.Errors, []string{MsgInvalidContestTitle}) {
		t.Fatalf("expected exactly the title error, got %v", res.Errors)
	}
}

func TestValidateContestTitleIsTrimmed(t *testing.T) {
	p := validContest()
	p[FieldContestTitle] = "   ab   "
	res := ValidateContest(p, false)
	if len(res.Errors) != 1 || res.Errors[0] != MsgInvalidContestTitle {
		t.Fatalf("expected title error, got %v", res.Errors)
	}
	p[FieldContestTitle] = strings.Repeat("x", 100)
	if res := ValidateContest(p, false); !res.OK() {
		t.Fatalf("expected 100 character title to pass, got %v", res.Errors)
	}
	p[FieldContestTitle] = strings.Repeat("x", 101)
	if res := ValidateContest(p, false); res.OK() {
		t.Fatalf("expected 101 character title to fail")
	}
}

func TestValidateContestAccumulatesErrors(t *testing.T) {
	p := Payload{
		FieldContestTitle:       "ab",
		FieldContestDescription: "short",
		FieldContestStartDate:   "2025-01-01",
		FieldContestStatus:      "archived",
	}
	res := ValidateContest(p, false)
	want := []string{
		MsgInvalidContestTitle,
		MsgInvalidContestDescription,
		MsgInvalidContestStartDate,
		MsgMissingContestEndDate,
		MsgInvalidContestStatus,
	}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Fatalf("unexpected errors:\n got %v\nwant %v", res.Errors, want)
	}
	var verr *domain.ValidationError
	if !errors.As(res.Err(), &verr) {
		t.Fatalf("expected ValidationError, got %T", res.Err())
	}
	if verr.Error() != strings.Join(want, ", ") {
		t.Fatalf("unexpected joined message: %s", verr.Error())
	}
	if !errors.Is(res.Err(), domain.ErrInvalidArgument) {
		t.Fatalf("expected validation error to match ErrInvalidArgument")
	}
}

func TestValidateContestEndBeforeStart(t *testing.T) {
	p := validContest()
	p[FieldContestStartDate] = "2025-01-01T00:00:00Z"
	p[FieldContestEndDate] = "2024-01-01T00:00:00Z"
	res := ValidateContest(p, false)
	if !reflect.DeepEqual(res.Errors, []string{MsgContestEndBeforeStart}) {
		t.Fatalf("expected end-before-start error, got %v", res.Errors)
	}

	p[FieldContestEndDate] = p[FieldContestStartDate]
	res = ValidateContest(p, false)
	if !reflect.DeepEqual(res.Errors, []string{MsgContestEndBeforeStart}) {
		t.Fatalf("expected equal dates to be rejected, got %v", res.Errors)
	}
}

func TestValidateContestOrderingSkippedWhenDateMalformed(t *testing.T) {
	p := validContest()
	p[FieldContestStartDate] = "not-a-date"
	p[FieldContestEndDate] = "2024-01-01T00:00:00Z"
	res := ValidateContest(p, false)
	if !reflect.DeepEqual(res.Errors, []string{MsgInvalidContestStartDate}) {
		t.Fatalf("expected only the format error, got %v", res.Errors)
	}
}

func TestValidateContestUpdateAllowsPartial(t *testing.T) {
	p := Payload{FieldContestDescription: "New and improved description"}
	first := ValidateContest(p, true)
	second := ValidateContest(p, true)
	if !first.OK() {
		t.Fatalf("expected partial update to pass, got %v", first.Errors)
	}
	if _, ok := first.Payload[FieldContestStatus]; ok {
		t.Fatalf("status must not be defaulted on update")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected repeated validation to be identical")
	}
}

func TestValidateContestWrongTypes(t *testing.T) {
	p := validContest()
	p[FieldContestTitle] = 42.0
	p[FieldContestStatus] = true
	res := ValidateContest(p, false)
	want := []string{MsgInvalidContestTitle, MsgInvalidContestStatus}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
}

func TestIsISODate(t *testing.T) {
	cases := map[string]bool{
		"2025-01-01T00:00:00Z":      true,
		"2025-01-01T00:00:00.123Z":  true,
		"2025-01-01T00:00:00+00:00": false,
		"2025-01-01T00:00:00.12Z":   false,
		"2025-01-01 00:00:00Z":      false,
		"2025-13-01T00:00:00Z":      false,
		"":                          false,
	}
	for in, want := range cases {
		if got := IsISODate(in); got != want {
			t.Fatalf("IsISODate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestContestPatchFrom(t *testing.T) {
	res := ValidateContest(validContest(), false)
	patch := ContestPatchFrom(res.Payload)
	if patch.Title == nil || *patch.Title != "Spring Hackathon" {
		t.Fatalf("unexpected title: %v", patch.Title)
	}
	if patch.StartDate == nil || patch.EndDate == nil || !patch.EndDate.After(*patch.StartDate) {
		t.Fatalf("expected parsed dates in order")
	}
	if patch.Status == nil || *patch.Status != domain.ContestUpcoming {
		t.Fatalf("expected defaulted status in patch")
	}
}
