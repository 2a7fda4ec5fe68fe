package validation

import (
	"reflect"
	"testing"

	"contesthub/internal/domain"

	"github.com/google/uuid"
)

func TestValidateFlagCreateDefaultsStatus(t *testing.T) {
	in := Payload{
		FieldFlagTargetType: "comment",
		FieldFlagTargetID:   uuid.NewString(),
		FieldFlagReason:     "spam links",
	}
	res := ValidateFlag(in, false)
	if !res.OK() {
		t.Fatalf("expected valid flag, got %v", res.Errors)
	}
	flag := FlagFrom(res.Payload)
	if flag.Status != domain.FlagPending {
		t.Fatalf("expected pending default, got %q", flag.Status)
	}
	if flag.TargetType != domain.FlagTargetComment {
		t.Fatalf("unexpected target type %q", flag.TargetType)
	}
	if _, ok := in[FieldFlagStatus]; ok {
		t.Fatalf("input payload must not be mutated")
	}
}

func TestValidateFlagCreateErrors(t *testing.T) {
	res := ValidateFlag(Payload{FieldFlagTargetType: "user", FieldFlagReason: "bad"}, false)
	want := []string{MsgInvalidFlagTargetType, MsgMissingFlagTargetID, MsgInvalidFlagReason}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
}

func TestValidateFlagCreateMissingTargetType(t *testing.T) {
	res := ValidateFlag(Payload{FieldFlagTargetID: uuid.NewString(), FieldFlagReason: "offensive"}, false)
	if !reflect.DeepEqual(res.Errors, []string{MsgMissingFlagTargetType}) {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
}

func TestValidateFlagUpdate(t *testing.T) {
	res := ValidateFlag(Payload{FieldFlagStatus: "reviewed"}, true)
	if !res.OK() {
		t.Fatalf("expected valid update, got %v", res.Errors)
	}
	patch := FlagPatchFrom(res.Payload)
	if patch.Status == nil || *patch.Status != domain.FlagReviewed || patch.Reason != nil {
		t.Fatalf("unexpected patch: %+v", patch)
	}

	res = ValidateFlag(Payload{FieldFlagTargetID: uuid.NewString(), FieldFlagStatus: "closed"}, true)
	want := []string{MsgImmutableFlagTarget, MsgInvalidFlagStatus}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
}
