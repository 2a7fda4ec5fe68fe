package validation

import (
	"strings"

	"contesthub/internal/domain"
)

const (
	FieldFlagTargetType = "target_type"
	FieldFlagTargetID   = "target_id"
	FieldFlagReason     = "reason"
	FieldFlagStatus     = "status"
)

func flagTargets() []string {
	out := make([]string, 0, len(domain.FlagTargets))
	for _, t := range domain.FlagTargets {
		out = append(out, string(t))
	}
	return out
}

func flagStatuses() []string {
	out := make([]string, 0, len(domain.FlagStatuses))
	for _, s := range domain.FlagStatuses {
		out = append(out, string(s))
	}
	return out
}

// ValidateFlag checks a flag payload. The target is fixed once a flag exists, so updates
// may only touch the reason and status.
func ValidateFlag(p Payload, isUpdate bool) Result {
	if len(p) == 0 {
		return emptyBody()
	}
	out := p.clone()
	var c collector

	if isUpdate {
		_, hasType := p[FieldFlagTargetType]
		_, hasID := p[FieldFlagTargetID]
		if hasType || hasID {
			c.add(MsgImmutableFlagTarget)
		}
	} else {
		c.enum(p, out, FieldFlagTargetType, flagTargets(), true, MsgInvalidFlagTargetType)
		if !p.field(FieldFlagTargetType).present {
			c.add(MsgMissingFlagTargetType)
		}
		c.id(p, FieldFlagTargetID, isUpdate, MsgInvalidFlagTargetID, MsgMissingFlagTargetID)
	}
	c.text(p, FieldFlagReason, 5, 300, isUpdate, MsgInvalidFlagReason, MsgMissingFlagReason)
	c.enum(p, out, FieldFlagStatus, flagStatuses(), isUpdate, MsgInvalidFlagStatus)

	return finish(out, c.errs)
}

// FlagFrom converts a payload that passed ValidateFlag on create into a flag.
func FlagFrom(p Payload) domain.Flag {
	var flag domain.Flag
	if f := p.field(FieldFlagTargetType); f.present && !f.wrongType {
		flag.TargetType = domain.FlagTarget(f.value)
	}
	if f := p.field(FieldFlagTargetID); f.present && !f.wrongType {
		flag.TargetID = strings.ToLower(f.value)
	}
	if f := p.field(FieldFlagReason); f.present && !f.wrongType {
		flag.Reason = strings.TrimSpace(f.value)
	}
	if f := p.field(FieldFlagStatus); f.present && !f.wrongType {
		flag.Status = domain.FlagStatus(f.value)
	}
	return flag
}

// FlagPatchFrom converts a payload that passed ValidateFlag on update into a patch.
func FlagPatchFrom(p Payload) domain.FlagPatch {
	var patch domain.FlagPatch
	if f := p.field(FieldFlagReason); f.present && !f.wrongType {
		reason := strings.TrimSpace(f.value)
		patch.Reason = &reason
	}
	if f := p.field(FieldFlagStatus); f.present && !f.wrongType {
		status := domain.FlagStatus(f.value)
		patch.Status = &status
	}
	return patch
}
