package validation

import (
	"strings"

	"contesthub/internal/domain"
)

const (
	FieldContestTitle       = "contest_title"
	FieldContestDescription = "description"
	FieldContestStartDate   = "start_date"
	FieldContestEndDate     = "end_date"
	FieldContestStatus      = "status"
)

func contestStatuses() []string {
	out := make([]string, 0, len(domain.ContestStatuses))
	for _, s := range domain.ContestStatuses {
		out = append(out, string(s))
	}
	return out
}

// ValidateContest checks a contest payload. On create the title, start date and end date
// are required and an absent status defaults to the first contest status.
func ValidateContest(p Payload, isUpdate bool) Result {
	if len(p) == 0 {
		return emptyBody()
	}
	out := p.clone()
	var c collector

	c.text(p, FieldContestTitle, 3, 100, isUpdate, MsgInvalidContestTitle, MsgMissingContestTitle)
	c.text(p, FieldContestDescription, 8, 500, isUpdate, MsgInvalidContestDescription, "")

	start, startOK := c.date(p, FieldContestStartDate, isUpdate, MsgInvalidContestStartDate, MsgMissingContestStartDate)
	end, endOK := c.date(p, FieldContestEndDate, isUpdate, MsgInvalidContestEndDate, MsgMissingContestEndDate)
	if startOK && endOK && !end.After(start) {
		c.add(MsgContestEndBeforeStart)
	}

	c.enum(p, out, FieldContestStatus, contestStatuses(), isUpdate, MsgInvalidContestStatus)

	return finish(out, c.errs)
}

// ContestPatchFrom converts a payload that passed ValidateContest into typed fields.
func ContestPatchFrom(p Payload) domain.ContestPatch {
	var patch domain.ContestPatch
	if f := p.field(FieldContestTitle); f.present && !f.wrongType {
		title := strings.TrimSpace(f.value)
		patch.Title = &title
	}
	if f := p.field(FieldContestDescription); f.present && !f.wrongType {
		description := strings.TrimSpace(f.value)
		patch.Description = &description
	}
	if f := p.field(FieldContestStartDate); f.present {
		if t, ok := parseISODate(f.value); ok {
			patch.StartDate = &t
		}
	}
	if f := p.field(FieldContestEndDate); f.present {
		if t, ok := parseISODate(f.value); ok {
			patch.EndDate = &t
		}
	}
	if f := p.field(FieldContestStatus); f.present && !f.wrongType {
		status := domain.ContestStatus(f.value)
		patch.Status = &status
	}
	return patch
}
