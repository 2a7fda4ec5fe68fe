package validation

const (
	MsgEmptyRequestBody = "empty request body"

	MsgMissingContestTitle       = "contest title is required"
	MsgInvalidContestTitle       = "contest title must be between 3 and 100 characters"
	MsgInvalidContestDescription = "contest description must be between 8 and 500 characters"
	MsgMissingContestStartDate   = "contest start date is required"
	MsgInvalidContestStartDate   = "contest start date must be an ISO-8601 UTC timestamp (YYYY-MM-DDTHH:MM:SS[.mmm]Z)"
	MsgMissingContestEndDate     = "contest end date is required"
	MsgInvalidContestEndDate     = "contest end date must be an ISO-8601 UTC timestamp (YYYY-MM-DDTHH:MM:SS[.mmm]Z)"
	MsgContestEndBeforeStart     = "contest end date must be after the start date"
	MsgInvalidContestStatus      = "contest status must be one of upcoming, ongoing, completed"

	MsgMissingCommentContestID   = "comment contest id is required"
	MsgInvalidCommentContestID   = "comment contest id must be a valid UUID"
	MsgImmutableCommentContestID = "comment contest id cannot be changed"
	MsgMissingCommentContent     = "comment content is required"
	MsgInvalidCommentContent     = "comment content must be between 1 and 1000 characters"

	MsgMissingFlagTargetType = "flag target type is required"
	MsgInvalidFlagTargetType = "flag target type must be one of contest, comment"
	MsgMissingFlagTargetID   = "flag target id is required"
	MsgInvalidFlagTargetID   = "flag target id must be a valid UUID"
	MsgImmutableFlagTarget   = "flag target cannot be changed"
	MsgMissingFlagReason     = "flag reason is required"
	MsgInvalidFlagReason     = "flag reason must be between 5 and 300 characters"
	MsgInvalidFlagStatus     = "flag status must be one of pending, reviewed, dismissed"
)
