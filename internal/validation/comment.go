package validation

import (
	"strings"

	"contesthub/internal/domain"
)

const (
	FieldCommentContestID = "contest_id"
	FieldCommentContent   = "content"
)

func ValidateComment(p Payload, isUpdate bool) Result {
	if len(p) == 0 {
		return emptyBody()
	}
	var c collector

	if isUpdate {
		c.immutable(p, FieldCommentContestID, isUpdate, MsgImmutableCommentContestID)
	} else {
		c.id(p, FieldCommentContestID, isUpdate, MsgInvalidCommentContestID, MsgMissingCommentContestID)
	}
	c.text(p, FieldCommentContent, 1, 1000, isUpdate, MsgInvalidCommentContent, MsgMissingCommentContent)

	return finish(p.clone(), c.errs)
}

// CommentFrom converts a payload that passed ValidateComment into a comment.
func CommentFrom(p Payload) domain.Comment {
	var comment domain.Comment
	if f := p.field(FieldCommentContestID); f.present && !f.wrongType {
		comment.ContestID = strings.ToLower(f.value)
	}
	if f := p.field(FieldCommentContent); f.present && !f.wrongType {
		comment.Content = strings.TrimSpace(f.value)
	}
	return comment
}
