package http

import (
	"net/http"

	"contesthub/internal/domain"
	"contesthub/internal/validation"

	"github.com/gin-gonic/gin"
)

const commentResource = "comment"

func (s *Server) handleCreateComment(c *gin.Context, _ string) {
	payload, err := readPayload(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	result := validation.ValidateComment(payload, false)
	if err := result.Err(); err != nil {
		s.writeError(c, err)
		return
	}
	comment, err := s.comments.Create(c.Request.Context(), validation.CommentFrom(result.Payload), authFromContext(c).UserID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, messageResponse{
		Message: "Comment Created Successfully",
		Data:    buildCommentResponse(comment),
	})
}

// handleListComments serves /comment/contest/:id, so the identifier is a contest id.
func (s *Server) handleListComments(c *gin.Context, contestID string) {
	if err := validation.ValidateID(contestResource, contestID); err != nil {
		s.writeError(c, err)
		return
	}
	comments, err := s.comments.ListByContest(c.Request.Context(), contestID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	out := make([]commentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, buildCommentResponse(comment))
	}
	c.JSON(http.StatusOK, dataResponse{Data: out})
}

func (s *Server) handleGetComment(c *gin.Context, id string) {
	if err := validation.ValidateID(commentResource, id); err != nil {
		s.writeError(c, err)
		return
	}
	comment, err := s.comments.Get(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataResponse{Data: buildCommentResponse(comment)})
}

func (s *Server) handleUpdateComment(c *gin.Context, id string) {
	if err := validation.ValidateID(commentResource, id); err != nil {
		s.writeError(c, err)
		return
	}
	payload, err := readPayload(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	result := validation.ValidateComment(payload, true)
	if err := result.Err(); err != nil {
		s.writeError(c, err)
		return
	}
	content := validation.CommentFrom(result.Payload).Content
	if content == "" {
		s.writeError(c, &domain.ValidationError{Messages: []string{validation.MsgMissingCommentContent}})
		return
	}
	comment, err := s.comments.Update(c.Request.Context(), id, content, authFromContext(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{
		Message: "Comment Updated Successfully",
		Data:    buildCommentResponse(comment),
	})
}

func (s *Server) handleDeleteComment(c *gin.Context, id string) {
	if err := validation.ValidateID(commentResource, id); err != nil {
		s.writeError(c, err)
		return
	}
	if err := s.comments.Delete(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Comment Deleted Successfully"})
}
