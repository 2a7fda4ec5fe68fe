package http

import (
	"net/http"

	"contesthub/internal/domain"
	"contesthub/internal/validation"

	"github.com/gin-gonic/gin"
)

const contestResource = "contest"

func (s *Server) handleCreateContest(c *gin.Context, _ string) {
	payload, err := readPayload(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	result := validation.ValidateContest(payload, false)
	if err := result.Err(); err != nil {
		s.writeError(c, err)
		return
	}
	contest, err := s.contests.Create(c.Request.Context(), validation.ContestPatchFrom(result.Payload), authFromContext(c).UserID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, messageResponse{
		Message: "Contest Created Successfully",
		Data:    buildContestResponse(contest),
	})
}

func (s *Server) handleListContests(c *gin.Context, _ string) {
	var filter domain.ContestFilter
	if raw := c.Query("status"); raw != "" {
		status := domain.ContestStatus(raw)
		if !status.Valid() {
			s.writeError(c, &domain.ValidationError{Messages: []string{validation.MsgInvalidContestStatus}})
			return
		}
		filter.Status = status
	}
	contests, err := s.contests.List(c.Request.Context(), filter)
	if err != nil {
		s.writeError(c, err)
		return
	}
	out := make([]contestResponse, 0, len(contests))
	for _, contest := range contests {
		out = append(out, buildContestResponse(contest))
	}
	c.JSON(http.StatusOK, dataResponse{Data: out})
}

func (s *Server) handleGetContest(c *gin.Context, id string) {
	if err := validation.ValidateID(contestResource, id); err != nil {
		s.writeError(c, err)
		return
	}
	contest, err := s.contests.Get(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataResponse{Data: buildContestResponse(contest)})
}

func (s *Server) handleUpdateContest(c *gin.Context, id string) {
	if err := validation.ValidateID(contestResource, id); err != nil {
		s.writeError(c, err)
		return
	}
	payload, err := readPayload(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	result := validation.ValidateContest(payload, true)
	if err := result.Err(); err != nil {
		s.writeError(c, err)
		return
	}
	contest, err := s.contests.Update(c.Request.Context(), id, validation.ContestPatchFrom(result.Payload))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{
		Message: "Contest Updated Successfully",
		Data:    buildContestResponse(contest),
	})
}

func (s *Server) handleDeleteContest(c *gin.Context, id string) {
	if err := validation.ValidateID(contestResource, id); err != nil {
		s.writeError(c, err)
		return
	}
	if err := s.contests.Delete(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Contest Deleted Successfully"})
}
