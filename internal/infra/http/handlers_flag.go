package http

import (
	"net/http"

	"contesthub/internal/domain"
	"contesthub/internal/validation"

	"github.com/gin-gonic/gin"
)

const flagResource = "flag"

func (s *Server) handleCreateFlag(c *gin.Context, _ string) {
	payload, err := readPayload(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	result := validation.ValidateFlag(payload, false)
	if err := result.Err(); err != nil {
		s.writeError(c, err)
		return
	}
	flag, err := s.flags.Create(c.Request.Context(), validation.FlagFrom(result.Payload), authFromContext(c).UserID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, messageResponse{
		Message: "Flag Created Successfully",
		Data:    buildFlagResponse(flag),
	})
}

func (s *Server) handleListFlags(c *gin.Context, _ string) {
	var filter domain.FlagFilter
	if raw := c.Query("status"); raw != "" {
		status := domain.FlagStatus(raw)
		if !status.Valid() {
			s.writeError(c, &domain.ValidationError{Messages: []string{validation.MsgInvalidFlagStatus}})
			return
		}
		filter.Status = status
	}
	flags, err := s.flags.List(c.Request.Context(), filter)
	if err != nil {
		s.writeError(c, err)
		return
	}
	out := make([]flagResponse, 0, len(flags))
	for _, flag := range flags {
		out = append(out, buildFlagResponse(flag))
	}
	c.JSON(http.StatusOK, dataResponse{Data: out})
}

func (s *Server) handleGetFlag(c *gin.Context, id string) {
	if err := validation.ValidateID(flagResource, id); err != nil {
		s.writeError(c, err)
		return
	}
	flag, err := s.flags.Get(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataResponse{Data: buildFlagResponse(flag)})
}

func (s *Server) handleUpdateFlag(c *gin.Context, id string) {
	if err := validation.ValidateID(flagResource, id); err != nil {
		s.writeError(c, err)
		return
	}
	payload, err := readPayload(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	result := validation.ValidateFlag(payload, true)
	if err := result.Err(); err != nil {
		s.writeError(c, err)
		return
	}
	flag, err := s.flags.Update(c.Request.Context(), id, validation.FlagPatchFrom(result.Payload))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{
		Message: "Flag Updated Successfully",
		Data:    buildFlagResponse(flag),
	})
}

func (s *Server) handleDeleteFlag(c *gin.Context, id string) {
	if err := validation.ValidateID(flagResource, id); err != nil {
		s.writeError(c, err)
		return
	}
	if err := s.flags.Delete(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Flag Deleted Successfully"})
}
