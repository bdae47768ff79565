package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	engagementdomain "github.com/polenmarket/polen/internal/engagement/domain"
)

type contactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message"`
}

func (s *Server) SubmitContactMessage(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.engagementSvc.SubmitMessage(c.Request.Context(), engagementdomain.MessageRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   req.Phone,
		Message: strings.TrimSpace(req.Message),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RecordVisit(c *gin.Context) {
	if err := s.engagementSvc.RecordVisit(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) ListMessages(c *gin.Context) {
	resp, err := s.engagementSvc.ListMessages(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) MarkMessageRead(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := s.engagementSvc.MarkMessageRead(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) ListStatistics(c *gin.Context) {
	resp, err := s.engagementSvc.ListStatistics(c.Request.Context(), engagementdomain.DefaultStatisticsLimit)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
