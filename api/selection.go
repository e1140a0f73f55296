package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-trends/schema"
	"github.com/bitmark-inc/covid-trends/session"
)

type selectionRequest struct {
	DataType  schema.DataType `json:"data_type" binding:"required"`
	Countries []string        `json:"countries"`
	Window    int             `json:"window" binding:"required"`
	Normalize bool            `json:"normalize"`
}

func (s *Server) getSelection(c *gin.Context) {
	chart := s.session.Render()

	c.JSON(http.StatusOK, gin.H{
		"requested": s.session.Desired(),
		"applied":   chart.UIState,
	})
}

// updateSelection applies new toggles. The fetch runs in the background
// unless the client asks to wait; either way a failed fetch is not an error
// of this request and shows up in the dataset status instead.
func (s *Server) updateSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	sel := schema.Selection{
		DataType:  req.DataType,
		Countries: req.Countries,
		Window:    req.Window,
		Normalize: req.Normalize,
	}
	if sel.Countries == nil {
		sel.Countries = []string{}
	}

	if err := session.ValidateSelection(sel); err != nil {
		switch {
		case errors.Is(err, session.ErrUnknownDataType):
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownDataType, err)
		case errors.Is(err, session.ErrInvalidWindow):
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidWindow, err)
		default:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		}
		return
	}

	if !wait(c) {
		s.background(func(ctx context.Context) error {
			return s.session.Select(ctx, sel)
		})
		c.JSON(http.StatusAccepted, gin.H{
			"requested": sel,
		})
		return
	}

	if err := s.session.Select(c.Request.Context(), sel); err != nil {
		log.WithField("error", err).Warn("select")
	}
	c.JSON(http.StatusOK, s.session.Render())
}

func (s *Server) refresh(c *gin.Context) {
	if !wait(c) {
		s.background(s.session.Refresh)
		c.JSON(http.StatusAccepted, s.session.Status())
		return
	}

	if err := s.session.Refresh(c.Request.Context()); err != nil {
		log.WithField("error", err).Warn("refresh")
	}
	c.JSON(http.StatusOK, s.session.Status())
}

func (s *Server) status(c *gin.Context) {
	c.JSON(http.StatusOK, s.session.Status())
}

func (s *Server) countries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"countries": s.session.Countries(),
	})
}
