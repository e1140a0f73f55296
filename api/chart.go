package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-trends/schema"
)

type dayRequest struct {
	Day *int `json:"day" binding:"required"`
}

type rangeRequest struct {
	X []float64 `json:"x" binding:"required,len=2"`
	Y []float64 `json:"y" binding:"required,len=2"`
}

func (s *Server) chart(c *gin.Context) {
	c.JSON(http.StatusOK, s.session.Render())
}

// setDay moves the animation cursor. Out of range days are clamped on render.
func (s *Server) setDay(c *gin.Context) {
	var req dayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if *req.Day < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidDay)
		return
	}

	s.session.SetDay(*req.Day)
	c.JSON(http.StatusOK, s.session.Render())
}

// setRange keeps the range picked by zooming or panning until the selection
// changes.
func (s *Server) setRange(c *gin.Context) {
	var req rangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	r := schema.AxisRanges{
		X: schema.AxisRange{req.X[0], req.X[1]},
		Y: schema.AxisRange{req.Y[0], req.Y[1]},
	}
	if err := s.session.SetUserRange(r); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidRange, err)
		return
	}

	c.JSON(http.StatusOK, s.session.Render())
}

// clearRange is the autorange action: back to the computed bounds.
func (s *Server) clearRange(c *gin.Context) {
	s.session.ClearUserRange()
	c.JSON(http.StatusOK, s.session.Render())
}
