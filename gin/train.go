package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) registerTrainRoutes(rg *gin.RouterGroup) {
	rg.GET("/departures/:placeId", s.handleDepartures)
	rg.GET("/arrivals/:placeId", s.handleArrivals)
}

func (s *Server) handleDepartures(c *gin.Context) {
	table, err := s.TrainBoard.Departures(c.Request.Context(), c.Param("placeId"))
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (s *Server) handleArrivals(c *gin.Context) {
	table, err := s.TrainBoard.Arrivals(c.Request.Context(), c.Param("placeId"))
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, table)
}
