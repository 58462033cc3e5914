package gin

import (
	"net/http"

	"github.com/fwojciec/nicobar"
	"github.com/gin-gonic/gin"
)

func (s *Server) registerGameCardRoutes(rg *gin.RouterGroup) {
	rg.GET("/all", s.handleGameCardList)
	rg.GET("/get/:gameCardId", s.handleGameCardGet)
}

// handleGameCardList accepts repeated or comma-separated list parameters:
// color=Red&color=Green or color=Red,Green.
func (s *Server) handleGameCardList(c *gin.Context) {
	filter := nicobar.GameCardFilter{
		Keyword:    optionalQuery(c, "keyword"),
		Feature:    optionalQuery(c, "feature"),
		Types:      listQuery(c, "type"),
		Sets:       listQuery(c, "set"),
		Rarities:   listQuery(c, "rarity"),
		Colors:     listQuery(c, "color"),
		Attributes: listQuery(c, "attributes"),
	}
	var err error
	if filter.Offset, err = intQuery(c, "offset"); err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	if filter.Limit, err = intQuery(c, "limit"); err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}

	cards, err := s.GameCardService.FindGameCards(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (s *Server) handleGameCardGet(c *gin.Context) {
	card, err := s.GameCardService.FindGameCardByID(c.Request.Context(), c.Param("gameCardId"))
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, card)
}
