package gin

import (
	"net/http"

	"github.com/fwojciec/nicobar"
	"github.com/gin-gonic/gin"
)

func (s *Server) registerArticleRoutes(rg *gin.RouterGroup) {
	rg.GET("/simples", s.handleArticleList)
	rg.GET("/get/:articleId", s.handleArticleGet)
	rg.POST("/generate", s.handleArticleGenerate)
}

func (s *Server) handleArticleList(c *gin.Context) {
	filter := nicobar.ArticleFilter{Tag: optionalQuery(c, "tag")}
	var err error
	if filter.Offset, err = intQuery(c, "offset"); err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	if filter.Limit, err = intQuery(c, "limit"); err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}

	simples, err := s.ArticleReader.Find(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, simples)
}

func (s *Server) handleArticleGet(c *gin.Context) {
	article, err := s.ArticleReader.Get(c.Request.Context(), c.Param("articleId"))
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (s *Server) handleArticleGenerate(c *gin.Context) {
	var prompt nicobar.ArticlePrompt
	if err := c.ShouldBindJSON(&prompt); err != nil {
		writeError(c, nicobar.Errorf(nicobar.EINVALID, "invalid article prompt: %v", err), http.StatusBadRequest)
		return
	}

	article, err := s.ArticleGenerator.Generate(c.Request.Context(), prompt)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, article)
}
