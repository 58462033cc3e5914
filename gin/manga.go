package gin

import (
	"net/http"

	"github.com/fwojciec/nicobar"
	"github.com/gin-gonic/gin"
)

type mangaRequest struct {
	URL      string           `json:"url"`
	Provider nicobar.Provider `json:"provider"`
}

type mangaListRequest struct {
	Provider nicobar.Provider `json:"provider"`
}

func (s *Server) registerMangaRoutes(rg *gin.RouterGroup) {
	rg.POST("/read", s.handleMangaRead)
	rg.POST("/chapter/list", s.handleMangaChapterList)
	rg.POST("/list", s.handleMangaList)
}

func (s *Server) handleMangaRead(c *gin.Context) {
	var req mangaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, nicobar.Errorf(nicobar.EINVALID, "invalid manga request: %v", err), http.StatusBadRequest)
		return
	}

	chapter, err := s.MangaReader.Chapter(c.Request.Context(), req.Provider, req.URL)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, chapter)
}

func (s *Server) handleMangaChapterList(c *gin.Context) {
	var req mangaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, nicobar.Errorf(nicobar.EINVALID, "invalid manga request: %v", err), http.StatusBadRequest)
		return
	}

	list, err := s.MangaReader.ChapterList(c.Request.Context(), req.Provider, req.URL)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleMangaList(c *gin.Context) {
	var req mangaListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, nicobar.Errorf(nicobar.EINVALID, "invalid manga request: %v", err), http.StatusBadRequest)
		return
	}

	list, err := s.MangaReader.MangaList(c.Request.Context(), req.Provider)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, list)
}
