package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasktailordevai/likability-score/internal/model"
	"github.com/tasktailordevai/likability-score/internal/service"
)

type AnalyzerService interface {
	Analyze(name string, force bool) (*model.LikabilityResult, error)
	Compare(name1, name2 string, force bool) (*model.ComparisonResult, error)
	CacheStats() service.CacheStats
	ClearCache() int
	Info() service.Info
}

type AnalyzeHandler struct {
	analyzer AnalyzerService
}

func NewAnalyzeHandler(analyzer AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer}
}

func (h *AnalyzeHandler) GetAnalyze(c *gin.Context) {
	name := c.Param("name")
	refresh := c.Query("refresh") == "true"

	result, err := h.analyzer.Analyze(name, refresh)
	if err != nil {
		slog.Error("analysis failed", "name", name, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AnalyzeHandler) GetCompare(c *gin.Context) {
	name1 := c.Param("name1")
	name2 := c.Param("name2")
	refresh := c.Query("refresh") == "true"

	result, err := h.analyzer.Compare(name1, name2, refresh)
	if err != nil {
		slog.Error("comparison failed", "name1", name1, "name2", name2, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AnalyzeHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyzer.Info())
}

func (h *AnalyzeHandler) GetCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyzer.CacheStats())
}

func (h *AnalyzeHandler) PostCacheClear(c *gin.Context) {
	cleared := h.analyzer.ClearCache()
	c.JSON(http.StatusOK, ClearCacheResponse{
		Cleared: cleared,
		Message: "Cache cleared",
	})
}

func (h *AnalyzeHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "likability-score",
	})
}
