package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchAndStoreDocuments finds matching SEC filings and queues the new ones
// for ingestion.
func (s *Server) SearchAndStoreDocuments(c *gin.Context) {
	var req SearchStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	found, queued, err := s.documents.StartSearchAndStore(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Document search and storage started",
		"documentsFound":  found,
		"documentsQueued": queued,
	})
}

// ListDocuments returns registry entries, optionally filtered by company.
func (s *Server) ListDocuments(c *gin.Context) {
	entries := s.documents.ListDocuments(c.Query("company"))

	docs := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		doc := gin.H{
			"id":            entry.Fingerprint,
			"metadata":      entry.Metadata,
			"contentLength": entry.ContentLength,
			"storedAt":      entry.StoredAt,
			"hasSummary":    entry.Summary != nil,
		}
		if entry.Summary != nil {
			doc["summary"] = entry.Summary
		}
		docs = append(docs, doc)
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs, "count": len(docs)})
}

// DocumentStats returns corpus-level registry statistics.
func (s *Server) DocumentStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.documents.DocumentStats())
}
