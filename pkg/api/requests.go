package api

// CreateAnalysisRequest starts a new analysis job.
type CreateAnalysisRequest struct {
	Query         string `json:"query"`
	CompanyFilter string `json:"companyFilter"`
}

// BulkDeleteRequest deletes a batch of terminal jobs.
type BulkDeleteRequest struct {
	AnalysisIds []int `json:"analysisIds"`
}

// SearchStoreRequest finds and ingests SEC filings.
type SearchStoreRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}
