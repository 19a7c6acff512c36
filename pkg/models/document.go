package models

// DocumentMetadata describes one SEC filing. Immutable after ingestion.
// AccessionNumber is globally unique across EDGAR.
type DocumentMetadata struct {
	AccessionNumber string `json:"accessionNumber"`
	FormType        string `json:"formType"`
	CompanyName     string `json:"companyName"`
	Ticker          string `json:"ticker,omitempty"`
	CIK             string `json:"cik"`
	FilingDate      string `json:"filingDate"`
	PeriodOfReport  string `json:"periodOfReport,omitempty"`
	Description     string `json:"description,omitempty"`
	SourceURL       string `json:"sourceUrl,omitempty"`
}

// StructuredSummary is the fixed four-field synopsis produced for every
// ingested document. The shape is invariant: missing fields are filled
// with a placeholder at parse time, never dropped.
type StructuredSummary struct {
	ExecutiveSummary    string `json:"executiveSummary"`
	FinancialHighlights string `json:"financialHighlights"`
	InvestmentInsights  string `json:"investmentInsights"`
	RiskFactors         string `json:"riskFactors"`
}

// SummaryPlaceholder fills summary fields the LLM response did not provide.
const SummaryPlaceholder = "Not available in this filing"

// DocumentSummary is the registry's read model consumed by the analysis
// controller: metadata plus the structured summary, without full content.
type DocumentSummary struct {
	Metadata      DocumentMetadata  `json:"metadata"`
	Summary       StructuredSummary `json:"summary"`
	ContentLength int               `json:"contentLength"`
}
