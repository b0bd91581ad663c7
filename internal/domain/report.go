package domain

// ReportRequest is what the tools page submits for a narrative report.
type ReportRequest struct {
	ToolID            string
	Language          Language
	Subject           BirthInput
	Partner           *BirthInput
	Question          string
	HoroscopeLanguage Language
	Perspective       string
	Timeframe         string
}

// Report is the computed metrics plus the generated narrative.
type Report struct {
	ToolID         string           `json:"tool"`
	Metrics        DerivedMetrics   `json:"metrics"`
	PartnerMetrics *DerivedMetrics  `json:"partnerMetrics,omitempty"`
	Synastry       []SynastryRecord `json:"synastry,omitempty"`
	Text           string           `json:"report"`
	Fallback       bool             `json:"fallback"`
}
