package domain

// CaseRecord is a normalized regulatory-penalty case. Every field is
// optional in storage; JSON keys follow the source-document spellings so
// dashboard clients see the columns they already know.
type CaseRecord struct {
	ID           string  `json:"id"`
	Title        string  `json:"标题,omitempty"`
	DocNo        string  `json:"文号,omitempty"`
	PublishDate  string  `json:"发布日期,omitempty"`
	DecisionDate string  `json:"作出处罚决定的日期,omitempty"`
	Party        string  `json:"当事人名称,omitempty"`
	Violation    string  `json:"主要违法违规事实,omitempty"`
	LegalBasis   string  `json:"行政处罚依据,omitempty"`
	Decision     string  `json:"行政处罚决定,omitempty"`
	Authority    string  `json:"作出处罚决定的机关名称,omitempty"`
	Category     string  `json:"category,omitempty"`
	Amount       float64 `json:"amount"`
	Province     string  `json:"province,omitempty"`
	Industry     string  `json:"industry,omitempty"`
}
