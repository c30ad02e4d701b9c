package domain

// Source-document field names. Scraped case records carry bilingual keys:
// the regulator's site uses Chinese column headers, while fields added by
// the processing pipeline use English names. Both spellings of the same
// concept are treated as synonyms.
const (
	FieldTitle        = "标题"
	FieldTitleAlt     = "title"
	FieldDocNo        = "文号"
	FieldDocNoAlt     = "subtitle"
	FieldPublishDate  = "发布日期"
	FieldPublishAlt   = "publishDate"
	FieldDecisionDate = "作出处罚决定的日期"
	FieldDecisionAlt  = "decisionDate"
	FieldParty        = "当事人名称"
	FieldPartyAlt     = "people"
	FieldViolation    = "主要违法违规事实"
	FieldViolationAlt = "event"
	FieldLegalBasis   = "行政处罚依据"
	FieldLegalAlt     = "law"
	FieldDecision     = "行政处罚决定"
	FieldDecisionTxt  = "penalty"
	FieldAuthority    = "作出处罚决定的机关名称"
	FieldAuthorityAlt = "org"
	FieldCategory     = "分类"
	FieldCategoryAlt  = "category"
	FieldAmount       = "罚款金额"
	FieldAmountAlt    = "amount"
	FieldProvince     = "省份"
	FieldProvinceAlt  = "province"
	FieldIndustry     = "行业"
	FieldIndustryAlt  = "industry"
)

// FieldSources maps a canonical field to its possible source keys, checked
// in order. An explicit table, not reflection: the set of spellings is
// closed and part of the wire contract.
type FieldSources struct {
	Primary   string
	Alternate string
}

// CaseFieldSources is the canonical-field resolution table used when
// normalizing raw documents.
var CaseFieldSources = map[string]FieldSources{
	"title":        {FieldTitle, FieldTitleAlt},
	"docNo":        {FieldDocNo, FieldDocNoAlt},
	"publishDate":  {FieldPublishDate, FieldPublishAlt},
	"decisionDate": {FieldDecisionDate, FieldDecisionAlt},
	"party":        {FieldParty, FieldPartyAlt},
	"violation":    {FieldViolation, FieldViolationAlt},
	"legalBasis":   {FieldLegalBasis, FieldLegalAlt},
	"decision":     {FieldDecision, FieldDecisionTxt},
	"authority":    {FieldAuthority, FieldAuthorityAlt},
	"category":     {FieldCategory, FieldCategoryAlt},
	"amount":       {FieldAmount, FieldAmountAlt},
	"province":     {FieldProvince, FieldProvinceAlt},
	"industry":     {FieldIndustry, FieldIndustryAlt},
}

// KeywordFields is the fixed OR-list searched by the keyword filter.
var KeywordFields = []string{
	FieldTitle,
	FieldDocNo,
	FieldParty,
	FieldViolation,
	FieldLegalBasis,
	FieldDecision,
	FieldAuthority,
	FieldIndustry,
	FieldProvince,
	FieldCategory,
}
