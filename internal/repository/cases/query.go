package cases

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kailas-cloud/casedex/internal/domain"
)

// BuildFilter translates a search request into a compound mongo filter.
// Every caller-supplied literal is escaped, so filter values are always
// matched as substrings, never as patterns. An empty request yields the
// match-all filter. The builder is deterministic: equal requests produce
// equal filters.
//
// Dates must already be validated (domain.SearchRequest.Validate);
// unparseable dates are skipped here rather than re-reported.
func BuildFilter(req *domain.SearchRequest) bson.M {
	var conds []bson.M

	appendCond := func(c bson.M) {
		if c != nil {
			conds = append(conds, c)
		}
	}

	// Single-field text filters: whitespace-split tokens, AND-of-substring.
	appendCond(tokenFilter(domain.FieldDocNo, req.WenhaoText))
	appendCond(tokenFilter(domain.FieldParty, req.PeopleText))
	appendCond(tokenFilter(domain.FieldViolation, req.EventText))
	appendCond(tokenFilter(domain.FieldLegalBasis, req.LawText))
	appendCond(tokenFilter(domain.FieldDecision, req.PenaltyText))
	appendCond(tokenFilter(domain.FieldTitle, req.TitleText))
	appendCond(tokenFilter(domain.FieldAuthority, req.OrgText))

	// Synonym-pair filters: all tokens must match wholly within one of the
	// two field spellings.
	appendCond(synonymFilter(domain.FieldIndustry, domain.FieldIndustryAlt, req.Industry))
	appendCond(synonymFilter(domain.FieldProvince, domain.FieldProvinceAlt, req.Province))
	appendCond(synonymFilter(domain.FieldCategory, domain.FieldCategoryAlt, req.Category))

	// Issuing authority: plain substring, no tokenization.
	if req.OrgName != "" {
		appendCond(bson.M{domain.FieldAuthority: containsRegex(req.OrgName)})
	}

	appendCond(dateRangeFilter(req.StartDate, req.EndDate))
	appendCond(minPenaltyFilter(req.MinPenalty))
	appendCond(keywordFilter(req.Keyword))

	switch len(conds) {
	case 0:
		return bson.M{}
	case 1:
		return conds[0]
	default:
		return bson.M{"$and": toArray(conds)}
	}
}

// containsRegex builds a case-insensitive substring predicate from a
// literal. QuoteMeta neutralizes every regex metacharacter first.
func containsRegex(literal string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(literal), Options: "i"}
}

// tokenFilter requires the field to contain every whitespace-separated
// token of text, in any order. Returns nil when no tokens remain.
func tokenFilter(field, text string) bson.M {
	tokens := strings.Fields(text)
	switch len(tokens) {
	case 0:
		return nil
	case 1:
		return bson.M{field: containsRegex(tokens[0])}
	default:
		parts := make(bson.A, 0, len(tokens))
		for _, tok := range tokens {
			parts = append(parts, bson.M{field: containsRegex(tok)})
		}
		return bson.M{"$and": parts}
	}
}

// synonymFilter matches when either field spelling satisfies the full
// token set on its own. Tokens are never split across the two fields.
func synonymFilter(primary, alternate, text string) bson.M {
	pf := tokenFilter(primary, text)
	if pf == nil {
		return nil
	}
	af := tokenFilter(alternate, text)
	return bson.M{"$or": bson.A{pf, af}}
}

// dateRangeFilter bounds the publish date inclusively on both ends,
// accepting either a stored date value or its YYYY-MM-DD string form.
// ISO date strings order lexicographically, so the string branch stays
// inclusive as well.
func dateRangeFilter(startDate, endDate string) bson.M {
	if startDate == "" || endDate == "" {
		return nil
	}
	start, err := time.Parse(domain.DateLayout, startDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(domain.DateLayout, endDate)
	if err != nil {
		return nil
	}
	// Records published any time within the end date's calendar day match.
	endOfDay := end.Add(24*time.Hour - time.Millisecond)

	return bson.M{"$or": bson.A{
		bson.M{domain.FieldPublishDate: bson.M{"$gte": start, "$lte": endOfDay}},
		bson.M{domain.FieldPublishDate: bson.M{"$gte": startDate, "$lte": endDate}},
	}}
}

// minPenaltyFilter matches when the amount, under either of its two field
// names, is at least min. The two fields are checked independently on
// purpose: scraped records populate one or the other.
func minPenaltyFilter(min float64) bson.M {
	if min <= 0 {
		return nil
	}
	return bson.M{"$or": bson.A{
		bson.M{domain.FieldAmountAlt: bson.M{"$gte": min}},
		bson.M{domain.FieldAmount: bson.M{"$gte": min}},
	}}
}

// keywordFilter matches the keyword as a substring of any field in the
// fixed content-field list.
func keywordFilter(keyword string) bson.M {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}
	re := containsRegex(keyword)
	parts := make(bson.A, 0, len(domain.KeywordFields))
	for _, field := range domain.KeywordFields {
		parts = append(parts, bson.M{field: re})
	}
	return bson.M{"$or": parts}
}

func toArray(conds []bson.M) bson.A {
	arr := make(bson.A, 0, len(conds))
	for _, c := range conds {
		arr = append(arr, c)
	}
	return arr
}
