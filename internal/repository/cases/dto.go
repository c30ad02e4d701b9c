package cases

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kailas-cloud/casedex/internal/domain"
)

// recordFromDoc normalizes a raw document into a CaseRecord, resolving
// each canonical field from whichever source spelling is present.
func recordFromDoc(doc bson.M) domain.CaseRecord {
	return domain.CaseRecord{
		ID:           docID(doc),
		Title:        stringField(doc, "title"),
		DocNo:        stringField(doc, "docNo"),
		PublishDate:  dateField(doc, "publishDate"),
		DecisionDate: dateField(doc, "decisionDate"),
		Party:        stringField(doc, "party"),
		Violation:    stringField(doc, "violation"),
		LegalBasis:   stringField(doc, "legalBasis"),
		Decision:     stringField(doc, "decision"),
		Authority:    stringField(doc, "authority"),
		Category:     stringField(doc, "category"),
		Amount:       numberField(doc, "amount"),
		Province:     stringField(doc, "province"),
		Industry:     stringField(doc, "industry"),
	}
}

func docID(doc bson.M) string {
	switch v := doc["_id"].(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return ""
	}
}

// resolve returns the first present value among the canonical field's
// source spellings.
func resolve(doc bson.M, canonical string) any {
	src, ok := domain.CaseFieldSources[canonical]
	if !ok {
		return nil
	}
	if v, ok := doc[src.Primary]; ok && v != nil {
		return v
	}
	if v, ok := doc[src.Alternate]; ok && v != nil {
		return v
	}
	return nil
}

func stringField(doc bson.M, canonical string) string {
	s, _ := resolve(doc, canonical).(string)
	return s
}

// dateField renders dates uniformly as YYYY-MM-DD whether stored as a
// BSON date or a string.
func dateField(doc bson.M, canonical string) string {
	switch v := resolve(doc, canonical).(type) {
	case string:
		return v
	case primitive.DateTime:
		return v.Time().UTC().Format(domain.DateLayout)
	case time.Time:
		return v.UTC().Format(domain.DateLayout)
	default:
		return ""
	}
}

func numberField(doc bson.M, canonical string) float64 {
	switch v := resolve(doc, canonical).(type) {
	case float64:
		return v
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}
