package enrich

import "strings"

// industryRule maps party-name keywords to an industry label.
type industryRule struct {
	label    string
	keywords []string
}

// industryRules is scanned in priority order; the first category with a
// matching keyword wins.
var industryRules = []industryRule{
	{"银行", []string{"银行", "农村信用", "信用社", "农信"}},
	{"保险", []string{"保险", "财险", "产险", "人寿", "寿险"}},
	{"证券", []string{"证券"}},
	{"信托", []string{"信托"}},
	{"金融租赁", []string{"租赁"}},
	{"小额贷款", []string{"小额贷款", "小贷"}},
}

// Industry derives an industry label from a punished party's name.
// Returns "" when no keyword matches.
func Industry(party string) string {
	if party == "" {
		return ""
	}
	for _, r := range industryRules {
		for _, kw := range r.keywords {
			if strings.Contains(party, kw) {
				return r.label
			}
		}
	}
	return ""
}
