package enrich

import (
	"regexp"
	"strconv"
)

// 万元 (×10,000) takes priority over plain 元 when both could apply.
var (
	wanPattern  = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*万元`)
	yuanPattern = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*元`)
)

// Amount extracts a penalty amount in yuan from penalty-decision text.
// Returns 0 when neither pattern matches.
func Amount(decision string) float64 {
	if m := wanPattern.FindStringSubmatch(decision); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return v * 10000
		}
	}
	if m := yuanPattern.FindStringSubmatch(decision); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return v
		}
	}
	return 0
}
