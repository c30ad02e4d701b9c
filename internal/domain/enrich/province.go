package enrich

import "strings"

// provinceRule maps a name stem found in an authority name to the full
// official division name.
type provinceRule struct {
	stem string
	full string
}

// provinceRules is scanned in order; the first stem contained in the text
// wins. Municipalities and autonomous regions come first so their stems are
// resolved before the plain provinces.
var provinceRules = []provinceRule{
	{"北京", "北京市"},
	{"天津", "天津市"},
	{"上海", "上海市"},
	{"重庆", "重庆市"},
	{"内蒙古", "内蒙古自治区"},
	{"广西", "广西壮族自治区"},
	{"西藏", "西藏自治区"},
	{"宁夏", "宁夏回族自治区"},
	{"新疆", "新疆维吾尔自治区"},
	{"河北", "河北省"},
	{"山西", "山西省"},
	{"辽宁", "辽宁省"},
	{"吉林", "吉林省"},
	{"黑龙江", "黑龙江省"},
	{"江苏", "江苏省"},
	{"浙江", "浙江省"},
	{"安徽", "安徽省"},
	{"福建", "福建省"},
	{"江西", "江西省"},
	{"山东", "山东省"},
	{"河南", "河南省"},
	{"湖北", "湖北省"},
	{"湖南", "湖南省"},
	{"广东", "广东省"},
	{"海南", "海南省"},
	{"四川", "四川省"},
	{"贵州", "贵州省"},
	{"云南", "云南省"},
	{"陕西", "陕西省"},
	{"甘肃", "甘肃省"},
	{"青海", "青海省"},
}

// Province derives a full province name from an issuing-authority name.
// Returns "" when no stem matches.
func Province(authority string) string {
	if authority == "" {
		return ""
	}
	for _, r := range provinceRules {
		if strings.Contains(authority, r.stem) {
			return r.full
		}
	}
	return ""
}
