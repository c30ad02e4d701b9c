package casedex

import "context"

// SearchBuilder is a fluent builder for search requests.
type SearchBuilder struct {
	req SearchRequest
}

// NewSearch starts a search request.
func NewSearch() *SearchBuilder {
	return &SearchBuilder{}
}

// Keyword searches all text fields at once.
func (b *SearchBuilder) Keyword(q string) *SearchBuilder {
	b.req.Keyword = q
	return b
}

// Title filters on the case title.
func (b *SearchBuilder) Title(q string) *SearchBuilder {
	b.req.TitleText = q
	return b
}

// DocNo filters on the penalty document number.
func (b *SearchBuilder) DocNo(q string) *SearchBuilder {
	b.req.WenhaoText = q
	return b
}

// Party filters on the sanctioned party name.
func (b *SearchBuilder) Party(q string) *SearchBuilder {
	b.req.PeopleText = q
	return b
}

// Violation filters on the violation description.
func (b *SearchBuilder) Violation(q string) *SearchBuilder {
	b.req.EventText = q
	return b
}

// LegalBasis filters on the cited legal basis.
func (b *SearchBuilder) LegalBasis(q string) *SearchBuilder {
	b.req.LawText = q
	return b
}

// Decision filters on the penalty decision text.
func (b *SearchBuilder) Decision(q string) *SearchBuilder {
	b.req.PenaltyText = q
	return b
}

// Authority filters on the deciding authority as a whole substring.
func (b *SearchBuilder) Authority(q string) *SearchBuilder {
	b.req.OrgName = q
	return b
}

// Industry filters on the industry classification.
func (b *SearchBuilder) Industry(v string) *SearchBuilder {
	b.req.Industry = v
	return b
}

// Province filters on the province.
func (b *SearchBuilder) Province(v string) *SearchBuilder {
	b.req.Province = v
	return b
}

// Category filters on the case category.
func (b *SearchBuilder) Category(v string) *SearchBuilder {
	b.req.Category = v
	return b
}

// MinPenalty keeps only cases fined at least amount (CNY).
func (b *SearchBuilder) MinPenalty(amount float64) *SearchBuilder {
	b.req.MinPenalty = amount
	return b
}

// Between bounds the publish date, inclusive, as YYYY-MM-DD.
func (b *SearchBuilder) Between(start, end string) *SearchBuilder {
	b.req.StartDate = start
	b.req.EndDate = end
	return b
}

// Page selects the result page (1-based).
func (b *SearchBuilder) Page(n int) *SearchBuilder {
	b.req.Page = &n
	return b
}

// PageSize sets the page size.
func (b *SearchBuilder) PageSize(n int) *SearchBuilder {
	b.req.PageSize = &n
	return b
}

// Request returns the accumulated request.
func (b *SearchBuilder) Request() *SearchRequest {
	return &b.req
}

// Do executes the search against c.
func (b *SearchBuilder) Do(ctx context.Context, c *Client) (SearchResponse, error) {
	return c.Search(ctx, &b.req)
}
