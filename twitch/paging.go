package twitch

import (
	"fmt"
	"net/url"
	"strconv"
)

// Paging holds the offset/limit pair a paginated endpoint was queried with.
type Paging struct {
	Offset int
	Limit  int
}

// NewPaging creates a Paging value, validating the limit range accepted
// by the API.
func NewPaging(offset, limit int) (Paging, error) {
	if limit < 1 || limit > 100 {
		return Paging{}, ErrInvalidPaging
	}
	return Paging{Offset: offset, Limit: limit}, nil
}

// ParsePaging extracts the offset and limit from a page link, such as the
// "self" or "next" entry of a paginated response. It returns false when
// the link carries no limit parameter.
func ParsePaging(link string) (Paging, bool) {
	u, err := url.Parse(link)
	if err != nil {
		return Paging{}, false
	}

	query := u.Query()
	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil {
		return Paging{}, false
	}

	// A missing or malformed offset means the first page.
	offset, _ := strconv.Atoi(query.Get("offset"))

	return Paging{Offset: offset, Limit: limit}, true
}

// NextOffset returns the offset of the following page.
func (p Paging) NextOffset() int {
	return p.Offset + p.Limit
}

// Paging returns the offset/limit the result was queried with, parsed from
// its "self" link.
func (tg *TopGames) Paging() (Paging, bool) {
	return ParsePaging(tg.Links.Self())
}

// HasNext reports whether another page of results exists.
func (tg *TopGames) HasNext() bool {
	paging, ok := tg.Paging()
	if !ok {
		return tg.Links.Next() != ""
	}
	return paging.NextOffset() < tg.Total
}

// NextParams returns the params for the following page of results.
func (tg *TopGames) NextParams() (TopGamesParams, error) {
	paging, ok := tg.Paging()
	if !ok {
		return TopGamesParams{}, fmt.Errorf("no paging information in link %q", tg.Links.Self())
	}
	return TopGamesParams{}.
		WithOffset(paging.NextOffset()).
		WithLimit(paging.Limit), nil
}

// Paging returns the offset/limit the result was queried with, parsed from
// its "self" link.
func (s *Streams) Paging() (Paging, bool) {
	return ParsePaging(s.Links.Self())
}

// HasNext reports whether another page of results exists.
func (s *Streams) HasNext() bool {
	paging, ok := s.Paging()
	if !ok {
		return s.Links.Next() != ""
	}
	return paging.NextOffset() < s.Total
}

// Paging returns the offset/limit the result was queried with, parsed from
// its "self" link.
func (fs *FeaturedStreams) Paging() (Paging, bool) {
	return ParsePaging(fs.Links.Self())
}
