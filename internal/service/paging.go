package service

import "github.com/d60-Lab/microblog/internal/model"

// Page sizes match the listing contracts: 10 per page everywhere except
// the following feed, which shows 20.
const (
	ListPageSize = 10
	FeedPageSize = 20
)

// PostPage is one bounded slice of an ordered listing.
type PostPage struct {
	Items    []*model.Post `json:"items"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Total    int64         `json:"total"`
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
