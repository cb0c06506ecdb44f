package types

// DefaultPageSize 滚动列表固定页大小
const DefaultPageSize = 10

// Scroll 滚动分页响应
type Scroll[T any] struct {
	Data         []T  `json:"data"`
	TotalRecords int  `json:"totalRecords"`
	LastId       int  `json:"lastId"` // 本页最后一条的 user_id，空页为 0
	HasMore      bool `json:"hasMore"`
}
