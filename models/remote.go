package models

import "encoding/json"

// PageMeta is the pagination envelope the remote case service attaches to
// every list response. Next is null on the last page.
type PageMeta struct {
	Limit      int     `json:"limit"`
	Next       *string `json:"next"`
	Offset     *int    `json:"offset"`
	Previous   *string `json:"previous"`
	TotalCount int     `json:"total_count"`
}

// CasePage is one page of the remote case listing. Objects are kept raw:
// the mirror stores whatever attribute set the remote returns.
type CasePage struct {
	Meta    PageMeta          `json:"meta"`
	Objects []json.RawMessage `json:"objects"`
}
