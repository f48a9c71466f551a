package composables

import (
	"net/http"
	"strings"
)

type PageParams struct {
	Page  int    `form:"page"`
	Query string `form:"q"`
}

// UsePageParams extracts the 0-based page index and search query from the
// request. Negative or malformed page values collapse to 0.
func UsePageParams(r *http.Request) PageParams {
	params, err := UseQuery(&PageParams{}, r)
	if err != nil {
		params = &PageParams{Query: r.URL.Query().Get("q")}
	}
	if params.Page < 0 {
		params.Page = 0
	}
	params.Query = strings.TrimSpace(params.Query)
	return *params
}
