// internal/search/models.go
package search

// Input is one inbound search request, bound from /search query parameters.
type Input struct {
	Query    string `form:"q" binding:"required"`
	APIKey   string `form:"key" binding:"required"`
	EngineID string `form:"cx" binding:"required"`
	Num      int    `form:"num" binding:"omitempty,min=1,max=10"`
}

// Result is one candidate search hit after reshaping: Title and Snippet
// come straight from the upstream item, URL is the page the image was
// found on, Image the direct image link, and Source the page's domain.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Image   string `json:"image"`
	Source  string `json:"source"`
	Snippet string `json:"snippet,omitempty"`
}

// Response is the envelope returned to the caller.
//
// TotalResults and SearchTime reflect the unfiltered upstream answer;
// only Results is post-validation. TotalResults is therefore usually
// larger than len(Results) and must not be read as the array length.
type Response struct {
	Results      []Result `json:"results"`
	TotalResults int      `json:"total_results"`
	SearchTime   string   `json:"search_time"`
}

// --- Upstream (Google Custom Search) response shapes ---

type googleResponse struct {
	Items             []googleItem     `json:"items"`
	SearchInformation googleSearchInfo `json:"searchInformation"`
}

type googleItem struct {
	Title       string      `json:"title"`
	Link        string      `json:"link"` // direct image URL in image search mode
	Snippet     string      `json:"snippet"`
	DisplayLink string      `json:"displayLink"`
	Image       googleImage `json:"image"`
}

type googleImage struct {
	ContextLink string `json:"contextLink"` // the page hosting the image
}

type googleSearchInfo struct {
	SearchTime   float64 `json:"searchTime"`
	TotalResults string  `json:"totalResults"`
}
