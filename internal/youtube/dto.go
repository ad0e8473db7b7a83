package youtube

// SearchResponse is the body of a search.list call.
type SearchResponse struct {
	Items []Item `json:"items"`
}

// Item is one search hit. Only the video reference is read.
type Item struct {
	ID *VideoRef `json:"id"`
}

// VideoRef identifies a video.
type VideoRef struct {
	Kind    *string `json:"kind"`
	VideoID *string `json:"videoId"`
}

// FirstVideoID returns the id of the first item, or false when there is none.
func (r *SearchResponse) FirstVideoID() (string, bool) {
	if r == nil || len(r.Items) == 0 {
		return "", false
	}
	ref := r.Items[0].ID
	if ref == nil || ref.VideoID == nil || *ref.VideoID == "" {
		return "", false
	}
	return *ref.VideoID, true
}
