// Package page renders the static highlight page and its companion docx
// digest. Rendering is a pure function of its inputs: the same cards always
// produce the same HTML.
package page

// Card is the rendered unit for one selected segment.
type Card struct {
	Index         int    // 1-based display index
	Timestamp     string // display form, e.g. "04:20"
	StartSeconds  int    // seek offset for the embedded player
	Summary       string
	Keyword       string
	ThumbnailFile string // file name inside the bundle, "" when extraction failed
}

// Data is everything the page template needs.
type Data struct {
	Title   string
	VideoID string
	Cards   []Card
}

// PlaceholderThumbURL is the fallback card image when no frame could be
// extracted for a segment.
func (d Data) PlaceholderThumbURL() string {
	return "https://img.youtube.com/vi/" + d.VideoID + "/hqdefault.jpg"
}
