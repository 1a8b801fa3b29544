package processor

import "context"

// Processor runs the full highlight pipeline for one video.
type Processor interface {
	Run(ctx context.Context, req Request) (*Result, error)
}

// Request describes one pipeline run. VideoURL or TranscriptPath must be
// set; when both are set the local transcript wins and the URL is only
// used for thumbnails and the embedded player.
type Request struct {
	VideoURL       string
	TranscriptPath string
	Keywords       []string
	AutoKeywords   bool
	Cards          int
	Title          string
	OutputName     string
}

// Result reports what a run produced.
type Result struct {
	BundleDir  string
	PagePath   string
	DigestPath string
	VideoID    string
	CardCount  int
}
