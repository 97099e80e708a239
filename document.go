package tldr

// Extraction methods recorded on a Document and in Attempts.
const (
	MethodYouTubeLoader = "youtube-loader"
	MethodTranscriptAPI = "transcript-api"
	MethodMetadata      = "metadata"
	MethodPage          = "page"
)

// NoDescription is the document text used when a video has no description.
const NoDescription = "No description available."

// Document is the plain-text extraction result for one URL.
// Text is the only field passed on to summarization.
type Document struct {
	Text      string `json:"text"`
	SourceURL string `json:"sourceUrl"`
	Title     string `json:"title,omitempty"`

	// Method names the strategy that produced the document.
	Method string `json:"method"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Text == "" {
		return Errorf(EINVALID, "document text required")
	}
	return nil
}

// Attempt records the outcome of running one extraction strategy.
// A nil Err means the attempt succeeded.
type Attempt struct {
	Method string
	Err    error
}

// OK reports whether the attempt succeeded.
func (a Attempt) OK() bool {
	return a.Err == nil
}
