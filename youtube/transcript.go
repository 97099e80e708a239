package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fwojciec/tldr"
)

// Ensure TranscriptClient implements tldr.TranscriptService at compile time.
var _ tldr.TranscriptService = (*TranscriptClient)(nil)

// TranscriptClient fetches timed transcripts through the ANDROID innertube
// player endpoint.
type TranscriptClient struct {
	*client
}

// NewTranscriptClient creates a TranscriptClient.
func NewTranscriptClient(opts ...Option) *TranscriptClient {
	return &TranscriptClient{client: newClient(opts...)}
}

type playerRequest struct {
	VideoID        string        `json:"videoId"`
	Context        playerContext `json:"context"`
	RacyCheckOk    bool          `json:"racyCheckOk"`
	ContentCheckOk bool          `json:"contentCheckOk"`
}

type playerContext struct {
	Client playerClient `json:"client"`
}

type playerClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

// FetchTranscript returns the caption segments of the video in order.
// Returns ETRANSCRIPTSDISABLED if the video has no usable captions.
func (c *TranscriptClient) FetchTranscript(ctx context.Context, videoID string) ([]tldr.Segment, error) {
	p, err := c.player(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return c.transcript(ctx, videoID, p)
}

func (c *TranscriptClient) player(ctx context.Context, videoID string) (*playerResponse, error) {
	body, err := json.Marshal(playerRequest{
		VideoID: videoID,
		Context: playerContext{
			Client: playerClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/youtubei/v1/player?prettyPrint=false"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", androidVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("innertube player: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("innertube player: HTTP %d: %s", resp.StatusCode, snippet)
	}

	var p playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	return &p, nil
}
