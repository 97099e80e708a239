package resolve_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/fwojciec/tldr"
	"github.com/fwojciec/tldr/mock"
	"github.com/fwojciec/tldr/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// videoFakes holds call counters for the three video tiers.
type videoFakes struct {
	loader, transcripts, videos int

	loaderDoc *tldr.Document
	loaderErr error

	segments      []tldr.Segment
	transcriptErr error
	gotVideoID    string

	info    *tldr.VideoInfo
	infoErr error
}

func (f *videoFakes) chain(opts ...resolve.ChainOption) *resolve.Chain {
	loader := countingLoader(&f.loader, f.loaderDoc, f.loaderErr)
	transcripts := &mock.TranscriptService{
		FetchTranscriptFn: func(_ context.Context, videoID string) ([]tldr.Segment, error) {
			f.transcripts++
			f.gotVideoID = videoID
			return f.segments, f.transcriptErr
		},
	}
	videos := &mock.VideoInfoService{
		FetchVideoInfoFn: func(context.Context, string) (*tldr.VideoInfo, error) {
			f.videos++
			return f.info, f.infoErr
		},
	}
	return resolve.NewVideoChain(loader, transcripts, videos, opts...)
}

func TestNewVideoChain(t *testing.T) {
	t.Parallel()

	t.Run("structured loader success skips other tiers", func(t *testing.T) {
		t.Parallel()

		f := &videoFakes{loaderDoc: &tldr.Document{Text: "title and transcript"}}

		doc, err := f.chain().Load(context.Background(), mustParse(t, "https://www.youtube.com/watch?v=abc"))

		require.NoError(t, err)
		assert.Equal(t, "title and transcript", doc.Text)
		assert.Equal(t, tldr.MethodYouTubeLoader, doc.Method)
		assert.Equal(t, 1, f.loader)
		assert.Zero(t, f.transcripts)
		assert.Zero(t, f.videos)
	})

	t.Run("transcript tier joins segments", func(t *testing.T) {
		t.Parallel()

		f := &videoFakes{
			loaderErr: errors.New("loader unavailable"),
			segments:  []tldr.Segment{{Text: "Hello"}, {Text: "world"}},
		}

		doc, err := f.chain().Load(context.Background(), mustParse(t, "https://youtu.be/dQw4w9WgXcQ"))

		require.NoError(t, err)
		assert.Equal(t, "Hello world", doc.Text)
		assert.Equal(t, tldr.MethodTranscriptAPI, doc.Method)
		assert.Equal(t, "dQw4w9WgXcQ", f.gotVideoID)
		assert.Zero(t, f.videos)
	})

	t.Run("disabled transcripts fall through to metadata once", func(t *testing.T) {
		t.Parallel()

		f := &videoFakes{
			loaderErr:     errors.New("loader unavailable"),
			transcriptErr: tldr.Errorf(tldr.ETRANSCRIPTSDISABLED, "subtitles are disabled"),
			info:          &tldr.VideoInfo{Title: "A video"},
		}

		doc, err := f.chain().Load(context.Background(), mustParse(t, "https://youtu.be/dQw4w9WgXcQ"))

		require.NoError(t, err)
		assert.Equal(t, "No description available.", doc.Text)
		assert.Equal(t, tldr.MethodMetadata, doc.Method)
		assert.Equal(t, 1, f.videos)
	})

	t.Run("metadata tier uses description", func(t *testing.T) {
		t.Parallel()

		f := &videoFakes{
			loaderErr:     errors.New("loader unavailable"),
			transcriptErr: tldr.Errorf(tldr.ETRANSCRIPTSDISABLED, "subtitles are disabled"),
			info:          &tldr.VideoInfo{Description: "All about cats.", HasDescription: true},
		}

		doc, err := f.chain().Load(context.Background(), mustParse(t, "https://youtu.be/dQw4w9WgXcQ"))

		require.NoError(t, err)
		assert.Equal(t, "All about cats.", doc.Text)
	})

	t.Run("missing video ID skips transcript fetch", func(t *testing.T) {
		t.Parallel()

		f := &videoFakes{
			loaderErr: errors.New("loader unavailable"),
			info:      &tldr.VideoInfo{Description: "channel page", HasDescription: true},
		}

		doc, err := f.chain().Load(context.Background(), mustParse(t, "https://www.youtube.com/@somechannel"))

		require.NoError(t, err)
		assert.Equal(t, "channel page", doc.Text)
		assert.Zero(t, f.transcripts)
		assert.Equal(t, 1, f.videos)
	})

	t.Run("other transcript errors fall through by default", func(t *testing.T) {
		t.Parallel()

		f := &videoFakes{
			loaderErr:     errors.New("loader unavailable"),
			transcriptErr: errors.New("i/o timeout"),
			info:          &tldr.VideoInfo{Description: "desc", HasDescription: true},
		}

		doc, err := f.chain().Load(context.Background(), mustParse(t, "https://youtu.be/abc"))

		require.NoError(t, err)
		assert.Equal(t, "desc", doc.Text)
	})

	t.Run("strict mode stops on other transcript errors", func(t *testing.T) {
		t.Parallel()

		f := &videoFakes{
			loaderErr:     errors.New("loader unavailable"),
			transcriptErr: errors.New("i/o timeout"),
			info:          &tldr.VideoInfo{Description: "desc", HasDescription: true},
		}

		_, err := f.chain(resolve.WithStrictTranscripts(true)).Load(context.Background(), mustParse(t, "https://youtu.be/abc"))

		require.Error(t, err)
		assert.Equal(t, tldr.EEXTRACT, tldr.ErrorCode(err))
		assert.Contains(t, tldr.ErrorMessage(err), "i/o timeout")
		assert.Zero(t, f.videos)
	})

	t.Run("strict mode still falls through on disabled transcripts", func(t *testing.T) {
		t.Parallel()

		f := &videoFakes{
			loaderErr:     errors.New("loader unavailable"),
			transcriptErr: tldr.Errorf(tldr.ETRANSCRIPTSDISABLED, "subtitles are disabled"),
			info:          &tldr.VideoInfo{},
		}

		doc, err := f.chain(resolve.WithStrictTranscripts(true)).Load(context.Background(), mustParse(t, "https://youtu.be/abc"))

		require.NoError(t, err)
		assert.Equal(t, tldr.NoDescription, doc.Text)
		assert.Equal(t, 1, f.videos)
	})

	t.Run("every tier failing returns EEXTRACT and no document", func(t *testing.T) {
		t.Parallel()

		f := &videoFakes{
			loaderErr:     errors.New("loader unavailable"),
			transcriptErr: tldr.Errorf(tldr.ETRANSCRIPTSDISABLED, "subtitles are disabled"),
			infoErr:       errors.New("yt-dlp: unsupported URL"),
		}

		doc, err := f.chain().Load(context.Background(), mustParse(t, "https://youtu.be/abc"))

		assert.Nil(t, doc)
		require.Error(t, err)
		assert.Equal(t, tldr.EEXTRACT, tldr.ErrorCode(err))
		assert.Contains(t, tldr.ErrorMessage(err), "yt-dlp: unsupported URL")
		assert.Equal(t, 1, f.loader)
		assert.Equal(t, 1, f.transcripts)
		assert.Equal(t, 1, f.videos)
	})

	t.Run("loader wrapper sees every tier in order", func(t *testing.T) {
		t.Parallel()

		f := &videoFakes{
			loaderErr:     errors.New("loader unavailable"),
			transcriptErr: tldr.Errorf(tldr.ETRANSCRIPTSDISABLED, "disabled"),
			info:          &tldr.VideoInfo{Description: "desc", HasDescription: true},
		}
		var wrapped, ran []string
		wrap := func(method string, next tldr.Loader) tldr.Loader {
			wrapped = append(wrapped, method)
			return &mock.Loader{
				LoadFn: func(ctx context.Context, u *url.URL) (*tldr.Document, error) {
					ran = append(ran, method)
					return next.Load(ctx, u)
				},
			}
		}

		doc, err := f.chain(resolve.WithLoaderWrapper(wrap)).Load(context.Background(), mustParse(t, "https://youtu.be/abc"))

		require.NoError(t, err)
		assert.Equal(t, "desc", doc.Text)
		want := []string{tldr.MethodYouTubeLoader, tldr.MethodTranscriptAPI, tldr.MethodMetadata}
		assert.Equal(t, want, wrapped)
		assert.Equal(t, want, ran)
	})
}

func TestTranscriptLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("empty transcript fails", func(t *testing.T) {
		t.Parallel()

		l := &resolve.TranscriptLoader{Transcripts: &mock.TranscriptService{
			FetchTranscriptFn: func(context.Context, string) ([]tldr.Segment, error) {
				return []tldr.Segment{{Text: " "}}, nil
			},
		}}

		_, err := l.Load(context.Background(), mustParse(t, "https://youtu.be/abc"))

		assert.Equal(t, tldr.ENOTFOUND, tldr.ErrorCode(err))
	})
}
