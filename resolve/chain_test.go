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

// countingLoader returns a loader that records its calls and responds with
// doc or err.
func countingLoader(calls *int, doc *tldr.Document, err error) *mock.Loader {
	return &mock.Loader{
		LoadFn: func(context.Context, *url.URL) (*tldr.Document, error) {
			*calls++
			return doc, err
		},
	}
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestChain_Run(t *testing.T) {
	t.Parallel()

	t.Run("first success short-circuits later tiers", func(t *testing.T) {
		t.Parallel()

		var first, second, third int
		chain := resolve.NewChain(
			resolve.Tier{Method: "a", Loader: countingLoader(&first, &tldr.Document{Text: "from a"}, nil)},
			resolve.Tier{Method: "b", Loader: countingLoader(&second, &tldr.Document{Text: "from b"}, nil)},
			resolve.Tier{Method: "c", Loader: countingLoader(&third, &tldr.Document{Text: "from c"}, nil)},
		)

		doc, attempts := chain.Run(context.Background(), mustParse(t, "https://youtu.be/x"))

		require.NotNil(t, doc)
		assert.Equal(t, "from a", doc.Text)
		assert.Equal(t, "a", doc.Method)
		assert.Equal(t, 1, first)
		assert.Zero(t, second)
		assert.Zero(t, third)
		require.Len(t, attempts, 1)
		assert.True(t, attempts[0].OK())
	})

	t.Run("failure advances to next tier", func(t *testing.T) {
		t.Parallel()

		var first, second int
		chain := resolve.NewChain(
			resolve.Tier{Method: "a", Loader: countingLoader(&first, nil, errors.New("unavailable"))},
			resolve.Tier{Method: "b", Loader: countingLoader(&second, &tldr.Document{Text: "from b"}, nil)},
		)

		doc, attempts := chain.Run(context.Background(), mustParse(t, "https://youtu.be/x"))

		require.NotNil(t, doc)
		assert.Equal(t, "from b", doc.Text)
		assert.Equal(t, 1, first)
		assert.Equal(t, 1, second)
		require.Len(t, attempts, 2)
		assert.Equal(t, "a", attempts[0].Method)
		assert.EqualError(t, attempts[0].Err, "unavailable")
		assert.True(t, attempts[1].OK())
	})

	t.Run("empty document counts as failure", func(t *testing.T) {
		t.Parallel()

		var first, second int
		chain := resolve.NewChain(
			resolve.Tier{Method: "a", Loader: countingLoader(&first, &tldr.Document{}, nil)},
			resolve.Tier{Method: "b", Loader: countingLoader(&second, &tldr.Document{Text: "ok"}, nil)},
		)

		doc, attempts := chain.Run(context.Background(), mustParse(t, "https://youtu.be/x"))

		require.NotNil(t, doc)
		assert.Equal(t, "ok", doc.Text)
		assert.Equal(t, tldr.ENOTFOUND, tldr.ErrorCode(attempts[0].Err))
	})

	t.Run("stop ends the chain", func(t *testing.T) {
		t.Parallel()

		var first, second int
		chain := resolve.NewChain(
			resolve.Tier{
				Method: "a",
				Loader: countingLoader(&first, nil, errors.New("timeout")),
				Stop:   func(error) bool { return true },
			},
			resolve.Tier{Method: "b", Loader: countingLoader(&second, &tldr.Document{Text: "b"}, nil)},
		)

		doc, attempts := chain.Run(context.Background(), mustParse(t, "https://youtu.be/x"))

		assert.Nil(t, doc)
		assert.Len(t, attempts, 1)
		assert.Zero(t, second)
	})

	t.Run("canceled context runs no tiers", func(t *testing.T) {
		t.Parallel()

		var first int
		chain := resolve.NewChain(
			resolve.Tier{Method: "a", Loader: countingLoader(&first, &tldr.Document{Text: "a"}, nil)},
		)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		doc, attempts := chain.Run(ctx, mustParse(t, "https://youtu.be/x"))

		assert.Nil(t, doc)
		assert.Zero(t, first)
		require.Len(t, attempts, 1)
		assert.ErrorIs(t, attempts[0].Err, context.Canceled)
	})
}

func TestChain_Load(t *testing.T) {
	t.Parallel()

	t.Run("all tiers failing returns EEXTRACT with every cause", func(t *testing.T) {
		t.Parallel()

		var a, b int
		chain := resolve.NewChain(
			resolve.Tier{Method: "a", Loader: countingLoader(&a, nil, errors.New("first broke"))},
			resolve.Tier{Method: "b", Loader: countingLoader(&b, nil, errors.New("second broke"))},
		)

		doc, err := chain.Load(context.Background(), mustParse(t, "https://youtu.be/x"))

		assert.Nil(t, doc)
		require.Error(t, err)
		assert.Equal(t, tldr.EEXTRACT, tldr.ErrorCode(err))
		msg := tldr.ErrorMessage(err)
		assert.Contains(t, msg, "a: first broke")
		assert.Contains(t, msg, "b: second broke")
	})

	t.Run("no tiers returns EEXTRACT", func(t *testing.T) {
		t.Parallel()

		_, err := resolve.NewChain().Load(context.Background(), mustParse(t, "https://youtu.be/x"))

		assert.Equal(t, tldr.EEXTRACT, tldr.ErrorCode(err))
	})
}
