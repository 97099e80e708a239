package http

import (
	"context"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/tldr"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server is forcibly closed.
const ShutdownTimeout = 5 * time.Second

// RequestIDHeader carries the per-request identifier in responses.
const RequestIDHeader = "X-Request-ID"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Summarize Text From YT or Website</title>
</head>
<body>
<h1>Summarize an Article From YT or Website</h1>
<h2>Summarize URL</h2>
<form method="post" action="/summarize">
<input type="text" name="url" value="{{.URL}}" size="80" aria-label="URL">
<button type="submit">Summarize the Content from YT or Website</button>
</form>
{{if .Error}}<p class="error" role="alert">{{.Error}}</p>{{end}}
{{if .Summary}}<div class="summary">{{.Summary}}</div>{{end}}
</body>
</html>
`))

type pageData struct {
	URL     string
	Summary string
	Error   string
}

// Server serves the summarize form.
type Server struct {
	server   *http.Server
	pipeline *tldr.Pipeline
	logger   zerolog.Logger
}

// NewServer creates a new Server backed by pipeline.
func NewServer(pipeline *tldr.Pipeline, logger zerolog.Logger) *Server {
	s := &Server{pipeline: pipeline, logger: logger}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /summarize", s.handleSummarize)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// Run listens on addr and serves until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("listening")
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, pageData{})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set(RequestIDHeader, requestID)

	rawURL := r.PostFormValue("url")
	data := pageData{URL: rawURL}

	begin := time.Now()
	result, err := s.pipeline.Run(r.Context(), rawURL)

	event := s.logger.Info()
	if err != nil {
		event = s.logger.Warn().Err(err).Str("code", tldr.ErrorCode(err))
	}
	event.
		Str("request_id", requestID).
		Str("url", rawURL).
		Dur("duration", time.Since(begin)).
		Msg("summarize")

	if err != nil {
		data.Error = tldr.ErrorMessage(err)
		s.render(w, statusCode(err), data)
		return
	}

	data.Summary = result.Summary
	s.render(w, http.StatusOK, data)
}

func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error().Err(err).Msg("render page")
	}
}

// statusCode maps an application error code to an HTTP status.
func statusCode(err error) int {
	switch tldr.ErrorCode(err) {
	case tldr.EINVALID:
		return http.StatusBadRequest
	case tldr.EEXTRACT:
		return http.StatusUnprocessableEntity
	case tldr.ESUMMARY:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
