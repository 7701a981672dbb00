package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/llennemann/badgepress/pkg/config"
	"github.com/llennemann/badgepress/pkg/pipeline"
)

// previewCommand creates the preview command for browser review.
func (c *CLI) previewCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "preview [badgepress.toml]",
		Short: "Serve the badge sheets over HTTP for browser review",
		Long: `Serve the badge sheets over HTTP for browser review.

The preview command runs a local web server that re-renders the badges
on every page load, so edits to the roster or the config show up on
refresh. Nothing is written next to your files; each render goes to a
temporary directory that is cleaned up immediately.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), configPath(args), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8421", "listen address for the preview server")

	return cmd
}

// runPreview starts the preview server and blocks until ctx is cancelled.
func (c *CLI) runPreview(ctx context.Context, cfgPath, addr string) error {
	// Fail fast on config problems instead of surfacing them per request.
	if _, err := config.Load(cfgPath); err != nil {
		return err
	}

	s := &previewServer{cli: c, cfgPath: cfgPath}
	server := &http.Server{Addr: addr, Handler: s.routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	printSuccess("Preview server running")
	printKeyValue("Address", "http://"+addr)
	printDetail("edit the roster and refresh the page to re-render")
	printDetail("press Ctrl+C to stop")

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// =============================================================================
// Preview Server
// =============================================================================

// previewServer renders badge sheets on demand. The config is re-read
// per request so roster and layout edits show up on refresh.
type previewServer struct {
	cli     *CLI
	cfgPath string

	// mu serializes renders; concurrent refreshes would just duplicate work.
	mu sync.Mutex
}

// routes builds the preview router.
func (s *previewServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/badges.pdf", s.handlePDF)
	return r
}

const previewPage = `<!DOCTYPE html>
<html>
<head>
<title>Badgepress Preview</title>
<style>
  body { margin: 0; height: 100vh; display: flex; flex-direction: column; font-family: sans-serif; }
  header { padding: 8px 16px; background: #337AB7; color: white; }
  header span { opacity: 0.7; font-size: 0.9em; margin-left: 12px; }
  embed { flex: 1; border: 0; }
</style>
</head>
<body>
<header><strong>Badgepress</strong><span>refresh to re-render</span></header>
<embed src="/badges.pdf" type="application/pdf">
</body>
</html>
`

func (s *previewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, previewPage)
}

func (s *previewServer) handlePDF(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, result, err := s.render(r.Context())
	if err != nil {
		s.cli.Logger.Error("preview render failed", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Run-Id", result.RunID)
	_, _ = w.Write(data)
}

// render generates the sheets into a temporary directory and returns
// the PDF bytes.
func (s *previewServer) render(ctx context.Context) ([]byte, *pipeline.Result, error) {
	cfg, err := config.Load(s.cfgPath)
	if err != nil {
		return nil, nil, err
	}

	dir, err := os.MkdirTemp("", "badgepress-preview-*")
	if err != nil {
		return nil, nil, err
	}
	defer os.RemoveAll(dir)

	// Preview always renders a single document regardless of output config.
	cfg.Output.Path = filepath.Join(dir, "preview.pdf")
	cfg.Output.Mode = config.OutputModeSingle

	prog := newProgress(s.cli.Logger)
	result, err := s.cli.newRunner().Execute(ctx, pipeline.Options{Config: cfg})
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(result.Outputs[0])
	if err != nil {
		return nil, nil, err
	}
	prog.done(fmt.Sprintf("Rendered %d badges on %d sheets", result.Stats.Eligible, result.Stats.Sheets))

	return data, result, nil
}
