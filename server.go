package mmdc

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// loopbackAddr binds to an OS-assigned port on the loopback interface only.
const loopbackAddr = "127.0.0.1:0"

// contentTypes maps each resource route to its Content-Type.
var contentTypes = map[string]string{
	ResourceFont:          "font/woff",
	ResourceStyle:         "text/css;charset=utf-8",
	ResourceConfig:        "application/json",
	ResourceDiagram:       "text/plain;charset=utf-8",
	ResourceRenderLibrary: "text/javascript",
}

const htmlContentType = "text/html"

// Server serves a Store to the local browser.
type Server struct {
	srv    *http.Server
	port   int
	done   chan struct{}
	logger *log.Logger
}

// StartServer binds the loopback listener synchronously, so the returned
// port is already accepting connections, then serves in the background.
func StartServer(store *Store, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = discardLogger()
	}

	ln, err := net.Listen("tcp", loopbackAddr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServerListen, err)
	}

	s := &Server{
		srv: &http.Server{
			Handler:           NewHandler(store, logger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		port:   ln.Addr().(*net.TCPAddr).Port,
		done:   make(chan struct{}),
		logger: logger,
	}

	go func() {
		defer close(s.done)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("asset server stopped", "err", err)
		}
	}()

	logger.Debug("asset server listening", "url", s.URL())
	return s, nil
}

// Port returns the bound TCP port.
func (s *Server) Port() int {
	return s.port
}

// URL returns the page URL the browser navigates to.
func (s *Server) URL() string {
	return pageURL(s.port)
}

// Close stops the server and waits for the serving goroutine to exit.
func (s *Server) Close() error {
	err := s.srv.Close()
	<-s.done
	return err
}

func pageURL(port int) string {
	return "http://" + net.JoinHostPort("127.0.0.1", strconv.Itoa(port)) + "/"
}

// NewHandler routes the page shell and the five resources. Unknown paths
// get 404; a panic while serving one request becomes a 500 for that
// request only.
func NewHandler(store *Store, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = discardLogger()
	}

	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, htmlContentType, store.HTML())
	})

	r.Get("/{resource}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "resource")
		contentType, ok := contentTypes[name]
		if !ok {
			http.NotFound(w, req)
			return
		}
		body, _ := store.Resource(name)
		writeBody(w, contentType, body)
	})

	return r
}

func writeBody(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("served",
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", since(start),
			)
		})
	}
}
