// Package httpserver runs the admin HTTP endpoint in the background.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	appLogger "github.com/device-management-toolkit/cacheboot/pkg/logger"
)

const (
	_defaultReadTimeout     = 5 * time.Second
	_defaultWriteTimeout    = 5 * time.Second
	_defaultAddr            = ":8282"
	_defaultShutdownTimeout = 3 * time.Second
)

// Errors.
var (
	ErrTLSCertKeyMissing = errors.New("tls enabled: both certFile and keyFile must be set")
)

// Server -.
type Server struct {
	server          *http.Server
	notify          chan error
	shutdownTimeout time.Duration
	useTLS          bool
	certFile        string
	keyFile         string
	listener        net.Listener
	log             appLogger.Interface
}

// New starts serving handler immediately; failures are reported on Notify.
func New(handler http.Handler, opts ...Option) *Server {
	s := &Server{
		server: &http.Server{
			Handler:      handler,
			ReadTimeout:  _defaultReadTimeout,
			WriteTimeout: _defaultWriteTimeout,
			Addr:         _defaultAddr,
		},
		notify:          make(chan error, 1),
		shutdownTimeout: _defaultShutdownTimeout,
		log:             appLogger.New("info"),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.start()

	return s
}

func (s *Server) start() {
	go func() {
		s.notify <- s.serve()

		close(s.notify)
	}()
}

func (s *Server) serve() error {
	if !s.useTLS {
		s.log.Info("http - listening on " + s.addr())

		if s.listener != nil {
			return s.server.Serve(s.listener)
		}

		return s.server.ListenAndServe()
	}

	if s.certFile == "" || s.keyFile == "" {
		return ErrTLSCertKeyMissing
	}

	s.log.Info("http - listening with TLS on " + s.addr())

	if s.listener != nil {
		return s.server.ServeTLS(s.listener, s.certFile, s.keyFile)
	}

	return s.server.ListenAndServeTLS(s.certFile, s.keyFile)
}

func (s *Server) addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.server.Addr
}

// Notify -.
func (s *Server) Notify() <-chan error {
	return s.notify
}

// Shutdown -.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
