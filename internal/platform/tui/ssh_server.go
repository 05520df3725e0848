package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.breakout/host_key.
	HostKeyPath string

	// DBPath is the path to the runs database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.breakout/runs.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves one Breakout session per SSH connection.
type SSHServer struct {
	config     SSHServerConfig
	game       Options
	levelNames []string
	server     *ssh.Server
	store      *storage.Store
	logger     *log.Logger
	active     atomic.Int32
}

// NewSSHServer creates a new SSH server. game is the template for every
// session; its Store, Player, Width and Height are filled per session.
func NewSSHServer(cfg SSHServerConfig, game Options, levelNames []string) (*SSHServer, error) {
	logger := game.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "breakout-ssh",
		})
		game.Logger = logger
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config:     cfg,
		game:       game,
		levelNames: levelNames,
		store:      store,
		logger:     logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".breakout", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	opts := s.game
	opts.Store = s.store
	opts.Player = sess.User()
	opts.Width = pty.Window.Width
	opts.Height = pty.Window.Height
	opts.Runtime.Seed = time.Now().UnixNano()
	opts.Logger = s.logger.With("user", sess.User())

	return NewSessionModel(opts, s.levelNames), []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs session start and end with the number of
// players online.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("session started", "online", s.active.Add(1))
		next(sess)
		logger.Info("session ended", "online", s.active.Add(-1), "duration", time.Since(start).Round(time.Second))
	}
}

// Sessions returns the number of connected players.
func (s *SSHServer) Sessions() int {
	return int(s.active.Load())
}

// ListenAndServe serves until ctx is done, then shuts down. A listener
// failure is returned after shutdown.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info("shutting down...", "online", s.Sessions())
	case err := <-errc:
		if !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
			serveErr = err
		}
	}

	if err := s.Shutdown(); err != nil {
		return errors.Join(serveErr, err)
	}
	return serveErr
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
