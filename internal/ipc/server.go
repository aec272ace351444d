package ipc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"
	"time"

	"mediaconv/internal/daemon"
	"mediaconv/internal/logging"
)

// ServiceName is the JSON-RPC service prefix.
const ServiceName = "Mediaconv"

// shutdownDelay lets the Shutdown reply reach the client before the server
// closes its connections.
const shutdownDelay = 100 * time.Millisecond

// Server exposes daemon commands via JSON-RPC over a Unix domain socket.
type Server struct {
	path      string
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.Mutex
	conns map[net.Conn]struct{}
}

// ServerOption customizes a Server.
type ServerOption func(*service)

// WithShutdown installs the function invoked by the Shutdown RPC.
func WithShutdown(fn func()) ServerOption {
	return func(s *service) {
		s.shutdown = fn
	}
}

// NewServer configures the IPC server at the given socket path.
func NewServer(ctx context.Context, path string, d *daemon.Daemon, logger *slog.Logger, opts ...ServerOption) (*Server, error) {
	if d == nil {
		return nil, errors.New("ipc server requires daemon")
	}
	logger = logging.NewComponentLogger(logger, "ipc")

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	svc := &service{daemon: d, logger: logger, ctx: serverCtx}
	for _, opt := range opts {
		opt(svc)
	}
	rpcServer := rpc.NewServer()
	if err := rpcServer.RegisterName(ServiceName, svc); err != nil {
		cancel()
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	return &Server{
		path:      path,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
		conns:     make(map[net.Conn]struct{}),
	}, nil
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				if errors.Is(err, net.ErrClosed) {
					return
				}
				logging.WarnWithContext(s.logger, "accept failed", "ipc_accept_failed",
					logging.Error(err),
					logging.String(logging.FieldImpact, "IPC clients may fail to connect"),
					logging.String(logging.FieldErrorHint, "check socket permissions and restart the daemon if needed"))
				continue
			}
			s.track(conn, true)
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				defer s.track(c, false)
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

func (s *Server) track(conn net.Conn, add bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if add {
		s.conns[conn] = struct{}{}
		return
	}
	delete(s.conns, conn)
}

// Close stops the server, disconnects clients, and removes the socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.mu.Lock()
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		logging.WarnWithContext(s.logger, "failed to remove socket", "ipc_socket_cleanup_failed",
			logging.String("socket", s.path),
			logging.Error(err),
			logging.String(logging.FieldImpact, "stale IPC socket may block future starts"),
			logging.String(logging.FieldErrorHint, "remove the socket file manually"))
	}
}

// service holds the exported RPC methods.
type service struct {
	daemon   *daemon.Daemon
	logger   *slog.Logger
	ctx      context.Context
	shutdown func()
}

func (s *service) Status(_ Empty, resp *StatusResponse) error {
	*resp = s.daemon.Status(s.ctx).StatusDTO()
	return nil
}

func (s *service) Shutdown(_ Empty, resp *ShutdownResponse) error {
	if s.shutdown == nil {
		return errors.New("shutdown not supported by this daemon")
	}
	s.logger.Info("daemon shutdown requested via IPC",
		logging.String(logging.FieldEventType, "daemon_shutdown_requested"))
	resp.Stopping = true
	time.AfterFunc(shutdownDelay, s.shutdown)
	return nil
}

func (s *service) PickFiles(_ Empty, resp *ItemsResponse) error {
	items, err := s.daemon.Service().PickFiles(s.ctx)
	resp.Items = items
	return err
}

func (s *service) PickFolder(_ Empty, resp *ItemsResponse) error {
	items, err := s.daemon.Service().PickFolder(s.ctx)
	resp.Items = items
	return err
}

func (s *service) PickOutput(_ Empty, resp *PathResponse) error {
	path, err := s.daemon.Service().PickOutput(s.ctx)
	resp.Path = path
	return err
}

func (s *service) OpenOutput(req OpenOutputRequest, _ *Empty) error {
	return s.daemon.Service().OpenOutput(s.ctx, req.Path)
}

func (s *service) OpenSettingsWindow(_ Empty, _ *Empty) error {
	return s.daemon.Service().OpenSettingsWindow(s.ctx)
}

func (s *service) PickFFmpeg(_ Empty, resp *PathResponse) error {
	path, err := s.daemon.Service().PickFFmpeg(s.ctx)
	resp.Path = path
	return err
}

func (s *service) CheckFFmpeg(_ Empty, resp *CheckResponse) error {
	ok, err := s.daemon.Service().CheckFFmpeg(s.ctx)
	resp.OK = ok
	return err
}

func (s *service) StartConversion(req StartConversionRequest, _ *Empty) error {
	return s.daemon.Service().StartConversion(s.ctx, req)
}

func (s *service) StopConversion(_ Empty, _ *Empty) error {
	return s.daemon.Service().StopConversion(s.ctx)
}

func (s *service) CloseWindow(req CloseWindowRequest, resp *CloseWindowResponse) error {
	if req.Label == "" {
		return errors.New("window label is required")
	}
	resp.Closed = s.daemon.Windows().Close(s.ctx, req.Label)
	return nil
}
