package nats

import (
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/dnvquote/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Timeouts used when starting and stopping the embedded server.
var (
	ReadyTimeout    = 4 * time.Second
	DrainTimeout    = 2 * time.Second
	ShutdownTimeout = 5 * time.Second
)

// StartEmbeddedNATS starts a JetStream enabled server that stores its data
// under storeDir and never opens a network port.
func StartEmbeddedNATS(storeDir string) (*server.Server, error) {
	logger.Debug("Starting embedded NATS server, store dir: %s", storeDir)

	ns, err := server.NewServer(&server.Options{
		JetStream:  true,
		StoreDir:   storeDir,
		DontListen: true,
		NoSigs:     true,
	})
	if err != nil {
		logger.Error("Failed to create NATS server: %v", err)
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(ReadyTimeout) {
		ns.Shutdown()
		logger.Error("NATS server not ready after %s", ReadyTimeout)
		return nil, errors.New("nats server failed to start within timeout")
	}

	logger.Debug("NATS server ready")
	return ns, nil
}

// ConnectInProcess opens a connection that talks to ns without sockets.
func ConnectInProcess(ns *server.Server) (*nats.Conn, error) {
	conn, err := nats.Connect("", nats.InProcessServer(ns), nats.Name("dnvquote"))
	if err != nil {
		logger.Error("Failed to connect to NATS in-process: %v", err)
		return nil, fmt.Errorf("connecting in-process: %w", err)
	}
	return conn, nil
}

// CreateJetStream creates a JetStream context from a NATS connection.
func CreateJetStream(nc *nats.Conn) (jetstream.JetStream, error) {
	return jetstream.New(nc)
}

// Shutdown drains the connection and stops the server. A drain that fails or
// takes longer than DrainTimeout falls back to a hard close.
func Shutdown(nc *nats.Conn, ns *server.Server) error {
	if nc != nil {
		drained := make(chan error, 1)
		go func() { drained <- nc.Drain() }()

		select {
		case err := <-drained:
			if err != nil {
				logger.Warn("NATS drain failed, closing: %v", err)
				nc.Close()
			}
		case <-time.After(DrainTimeout):
			logger.Warn("NATS drain timed out after %s, closing", DrainTimeout)
			nc.Close()
		}
	}

	if ns == nil {
		return nil
	}

	ns.Shutdown()
	stopped := make(chan struct{})
	go func() {
		ns.WaitForShutdown()
		close(stopped)
	}()

	select {
	case <-stopped:
		logger.Debug("NATS server stopped")
		return nil
	case <-time.After(ShutdownTimeout):
		logger.Error("NATS server shutdown timed out after %s", ShutdownTimeout)
		return errors.New("nats server shutdown timed out")
	}
}

// Embedded bundles a running server with its in-process connection.
type Embedded struct {
	Server *server.Server
	Conn   *nats.Conn
	JS     jetstream.JetStream
}

// Start runs StartEmbeddedNATS, ConnectInProcess and CreateJetStream in
// order, undoing the earlier steps if a later one fails.
func Start(storeDir string) (*Embedded, error) {
	ns, err := StartEmbeddedNATS(storeDir)
	if err != nil {
		return nil, err
	}

	nc, err := ConnectInProcess(ns)
	if err != nil {
		_ = Shutdown(nil, ns)
		return nil, err
	}

	js, err := CreateJetStream(nc)
	if err != nil {
		_ = Shutdown(nc, ns)
		return nil, fmt.Errorf("creating jetstream context: %w", err)
	}

	return &Embedded{Server: ns, Conn: nc, JS: js}, nil
}

// Close shuts the connection and server down.
func (e *Embedded) Close() error {
	if e == nil {
		return nil
	}
	return Shutdown(e.Conn, e.Server)
}
