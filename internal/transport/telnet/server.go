// Package telnet serves the trivia session engine to multiple simultaneous
// TCP connections sharing one quiz repository. One goroutine and one
// engine.Session per connection; no state is shared between sessions
// beyond the repository itself.
package telnet

import (
	"context"
	"errors"
	"log"
	"net"
	"sync"
	"time"

	"trivia/internal/core"
	"trivia/internal/display"
	"trivia/internal/engine"
)

const shutdownGrace = 2 * time.Second

// Server accepts TCP connections and runs a session loop for each.
type Server struct {
	addr string
	repo core.Repository
	opts engine.Options

	mu    sync.Mutex
	conns map[net.Conn]struct{}
	wg    sync.WaitGroup
}

// NewServer creates a server bound to addr over the shared repository.
func NewServer(addr string, repo core.Repository, opts engine.Options) *Server {
	return &Server{
		addr:  addr,
		repo:  repo,
		opts:  opts,
		conns: make(map[net.Conn]struct{}),
	}
}

// ListenAndServe accepts connections until ctx is canceled, then closes the
// listener and any live connections and waits briefly for sessions to end.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	log.Printf("Telnet server listening on %s", s.addr)

	go func() {
		<-ctx.Done()
		ln.Close()
		s.closeAll()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				break
			}
			log.Printf("Accept failed: %v", err)
			continue
		}

		s.track(conn)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.untrack(conn)
			s.handle(conn)
		}()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownGrace):
		log.Printf("Warning: telnet shutdown timeout, dropping remaining sessions")
	}
	return nil
}

func (s *Server) track(conn net.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		conn.Close()
	}
}

// handle runs one session loop: read a command line, dispatch it, repeat
// until quit or disconnect. A disconnect while a prompt is pending simply
// fails the pending read; the session's game or edit state is discarded
// with it.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	t := newTerm(conn)
	sess := engine.New(t, s.repo, s.opts)
	log.Printf("Session %s connected from %s", sess.ID, conn.RemoteAddr())

	t.WriteLine(display.Colorize("Trivia engine", display.Cyan))
	t.WriteLine("Type 'help' for commands")
	t.Prompt()

	for {
		line, err := t.readLine()
		if err != nil {
			break
		}
		if !sess.Dispatch(line) {
			break
		}
	}

	log.Printf("Session %s disconnected", sess.ID)
}
