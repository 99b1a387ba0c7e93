package main

import (
	"errors"
	"log"
	"net"
	"sync/atomic"
)

type Server struct {
	listener net.Listener
	root     DocRoot
	closed   atomic.Bool
}

func NewServer(l net.Listener, root DocRoot) *Server {
	return &Server{listener: l, root: root}
}

// AcceptLoop accepts connections until Close is called, handing each one
// to its own session goroutine so a slow session never stalls the loop.
func (s *Server) AcceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() {
				return
			}
			log.Println(err)
			continue
		}
		go newSession(s, conn).serve()
	}
}

func (s *Server) Close() error {
	s.closed.Store(true)
	return s.listener.Close()
}

// session handles a single connection. Sessions share nothing mutable;
// the only shared value is the server's immutable document root.
type session struct {
	srv  *Server
	conn net.Conn
}

func newSession(srv *Server, conn net.Conn) *session {
	return &session{srv: srv, conn: conn}
}

// serve handles exactly one request, then closes the connection. The
// connection is closed on every path, and a panic mid-handling degrades
// to a best-effort 500 instead of taking the process down.
func (s *session) serve() {
	defer s.conn.Close()
	defer func() {
		if v := recover(); v != nil {
			log.Printf("panic serving %s: %v", s.conn.RemoteAddr(), v)
			s.respond(StatusInternalError, []byte("Internal Server Error"), "text/plain")
		}
	}()

	raw, err := readRawRequest(s.conn)
	if err != nil || raw == "" {
		return
	}
	req, err := parseRequestLine(raw)
	if err != nil {
		s.respond(StatusInternalError, []byte("Internal Server Error"), "text/plain")
		return
	}
	status := s.handle(req)
	log.Printf("%s %s %s %d", s.conn.RemoteAddr(), req.method, req.target, status)
}

// handle runs the GET path and returns the status code that was sent.
func (s *session) handle(req requestLine) int {
	if req.method != "GET" {
		return s.respond(StatusMethodNotAllowed, []byte("Method Not Allowed"), "text/plain")
	}
	path, err := s.srv.root.Resolve(req.target)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return s.respond(StatusNotFound, []byte("Not Found"), "text/plain")
		}
		return s.respond(StatusInternalError, []byte("Internal Server Error"), "text/plain")
	}
	body, err := s.srv.root.ReadFile(path)
	if err != nil {
		return s.respond(StatusInternalError, []byte("Internal Server Error"), "text/plain")
	}
	return s.respond(StatusOK, body, mimeTypeFor(path))
}

// respond writes the response, swallowing write errors: the peer may
// already be gone, and the connection closes either way.
func (s *session) respond(status int, body []byte, contentType string) int {
	if err := NewResponse(status, body, contentType).Send(s.conn); err != nil {
		log.Printf("write to %s failed: %v", s.conn.RemoteAddr(), err)
	}
	return status
}
