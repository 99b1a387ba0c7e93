package main

import (
	"bytes"
	"errors"
	"io"
	"net"
	"os"
	"strings"
	"time"
)

const readTimeout = 2 * time.Second

var ErrMalformedRequest = errors.New("malformed request line")

type requestLine struct {
	method  string
	target  string
	version string
}

// readRawRequest accumulates bytes from the connection until the header
// terminator arrives, the peer closes, or readTimeout passes with no
// activity. A timeout is not an error: whatever arrived so far is treated
// as the complete request. Any other read error discards the request.
func readRawRequest(conn net.Conn) (string, error) {
	var data []byte
	buf := make([]byte, 1024)
	for !bytes.Contains(data, []byte("\r\n\r\n")) {
		if err := conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
			return "", err
		}
		n, err := conn.Read(buf)
		data = append(data, buf[:n]...)
		if err != nil {
			if os.IsTimeout(err) || errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
	}
	// Header bytes are not guaranteed valid UTF-8; the raw bytes are kept
	// as-is, which splitting on CRLF and ASCII whitespace never disturbs.
	return string(data), nil
}

// parseRequestLine splits the first CRLF-delimited line into method,
// target and version. Tokens past the third are ignored.
func parseRequestLine(raw string) (requestLine, error) {
	line, _, _ := strings.Cut(raw, "\r\n")
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return requestLine{}, ErrMalformedRequest
	}
	return requestLine{method: fields[0], target: fields[1], version: fields[2]}, nil
}
