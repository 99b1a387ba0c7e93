package main

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const serverToken = "gohttpd/1.0"

const (
	StatusOK               = 200
	StatusNotFound         = 404
	StatusMethodNotAllowed = 405
	StatusInternalError    = 500
)

var reasonPhrases = map[int]string{
	StatusOK:               "OK",
	StatusNotFound:         "Not Found",
	StatusMethodNotAllowed: "Method Not Allowed",
	StatusInternalError:    "Internal Server Error",
}

// reasonPhrase falls back to "OK" for unmapped codes; any new status code
// needs an explicit entry in reasonPhrases.
func reasonPhrase(code int) string {
	if reason, ok := reasonPhrases[code]; ok {
		return reason
	}
	return "OK"
}

var mimeTypes = map[string]string{
	".html": "text/html",
	".htm":  "text/html",
	".css":  "text/css",
	".js":   "text/javascript",
	".json": "application/json",
	".txt":  "text/plain",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".pdf":  "application/pdf",
	".xml":  "application/xml",
}

func mimeTypeFor(path string) string {
	if ctype, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ctype
	}
	return "application/octet-stream"
}

func httpDate(t time.Time) string {
	return t.UTC().Format("Mon, 02 Jan 2006 15:04:05 GMT")
}

type header struct {
	name  string
	value string
}

// Response is a complete HTTP response. Headers are a slice, not a map:
// emission order is part of the wire format.
type Response struct {
	status  int
	headers []header
	body    []byte
}

func NewResponse(status int, body []byte, contentType string) *Response {
	return &Response{
		status: status,
		headers: []header{
			{"Date", httpDate(time.Now())},
			{"Server", serverToken},
			{"Content-Type", contentType},
			{"Content-Length", strconv.Itoa(len(body))},
		},
		body: body,
	}
}

// Send serializes the status line, headers and body, and transmits them
// with a single write.
func (r *Response) Send(w io.Writer) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "HTTP/1.1 %d %s\r\n", r.status, reasonPhrase(r.status))
	for _, h := range r.headers {
		fmt.Fprintf(&buf, "%s: %s\r\n", h.name, h.value)
	}
	buf.WriteString("\r\n")
	buf.Write(r.body)
	_, err := w.Write(buf.Bytes())
	return err
}
