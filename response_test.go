package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestResponseFraming(t *testing.T) {
	body := []byte("hello")
	var buf bytes.Buffer
	if err := NewResponse(StatusOK, body, "text/html").Send(&buf); err != nil {
		t.Fatal(err)
	}

	head, gotBody, found := strings.Cut(buf.String(), "\r\n\r\n")
	if !found {
		t.Fatalf("no header terminator in %q", buf.String())
	}
	if gotBody != "hello" {
		t.Errorf("body = %q, want %q", gotBody, "hello")
	}

	lines := strings.Split(head, "\r\n")
	if lines[0] != "HTTP/1.1 200 OK" {
		t.Errorf("status line = %q, want %q", lines[0], "HTTP/1.1 200 OK")
	}

	wantOrder := []string{"Date", "Server", "Content-Type", "Content-Length"}
	if len(lines)-1 != len(wantOrder) {
		t.Fatalf("got %d headers, want %d: %q", len(lines)-1, len(wantOrder), lines[1:])
	}
	for i, want := range wantOrder {
		name, _, _ := strings.Cut(lines[i+1], ": ")
		if name != want {
			t.Errorf("header %d = %q, want %q", i, name, want)
		}
	}

	for _, line := range lines[1:] {
		name, value, _ := strings.Cut(line, ": ")
		switch name {
		case "Date":
			if _, err := time.Parse("Mon, 02 Jan 2006 15:04:05 GMT", value); err != nil {
				t.Errorf("bad Date %q: %v", value, err)
			}
		case "Server":
			if value != serverToken {
				t.Errorf("Server = %q, want %q", value, serverToken)
			}
		case "Content-Type":
			if value != "text/html" {
				t.Errorf("Content-Type = %q, want text/html", value)
			}
		case "Content-Length":
			if value != strconv.Itoa(len(body)) {
				t.Errorf("Content-Length = %q, want %d", value, len(body))
			}
		}
	}
}

func TestContentLengthMatchesBodyForEveryStatus(t *testing.T) {
	for _, status := range []int{StatusOK, StatusNotFound, StatusMethodNotAllowed, StatusInternalError} {
		body := []byte(reasonPhrase(status))
		var buf bytes.Buffer
		if err := NewResponse(status, body, "text/plain").Send(&buf); err != nil {
			t.Fatal(err)
		}
		_, gotBody, _ := strings.Cut(buf.String(), "\r\n\r\n")
		want := "Content-Length: " + strconv.Itoa(len(gotBody)) + "\r\n"
		if !strings.Contains(buf.String(), want) {
			t.Errorf("status %d: response %q missing %q", status, buf.String(), want)
		}
	}
}

func TestReasonPhrase(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "OK"},
		{404, "Not Found"},
		{405, "Method Not Allowed"},
		{500, "Internal Server Error"},
		// Unmapped codes fall back to "OK".
		{301, "OK"},
		{418, "OK"},
	}
	for _, tt := range tests {
		if got := reasonPhrase(tt.code); got != tt.want {
			t.Errorf("reasonPhrase(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestMimeTypeFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"index.html", "text/html"},
		{"/srv/www/css/style.css", "text/css"},
		{"UPPER.HTML", "text/html"},
		{"photo.jpeg", "image/jpeg"},
		{"archive.tar.gz", "application/octet-stream"},
		{"noextension", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := mimeTypeFor(tt.path); got != tt.want {
			t.Errorf("mimeTypeFor(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestHTTPDate(t *testing.T) {
	utc := time.Date(2026, time.March, 5, 7, 9, 11, 0, time.UTC)
	want := "Thu, 05 Mar 2026 07:09:11 GMT"
	if got := httpDate(utc); got != want {
		t.Errorf("httpDate(utc) = %q, want %q", got, want)
	}
	// Non-UTC times are rendered in UTC.
	east := time.Date(2026, time.March, 5, 9, 9, 11, 0, time.FixedZone("EET", 2*3600))
	if got := httpDate(east); got != want {
		t.Errorf("httpDate(east) = %q, want %q", got, want)
	}
}
