package sdk

import (
	"bufio"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Transport carries CRLF-delimited JSON lines to and from the game server.
type Transport interface {
	// ReadLine returns the next message line without its terminator.
	ReadLine() ([]byte, error)

	// WriteLine sends one message line, adding the terminator.
	WriteLine(data []byte) error

	// SetReadDeadline bounds the next ReadLine so the run loop can poll
	// for cancellation.
	SetReadDeadline(t time.Time) error

	Close() error
}

// Dial connects to the server named by serverURL. A tcp:// URL (or a bare
// host:port) speaks the line protocol directly; ws:// and wss:// wrap each
// line in a websocket text frame for servers behind a websocket proxy.
func Dial(serverURL string, timeout time.Duration) (Transport, error) {
	scheme, rest := "tcp", serverURL
	if u, err := url.Parse(serverURL); err == nil && u.Scheme != "" {
		scheme = u.Scheme
		rest = u.Host
	}

	switch scheme {
	case "tcp":
		conn, err := net.DialTimeout("tcp", rest, timeout)
		if err != nil {
			return nil, fmt.Errorf("dialing %s: %w", serverURL, err)
		}
		return &tcpTransport{conn: conn, reader: bufio.NewReader(conn)}, nil
	case "ws", "wss":
		dialer := *websocket.DefaultDialer
		dialer.HandshakeTimeout = timeout
		conn, _, err := dialer.Dial(serverURL, nil)
		if err != nil {
			return nil, fmt.Errorf("dialing %s: %w", serverURL, err)
		}
		return &wsTransport{conn: conn}, nil
	default:
		return nil, fmt.Errorf("unsupported scheme %q in %s", scheme, serverURL)
	}
}

type tcpTransport struct {
	conn   net.Conn
	reader *bufio.Reader
}

func (t *tcpTransport) ReadLine() ([]byte, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

func (t *tcpTransport) WriteLine(data []byte) error {
	buf := make([]byte, 0, len(data)+2)
	buf = append(buf, data...)
	buf = append(buf, '\r', '\n')
	_, err := t.conn.Write(buf)
	return err
}

func (t *tcpTransport) SetReadDeadline(deadline time.Time) error {
	return t.conn.SetReadDeadline(deadline)
}

func (t *tcpTransport) Close() error {
	return t.conn.Close()
}

type wsTransport struct {
	conn *websocket.Conn
}

func (t *wsTransport) ReadLine() ([]byte, error) {
	for {
		msgType, data, err := t.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		if msgType != websocket.TextMessage {
			continue
		}
		return []byte(strings.TrimRight(string(data), "\r\n")), nil
	}
}

func (t *wsTransport) WriteLine(data []byte) error {
	return t.conn.WriteMessage(websocket.TextMessage, data)
}

func (t *wsTransport) SetReadDeadline(deadline time.Time) error {
	return t.conn.SetReadDeadline(deadline)
}

func (t *wsTransport) Close() error {
	return t.conn.Close()
}
