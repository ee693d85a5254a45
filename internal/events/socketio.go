package events

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/specialistvlad/stepgrid/internal/ctxlog"
)

// connectTimeout bounds how long Dial waits for the server to accept us.
const connectTimeout = 15 * time.Second

// SocketIO emits events to a socket.io server, using the event kind as the
// socket.io event name.
type SocketIO struct {
	client *socket.Socket
}

// Dial connects to the socket.io server at rawURL and joins namespace. The
// URL path, if any, is used as the socket.io path.
func Dial(ctx context.Context, rawURL, namespace string) (*SocketIO, error) {
	logger := ctxlog.FromContext(ctx).With("publisher", "socketio", "url", rawURL)

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	switch parsedURL.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported events URL scheme %q", parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return nil, fmt.Errorf("events URL %q has no host", rawURL)
	}

	opts := socket.DefaultOptions()
	if parsedURL.Path != "" {
		opts.SetPath(parsedURL.Path)
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	client := manager.Socket(namespace, opts)

	client.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected to events server", "sid", client.Id())
		notify(connectChan, nil)
	})

	client.Once(types.EventName("connect_error"), func(errs ...any) {
		err, _ := errs[0].(error)
		if err == nil {
			err = fmt.Errorf("%v", errs[0])
		}
		notify(connectChan, err)
	})

	logger.Debug("Connecting to events server...")
	client.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			client.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return &SocketIO{client: client}, nil
	case <-ctx.Done():
		client.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(connectTimeout):
		client.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", connectTimeout)
	}
}

// notify reports the first connection outcome and drops any later one.
func notify(ch chan<- error, err error) {
	select {
	case ch <- err:
	default:
	}
}

// Publish implements Publisher.
func (s *SocketIO) Publish(ctx context.Context, ev Event) error {
	if !s.client.Connected() {
		return fmt.Errorf("socket.io client is not connected")
	}
	ctxlog.FromContext(ctx).Debug("Emitting event", "event", ev.Kind, "task", ev.Task, "tick", ev.Tick)
	s.client.Emit(string(ev.Kind), ev)
	return nil
}

// Close implements Publisher.
func (s *SocketIO) Close() error {
	s.client.Disconnect()
	return nil
}
