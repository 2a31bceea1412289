package feed

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type CommentCallback func(event *CommentEvent)

type callbackEntry struct {
	id       int
	callback CommentCallback
}

// WebSocket streams CommentEvents from the bridge, reconnecting with a
// bounded retry budget when the connection drops.
type WebSocket struct {
	wsURL                string
	conn                 *websocket.Conn
	connMu               sync.RWMutex
	state                WebSocketState
	stateMu              sync.RWMutex
	callbacks            []callbackEntry
	nextCallbackID       int
	callbacksMu          sync.RWMutex
	reconnectAttempts    int
	maxReconnectAttempts int
	reconnectDelay       time.Duration
	logger               *zap.Logger
	stopCh               chan struct{}
	stopOnce             sync.Once
	listenerWg           sync.WaitGroup
}

func NewWebSocket(wsURL string, maxReconnectAttempts int, reconnectDelay time.Duration, logger *zap.Logger) *WebSocket {
	return &WebSocket{
		wsURL:                wsURL,
		state:                WSStateDisconnected,
		maxReconnectAttempts: maxReconnectAttempts,
		reconnectDelay:       reconnectDelay,
		logger:               logger,
		stopCh:               make(chan struct{}),
		callbacks:            make([]callbackEntry, 0),
		nextCallbackID:       1,
	}
}

func (ws *WebSocket) Connect(ctx context.Context) error {
	ws.stateMu.Lock()
	if ws.state == WSStateConnected || ws.state == WSStateConnecting {
		ws.stateMu.Unlock()
		ws.logger.Warn("Feed WebSocket already connected or connecting")
		return nil
	}
	ws.stateMu.Unlock()

	ws.setState(WSStateConnecting)

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.DialContext(ctx, ws.wsURL, nil)
	if err != nil {
		ws.logger.Error("Failed to connect feed WebSocket", zap.Error(err))
		ws.setState(WSStateFailed)
		ws.scheduleReconnect(ctx)
		return err
	}

	ws.setConn(conn)
	ws.setState(WSStateConnected)
	ws.reconnectAttempts = 0

	ws.logger.Info("Feed WebSocket connected", zap.String("url", ws.wsURL))

	ws.listenerWg.Add(1)
	go ws.listen(ctx)

	return nil
}

func (ws *WebSocket) listen(ctx context.Context) {
	defer ws.listenerWg.Done()
	defer ws.logger.Info("Feed listener stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ws.stopCh:
			return
		default:
			conn := ws.getConn()
			if conn == nil {
				return
			}

			_, msgBytes, err := conn.ReadMessage()
			if err != nil {
				// A read error during intentional shutdown is not a drop.
				select {
				case <-ws.stopCh:
					return
				default:
				}

				ws.logger.Error("Feed WebSocket read error", zap.Error(err))
				ws.setState(WSStateDisconnected)
				ws.scheduleReconnect(ctx)
				return
			}

			ws.handleMessage(msgBytes)
		}
	}
}

func (ws *WebSocket) handleMessage(data []byte) {
	var event CommentEvent
	if err := json.Unmarshal(data, &event); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200]
		}
		ws.logger.Error("Failed to parse comment event",
			zap.Error(err),
			zap.String("data", preview),
		)
		return
	}

	ws.callbacksMu.RLock()
	callbacks := make([]callbackEntry, len(ws.callbacks))
	copy(callbacks, ws.callbacks)
	ws.callbacksMu.RUnlock()

	for _, entry := range callbacks {
		entry.callback(&event)
	}
}

func (ws *WebSocket) scheduleReconnect(ctx context.Context) {
	ws.reconnectAttempts++

	if ws.reconnectAttempts > ws.maxReconnectAttempts {
		ws.logger.Error("Max feed reconnect attempts reached",
			zap.Int("attempts", ws.reconnectAttempts),
		)
		ws.setState(WSStateFailed)
		return
	}

	ws.setState(WSStateReconnecting)

	ws.logger.Info("Scheduling feed reconnect",
		zap.Int("attempt", ws.reconnectAttempts),
		zap.Int("max", ws.maxReconnectAttempts),
		zap.Duration("delay", ws.reconnectDelay),
	)

	go func() {
		select {
		case <-time.After(ws.reconnectDelay):
			if err := ws.Connect(ctx); err != nil {
				ws.logger.Error("Feed reconnect failed", zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}()
}

// OnComment registers a callback and returns its unsubscribe function.
func (ws *WebSocket) OnComment(callback CommentCallback) func() {
	ws.callbacksMu.Lock()
	id := ws.nextCallbackID
	ws.nextCallbackID++
	ws.callbacks = append(ws.callbacks, callbackEntry{id: id, callback: callback})
	ws.callbacksMu.Unlock()

	return func() {
		ws.callbacksMu.Lock()
		defer ws.callbacksMu.Unlock()
		for i, entry := range ws.callbacks {
			if entry.id == id {
				ws.callbacks = append(ws.callbacks[:i], ws.callbacks[i+1:]...)
				break
			}
		}
	}
}

// setConn and getConn keep conn handoffs between Connect, the listener
// goroutine, and Disconnect race-free. Reads on the connection itself happen
// outside the lock so Close can interrupt a blocked ReadMessage.
func (ws *WebSocket) setConn(conn *websocket.Conn) {
	ws.connMu.Lock()
	ws.conn = conn
	ws.connMu.Unlock()
}

func (ws *WebSocket) getConn() *websocket.Conn {
	ws.connMu.RLock()
	defer ws.connMu.RUnlock()
	return ws.conn
}

func (ws *WebSocket) setState(newState WebSocketState) {
	ws.stateMu.Lock()
	oldState := ws.state
	ws.state = newState
	ws.stateMu.Unlock()

	if oldState != newState {
		ws.logger.Info("Feed WebSocket state changed",
			zap.String("from", oldState.String()),
			zap.String("to", newState.String()),
		)
	}
}

func (ws *WebSocket) GetState() WebSocketState {
	ws.stateMu.RLock()
	defer ws.stateMu.RUnlock()
	return ws.state
}

func (ws *WebSocket) IsConnected() bool {
	return ws.GetState() == WSStateConnected
}

func (ws *WebSocket) Disconnect() error {
	ws.stopOnce.Do(func() {
		close(ws.stopCh)
	})

	if conn := ws.getConn(); conn != nil {
		if err := conn.Close(); err != nil {
			ws.logger.Error("Failed to close feed WebSocket", zap.Error(err))
			return err
		}
		ws.setConn(nil)
	}

	ws.reconnectAttempts = 0
	ws.setState(WSStateDisconnected)

	done := make(chan struct{})
	go func() {
		ws.listenerWg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		ws.logger.Warn("Timeout waiting for feed listener to stop")
	}

	return nil
}
