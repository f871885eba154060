package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/pcharbon70/unified-ui-sub001/internal/component"
	"github.com/pcharbon70/unified-ui-sub001/internal/logging"
	"github.com/pcharbon70/unified-ui-sub001/internal/render"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Maximum event message size allowed from the browser. Generous
	// relative to the signal payload limit so oversized events still reach
	// payload validation and get rejected there.
	maxEventSize = 64 * 1024

	shutdownGrace = 5 * time.Second
)

// ServerConfig holds the web server configuration.
type ServerConfig struct {
	Host        string
	Port        int
	Title       string // page title, defaults to "unified-ui"
	Advertise   bool   // advertise over mDNS as _http._tcp
	ServiceName string // mDNS instance name, defaults to "unified-ui"
}

// Server hosts one component instance over HTTP: a page shell at / and a
// websocket at /ws that receives browser events as signals and pushes
// re-rendered HTML after every state change.
type Server struct {
	config   ServerConfig
	instance *component.Instance
	renderer *Renderer
	opts     render.Options

	httpServer *http.Server
	mdns       *zeroconf.Server

	mu    sync.Mutex
	state *render.State
}

// NewServer creates a server around a component instance.
func NewServer(config ServerConfig, instance *component.Instance, opts render.Options) *Server {
	if config.Title == "" {
		config.Title = "unified-ui"
	}
	if config.ServiceName == "" {
		config.ServiceName = "unified-ui"
	}
	return &Server{
		config:   config,
		instance: instance,
		renderer: New(),
		opts:     opts,
	}
}

// Start runs the server until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handlePage)
	mux.HandleFunc("/ws", s.handleWebSocket)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{Addr: addr, Handler: mux}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	logging.Info("Starting web UI server",
		zap.String("addr", addr),
		zap.Bool("advertise", s.config.Advertise),
	)

	if s.config.Advertise {
		if err := s.advertise(); err != nil {
			logging.Warn("mDNS advertisement failed, continuing without it",
				zap.Error(err),
			)
		}
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		return s.shutdown()
	case err := <-errChan:
		s.stopAdvertising()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) shutdown() error {
	logging.Info("Shutting down web UI server")
	s.stopAdvertising()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// advertise registers the server as an _http._tcp service on the local
// network, the standard service type browsers and discovery tools look for.
func (s *Server) advertise() error {
	server, err := zeroconf.Register(
		s.config.ServiceName,
		"_http._tcp",
		"local.",
		s.config.Port,
		[]string{"path=/"},
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register mDNS service: %w", err)
	}
	s.mdns = server
	logging.Info("Advertising over mDNS",
		zap.String("instance", s.config.ServiceName),
		zap.String("service", "_http._tcp"),
	)
	return nil
}

func (s *Server) stopAdvertising() {
	if s.mdns != nil {
		s.mdns.Shutdown()
		s.mdns = nil
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, s.config.Title)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Single-origin local UI; the page and the socket share the host.
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("WebSocket upgrade failed", zap.Error(err))
		return
	}
	remoteAddr := conn.RemoteAddr().String()
	logging.Info("Browser connected", zap.String("remote_addr", remoteAddr))

	defer func() {
		_ = conn.Close()
		logging.Info("Browser disconnected", zap.String("remote_addr", remoteAddr))
	}()

	conn.SetReadLimit(maxEventSize)

	// Initial push so the page shows the current view immediately.
	if err := s.pushHTML(r.Context(), conn); err != nil {
		logging.Error("Initial render push failed", zap.Error(err))
		return
	}

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Warn("WebSocket read error",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		sig := CaptureEvent(data, s.opts.Source)
		if sig == nil {
			logging.Debug("Dropped undecodable browser event",
				zap.String("remote_addr", remoteAddr),
				zap.Int("bytes", len(data)),
			)
			continue
		}
		logging.LogSignal(sig.Type, sig.Source, sig.Subject)

		if err := s.instance.Dispatch(r.Context(), sig); err != nil {
			logging.Error("Signal dispatch failed", zap.Error(err))
			continue
		}
		if err := s.pushHTML(r.Context(), conn); err != nil {
			logging.Error("Render push failed", zap.Error(err))
			return
		}
	}
}

// pushHTML re-renders the instance's current IUR and writes the markup to
// the socket.
func (s *Server) pushHTML(ctx context.Context, conn *websocket.Conn) error {
	root, err := s.instance.IUR(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch view: %w", err)
	}

	s.mu.Lock()
	if s.state == nil {
		s.state, err = s.renderer.Render(root, s.opts)
	} else {
		s.state, err = s.renderer.Update(root, s.state, s.opts)
	}
	markup := HTML(s.state)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, []byte(markup))
}

// pageShell is the static page: it connects to /ws, swaps the pushed HTML
// into #app, and forwards clicks, input changes, and form submits back as
// event JSON.
const pageShell = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body>
<div id="app">connecting...</div>
<script>
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
const app = document.getElementById("app");
ws.onmessage = (msg) => { app.innerHTML = msg.data; };
ws.onclose = () => { app.innerHTML = "<em>disconnected</em>"; };
function send(event, el, value) {
  ws.send(JSON.stringify({
    event: event,
    widget_id: el.getAttribute("data-widget-id") || "",
    value: value === undefined ? null : value
  }));
}
app.addEventListener("click", (e) => {
  const btn = e.target.closest("[ui-click]");
  if (btn) send("click", btn);
  const item = e.target.closest("[ui-select]");
  if (item) send("select", item);
});
app.addEventListener("change", (e) => {
  if (e.target.hasAttribute("ui-change")) send("change", e.target, e.target.value);
});
</script>
</body>
</html>
`
