package ws

import (
	"context"
	"net/http"
	"time"

	"GodSignal/internal/domain/models"
	xhttp "GodSignal/pkg/http"
	xlogger "GodSignal/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait    = 10 * time.Second
	pingInterval = 25 * time.Second
)

// Snapshotter runs one full acquisition for a page by name.
type Snapshotter interface {
	Page(ctx context.Context, name string) interface{}
}

// Frame is one pushed snapshot.
type Frame struct {
	Page   string      `json:"page"`
	Seq    int         `json:"seq"`
	SentAt time.Time   `json:"sent_at"`
	Data   interface{} `json:"data"`
}

// LiveHandler pushes a page snapshot on connect and again every interval
// until the client goes away.
type LiveHandler struct {
	logger   *xlogger.Logger
	pages    Snapshotter
	interval time.Duration
	upgrader websocket.Upgrader
}

func NewLiveHandler(logger *xlogger.Logger, pages Snapshotter, interval time.Duration) *LiveHandler {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &LiveHandler{
		logger:   logger,
		pages:    pages,
		interval: interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *LiveHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/live", h.Live)
}

func (h *LiveHandler) Live(c echo.Context) error {
	req := &models.LiveRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already answered the client.
		h.logger.Warn("websocket upgrade failed", xlogger.Error(err))
		return nil
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()
	go h.readLoop(conn, cancel)

	log := h.logger.With(xlogger.String("page", req.Page), xlogger.String("remote", c.RealIP()))
	log.Info("live feed opened")
	defer log.Info("live feed closed")

	seq := 1
	if err := h.push(ctx, conn, req.Page, seq); err != nil {
		log.Debug("live push failed", xlogger.Error(err))
		return nil
	}

	refresh := time.NewTicker(h.interval)
	defer refresh.Stop()
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-refresh.C:
			seq++
			if err := h.push(ctx, conn, req.Page, seq); err != nil {
				log.Debug("live push failed", xlogger.Error(err))
				return nil
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return nil
			}
		}
	}
}

func (h *LiveHandler) push(ctx context.Context, conn *websocket.Conn, page string, seq int) error {
	data := h.pages.Page(ctx, page)
	if err := ctx.Err(); err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(Frame{Page: page, Seq: seq, SentAt: time.Now().UTC(), Data: data})
}

// readLoop drains client frames so control messages are processed, and
// cancels the feed once the connection is closed.
func (h *LiveHandler) readLoop(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}
