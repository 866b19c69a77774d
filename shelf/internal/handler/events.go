package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Astemirdum/bookbuddy-service/pkg/profile"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/notify"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Events streams change events of the request's profile as server-sent events.
// The optional topic query parameter narrows the stream and may repeat.
func (h *Handler) Events(c echo.Context) error {
	if h.broker == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "event stream is disabled")
	}
	ctx := c.Request().Context()
	id := profile.FromContext(ctx)

	topics := make([]notify.Topic, 0)
	for _, t := range c.QueryParams()["topic"] {
		topics = append(topics, notify.Topic(t))
	}
	sub := h.broker.Subscribe(id, topics...)
	defer h.broker.Unsubscribe(sub)

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	log := h.log.With(zap.String("profile", id))
	if err := writeEvent(w, "connected", map[string]string{"profile": id}); err != nil {
		log.Debug("sse client gone", zap.Error(err))
		return nil
	}

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-sub.Events():
			if !ok {
				return nil
			}
			if err := writeEvent(w, string(ev.Topic), ev); err != nil {
				log.Debug("sse client gone", zap.Error(err))
				return nil
			}
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

func writeEvent(w *echo.Response, name string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, payload); err != nil {
		return err
	}
	w.Flush()
	return nil
}
