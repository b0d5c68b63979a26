package realtime

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/sirupsen/logrus"
)

const writeTimeout = 5 * time.Second

// Handler upgrades requests to websocket connections and streams hub events
// to them as JSON until the client disconnects.
func Handler(hub *Hub, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			log.WithError(err).Debug("websocket accept failed")
			return
		}

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		sub := hub.Subscribe(64)
		defer hub.Unsubscribe(sub)

		// Drain reads so we notice the client going away.
		readErr := make(chan error, 1)
		go func() {
			for {
				if _, _, err := conn.Read(ctx); err != nil {
					readErr <- err
					return
				}
			}
		}()

		for {
			select {
			case <-ctx.Done():
				conn.Close(websocket.StatusNormalClosure, "closed")
				return
			case <-readErr:
				conn.Close(websocket.StatusNormalClosure, "closed")
				return
			case evt, ok := <-sub:
				if !ok {
					conn.Close(websocket.StatusNormalClosure, "closed")
					return
				}
				writeCtx, cancelWrite := context.WithTimeout(ctx, writeTimeout)
				err := wsjson.Write(writeCtx, conn, evt)
				cancelWrite()
				if err != nil {
					conn.Close(websocket.StatusNormalClosure, "write_failed")
					return
				}
			}
		}
	}
}
