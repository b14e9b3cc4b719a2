package server

import (
	"net/http"
	"time"

	"crawl-server/internal/engine"
	"crawl-server/pkg/api"
	"crawl-server/pkg/logger"
	"crawl-server/pkg/utils"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client bridges one WebSocket connection and the GameService.
type Client struct {
	Service *engine.GameService
	Conn    *websocket.Conn
	Send    chan api.ServerResponse
	Token   string
}

func NewClient(service *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Service: service,
		Conn:    conn,
		Send:    make(chan api.ServerResponse, 256),
	}
}

// readPump reads commands from the client until the connection dies.
func (c *Client) readPump() {
	defer func() {
		if c.Token != "" {
			c.Service.Hub.Unregister(c.Token)
			logger.Log.WithField("token", c.Token).Info("Client disconnected.")
		}
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("close websocket connection failed")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// Handshake: the first message must carry a token, or one is
	// assigned.
	var loginCmd api.ClientCommand
	if err := c.Conn.ReadJSON(&loginCmd); err != nil {
		logger.Log.Warn("Handshake failed.")
		return
	}

	c.Token = loginCmd.Token
	if c.Token == "" {
		c.Token = utils.GenerateID()
	}
	logger.Log.WithField("token", c.Token).Info("Client logged in.")

	// Subscribe to snapshots and forward them into the write pump.
	gameUpdates := c.Service.Hub.Register(c.Token)
	go func() {
		for msg := range gameUpdates {
			c.Send <- msg
		}
		close(c.Send)
	}()

	// INIT triggers the first snapshot and, for the first client,
	// claims control of the player.
	c.Service.ProcessCommand(api.ClientCommand{Action: "INIT", Token: c.Token})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS error: %v", err)
			}
			break
		}
		cmd.Token = c.Token
		c.Service.ProcessCommand(cmd)
	}
}

// writePump sends snapshots to the client and keeps the connection
// alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("close websocket connection in writePump failed")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
