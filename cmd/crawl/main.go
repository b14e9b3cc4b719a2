package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"crawl-server/pkg/api"

	"github.com/gdamore/tcell/v2"
	"github.com/gorilla/websocket"
)

// Terminal client. Connects to a running crawl server over WebSocket,
// renders snapshots with tcell, and maps keys to wire commands.
//
// Keys:
//
//	arrows / hjkl / yubn  move (diagonals on yubn)
//	. or space            pass the turn
//	g                     pick up
//	t                     throw targeting (arrows aim, enter throws)
//	z                     yell
//	+ / -                 run faster / more quietly
//	q                     quit
func main() {
	addr := flag.String("addr", "ws://localhost:8080/ws", "server websocket address")
	token := flag.String("token", "", "session token (empty for a new one)")
	flag.Parse()

	conn, _, err := websocket.DefaultDialer.Dial(*addr, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer conn.Close()

	// Handshake.
	if err := conn.WriteJSON(api.ClientCommand{Token: *token, Action: "INIT"}); err != nil {
		fmt.Fprintf(os.Stderr, "handshake: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	ui := &client{conn: conn, screen: screen}
	ui.run()
}

type client struct {
	conn   *websocket.Conn
	screen tcell.Screen

	snapshot api.ServerResponse
	logLines []string

	// Throw targeting cursor; active while aiming.
	targeting bool
	cursorX   int
	cursorY   int
}

func (c *client) run() {
	snapshots := make(chan api.ServerResponse, 8)
	go func() {
		defer close(snapshots)
		for {
			var resp api.ServerResponse
			if err := c.conn.ReadJSON(&resp); err != nil {
				return
			}
			snapshots <- resp
		}
	}()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- c.screen.PollEvent()
		}
	}()

	for {
		select {
		case resp, ok := <-snapshots:
			if !ok {
				return
			}
			c.snapshot = resp
			for _, entry := range resp.Logs {
				c.logLines = append(c.logLines, entry.Text)
			}
			if len(c.logLines) > 4 {
				c.logLines = c.logLines[len(c.logLines)-4:]
			}
			c.render()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				c.screen.Sync()
				c.render()
			case *tcell.EventKey:
				if !c.handleKey(ev) {
					return
				}
			}
		}
	}
}

// handleKey reacts to one keypress. Returns false to quit.
func (c *client) handleKey(ev *tcell.EventKey) bool {
	if c.targeting {
		return c.handleTargetingKey(ev)
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		c.sendMove(0, -1)
	case tcell.KeyDown:
		c.sendMove(0, 1)
	case tcell.KeyLeft:
		c.sendMove(-1, 0)
	case tcell.KeyRight:
		c.sendMove(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			c.sendMove(-1, 0)
		case 'j':
			c.sendMove(0, 1)
		case 'k':
			c.sendMove(0, -1)
		case 'l':
			c.sendMove(1, 0)
		case 'y':
			c.sendMove(-1, -1)
		case 'u':
			c.sendMove(1, -1)
		case 'b':
			c.sendMove(-1, 1)
		case 'n':
			c.sendMove(1, 1)
		case '.', ' ':
			c.send("PASS", nil)
		case 'g':
			c.send("PICKUP", nil)
		case 'z':
			c.send("YELL", nil)
		case '+':
			c.send("FASTER", nil)
		case '-':
			c.send("SLOWER", nil)
		case 't':
			c.startTargeting()
		}
	}
	return true
}

func (c *client) handleTargetingKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		c.targeting = false
	case tcell.KeyEnter:
		c.targeting = false
		c.send("THROW", api.PositionPayload{X: c.cursorX, Y: c.cursorY})
	case tcell.KeyUp:
		c.cursorY--
	case tcell.KeyDown:
		c.cursorY++
	case tcell.KeyLeft:
		c.cursorX--
	case tcell.KeyRight:
		c.cursorX++
	case tcell.KeyCtrlC:
		return false
	}
	c.render()
	return true
}

func (c *client) startTargeting() {
	c.targeting = true
	c.cursorX, c.cursorY = c.selfPos()
	c.render()
}

func (c *client) selfPos() (int, int) {
	for _, e := range c.snapshot.Entities {
		if e.ID == c.snapshot.MyEntityID {
			return e.Pos.X, e.Pos.Y
		}
	}
	return 0, 0
}

func (c *client) sendMove(dx, dy int) {
	c.send("MOVE", api.DirectionPayload{Dx: dx, Dy: dy})
}

func (c *client) send(action string, payload interface{}) {
	cmd := api.ClientCommand{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return
		}
		cmd.Payload = raw
	}
	_ = c.conn.WriteJSON(cmd)
}

func (c *client) render() {
	c.screen.Clear()

	// Tiles: bright inside the field of view, dim in the fog.
	for _, t := range c.snapshot.Map {
		style := tcell.StyleDefault.Foreground(parseColor(t.Color))
		if !t.IsVisible {
			style = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
		}
		c.setString(t.X, t.Y, t.Symbol, style)
	}

	// Entities on top of tiles.
	for _, e := range c.snapshot.Entities {
		style := tcell.StyleDefault.Foreground(parseColor(e.Color))
		if e.Stats != nil && e.Stats.IsDead {
			style = style.Dim(true)
		}
		c.setString(e.Pos.X, e.Pos.Y, e.Symbol, style)
	}

	if c.targeting {
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
		c.setString(c.cursorX, c.cursorY, "X", style)
	}

	// Status line and log tail under the map.
	baseY := 0
	if c.snapshot.Grid != nil {
		baseY = c.snapshot.Grid.Height
	}
	status := fmt.Sprintf("turn %d  depth %d  %s", c.snapshot.Turn, c.snapshot.Depth, c.snapshot.State)
	c.setString(0, baseY, status, tcell.StyleDefault.Bold(true))
	for i, line := range c.logLines {
		c.setString(0, baseY+1+i, line, tcell.StyleDefault)
	}

	c.screen.Show()
}

func (c *client) setString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		c.screen.SetContent(x+i, y, r, nil, style)
	}
}

// parseColor turns a "#RRGGBB" string into a tcell color.
func parseColor(hex string) tcell.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return tcell.ColorWhite
	}
	v, err := strconv.ParseInt(hex[1:], 16, 32)
	if err != nil {
		return tcell.ColorWhite
	}
	return tcell.NewHexColor(int32(v))
}
