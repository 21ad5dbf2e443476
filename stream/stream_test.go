package stream_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/stream"
)

func newTestServer(t *testing.T) (*stream.Server, *httptest.Server) {
	t.Helper()
	s := stream.NewServer(config.Default(), nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	return s, ts
}

func wsURL(ts *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + path
}

// readAll reads events until the server closes the connection.
func readAll(t *testing.T, ctx context.Context, conn *websocket.Conn) []stream.Event {
	t.Helper()
	var out []stream.Event
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			require.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err), "read error: %v", err)
			return out
		}
		var ev stream.Event
		require.NoError(t, json.Unmarshal(data, &ev))
		out = append(out, ev)
	}
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestMazeSession_SingleRow(t *testing.T) {
	_, ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(ts, "/ws?rows=1&columns=3&seed=5"), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	events := readAll(t, ctx, conn)
	require.Len(t, events, 2+3+1)

	session := events[0].Session
	assert.NotEqual(t, uuid.Nil, session)
	for i, ev := range events {
		assert.Equal(t, session, ev.Session)
		assert.Equal(t, uint64(i), ev.Seq)
	}

	assert.Equal(t, stream.TypeWall, events[0].Type)
	assert.Equal(t, "RIGHT", events[0].Direction)
	require.NotNil(t, events[0].Segment)
	assert.Equal(t, gridgraph.Segment{X1: 20, Y1: 1, X2: 20, Y2: 19}, *events[0].Segment)

	for i, col := range []int{0, 1, 2} {
		ev := events[2+i]
		assert.Equal(t, stream.TypePath, ev.Type)
		assert.Equal(t, 0, ev.Row)
		assert.Equal(t, col, ev.Column)
	}

	done := events[5]
	assert.Equal(t, stream.TypeDone, done.Type)
	assert.Equal(t, 1, done.Rows)
	assert.Equal(t, 3, done.Columns)
	assert.Equal(t, 3, done.Cells)
}

func TestMazeSession_ClampsDimensions(t *testing.T) {
	_, ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(ts, "/ws?rows=500&columns=0"), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	events := readAll(t, ctx, conn)
	require.NotEmpty(t, events)
	done := events[len(events)-1]
	assert.Equal(t, stream.TypeDone, done.Type)
	assert.Equal(t, 20, done.Rows)
	assert.Equal(t, 1, done.Columns)
	assert.Equal(t, 20, done.Cells, "a single column is solved straight down")

	walls := 0
	for _, ev := range events {
		if ev.Type == stream.TypeWall {
			walls++
		}
	}
	assert.Equal(t, 19, walls)
}

func TestWatchReceivesSessionEvents(t *testing.T) {
	s, ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	watcher, _, err := websocket.Dial(ctx, wsURL(ts, "/watch"), nil)
	require.NoError(t, err)
	defer watcher.CloseNow()
	require.Eventually(t, func() bool { return s.Hub().Len() == 1 }, 5*time.Second, 10*time.Millisecond)

	player, _, err := websocket.Dial(ctx, wsURL(ts, "/ws?rows=2&columns=1"), nil)
	require.NoError(t, err)
	defer player.CloseNow()
	own := readAll(t, ctx, player)
	require.Len(t, own, 1+2+1)

	for i := range own {
		_, data, err := watcher.Read(ctx)
		require.NoError(t, err)
		var ev stream.Event
		require.NoError(t, json.Unmarshal(data, &ev))
		assert.Equal(t, own[i], ev)
	}
}

func TestEmitter_StopsAfterError(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	em := stream.NewEmitter(context.Background(), uuid.New(), 20, func(context.Context, []byte) error {
		calls++
		return boom
	})
	em.OnWallRemoved(0, 0, gridgraph.Right)
	em.OnPathCellVisited(0, 0)
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, em.Err(), boom)
}

func TestEmitter_InvalidSquareSizeOmitsSegment(t *testing.T) {
	var got stream.Event
	em := stream.NewEmitter(context.Background(), uuid.New(), 0, func(_ context.Context, msg []byte) error {
		return json.Unmarshal(msg, &got)
	})
	em.OnWallRemoved(1, 1, gridgraph.Up)
	require.NoError(t, em.Err())
	assert.Nil(t, got.Segment)
	assert.Equal(t, "UP", got.Direction)
}
