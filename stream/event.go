// Package stream serves maze generation and solving as a live websocket feed.
//
// Every connection to /ws generates and solves its own maze and receives one
// JSON Event per carved wall and per solution cell, followed by a final
// "done" event. Connections to /watch receive a copy of every session's events.
package stream

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/katalvlaran/labyrinth/gridgraph"
)

// Event types.
const (
	TypeWall = "wall"
	TypePath = "path"
	TypeDone = "done"
)

// Event is one message on the wire.
type Event struct {
	Session   uuid.UUID          `json:"session"`
	Seq       uint64             `json:"seq"`
	Type      string             `json:"type"`
	Row       int                `json:"row"`
	Column    int                `json:"column"`
	Direction string             `json:"direction,omitempty"`
	Segment   *gridgraph.Segment `json:"segment,omitempty"`
	Rows      int                `json:"rows,omitempty"`
	Columns   int                `json:"columns,omitempty"`
	Cells     int                `json:"cells,omitempty"`
}

// Emitter is a maze.Observer that turns events into JSON messages and hands
// them to send in order. After the first send error further events are
// dropped; Err reports it.
type Emitter struct {
	ctx        context.Context
	session    uuid.UUID
	squareSize int
	seq        uint64
	send       func(ctx context.Context, msg []byte) error
	err        error
}

// NewEmitter returns an Emitter for one session. squareSize sets the pixel
// geometry attached to wall events.
func NewEmitter(ctx context.Context, session uuid.UUID, squareSize int, send func(ctx context.Context, msg []byte) error) *Emitter {
	return &Emitter{ctx: ctx, session: session, squareSize: squareSize, send: send}
}

// OnWallRemoved emits a wall event with its pixel segment.
func (e *Emitter) OnWallRemoved(row, col int, dir gridgraph.Direction) {
	ev := Event{Type: TypeWall, Row: row, Column: col, Direction: dir.String()}
	if seg, err := gridgraph.WallSegment(row, col, dir, e.squareSize); err == nil {
		ev.Segment = &seg
	}
	e.Emit(ev)
}

// OnPathCellVisited emits a path event.
func (e *Emitter) OnPathCellVisited(row, col int) {
	e.Emit(Event{Type: TypePath, Row: row, Column: col})
}

// Emit stamps ev with the session and next sequence number and sends it.
func (e *Emitter) Emit(ev Event) {
	if e.err != nil {
		return
	}
	ev.Session = e.session
	ev.Seq = e.seq
	e.seq++

	msg, err := json.Marshal(ev)
	if err != nil {
		e.err = err
		return
	}
	e.err = e.send(e.ctx, msg)
}

// Err returns the first error met while sending.
func (e *Emitter) Err() error { return e.err }
