package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hexmcts/engine/pkg/engine"
	"github.com/hexmcts/engine/pkg/hex"
	"github.com/hexmcts/engine/pkg/protocol"
)

// match drives one Engine against the line protocol match driver,
// mirroring the reference agent's interpret_data/make_move loop: read a
// frame, apply any opponent move to the tracked position, decide
// whether to reply with a move or a pie-rule swap, repeat until END.
type match struct {
	conn      *protocol.Conn
	eng       *engine.Engine
	cfg       engine.Config
	colour    protocol.Colour
	turnCount int
	boardSize int
	log       *slog.Logger

	// display mirrors the engine's position purely for terminal
	// rendering; the engine itself does not expose its board.
	display *hex.GameState
}

// showBoard plays cell on the display mirror and prints the resulting
// board, ignoring render errors (a stdout write failure is not worth
// aborting the match over).
func (m *match) showBoard(cell hex.Cell) {
	if err := m.display.Play(cell); err != nil {
		m.log.Warn("display mirror out of sync", slog.Any("error", err))
		return
	}
	fmt.Print(renderBoard(m.display.Board))
}

// playMatch connects to the driver at addr and plays one game to
// completion using cfg as the engine's construction parameters (board
// size is overwritten by the driver's START frame).
func playMatch(addr string, cfg engine.Config, logger *slog.Logger) error {
	conn, err := protocol.Dial(addr, logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	m := &match{conn: conn, cfg: cfg, log: logger}
	for {
		frame, err := conn.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		done, err := m.handle(frame)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (m *match) handle(frame protocol.Frame) (done bool, err error) {
	switch frame.Kind {
	case protocol.FrameEnd:
		return true, nil

	case protocol.FrameStart:
		m.colour = frame.Colour
		cfg := m.cfg
		cfg.BoardSize = frame.BoardSize
		m.boardSize = frame.BoardSize
		m.eng = engine.New(cfg, m.log)
		m.display = hex.NewGameState(frame.BoardSize)
		m.log.Info("match started", slog.String("colour", m.colour.String()), slog.Int("board_size", cfg.BoardSize))
		if m.colour == protocol.ColourRed {
			return false, m.playOpening()
		}
		return false, nil

	case protocol.FrameChange:
		return false, m.handleChange(frame)

	default:
		return false, nil
	}
}

func (m *match) handleChange(frame protocol.Frame) error {
	if frame.Swap {
		m.colour = m.colour.Opposite()
		if frame.Turn != m.colour {
			return nil
		}
		return m.resumeAfterSwap(frame.Board)
	}

	if frame.Turn != m.colour {
		return nil
	}

	cell := hex.Cell{Row: frame.Move.Row, Col: frame.Move.Col}
	if _, err := m.eng.Move(cell); err != nil {
		return fmt.Errorf("hexmcts: applying opponent move %s: %w", cell, err)
	}
	m.showBoard(cell)

	if m.colour == protocol.ColourBlue && m.turnCount == 0 && shouldSwap() {
		return m.swap(cell)
	}
	return m.respond()
}

// playOpening is Red's hard-coded first move, per the engine's opening
// policy: search is skipped entirely for the opening ply.
func (m *match) playOpening() error {
	if _, err := m.eng.Move(openingMove); err != nil {
		return fmt.Errorf("hexmcts: opening move %s: %w", openingMove, err)
	}
	m.showBoard(openingMove)
	if err := m.conn.SendMove(protocol.Move{Row: openingMove.Row, Col: openingMove.Col}); err != nil {
		return err
	}
	m.turnCount++
	return nil
}

// swap replies to the opponent's first move by invoking the pie rule
// instead of playing a move of our own this turn.
func (m *match) swap(openingCell hex.Cell) error {
	m.eng.SetGameState(hex.NewGameState(m.boardSize))
	if _, err := m.eng.Move(openingCell); err != nil {
		return fmt.Errorf("hexmcts: replaying swapped move %s: %w", openingCell, err)
	}

	// Rebuild the mirror alongside the engine's own reset so the two
	// never drift: the prior showBoard(cell) in handleChange happened to
	// leave it at the same single move, but that's an incidental
	// coincidence of this being the opening ply, not a guarantee.
	m.display = hex.NewGameState(m.boardSize)
	if err := m.display.Play(openingCell); err != nil {
		m.log.Warn("display mirror out of sync", slog.Any("error", err))
	}

	if err := m.conn.SendSwap(); err != nil {
		return err
	}
	m.turnCount++
	return nil
}

// resumeAfterSwap rebuilds the tracked position after the opponent
// swapped our opening move, then plays our next move normally.
func (m *match) resumeAfterSwap(board string) error {
	cell, ok := lastRedStone(board)
	if !ok {
		return fmt.Errorf("hexmcts: could not recover swapped move from board %q", board)
	}
	m.eng.SetGameState(hex.NewGameState(m.boardSize))
	if _, err := m.eng.Move(cell); err != nil {
		return fmt.Errorf("hexmcts: replaying opponent's swapped move %s: %w", cell, err)
	}
	m.showBoard(cell)
	return m.respond()
}

// respond searches for the configured movetime and sends the result.
func (m *match) respond() error {
	if err := m.eng.Search(context.Background(), 0); err != nil {
		return err
	}
	best, ok := m.eng.BestMove()
	if !ok {
		return fmt.Errorf("hexmcts: search produced no move")
	}
	if _, err := m.eng.Move(best); err != nil {
		return fmt.Errorf("hexmcts: applying our move %s: %w", best, err)
	}
	m.showBoard(best)
	if err := m.conn.SendMove(protocol.Move{Row: best.Row, Col: best.Col}); err != nil {
		return err
	}
	m.turnCount++
	return nil
}
