// Package sdk provides the client framework for engarde bots: the wire
// transport, the session state, and the run loop that turns server play
// requests into Handler decisions.
package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fencework/engarde/game"
	"github.com/fencework/engarde/internal/protocol"
)

// Handler decides the bot's action each time the server asks for a play.
type Handler interface {
	Act(state *State) (game.Action, error)
}

// Evaluator is optionally implemented by handlers that weight their
// candidate movements; the weights are reported to the server before each
// play. Handlers without it send the server's default evaluation.
type Evaluator interface {
	Evaluate(state *State) *protocol.Evaluation
}

// Result is the outcome of one match.
type Result struct {
	Won    bool
	Score0 int
	Score1 int
}

// Bot connects a Handler to a game server and runs the session loop.
type Bot struct {
	name      string
	handler   Handler
	logger    *log.Logger
	transport Transport
	state     *State

	// pendingAttack is set after our own attack; if the server asks for
	// another play before the round ends, the opponent parried it.
	pendingAttack bool
}

// New creates a bot with the given display name and handler.
func New(name string, handler Handler, logger *log.Logger) *Bot {
	return &Bot{
		name:    name,
		handler: handler,
		logger:  logger,
	}
}

// Connect dials the server, reads the seat assignment and registers the
// bot's name.
func (b *Bot) Connect(serverURL string, timeout time.Duration) error {
	transport, err := Dial(serverURL, timeout)
	if err != nil {
		return err
	}
	b.transport = transport

	line, err := transport.ReadLine()
	if err != nil {
		return fmt.Errorf("reading connection start: %w", err)
	}
	msg, err := protocol.Parse(line)
	if err != nil {
		return err
	}
	start, ok := msg.(*protocol.ConnectionStart)
	if !ok {
		return fmt.Errorf("expected ConnectionStart, got %T", msg)
	}
	b.state = NewState(start.ClientID)
	b.logger.Info("connected", "seat", start.ClientID.Int())

	if err := b.send(protocol.NewPlayerName(b.name)); err != nil {
		return err
	}
	// The acknowledgement has no information beyond its arrival.
	if _, err := transport.ReadLine(); err != nil {
		return fmt.Errorf("reading name acknowledgement: %w", err)
	}
	return nil
}

// State returns the current session state.
func (b *Bot) State() *State {
	return b.state
}

// Run plays until the match ends or the context is cancelled.
func (b *Bot) Run(ctx context.Context) (Result, error) {
	if b.transport == nil {
		return Result{}, errors.New("not connected")
	}
	defer b.transport.Close()

	for {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		// Short read deadline so cancellation is noticed between messages.
		b.transport.SetReadDeadline(time.Now().Add(2 * time.Second))
		line, err := b.transport.ReadLine()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			return Result{}, err
		}
		if len(line) == 0 {
			continue
		}

		msg, err := protocol.Parse(line)
		if err != nil {
			b.logger.Warn("ignoring unparseable message", "error", err)
			continue
		}

		done, result, err := b.handle(msg)
		if err != nil {
			return Result{}, err
		}
		if done {
			return result, nil
		}
	}
}

func (b *Bot) handle(msg protocol.Message) (bool, Result, error) {
	switch m := msg.(type) {
	case *protocol.BoardInfo:
		b.state.ApplyBoard(m)

	case *protocol.HandInfo:
		b.state.SetHand(m.Hand())

	case *protocol.Accept:
		// Evaluation acknowledged; nothing to do.

	case *protocol.DoPlay:
		if b.pendingAttack {
			// Round survived our attack: the opponent parried.
			b.state.Parries++
			b.pendingAttack = false
		}
		if err := b.play(); err != nil {
			return false, Result{}, err
		}

	case *protocol.Played:
		action, err := m.Action()
		if err != nil {
			b.logger.Warn("ignoring malformed opponent play", "error", err)
			return false, Result{}, nil
		}
		b.state.Observe(action)
		b.logger.Debug("opponent played", "action", action.String())

	case *protocol.RoundEnd:
		b.state.ResetRound()
		b.pendingAttack = false
		b.logger.Info("round over",
			"winner", int(m.RoundWinner),
			"score0", int(m.Score0),
			"score1", int(m.Score1))

	case *protocol.GameEnd:
		result := Result{
			Won:    int(m.Winner) == b.state.ID.Int(),
			Score0: int(m.Score0),
			Score1: int(m.Score1),
		}
		b.logger.Info("game over", "winner", int(m.Winner), "won", result.Won)
		return true, result, nil

	case *protocol.ServerError:
		return false, Result{}, fmt.Errorf("server error: %s", m.Message)
	}
	return false, Result{}, nil
}

func (b *Bot) play() error {
	action, err := b.handler.Act(b.state)
	if err != nil {
		return fmt.Errorf("deciding action: %w", err)
	}

	evaluation := protocol.NewEvaluation()
	if evaluator, ok := b.handler.(Evaluator); ok {
		if e := evaluator.Evaluate(b.state); e != nil {
			evaluation = e
		}
	}
	if err := b.send(evaluation); err != nil {
		return err
	}
	if err := b.send(protocol.NewPlay(action)); err != nil {
		return err
	}

	b.state.Observe(action)
	if _, isAttack := action.(game.Attack); isAttack {
		b.pendingAttack = true
	}
	b.logger.Debug("played", "action", action.String(), "distance", b.state.Distance())
	return nil
}

func (b *Bot) send(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding %T: %w", msg, err)
	}
	return b.transport.WriteLine(data)
}
