package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
)

// ErrInputClosed is returned when input ends before the game does
var ErrInputClosed = errors.New("input closed before the game ended")

// maxLineLength caps one answer; longer lines are discarded as invalid input
const maxLineLength = 4096

// inputLine is one answer read from the player
type inputLine struct {
	text    string
	tooLong bool
	err     error
}

// Console is the line-based front end: it reads columns, renders the
// board and calls into the game session.
type Console struct {
	reader *bufio.Reader
	lines  chan inputLine
	out    io.Writer
	games  *game.Service
	log    *zap.SugaredLogger
}

func NewConsole(in io.Reader, out io.Writer, games *game.Service, log *zap.SugaredLogger) *Console {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Console{
		reader: bufio.NewReaderSize(in, maxLineLength),
		out:    out,
		games:  games,
		log:    log,
	}
}

// Run plays one game to the end. Input is read in the background so a
// cancelled context ends the game even while a prompt is waiting.
func (c *Console) Run(ctx context.Context, depth int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.lines = make(chan inputLine)
	go c.readLines(ctx, c.lines)

	RenderBoard(c.out, domain.NewBoard())

	againstHuman, err := c.askYesNo(ctx, "Do you want to play against another human (Y/N)?")
	if err != nil {
		return err
	}

	opts := game.Options{Mode: game.ModeHumanVsHuman, Depth: depth}
	if !againstHuman {
		opts.Mode = game.ModeHumanVsComputer
		opts.HumanFirst, err = c.askYesNo(ctx, "Do you want to go first (Y/N)?")
		if err != nil {
			return err
		}
	}

	session := c.games.NewGame(opts)
	for !session.Over() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if session.IsComputerTurn() {
			if _, err := session.PlayComputer(); err != nil {
				return fmt.Errorf("computer turn: %w", err)
			}
		} else if err := c.humanTurn(ctx, session); err != nil {
			return err
		}

		RenderBoard(c.out, session.Board())
	}

	c.announce(session.Outcome())
	return nil
}

// humanTurn prompts until the current player makes a move the board accepts
func (c *Console) humanTurn(ctx context.Context, session *game.GameSession) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.println(c.prompt(session))

		line, err := c.readLine(ctx)
		if err != nil {
			return err
		}

		column, err := strconv.Atoi(strings.TrimSpace(line.text))
		if line.tooLong || err != nil {
			c.println(fmt.Sprintf("Please enter a number between 1 and %d.", domain.Columns))
			continue
		}

		err = session.PlayHuman(column)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, domain.ErrInvalidColumn):
			c.println("Invalid column!")
		case errors.Is(err, domain.ErrColumnFull):
			c.println("Column is full!")
		default:
			return fmt.Errorf("human turn: %w", err)
		}
	}
}

func (c *Console) prompt(session *game.GameSession) string {
	if session.Mode == game.ModeHumanVsHuman {
		return fmt.Sprintf("Player %c, enter a column (1-%d):", session.Current().Symbol(), domain.Columns)
	}
	return fmt.Sprintf("Enter a column (1-%d):", domain.Columns)
}

func (c *Console) announce(outcome domain.Outcome) {
	switch outcome.Status {
	case domain.StatusWon:
		c.println(fmt.Sprintf("%s has won!", outcome.Winner))
	case domain.StatusDraw:
		c.println("The game is a tie!")
	}
}

// askYesNo treats anything but y/Y as no
func (c *Console) askYesNo(ctx context.Context, question string) (bool, error) {
	c.println(question)
	line, err := c.readLine(ctx)
	if err != nil {
		return false, err
	}
	return !line.tooLong && strings.EqualFold(strings.TrimSpace(line.text), "y"), nil
}

// readLine waits for the next answer or for ctx to be done
func (c *Console) readLine(ctx context.Context) (inputLine, error) {
	select {
	case <-ctx.Done():
		return inputLine{}, ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return inputLine{}, ErrInputClosed
		}
		if line.err != nil {
			return inputLine{}, line.err
		}
		return line, nil
	}
}

// readLines feeds lines until input ends or ctx is done. A blocked read
// on the underlying reader outlives ctx, which only matters for stdin.
func (c *Console) readLines(ctx context.Context, lines chan<- inputLine) {
	defer close(lines)
	for {
		line, err := c.next()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			line = inputLine{err: fmt.Errorf("read input: %w", err)}
		}

		select {
		case lines <- line:
		case <-ctx.Done():
			return
		}
		if line.err != nil {
			return
		}
	}
}

// next reads one line, discarding the rest of any line longer than the buffer
func (c *Console) next() (inputLine, error) {
	data, isPrefix, err := c.reader.ReadLine()
	if err != nil {
		return inputLine{}, err
	}
	if !isPrefix {
		return inputLine{text: string(data)}, nil
	}

	for isPrefix {
		_, isPrefix, err = c.reader.ReadLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return inputLine{}, err
		}
		if err != nil {
			break
		}
	}
	c.log.Debugw("discarded overlong input line", "limit", maxLineLength)
	return inputLine{tooLong: true}, nil
}

func (c *Console) println(line string) {
	if _, err := fmt.Fprintln(c.out, line); err != nil {
		c.log.Warnw("failed to write to console", "error", err)
	}
}
