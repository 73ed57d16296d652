package doubledeck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/minaorangina/doubledeck/deck"
	"github.com/minaorangina/doubledeck/protocol"
)

const (
	helpText = `Commands:
  d              draw a card
  m <pile> [n]   move card n of a pile to its foundation (default: the last card)
  s              show the table
  n              new game
  q              quit
`
	promptText     = "\n> "
	badCommandText = "Sorry, I didn't understand that. Type h for help.\n"
	drawEmptyText  = "DRAW pile is empty!"
)

// CLIPlayer renders a game as text
type CLIPlayer struct {
	id  string
	out io.Writer
	mu  sync.Mutex

	red    *color.Color
	black  *color.Color
	active *color.Color
	notice *color.Color
	alert  *color.Color
}

// NewCLIPlayer constructs a CLIPlayer writing to out. Without colour the
// output is plain text.
func NewCLIPlayer(id string, out io.Writer, colour bool) *CLIPlayer {
	p := &CLIPlayer{
		id:     id,
		out:    out,
		red:    color.New(color.FgRed, color.Bold),
		black:  color.New(color.FgHiWhite, color.Bold),
		active: color.New(color.FgCyan, color.Bold),
		notice: color.New(color.FgGreen),
		alert:  color.New(color.FgYellow),
	}

	if !colour {
		for _, c := range []*color.Color{p.red, p.black, p.active, p.notice, p.alert} {
			c.DisableColor()
		}
	} else {
		for _, c := range []*color.Color{p.red, p.black, p.active, p.notice, p.alert} {
			c.EnableColor()
		}
	}

	return p
}

func (p *CLIPlayer) ID() string {
	return p.id
}

func (p *CLIPlayer) Send(msg protocol.OutboundMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, err := io.WriteString(p.out, p.render(msg))
	return err
}

func (p *CLIPlayer) printf(text string, a ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	SendText(p.out, text, a...)
}

func (p *CLIPlayer) Close() error {
	return nil
}

// Play reads commands from in and runs them against ge until in runs dry or
// the player quits. p must already be registered with ge.
func (p *CLIPlayer) Play(ge GameEngine, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	p.printf(helpText)

	for {
		p.printf(promptText)
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "q", "quit":
			return nil

		case "h", "help", "?":
			p.printf(helpText)

		case "d", "draw":
			_, err = ge.Do(DrawAction())

		case "n", "new":
			_, err = ge.Do(Action{Cmd: protocol.Restart})

		case "s", "show":
			var msg protocol.OutboundMessage
			msg, err = ge.Snapshot()
			if err == nil {
				err = p.Send(msg)
			}

		case "m", "move":
			var action Action
			action, err = p.parseMove(ge, fields[1:])
			if err != nil {
				p.printf(badCommandText)
				continue
			}
			_, err = ge.Do(action)

		default:
			p.printf(badCommandText)
			continue
		}

		// the engine has already shown an empty draw pile, and bad moves are ignored
		if errors.Is(err, ErrEngineStopped) {
			return err
		}
	}
}

func (p *CLIPlayer) parseMove(ge GameEngine, args []string) (Action, error) {
	if len(args) == 0 || len(args) > 2 {
		return Action{}, errors.New("usage: m <pile> [n]")
	}

	label, err := deck.ParseRank(args[0])
	if err != nil {
		return Action{}, err
	}

	if len(args) == 2 {
		idx, err := strconv.Atoi(args[1])
		if err != nil {
			return Action{}, err
		}
		return MoveAction(label, idx), nil
	}

	msg, err := ge.Snapshot()
	if err != nil {
		return Action{}, err
	}
	return MoveAction(label, len(msg.Piles[label].Cards)-1), nil
}

func (p *CLIPlayer) render(msg protocol.OutboundMessage) string {
	var b strings.Builder

	b.WriteString("\nFoundations\n")
	for _, f := range msg.Foundations {
		fmt.Fprintf(&b, "  %s  A→K %s  K→A %s\n", p.suit(f.Suit), p.top(f.Up, "-"), p.top(f.Down, "-"))
	}

	b.WriteString("\nPiles\n")
	for _, pile := range msg.Piles {
		label := fmt.Sprintf("%-3s", pile.Label)
		if pile.Label == msg.Active {
			label = p.active.Sprint(fmt.Sprintf("%-3s", pile.Label+"*"))
		}

		playable := map[int]bool{}
		for _, i := range pile.Playable {
			playable[i] = true
		}

		cards := make([]string, 0, len(pile.Cards))
		for i, c := range pile.Cards {
			text := p.card(c)
			if playable[i] {
				text = fmt.Sprintf("%s(%d)", text, i)
			}
			cards = append(cards, text)
		}
		if len(cards) == 0 {
			cards = append(cards, "(empty)")
		}

		fmt.Fprintf(&b, "  %s %s\n", label, strings.Join(cards, " "))
	}

	fmt.Fprintf(&b, "\nDraw pile: %d card(s)\n", msg.Draw)

	if msg.Command == protocol.DrawEmpty {
		b.WriteString(p.alert.Sprint(drawEmptyText) + "\n")
	}
	if msg.Message != "" {
		b.WriteString(p.notice.Sprint(msg.Message) + "\n")
	}

	return b.String()
}

func (p *CLIPlayer) card(c deck.Card) string {
	if c.Suit.Red() {
		return p.red.Sprint(c.String())
	}
	return p.black.Sprint(c.String())
}

func (p *CLIPlayer) suit(s deck.Suit) string {
	if s.Red() {
		return p.red.Sprint(s.Symbol())
	}
	return p.black.Sprint(s.Symbol())
}

func (p *CLIPlayer) top(cards []deck.Card, empty string) string {
	if len(cards) == 0 {
		return empty
	}
	return p.card(cards[len(cards)-1])
}

// SendText writes formatted text to w
func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}
