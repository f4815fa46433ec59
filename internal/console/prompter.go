package console

import (
	"bufio"
	"fmt"
	"github.com/sirupsen/logrus"
	"inbetween-sim/pkg/playable/inbetween"
	"io"
	"strconv"
	"strings"
)

// Prompter asks a person at a terminal for the decisions of the user strategy
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

var _ inbetween.Decider = &Prompter{}

// NewPrompter returns a new Prompter
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// DecideAceHigh asks whether the ace should be high
// Anything starting with "h" or "y" means high, everything else is low.
func (p *Prompter) DecideAceHigh(playerID int64, hand inbetween.Hand) bool {
	answer, err := p.getInput(fmt.Sprintf("Player %d %s: ace high or low (h/L)", playerID, hand))
	if err != nil {
		logrus.WithError(err).Warn("could not read the ace decision, using low")
		return false
	}

	answer = strings.ToLower(answer)
	return answer != "" && (answer[0] == 'h' || answer[0] == 'y')
}

// DecideBet asks for a bet
// An empty answer passes. Answers that are not whole numbers are asked again.
func (p *Prompter) DecideBet(playerID int64, hand inbetween.Hand, pot, purse int) (int, bool) {
	question := fmt.Sprintf("Player %d %s: pot $%d, purse $%d, bet (blank to pass)", playerID, hand, pot, purse)
	for {
		answer, err := p.getInput(question)
		if err != nil {
			logrus.WithError(err).Warn("could not read the bet, passing")
			return 0, false
		}

		if answer == "" {
			return 0, false
		}

		bet, err := strconv.Atoi(answer)
		if err != nil {
			_, _ = fmt.Fprintf(p.out, "%q is not a number\n", answer)
			continue
		}

		return bet, true
	}
}

func (p *Prompter) getInput(question string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s: ", question)
	str, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || str == "") {
		return "", err
	}

	return strings.TrimSpace(str), nil
}
