// internal/play/loop.go
//
// Terminal orchestration for a sequence of games.
// Responsibilities:
//   - Prompt for guesses and feed them to a game.Session.
//   - Translate validation errors into retry prompts.
//   - Offer a replay of a lost word, then the end-of-game menu.
//   - Keep the answer history so new games avoid repeats.
//
// Notes:
//   - Games follow each other in a loop; replay never recurses.
//   - Input and output are plain io streams so the loop can be driven by tests.
//   - Input is read on its own goroutine so a canceled context interrupts a
//     waiting prompt.

package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

const (
	guessPrompt  = "Type your guess, or type 'i' for info about which letters remain:  "
	optionPrompt = "Which option will you choose?  "
)

// errQuit unwinds the loop when the player asks to leave.
var errQuit = errors.New("quit")

// inputLine is one line of player input, or the error that ended input.
type inputLine struct {
	text string
	err  error
}

// Options tune the games started by a Runner.
type Options struct {
	HardMode  bool
	MaxTurns  int
	Answer    string // fixed answer for the first game, mostly for testing
	Daily     bool
	DailySalt string
	Now       func() time.Time
}

// Runner plays games over a pair of streams until the player quits.
type Runner struct {
	in    io.Reader
	lines chan inputLine
	out   io.Writer
	words *words.List
	store store.Store
	opts  Options

	previous []string // answers already used, oldest first
}

// New constructs a Runner.
func New(in io.Reader, out io.Writer, list *words.List, st store.Store, opts Options) *Runner {
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = game.DefaultMaxTurns
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Runner{
		in:    in,
		lines: make(chan inputLine),
		out:   out,
		words: list,
		store: st,
		opts:  opts,
	}
}

// Run plays until the player quits, input ends or ctx is canceled; all three
// return nil. Any other failure is returned.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go r.readInput(ctx)

	err := r.run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Debug().Msg("game interrupted")
	}
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		fmt.Fprintln(r.out, "Thanks for playing! Have a nice day!")
		return nil
	}
	return err
}

func (r *Runner) run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Welcome to Wordle!")
	if r.opts.HardMode {
		fmt.Fprintln(r.out, "<!> You are playing in hard mode!")
	}
	line, err := r.prompt(ctx, "Type 'h' for the help menu, or ENTER when you are ready to play!  ")
	if err != nil {
		return err
	}
	if line == "h" {
		renderHelp(r.out, r.opts.MaxTurns, r.words.Length(), r.opts.HardMode)
	} else {
		fmt.Fprintln(r.out)
	}

	var replay *game.Session
	for {
		s := replay
		replay = nil
		if s == nil {
			answer, err := r.nextAnswer()
			if err != nil {
				return err
			}
			s = game.NewSession(answer, r.words,
				game.WithHardMode(r.opts.HardMode),
				game.WithMaxTurns(r.opts.MaxTurns),
			)
		}
		log.Debug().Str("session", s.ID).Str("answer", s.Answer()).Bool("hard", s.Hard()).Msg("game started")

		if err := r.playGame(ctx, s); err != nil {
			return err
		}
		log.Info().Str("session", s.ID).Str("state", s.State().String()).Int("turns", s.Board().TurnsUsed()).Msg("game finished")

		if s.State() == game.Won {
			n := s.Board().TurnsUsed()
			fmt.Fprintf(r.out, "Congratulations! You guessed correctly in %d %s!\n", n, plural(n, "try", "tries"))
		} else {
			line, err := r.prompt(ctx, "Looks like you didn't guess correctly!\nWould you like to replay with the same word? (y/n):  ")
			if err != nil {
				return err
			}
			if line == "y" {
				replay = s.Replay()
				continue
			}
		}

		if err := r.menu(ctx, s.ID); err != nil {
			return err
		}
	}
}

// nextAnswer picks the fixed or daily word for the first game when
// configured, otherwise a random answer not played before.
func (r *Runner) nextAnswer() (string, error) {
	var answer string
	first := len(r.previous) == 0
	switch {
	case first && r.opts.Answer != "":
		answer = strings.ToLower(strings.TrimSpace(r.opts.Answer))
		if !r.words.IsAnswer(answer) {
			log.Warn().Str("answer", answer).Msg("fixed answer is not in the answer list")
		}
	case first && r.opts.Daily:
		answer = daily.Answer(r.words, r.opts.Now(), r.opts.DailySalt)
	default:
		var err error
		if answer, err = r.words.RandomAnswer(r.previous); err != nil {
			return "", err
		}
	}
	r.previous = append(r.previous, answer)
	return answer, nil
}

// playGame runs turns until s is finished.
func (r *Runner) playGame(ctx context.Context, s *game.Session) error {
	if err := r.store.Save(ctx, s); err != nil {
		return err
	}
	announce := true
	prompt := guessPrompt
	for !s.State().Finished() {
		if announce {
			left := s.Board().TurnsRemaining()
			fmt.Fprintf(r.out, "You have %d %s left!\n", left, plural(left, "turn", "turns"))
			announce = false
		}
		line, err := r.prompt(ctx, prompt)
		if err != nil {
			return err
		}
		switch line {
		case "i":
			renderLetters(r.out, s.Board())
			prompt = "Type your guess:  "
			continue
		case "q":
			return errQuit
		}

		_, state, err := s.ApplyGuess(line)
		if err != nil {
			retry, ok := retryPrompt(err, s.WordLength())
			if !ok {
				return err
			}
			log.Debug().Str("session", s.ID).Err(err).Msg("guess rejected")
			prompt = retry
			continue
		}
		log.Debug().Str("session", s.ID).Int("turn", s.Board().TurnsUsed()).Str("state", state.String()).Msg("guess recorded")
		renderBoard(r.out, s.Board())
		announce = true
		prompt = guessPrompt
	}
	return r.store.Save(ctx, s)
}

// menu shows the running tally and waits for r (next game) or q.
func (r *Runner) menu(ctx context.Context, id string) error {
	s, err := r.store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("finished session %s: %w", id, err)
	}
	wins, games, err := r.store.Tally(ctx)
	if err != nil {
		return err
	}
	pct := 0
	if games > 0 {
		pct = wins * 100 / games
	}
	fmt.Fprintf(r.out, "You have won %d of %d games (%d%%)\n", wins, games, pct)
	fmt.Fprintln(r.out, "Type one of the following options:")
	fmt.Fprintln(r.out, "- 'r' for replay with a new word")
	fmt.Fprintln(r.out, "- 's' to show the correct answer")
	fmt.Fprintln(r.out, "- 'q' to quit")

	prompt := optionPrompt
	for {
		line, err := r.prompt(ctx, prompt)
		if err != nil {
			return err
		}
		switch line {
		case "r":
			return nil
		case "s":
			fmt.Fprintf(r.out, "The correct answer was: %s\n", strings.ToUpper(s.Answer()))
			prompt = optionPrompt
		case "q":
			return errQuit
		default:
			prompt = "Invalid input. Try again:  "
		}
	}
}

// prompt writes text and returns the next trimmed, lowercased input line.
func (r *Runner) prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(r.out, text)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-r.lines:
		if l.err != nil {
			return "", l.err
		}
		return strings.ToLower(strings.TrimSpace(l.text)), nil
	}
}

// readInput feeds lines to prompt until input ends or ctx is done. A read
// already blocked on the underlying reader is left to the process exit.
func (r *Runner) readInput(ctx context.Context) {
	sc := bufio.NewScanner(r.in)
	for sc.Scan() {
		select {
		case r.lines <- inputLine{text: sc.Text()}:
		case <-ctx.Done():
			return
		}
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case r.lines <- inputLine{err: err}:
	case <-ctx.Done():
	}
}

// retryPrompt maps a rejected guess to the message asking for another one.
func retryPrompt(err error, length int) (string, bool) {
	switch {
	case errors.Is(err, game.ErrWrongLength):
		return fmt.Sprintf("Must be %d letters. Try again:  ", length), true
	case errors.Is(err, game.ErrNotAlpha):
		return "Must only contain letters. Try again:  ", true
	case errors.Is(err, game.ErrNotInWordList):
		return "Not a valid word. Try again:  ", true
	case errors.Is(err, game.ErrAlreadyGuessed):
		return "You already guessed that word. Try again:  ", true
	case errors.Is(err, game.ErrHardMode):
		return "Hard mode: you must reuse every revealed letter. Try again:  ", true
	}
	return "", false
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
