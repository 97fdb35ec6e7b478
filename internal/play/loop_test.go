package play

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

var allowed = []string{"crane", "cloud", "cider", "bread", "stone", "pilot", "dance", "cairn"}

// session runs a Runner over the given input lines with "candy" as the only answer.
func session(t *testing.T, opts Options, lines ...string) (string, store.Store) {
	t.Helper()
	list, err := words.New([]string{"candy"}, allowed, 5)
	require.NoError(t, err)
	st := store.NewMemoryStore()

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, New(in, &out, list, st, opts).Run(context.Background()))
	return out.String(), st
}

func TestRunner_Win(t *testing.T) {
	out, st := session(t, Options{}, "", "crane", "candy", "q")

	require.Contains(t, out, "Welcome to Wordle!")
	require.Contains(t, out, "You have 6 turns left!")
	require.Contains(t, out, "[C]  R  (A) (N)  E")
	require.Contains(t, out, "You have 5 turns left!")
	require.Contains(t, out, "[C] [A] [N] [D] [Y]")
	require.Contains(t, out, "Congratulations! You guessed correctly in 2 tries!")
	require.Contains(t, out, "You have won 1 of 1 games (100%)")
	require.True(t, strings.HasSuffix(out, "Thanks for playing! Have a nice day!\n"))

	wins, games, err := st.Tally(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, wins)
	require.Equal(t, 1, games)
}

func TestRunner_InvalidGuesses(t *testing.T) {
	out, _ := session(t, Options{},
		"", "cran", "cr4ne", "zzzzz", "crane", "CRANE", "candy", "q")

	require.Contains(t, out, "Must be 5 letters. Try again:  ")
	require.Contains(t, out, "Must only contain letters. Try again:  ")
	require.Contains(t, out, "Not a valid word. Try again:  ")
	require.Contains(t, out, "You already guessed that word. Try again:  ")
	// Rejected guesses do not use up turns.
	require.Contains(t, out, "You guessed correctly in 2 tries!")
}

func TestRunner_LetterInfo(t *testing.T) {
	out, _ := session(t, Options{}, "", "crane", "i", "candy", "q")

	require.Contains(t, out, "Correct:     C\n")
	require.Contains(t, out, "Wrong spot:  A N\n")
	require.Contains(t, out, "Absent:      E R\n")
	require.Contains(t, out, "Type your guess:  ")
}

func TestRunner_LossAndReplay(t *testing.T) {
	out, st := session(t, Options{},
		"", "crane", "cloud", "cider", "bread", "stone", "pilot", "y", "candy", "q")

	require.Contains(t, out, "You have 1 turn left!")
	require.Contains(t, out, "Looks like you didn't guess correctly!")
	require.Contains(t, out, "You guessed correctly in 1 try!")
	require.Contains(t, out, "You have won 1 of 2 games (50%)")
	// Replaying skips the tally after the loss.
	require.Equal(t, 1, strings.Count(out, "You have won"))

	wins, games, err := st.Tally(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, wins)
	require.Equal(t, 2, games)
}

func TestRunner_Menu(t *testing.T) {
	out, _ := session(t, Options{MaxTurns: 1},
		"", "crane", "n", "x", "s", "r", "crane", "n", "q")

	require.Contains(t, out, "You have won 0 of 1 games (0%)")
	require.Contains(t, out, "Invalid input. Try again:  ")
	require.Contains(t, out, "The correct answer was: CANDY")
	// 'r' starts another game on the only answer left.
	require.Contains(t, out, "You have won 0 of 2 games (0%)")
}

func TestRunner_HardMode(t *testing.T) {
	out, _ := session(t, Options{HardMode: true}, "h", "crane", "dance", "cairn", "candy", "q")

	require.Contains(t, out, "<!> You are playing in hard mode!")
	require.Contains(t, out, "Since you are in hard mode")
	require.Contains(t, out, "Hard mode: you must reuse every revealed letter. Try again:  ")
	require.Contains(t, out, "You guessed correctly in 3 tries!")
}

func TestRunner_Help(t *testing.T) {
	out, _ := session(t, Options{}, "h", "q")

	require.Contains(t, out, "Each game, you have 6 tries to guess the 5 letter word.")
	require.Contains(t, out, "(C) [O]  D   E  [S]")
	require.NotContains(t, out, "Since you are in hard mode")
}

func TestRunner_EndOfInput(t *testing.T) {
	out, st := session(t, Options{}, "", "crane")

	require.True(t, strings.HasSuffix(out, "Thanks for playing! Have a nice day!\n"))

	_, games, err := st.Tally(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, games)
}

func TestRunner_Daily(t *testing.T) {
	list, err := words.New([]string{"crane", "candy", "cairn", "cider"}, nil, 5)
	require.NoError(t, err)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	want := daily.Answer(list, now, "salt")

	// A wrong first guess on a one-turn game reveals the answer via 's'.
	guess := "crane"
	if want == guess {
		guess = "candy"
	}
	var out bytes.Buffer
	in := strings.NewReader(strings.Join([]string{"", guess, "n", "s", "q"}, "\n") + "\n")
	opts := Options{Daily: true, DailySalt: "salt", MaxTurns: 1, Now: func() time.Time { return now }}

	require.NoError(t, New(in, &out, list, store.NewMemoryStore(), opts).Run(context.Background()))
	require.Contains(t, out.String(), "The correct answer was: "+strings.ToUpper(want))
}

func TestRunner_Canceled(t *testing.T) {
	list, err := words.New([]string{"candy"}, nil, 5)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err = New(strings.NewReader("\n"), &out, list, store.NewMemoryStore(), Options{}).Run(ctx)
	require.NoError(t, err)
	require.Contains(t, out.String(), "Thanks for playing! Have a nice day!")
}

// syncBuffer lets the test read output while Run is still writing it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunner_CancelWhileWaitingForInput(t *testing.T) {
	list, err := words.New([]string{"candy"}, nil, 5)
	require.NoError(t, err)

	// Given: input that never delivers a line
	in, w := io.Pipe()
	defer w.Close()
	out := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- New(in, out, list, store.NewMemoryStore(), Options{}).Run(ctx)
	}()

	// When: the runner is blocked on its first prompt and ctx is canceled
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "ready to play!")
	}, 2*time.Second, 10*time.Millisecond)
	cancel()

	// Then: Run returns promptly without an error
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	require.True(t, strings.HasSuffix(out.String(), "Thanks for playing! Have a nice day!\n"))
}

func TestRunner_FixedAnswer(t *testing.T) {
	// "pilot" may be guessed but is not in the answer list.
	list, err := words.New([]string{"crane", "candy", "cairn", "cider"}, []string{"pilot"}, 5)
	require.NoError(t, err)

	for _, answer := range []string{"cider", "pilot"} {
		t.Run(answer, func(t *testing.T) {
			var out bytes.Buffer
			in := strings.NewReader(strings.Join([]string{"", "crane", "n", "s", "q"}, "\n") + "\n")
			opts := Options{Answer: " " + strings.ToUpper(answer), MaxTurns: 1}

			require.NoError(t, New(in, &out, list, store.NewMemoryStore(), opts).Run(context.Background()))
			require.Contains(t, out.String(), "The correct answer was: "+strings.ToUpper(answer))
		})
	}
}

func TestRunner_FixedAnswer_Win(t *testing.T) {
	out, _ := session(t, Options{Answer: "cairn"}, "", "cairn", "q")

	require.Contains(t, out, "Congratulations! You guessed correctly in 1 try!")
}
