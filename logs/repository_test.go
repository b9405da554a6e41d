package logs

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.db")
	repo, err := Open(path)
	if err != nil {
		t.Fatal("open:", err)
	}

	when := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	games := []*Game{
		{Day: "2024-05-01", ID: 1, Timestamp: when, Black: "minimax", White: "rand",
			BlackDiscs: 40, WhiteDiscs: 24, Winner: "black", Plies: 60, Moves: "D3 C5"},
		{Day: "2024-05-01", ID: 2, Timestamp: when, Black: "rand", White: "minimax",
			BlackDiscs: 30, WhiteDiscs: 34, Winner: "white", Plies: 61, Moves: "F5 pass"},
	}
	if err := repo.InsertGames(games); err != nil {
		t.Fatal("insert games:", err)
	}
	tie := &Game{Day: "2024-05-02", ID: 1, Timestamp: when, Black: "minimax", White: "rand",
		BlackDiscs: 32, WhiteDiscs: 32, Winner: "tie", Plies: 60}
	if err := repo.InsertGame(tie); err != nil {
		t.Fatal("insert game:", err)
	}
	repo.Close()

	repo, err = Open(path)
	if err != nil {
		t.Fatal("reopen:", err)
	}
	defer repo.Close()

	got, err := repo.Games()
	if err != nil {
		t.Fatal("games:", err)
	}
	want := []Game{*games[0], *games[1], *tie}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("games (-want +got):\n%s", diff)
	}

	recs, err := repo.Records()
	if err != nil {
		t.Fatal("records:", err)
	}
	wantRecs := []Record{
		{Player: "minimax", Wins: 2, Losses: 0, Ties: 1},
		{Player: "rand", Wins: 0, Losses: 2, Ties: 1},
	}
	if diff := cmp.Diff(wantRecs, recs); diff != "" {
		t.Errorf("records (-want +got):\n%s", diff)
	}
}
