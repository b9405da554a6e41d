package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

// Repository is an append-only log of finished game results.
type Repository struct {
	db *sqlx.DB

	insert *sqlx.NamedStmt
}

type Game struct {
	Day        string    `db:"day"`
	ID         int       `db:"id"`
	Timestamp  time.Time `db:"time"`
	Black      string    `db:"black"`
	White      string    `db:"white"`
	BlackDiscs int       `db:"black_discs"`
	WhiteDiscs int       `db:"white_discs"`
	Winner     string    `db:"winner"`
	Plies      int       `db:"plies"`
	Moves      string    `db:"moves"`
}

// Record is one player's tally across every logged game.
type Record struct {
	Player string `db:"player"`
	Wins   int    `db:"wins"`
	Losses int    `db:"losses"`
	Ties   int    `db:"ties"`
}

func Open(db string) (*Repository, error) {
	sql, err := sqlx.Open("sqlite3", db)
	if err != nil {
		return nil, err
	}
	sql.SetMaxOpenConns(1)
	_, err = sql.Exec(createGameTable)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create game table: %w", err)
	}
	_, err = sql.Exec(createPlayerView)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create player_games view: %w", err)
	}

	repo := &Repository{db: sql}
	repo.insert, err = sql.PrepareNamed(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %w", err)
	}
	return repo, nil
}

func (r *Repository) InsertGame(g *Game) error {
	_, err := r.insert.Exec(g)
	return err
}

func (r *Repository) InsertGames(gs []*Game) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	stmt := txn.NamedStmt(r.insert)
	for _, g := range gs {
		if _, e := stmt.Exec(g); e != nil {
			return e
		}
	}
	return txn.Commit()
}

func (r *Repository) Games() ([]Game, error) {
	var gs []Game
	if err := r.db.Select(&gs, selectGames); err != nil {
		return nil, err
	}
	return gs, nil
}

func (r *Repository) Records() ([]Record, error) {
	var rs []Record
	if err := r.db.Select(&rs, selectRecords); err != nil {
		return nil, err
	}
	return rs, nil
}

func (r *Repository) Close() {
	if r.insert != nil {
		r.insert.Close()
	}
	r.db.Close()
}
