package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"github.com/nelhage/othello/cmd/internal/opt"
	"github.com/nelhage/othello/logs"
)

type Command struct {
	p1   string
	p2   string
	seed int64
	opt  opt.Minimax

	games int
	swap  bool

	limit   time.Duration
	threads int

	summary string
	db      string
	verbose bool
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two engines against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]

Players are one of: minimax[:console|:gui], rand[:SEED], oei:COMMAND.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "minimax", "player 1")
	flags.StringVar(&c.p2, "p2", "rand", "player 2")

	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play per color")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.DurationVar(&c.limit, "limit", 0, "amount of time to search each move")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel threads")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.StringVar(&c.db, "db", "", "append finished games to this sqlite database")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}
	p1, err := opt.ParsePlayer(c.p1, &c.opt)
	if err != nil {
		log.Printf("-p1: %v", err)
		return subcommands.ExitUsageError
	}
	p2, err := opt.ParsePlayer(c.p2, &c.opt)
	if err != nil {
		log.Printf("-p2: %v", err)
		return subcommands.ExitUsageError
	}

	cfg := &Config{
		Swap:    c.swap,
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.seed,
		Limit:   c.limit,
		Verbose: c.verbose,
		P1:      p1,
		P2:      p2,
	}

	start := time.Now()
	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Printf("simulate: %v", err)
		return subcommands.ExitFailure
	}

	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			log.Println("writing summary: ", err.Error())
		}
	}
	if c.db != "" {
		if err := writeLog(c.db, start, p1.String(), p2.String(), &st); err != nil {
			log.Println("writing results: ", err.Error())
			return subcommands.ExitFailure
		}
	}

	log.Printf("done games=%d seed=%d ties=%d white=%d black=%d limit=%s",
		len(st.Games), c.seed, st.Ties, st.White, st.Black, c.limit)
	printTable(os.Stderr, p1.String(), p2.String(), &st)

	a, b := int64(st.Players[0].Wins), int64(st.Players[1].Wins)
	if a < b {
		a, b = b, a
	}
	log.Printf("p[one-sided]=%f", binomTest(a, b, 0.5))

	return subcommands.ExitSuccess
}

func printTable(out io.Writer, p1, p2 string, st *Stats) {
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\t\tblack\twhite\tsum\n")
	fmt.Fprintf(tw, "p1\t%s\t%d\t%d\t%d\n", p1, st.Players[0].BlackWins, st.Players[0].WhiteWins, st.Players[0].Wins)
	fmt.Fprintf(tw, "p2\t%s\t%d\t%d\t%d\n", p2, st.Players[1].BlackWins, st.Players[1].WhiteWins, st.Players[1].Wins)
	fmt.Fprintf(tw, "sum\t\t%d\t%d\t%d\n",
		st.Players[0].BlackWins+st.Players[1].BlackWins,
		st.Players[0].WhiteWins+st.Players[1].WhiteWins,
		st.Players[0].Wins+st.Players[1].Wins,
	)
	fmt.Fprintf(tw, "ties\t\t\t\t%d\n", st.Ties)
	tw.Flush()
}

func writeLog(path string, when time.Time, p1, p2 string, st *Stats) error {
	repo, err := logs.Open(path)
	if err != nil {
		return err
	}
	defer repo.Close()
	day := when.Format("2006-01-02")
	var gs []*logs.Game
	for i := range st.Games {
		gs = append(gs, st.Games[i].LogGame(day, when, p1, p2))
	}
	if err := repo.InsertGames(gs); err != nil {
		return err
	}
	recs, err := repo.Records()
	if err != nil {
		return err
	}
	for _, r := range recs {
		log.Printf("record player=%s wins=%d losses=%d ties=%d", r.Player, r.Wins, r.Losses, r.Ties)
	}
	return nil
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Limit   time.Duration
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	summary := Summary{
		Cmdline: os.Args,
		Player1: c.p1,
		Player2: c.p2,
		Limit:   c.limit,
		Stats:   stats,
	}

	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(bs)
	return err
}
