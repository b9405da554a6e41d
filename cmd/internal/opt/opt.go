package opt

import (
	"flag"
	"log"
	"sort"
	"strings"

	"github.com/nelhage/othello/ai"
)

// Minimax holds the engine flags shared by every command that builds
// a minimax player.
type Minimax struct {
	Debug    int
	Eval     string
	Symmetry bool
}

func (o *Minimax) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Debug, "debug", 0, "debug level")
	flags.StringVar(&o.Eval, "eval", "console",
		"evaluation heuristic ("+strings.Join(heuristicNames(), "|")+")")
	flags.BoolVar(&o.Symmetry, "symmetry", false, "skip symmetric root moves")
}

func (o *Minimax) BuildConfig() ai.MinimaxConfig {
	name := o.Eval
	if name == "" {
		name = "console"
	}
	w, ok := ai.Heuristics[name]
	if !ok {
		log.Fatalf("unknown heuristic: %q", name)
	}
	return ai.MinimaxConfig{
		Debug:         o.Debug,
		DedupSymmetry: o.Symmetry,
		Evaluate:      ai.MakeEvaluator(w),
	}
}

func heuristicNames() []string {
	var names []string
	for k := range ai.Heuristics {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
