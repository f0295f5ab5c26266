package multitouch

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugLogger receives tree warnings from node operations in debug mode.
var debugLogger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "multitouch").Logger()

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("multitouch debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxTreeDepth is the depth past which debug mode warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn().Int("depth", depth).Int("threshold", debugMaxTreeDepth).
			Str("node", n.Name).Msg("tree depth exceeds threshold")
	}
}

// debugMaxChildCount is the child count past which debug mode warns.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugLogger.Warn().Int("children", len(n.children)).Int("threshold", debugMaxChildCount).
			Str("node", n.Name).Msg("child count exceeds threshold")
	}
}
