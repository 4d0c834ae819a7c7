package geom

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/planar/dbg"
)

// This is for debugging purposes only

func (a *clipArena) nodeName(i int) string {
	name := dbg.Name(a.at(i))
	v := a.at(i)
	if !v.intersection {
		return name
	}
	if v.entry {
		return aurora.Green(name).String()
	}
	return aurora.Red(name).String()
}

func (v *clipVertex) describe(a *clipArena) string {
	var tags []string
	if v.original {
		tags = append(tags, "orig")
	}
	if v.intersection {
		if v.entry {
			tags = append(tags, "entry")
		} else {
			tags = append(tags, "exit")
		}
	}
	if v.visited {
		tags = append(tags, "visited")
	}
	return fmt.Sprintf("(%v, %v) α=%.3f [%s]", v.coord.X, v.coord.Y, v.alpha, strings.Join(tags, " "))
}

// dbgDump prints every ring of the arena with its spliced crossings, handy
// when a traversal refuses to terminate.
func (a *clipArena) dbgDump() {
	for ringIdx, start := range a.ringStart {
		fmt.Printf("ring %d:\n", ringIdx)
		idx := start
		for {
			v := a.at(idx)
			line := fmt.Sprintf("  %s %s", a.nodeName(idx), v.describe(a))
			if v.neighbor >= 0 {
				// The pair lives in the other polygon's arena, so only its
				// index is meaningful here.
				line += fmt.Sprintf(" ⇄ #%d", v.neighbor)
			}
			fmt.Println(line)
			idx = v.next
			if idx == start {
				break
			}
		}
	}
}
