package story

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TestResolvedPagesGolden snapshots the resolve+highlight pipeline for a few
// representative pages against a fixed context. Regenerate with -update.
func TestResolvedPagesGolden(t *testing.T) {
	ctx := testContext()
	pages := Pages()

	var b strings.Builder
	for _, id := range []int{0, 2, 3} {
		resolved := Resolve(pages[id].Text, ctx)
		fmt.Fprintf(&b, "[page %d]\n", id)
		for _, s := range Highlight(resolved) {
			marker := "  "
			if s.Emphasized {
				marker = "EM"
			}
			fmt.Fprintf(&b, "%s|%s|\n", marker, s.Text)
		}
		b.WriteString("\n")
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "resolved_pages", []byte(b.String()))
}
