package templatize

import (
	"strings"
)

type diffTag byte

const (
	diffEqual diffTag = iota
	diffDelete
	diffInsert
)

type diffLine struct {
	tag  diffTag
	text string
}

const diffContext = 3

// renderDiff formats a line diff between two text bodies, showing changed
// hunks with a few lines of context, for the interactive prompt.
func renderDiff(oldText, newText string) string {
	lines := diffLines(oldText, newText)
	groups := groupChanges(lines, diffContext)

	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString(separatorStyle.Render(strings.Repeat("-", 40)) + "\n")
		}
		for _, line := range lines[g.start:g.end] {
			switch line.tag {
			case diffDelete:
				b.WriteString(removedStyle.Render("- "+line.text) + "\n")
			case diffInsert:
				b.WriteString(addedStyle.Render("+ "+line.text) + "\n")
			default:
				b.WriteString("  " + line.text + "\n")
			}
		}
	}
	return b.String()
}

// diffLines computes a line-level diff via longest common subsequence.
func diffLines(oldText, newText string) []diffLine {
	oldLines := strings.Split(oldText, "\n")
	newLines := strings.Split(newText, "\n")
	m, n := len(oldLines), len(newLines)

	// Quadratic table; past this size just show a whole-body replacement.
	if m*n > 4_000_000 {
		out := make([]diffLine, 0, m+n)
		for _, l := range oldLines {
			out = append(out, diffLine{diffDelete, l})
		}
		for _, l := range newLines {
			out = append(out, diffLine{diffInsert, l})
		}
		return out
	}

	lcs := make([][]int, m+1)
	for i := range lcs {
		lcs[i] = make([]int, n+1)
	}
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	var out []diffLine
	i, j := 0, 0
	for i < m && j < n {
		switch {
		case oldLines[i] == newLines[j]:
			out = append(out, diffLine{diffEqual, oldLines[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			out = append(out, diffLine{diffDelete, oldLines[i]})
			i++
		default:
			out = append(out, diffLine{diffInsert, newLines[j]})
			j++
		}
	}
	for ; i < m; i++ {
		out = append(out, diffLine{diffDelete, oldLines[i]})
	}
	for ; j < n; j++ {
		out = append(out, diffLine{diffInsert, newLines[j]})
	}
	return out
}

type lineRange struct {
	start, end int
}

// groupChanges returns ranges covering every changed line plus context,
// with overlapping ranges merged.
func groupChanges(lines []diffLine, context int) []lineRange {
	var groups []lineRange
	for i, line := range lines {
		if line.tag == diffEqual {
			continue
		}
		start := max(0, i-context)
		end := min(len(lines), i+context+1)
		if len(groups) > 0 && start <= groups[len(groups)-1].end {
			groups[len(groups)-1].end = end
			continue
		}
		groups = append(groups, lineRange{start, end})
	}
	return groups
}
