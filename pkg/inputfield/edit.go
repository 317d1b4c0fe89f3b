package inputfield

import "unicode/utf8"

// Edit replaces the rune range [Start, End) of the current text with Replacement.
type Edit struct {
	Start       int
	End         int
	Replacement string
}

// Insert adds s before the rune at position at.
func Insert(at int, s string) Edit {
	return Edit{Start: at, End: at, Replacement: s}
}

// Delete removes the rune range [start, end).
func Delete(start, end int) Edit {
	return Edit{Start: start, End: end}
}

// Replace swaps the rune range [start, end) for s.
func Replace(start, end int, s string) Edit {
	return Edit{Start: start, End: end, Replacement: s}
}

// Proposal is an Edit against a specific text.
type Proposal struct {
	Text string
	Edit
}

// Candidate returns the text the edit would produce. Offsets are counted in
// runes and clamped to the text; a Start past End collapses to an insertion
// at Start. The original text is never modified.
func (p Proposal) Candidate() string {
	runes := []rune(p.Text)
	n := len(runes)

	start := clamp(p.Start, 0, n)
	end := clamp(p.End, start, n)

	if start == end && p.Replacement == "" {
		return p.Text
	}

	out := make([]rune, 0, n-(end-start)+utf8.RuneCountInString(p.Replacement))
	out = append(out, runes[:start]...)
	out = append(out, []rune(p.Replacement)...)
	out = append(out, runes[end:]...)
	return string(out)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
