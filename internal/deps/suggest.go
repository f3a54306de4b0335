package deps

import "github.com/sahilm/fuzzy"

// Suggest returns up to max registry names that fuzzy-match name, best first.
func Suggest(name string, in []ToolInfo, max int) []string {
	if name == "" || max <= 0 {
		return nil
	}
	matches := fuzzy.Find(name, Names(in))
	out := make([]string, 0, max)
	for _, m := range matches {
		if m.Str == name {
			continue
		}
		out = append(out, m.Str)
		if len(out) == max {
			break
		}
	}
	return out
}
