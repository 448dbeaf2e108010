package shytrace

import "strings"

// CommonPrefix returns the longest run of leading path tokens shared by every
// folder, rendered with a trailing Separator. Tokens are compared whole, so
// `C:\Proj\` and `C:\Project\` share only `C:\`.
//
// An empty set yields "" and a single folder is returned unchanged. Repeated
// folders count once.
func CommonPrefix(folders []string) string {
	folders = distinct(folders)
	switch len(folders) {
	case 0:
		return ""
	case 1:
		return folders[0]
	}

	tokens := make([][]string, len(folders))
	minLen := -1
	for i, f := range folders {
		tokens[i] = strings.Split(f, Separator)
		if minLen < 0 || len(tokens[i]) < minLen {
			minLen = len(tokens[i])
		}
	}

	n := 0
scan:
	for ; n < minLen; n++ {
		want := tokens[0][n]
		for _, t := range tokens[1:] {
			if t[n] != want {
				break scan
			}
		}
	}
	if n == 0 {
		return ""
	}
	return strings.Join(tokens[0][:n], Separator) + Separator
}

func distinct(folders []string) []string {
	seen := make(map[string]struct{}, len(folders))
	out := folders[:0:0]
	for _, f := range folders {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
