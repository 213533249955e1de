package common

import (
	"strings"

	"github.com/gobwas/glob"
)

// MatchPattern はワイルドカードパターンマッチングを行う
// ワイルドカード（*や?）を含む場合はglob形式でマッチング、
// 含まない場合は部分一致で判定する
func MatchPattern(name, pattern string) bool {
	if pattern == "" {
		return true
	}
	if strings.ContainsAny(pattern, "*?[{") {
		// '.' と '@' を区切り文字として扱わない
		g, err := glob.Compile(pattern)
		if err != nil {
			return false
		}
		return g.Match(name)
	}
	return strings.Contains(name, pattern)
}

// FilterByPattern はパターンに一致する要素のみを返す
func FilterByPattern(names []string, pattern string) []string {
	var result []string
	for _, name := range names {
		if MatchPattern(name, pattern) {
			result = append(result, name)
		}
	}
	return result
}
