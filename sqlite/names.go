package sqlite

import (
	"fmt"
	"regexp"
	"strings"
)

const colPrefix = "cl"

var (
	space    = regexp.MustCompile(`\s+`)
	badChars = regexp.MustCompile(`[^a-zA-Z0-9 _]+`)
)

// ColumnNames turns raw CSV headers into identifiers SQLite accepts:
// lower case, snake case, disallowed characters stripped, keywords and
// leading digits dodged. If sanitizing a header leaves nothing usable
// the column becomes cl0, cl1, etc. Duplicates get a counter suffix.
func ColumnNames(rawHeaders []string) []string {
	names := make([]string, len(rawHeaders))

	counter := map[string]int{}
	for idx, item := range rawHeaders {
		item = strings.TrimSpace(item)
		item = badChars.ReplaceAllString(item, "")
		item = space.ReplaceAllString(item, "_")
		item = strings.ToLower(item)

		if isKeyword(item) || len(item) == 0 {
			item = fmt.Sprintf("%s%d", colPrefix, idx)
		}

		// sqlite identifiers cannot start with a digit
		if item[0] >= '0' && item[0] <= '9' {
			item = fmt.Sprintf("%s%d%s", colPrefix, idx, item)
		}

		counter[item]++
		if counter[item] == 1 {
			names[idx] = item
		} else {
			names[idx] = fmt.Sprintf("%s%d", item, counter[item])
		}
	}
	return names
}

func isKeyword(s string) bool {
	for _, keyword := range keywords {
		if s == keyword {
			return true
		}
	}
	return false
}

// keywords lists the SQLite SQL keywords that may require dodging when
// used as identifiers, per https://sqlite.org/lang_keywords.html.
var keywords = []string{
	"abort", "action", "add", "after", "all", "alter", "always", "analyze", "and", "as",
	"asc", "attach", "autoincrement", "before", "begin", "between", "by", "cascade", "case", "cast",
	"check", "collate", "column", "commit", "conflict", "constraint", "create", "cross", "current", "current_date",
	"current_time", "current_timestamp", "database", "default", "deferrable", "deferred", "delete", "desc", "detach", "distinct",
	"do", "drop", "each", "else", "end", "escape", "except", "exclude", "exclusive", "exists",
	"explain", "fail", "filter", "first", "following", "for", "foreign", "from", "full", "generated",
	"glob", "group", "groups", "having", "if", "ignore", "immediate", "in", "index", "indexed",
	"initially", "inner", "insert", "instead", "intersect", "into", "is", "isnull", "join", "key",
	"last", "left", "like", "limit", "match", "materialized", "natural", "no", "not", "nothing",
	"notnull", "null", "nulls", "of", "offset", "on", "or", "order", "others", "outer",
	"over", "partition", "plan", "pragma", "preceding", "primary", "query", "raise", "range", "recursive",
	"references", "regexp", "reindex", "release", "rename", "replace", "restrict", "returning", "right", "rollback",
	"row", "rows", "savepoint", "select", "set", "table", "temp", "temporary", "then", "ties",
	"to", "transaction", "trigger", "unbounded", "union", "unique", "update", "using", "vacuum", "values",
	"view", "virtual", "when", "where", "window", "with", "without",
}
