package db

import (
	"fmt"
	"strings"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

var likeEscaper = strings.NewReplacer(
	"%", "\\%",
	"_", "\\_",
)

// ILike returns a query mod containing a pre-formatted ILIKE clause.
// val is applied as is, wrap it in % for a wildcard search.
// The path elements are joined to the full SQL path of the column.
func ILike(val string, path ...string) qm.QueryMod {
	// ? instead of $1, other parts of the query might already have bound $1
	return qm.Where(fmt.Sprintf("%s ILIKE ?", strings.Join(path, ".")), val)
}

// EscapeLike escapes the LIKE wildcards % and _ in val.
func EscapeLike(val string) string {
	return likeEscaper.Replace(val)
}

// ILikeSearch splits query into whitespace separated terms and returns one
// ILIKE clause per term, so every term has to appear in the column at path.
// A blank query yields no clauses.
func ILikeSearch(query string, path ...string) []qm.QueryMod {
	terms := strings.Fields(query)

	mods := make([]qm.QueryMod, 0, len(terms))
	for _, term := range terms {
		mods = append(mods, ILike("%"+EscapeLike(term)+"%", path...))
	}

	return mods
}
