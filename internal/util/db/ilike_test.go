package db_test

import (
	"testing"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/stretchr/testify/assert"
	"github/chapool/go-transfer/internal/store"
	"github/chapool/go-transfer/internal/test"
	"github/chapool/go-transfer/internal/util/db"
)

func TestILike(t *testing.T) {
	query := store.NewQuery(
		qm.Select("*"),
		qm.From("strings"),
		db.ILike("%hello%", "strings", "value"),
	)

	sql, args := queries.BuildQuery(query)

	test.Snapshoter.Label("SQL").Save(t, sql)
	test.Snapshoter.Label("Args").Save(t, args...)
}

func TestEscapeLike(t *testing.T) {
	res := db.EscapeLike("%foo% _b%a_r%")
	assert.Equal(t, "\\%foo\\% \\_b\\%a\\_r\\%", res)
}

func TestILikeSearch(t *testing.T) {
	mods := append([]qm.QueryMod{
		qm.Select("*"),
		qm.From("strings"),
	}, db.ILikeSearch("  hel%lo w_rld  ", "strings", "value")...)

	sql, args := queries.BuildQuery(store.NewQuery(mods...))

	assert.Equal(t, []any{"%hel\\%lo%", "%w\\_rld%"}, args)
	test.Snapshoter.Label("SQL").Save(t, sql)
}

func TestILikeSearchBlank(t *testing.T) {
	assert.Empty(t, db.ILikeSearch("   ", "strings", "value"))
}
