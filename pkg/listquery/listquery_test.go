package listquery_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haiki1233/food-delivery-backend/pkg/listquery"
)

var allowed = map[string]bool{
	"name": true, "cuisine": true, "ratingAverage": true, "isOpen": true,
}

func parse(t *testing.T, raw string) listquery.Query {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return listquery.Parse(values, allowed)
}

func TestParseEqualityAndRangeOps(t *testing.T) {
	q := parse(t, "cuisine=Rice&ratingAverage[gte]=4.5")
	require.Len(t, q.Filters, 2)

	byField := map[string]listquery.Filter{}
	for _, f := range q.Filters {
		byField[f.Field] = f
	}
	assert.Equal(t, listquery.OpEq, byField["cuisine"].Op)
	assert.Equal(t, "Rice", byField["cuisine"].Value)
	assert.Equal(t, listquery.OpGte, byField["ratingAverage"].Op)
	assert.Equal(t, 4.5, byField["ratingAverage"].Value)
}

func TestParseCoercesValues(t *testing.T) {
	q := parse(t, "isOpen=true&ratingAverage=4&name=pho")
	byField := map[string]any{}
	for _, f := range q.Filters {
		byField[f.Field] = f.Value
	}
	assert.Equal(t, true, byField["isOpen"])
	assert.Equal(t, int64(4), byField["ratingAverage"])
	assert.Equal(t, "pho", byField["name"])
}

func TestParseDropsUnknownFields(t *testing.T) {
	q := parse(t, "cuisine=Rice&$where=1&secret[gt]=0")
	require.Len(t, q.Filters, 1)
	assert.Equal(t, "cuisine", q.Filters[0].Field)
}

func TestParseReservedKeysAreNotFilters(t *testing.T) {
	q := parse(t, "page=3&limit=5&sort=-ratingAverage,name&fields=name,cuisine")
	assert.Empty(t, q.Filters)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 5, q.Limit)
	require.Len(t, q.Sort, 2)
	assert.Equal(t, listquery.SortField{Field: "ratingAverage", Desc: true}, q.Sort[0])
	assert.Equal(t, listquery.SortField{Field: "name"}, q.Sort[1])
	assert.Equal(t, []string{"name", "cuisine"}, q.Fields)
}

func TestParseDefaults(t *testing.T) {
	q := parse(t, "")
	assert.Equal(t, listquery.DefaultPage, q.Page)
	assert.Equal(t, listquery.DefaultLimit, q.Limit)
	assert.Zero(t, q.Offset())

	q = parse(t, "page=-1&limit=abc")
	assert.Equal(t, listquery.DefaultPage, q.Page)
	assert.Equal(t, listquery.DefaultLimit, q.Limit)
}

func TestOffset(t *testing.T) {
	q := parse(t, "page=3&limit=20")
	assert.Equal(t, 40, q.Offset())
}

func TestCacheKeyStableAcrossParamOrder(t *testing.T) {
	a := parse(t, "cuisine=Rice&isOpen=true&fields=name,cuisine")
	b := parse(t, "isOpen=true&fields=cuisine,name&cuisine=Rice")
	assert.Equal(t, a.CacheKey("restaurants"), b.CacheKey("restaurants"))
}

func TestCacheKeyDistinguishesQueries(t *testing.T) {
	base := parse(t, "cuisine=Rice")
	keys := map[string]bool{base.CacheKey("restaurants"): true}

	for _, raw := range []string{
		"cuisine=Noodles",
		"cuisine=Rice&page=2",
		"cuisine=Rice&limit=5",
		"cuisine=Rice&sort=-ratingAverage",
		"ratingAverage[gte]=4",
	} {
		k := parse(t, raw).CacheKey("restaurants")
		assert.False(t, keys[k], "key collision for %q", raw)
		keys[k] = true
	}
}
