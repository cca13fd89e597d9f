// Package listquery parses listing query strings into a typed filter AST:
// a closed set of {field, operator, value} tuples plus sort, projection and
// pagination. Repositories translate the AST into store predicates, and the
// canonical cache key derived from it is stable across parameter ordering.
package listquery

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

type Op string

const (
	OpEq  Op = "eq"
	OpGt  Op = "gt"
	OpGte Op = "gte"
	OpLt  Op = "lt"
	OpLte Op = "lte"
)

var ops = map[string]Op{"gt": OpGt, "gte": OpGte, "lt": OpLt, "lte": OpLte}

type Filter struct {
	Field string
	Op    Op
	Value any
}

type SortField struct {
	Field string
	Desc  bool
}

type Query struct {
	Filters []Filter
	Sort    []SortField
	Fields  []string
	Page    int
	Limit   int
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// reserved keys never treated as filters
var reserved = map[string]bool{"page": true, "sort": true, "limit": true, "fields": true}

// Parse builds a Query from raw URL values. allowed maps the exposed field
// name to itself; keys outside it are dropped rather than forwarded to the
// store. Filter syntax follows ?field=v for equality and ?field[gte]=v for
// range operators.
func Parse(values url.Values, allowed map[string]bool) Query {
	q := Query{Page: DefaultPage, Limit: DefaultLimit}

	for key, vals := range values {
		if reserved[key] || len(vals) == 0 {
			continue
		}
		field, op := splitKey(key)
		if !allowed[field] {
			continue
		}
		q.Filters = append(q.Filters, Filter{Field: field, Op: op, Value: coerce(vals[0])})
	}

	if s := values.Get("sort"); s != "" {
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			sf := SortField{Field: part}
			if strings.HasPrefix(part, "-") {
				sf = SortField{Field: part[1:], Desc: true}
			}
			if allowed[sf.Field] || sf.Field == "createdAt" {
				q.Sort = append(q.Sort, sf)
			}
		}
	}

	if f := values.Get("fields"); f != "" {
		for _, part := range strings.Split(f, ",") {
			part = strings.TrimSpace(part)
			if allowed[part] {
				q.Fields = append(q.Fields, part)
			}
		}
	}

	if p, err := strconv.Atoi(values.Get("page")); err == nil && p > 0 {
		q.Page = p
	}
	if l, err := strconv.Atoi(values.Get("limit")); err == nil && l > 0 {
		q.Limit = l
	}
	return q
}

// splitKey turns "rating[gte]" into ("rating", OpGte); a bare key is equality.
func splitKey(key string) (string, Op) {
	open := strings.IndexByte(key, '[')
	if open > 0 && strings.HasSuffix(key, "]") {
		if op, ok := ops[key[open+1:len(key)-1]]; ok {
			return key[:open], op
		}
	}
	return key, OpEq
}

// coerce maps raw string values to bool/number where possible so store
// comparisons are typed instead of lexical.
func coerce(v string) any {
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

// Offset returns how many records pagination skips.
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// CacheKey serializes the query deterministically: filters, sort and fields
// are sorted before joining so equivalent requests share one cache entry.
func (q Query) CacheKey(prefix string) string {
	fs := make([]string, 0, len(q.Filters))
	for _, f := range q.Filters {
		fs = append(fs, f.Field+" "+string(f.Op)+" "+format(f.Value))
	}
	sort.Strings(fs)

	ss := make([]string, 0, len(q.Sort))
	for _, s := range q.Sort {
		if s.Desc {
			ss = append(ss, "-"+s.Field)
		} else {
			ss = append(ss, s.Field)
		}
	}

	fields := append([]string(nil), q.Fields...)
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(":f=")
	b.WriteString(strings.Join(fs, "|"))
	b.WriteString(":s=")
	b.WriteString(strings.Join(ss, ","))
	b.WriteString(":p=")
	b.WriteString(strings.Join(fields, ","))
	b.WriteString(":page=")
	b.WriteString(strconv.Itoa(q.Page))
	b.WriteString(":limit=")
	b.WriteString(strconv.Itoa(q.Limit))
	return b.String()
}

func format(v any) string {
	switch t := v.(type) {
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return t.(string)
	}
}
