package admin

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	ParamSearch   = "q"
	ParamPage     = "page"
	ParamPageSize = "page_size"

	DefaultPageSize = 100
	MaxPageSize     = 500
)

// Query 后台列表查询
type Query struct {
	Search   string
	Filters  []FilterCond
	Page     int
	PageSize int
}

func (q *Query) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// ParseQuery 从 URL 参数解析查询，未知参数、重复参数与非法取值均返回错误
func ParseQuery(m *ModelAdmin, values url.Values, now time.Time) (*Query, error) {
	q := &Query{Page: 1, PageSize: DefaultPageSize}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if len(values[key]) > 1 {
			return nil, fmt.Errorf("%w: %s given %d times", ErrInvalidFilter, key, len(values[key]))
		}
		raw := values.Get(key)
		switch key {
		case ParamSearch:
			q.Search = strings.TrimSpace(raw)
		case ParamPage:
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: page=%q", ErrInvalidFilter, raw)
			}
			q.Page = n
		case ParamPageSize:
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > MaxPageSize {
				return nil, fmt.Errorf("%w: page_size=%q", ErrInvalidFilter, raw)
			}
			q.PageSize = n
		default:
			f, ok := m.FilterByField(key)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, key)
			}
			cond, err := f.Parse(raw, now)
			if err != nil {
				return nil, err
			}
			q.Filters = append(q.Filters, cond)
		}
	}
	return q, nil
}

// Scopes 组合过滤与搜索条件，不含分页与排序
func (m *ModelAdmin) Scopes(q *Query) []func(*gorm.DB) *gorm.DB {
	scopes := make([]func(*gorm.DB) *gorm.DB, 0, len(q.Filters)+1)
	for _, f := range q.Filters {
		scopes = append(scopes, f.Scope())
	}
	if q.Search != "" && len(m.SearchFields) > 0 {
		scopes = append(scopes, m.SearchScope(q.Search))
	}
	return scopes
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchScope 按空白切分关键词：每个词至少命中一个搜索字段，所有词同时满足
func (m *ModelAdmin) SearchScope(search string) func(*gorm.DB) *gorm.DB {
	terms := strings.Fields(search)
	return func(db *gorm.DB) *gorm.DB {
		for _, term := range terms {
			pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
			var clauses []string
			var args []any
			for _, field := range m.SearchFields {
				clauses = append(clauses, m.searchClause(field))
				args = append(args, pattern)
			}
			db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
		}
		return db
	}
}

// searchClause 生成单个字段的 LIKE 条件，关联字段使用子查询
func (m *ModelAdmin) searchClause(field string) string {
	prefix, column, found := strings.Cut(field, "__")
	if !found {
		return fmt.Sprintf("LOWER(%s.%s) LIKE ?", m.Table, field)
	}
	rel, ok := m.Relations[prefix]
	if !ok {
		return "1 = 0"
	}
	return fmt.Sprintf("%s.%s IN (SELECT id FROM %s WHERE LOWER(%s) LIKE ?)", m.Table, rel.Column, rel.Table, column)
}
