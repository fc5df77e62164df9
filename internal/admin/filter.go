package admin

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUnknownEntity = errors.New("未注册的实体")
	ErrUnknownFilter = errors.New("不支持的过滤字段")
	ErrInvalidFilter = errors.New("过滤值无效")
)

type FilterKind string

const (
	FilterChoice     FilterKind = "choice"
	FilterBool       FilterKind = "boolean"
	FilterForeignKey FilterKind = "foreign_key"
	FilterDate       FilterKind = "date"
	FilterValue      FilterKind = "value"
)

// 日期过滤的取值，与常见后台的快捷选项保持一致
const (
	DateToday     = "today"
	DatePast7Days = "past_7_days"
	DateThisMonth = "this_month"
	DateThisYear  = "this_year"
)

var DateChoices = []string{DateToday, DatePast7Days, DateThisMonth, DateThisYear}

// NullValue 外键过滤中表示 "为空"
const NullValue = "null"

type Filter struct {
	Field   string     `json:"field"`
	Column  string     `json:"column"`
	Kind    FilterKind `json:"kind"`
	Choices []string   `json:"choices,omitempty"`
}

// FilterCond 解析后的过滤条件
type FilterCond struct {
	Filter Filter
	Raw    string

	boolVal bool
	idVal   *uint64
	from    time.Time
	to      time.Time
}

// Parse 校验原始值并生成过滤条件，now 用于计算日期区间
func (f Filter) Parse(raw string, now time.Time) (FilterCond, error) {
	cond := FilterCond{Filter: f, Raw: raw}
	switch f.Kind {
	case FilterChoice:
		if !slices.Contains(f.Choices, raw) {
			return cond, fmt.Errorf("%w: %s=%q", ErrInvalidFilter, f.Field, raw)
		}
	case FilterBool:
		b, err := parseBool(raw)
		if err != nil {
			return cond, fmt.Errorf("%w: %s=%q", ErrInvalidFilter, f.Field, raw)
		}
		cond.boolVal = b
	case FilterForeignKey:
		if raw == NullValue {
			return cond, nil
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return cond, fmt.Errorf("%w: %s=%q", ErrInvalidFilter, f.Field, raw)
		}
		cond.idVal = &id
	case FilterDate:
		from, to, ok := DateRange(raw, now)
		if !ok {
			return cond, fmt.Errorf("%w: %s=%q", ErrInvalidFilter, f.Field, raw)
		}
		cond.from, cond.to = from, to
	case FilterValue:
		if strings.TrimSpace(raw) == "" {
			return cond, fmt.Errorf("%w: %s is empty", ErrInvalidFilter, f.Field)
		}
	}
	return cond, nil
}

// Scope 转换为 gorm 查询条件
func (c FilterCond) Scope() func(*gorm.DB) *gorm.DB {
	col := c.Filter.Column
	return func(db *gorm.DB) *gorm.DB {
		switch c.Filter.Kind {
		case FilterBool:
			return db.Where(col+" = ?", c.boolVal)
		case FilterForeignKey:
			if c.idVal == nil {
				return db.Where(col + " IS NULL")
			}
			return db.Where(col+" = ?", *c.idVal)
		case FilterDate:
			return db.Where(col+" >= ? AND "+col+" < ?", c.from, c.to)
		default:
			return db.Where(col+" = ?", c.Raw)
		}
	}
}

// DateRange 计算日期快捷选项对应的 [from, to) 区间
func DateRange(choice string, now time.Time) (time.Time, time.Time, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	switch choice {
	case DateToday:
		return today, tomorrow, true
	case DatePast7Days:
		return today.AddDate(0, 0, -7), tomorrow, true
	case DateThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first, first.AddDate(0, 1, 0), true
	case DateThisYear:
		first := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return first, first.AddDate(1, 0, 0), true
	}
	return time.Time{}, time.Time{}, false
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no":
		return false, nil
	}
	return false, strconv.ErrSyntax
}
