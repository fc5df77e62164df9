// Package admin 描述后台列表页：每个实体展示哪些列、可按哪些字段过滤、可按哪些字段搜索。
package admin

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// Row 后台列表中的一行，由各模型实现
type Row interface {
	fmt.Stringer
	PrimaryKey() uint64
	AdminValue(field string) any
}

// Relation 外键关联，用于 "content__title" 形式的搜索路径
type Relation struct {
	Column string // 本表外键列，如 content_id
	Table  string // 关联表，如 contents
}

// ModelAdmin 单个实体的后台配置
type ModelAdmin struct {
	Name         string
	Verbose      string
	Table        string
	ListDisplay  []string
	ListFilter   []Filter
	SearchFields []string
	Preloads     []string
	Relations    map[string]Relation

	find func(tx *gorm.DB) ([]Row, error)
}

// Find 在已构建好条件的 tx 上查询并转换为 Row
func (m *ModelAdmin) Find(tx *gorm.DB) ([]Row, error) {
	return m.find(tx)
}

// FilterByField 按参数名查找过滤器
func (m *ModelAdmin) FilterByField(field string) (Filter, bool) {
	for _, f := range m.ListFilter {
		if f.Field == field {
			return f, true
		}
	}
	return Filter{}, false
}

func (m *ModelAdmin) validate() error {
	for _, field := range m.SearchFields {
		if prefix, _, found := strings.Cut(field, "__"); found {
			if _, ok := m.Relations[prefix]; !ok {
				return fmt.Errorf("admin: %s search field %q has no relation", m.Name, field)
			}
		}
	}
	return nil
}

// Site 后台注册表，启动时构建一次后只读
type Site struct {
	admins map[string]*ModelAdmin
	order  []string
}

func NewSite() *Site {
	return &Site{admins: make(map[string]*ModelAdmin)}
}

// Register 注册实体 T，PT 为其指针类型
func Register[T any, PT interface {
	*T
	Row
}](s *Site, m *ModelAdmin) {
	m.find = func(tx *gorm.DB) ([]Row, error) {
		var items []T
		if err := tx.Find(&items).Error; err != nil {
			return nil, err
		}
		rows := make([]Row, len(items))
		for i := range items {
			rows[i] = PT(&items[i])
		}
		return rows, nil
	}
	if err := m.validate(); err != nil {
		panic(err)
	}
	if _, exists := s.admins[m.Name]; exists {
		panic(fmt.Sprintf("admin: %s already registered", m.Name))
	}
	s.admins[m.Name] = m
	s.order = append(s.order, m.Name)
}

// Get 按名称获取实体配置
func (s *Site) Get(name string) (*ModelAdmin, bool) {
	m, ok := s.admins[name]
	return m, ok
}

// All 按注册顺序返回全部实体配置
func (s *Site) All() []*ModelAdmin {
	out := make([]*ModelAdmin, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.admins[name])
	}
	return out
}

// Names 返回排好序的实体名称
func (s *Site) Names() []string {
	names := append([]string(nil), s.order...)
	sort.Strings(names)
	return names
}
