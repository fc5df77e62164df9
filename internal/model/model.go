package model

// All 返回全部持久化模型，顺序即建表顺序
func All() []any {
	return []any{
		&User{},
		&Content{},
		&ContentApproval{},
		&SEOData{},
		&MediaFile{},
		&ContentTranslation{},
		&ContentAnalytics{},
		&Integration{},
		&SecurityLog{},
		&PerformanceMetrics{},
	}
}

// userDisplay 渲染用户外键列，未加载的关联返回 nil
func userDisplay(u *User) any {
	if u == nil {
		return nil
	}
	return u.String()
}
