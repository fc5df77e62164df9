package admin

import "Parchment/internal/model"

var (
	contentRelation = map[string]Relation{"content": {Column: "content_id", Table: "contents"}}
)

// BuildSite 注册全部实体的后台配置
func BuildSite() *Site {
	site := NewSite()

	Register[model.User](site, &ModelAdmin{
		Name:        "users",
		Verbose:     "User",
		Table:       "users",
		ListDisplay: []string{"username", "email", "role", "is_active", "date_joined"},
		ListFilter: []Filter{
			{Field: "role", Column: "role", Kind: FilterChoice, Choices: model.Values(model.Roles)},
			{Field: "is_active", Column: "is_active", Kind: FilterBool},
		},
		SearchFields: []string{"username", "email"},
	})

	Register[model.Content](site, &ModelAdmin{
		Name:        "contents",
		Verbose:     "Content",
		Table:       "contents",
		ListDisplay: []string{"title", "author", "status", "created_at", "updated_at", "published_at"},
		ListFilter: []Filter{
			{Field: "status", Column: "status", Kind: FilterChoice, Choices: model.Values(model.ContentStatuses)},
			{Field: "author", Column: "author_id", Kind: FilterForeignKey},
			{Field: "created_at", Column: "created_at", Kind: FilterDate, Choices: DateChoices},
		},
		SearchFields: []string{"title", "body"},
		Preloads:     []string{"Author"},
	})

	Register[model.ContentApproval](site, &ModelAdmin{
		Name:        "approvals",
		Verbose:     "Content Approval",
		Table:       "content_approvals",
		ListDisplay: []string{"content", "reviewer", "status", "reviewed_at"},
		ListFilter: []Filter{
			{Field: "status", Column: "status", Kind: FilterChoice, Choices: model.Values(model.ApprovalStatuses)},
			{Field: "reviewer", Column: "reviewer_id", Kind: FilterForeignKey},
			{Field: "reviewed_at", Column: "reviewed_at", Kind: FilterDate, Choices: DateChoices},
		},
		SearchFields: []string{"content__title", "reviewer__username"},
		Preloads:     []string{"Content", "Reviewer"},
		Relations: map[string]Relation{
			"content":  {Column: "content_id", Table: "contents"},
			"reviewer": {Column: "reviewer_id", Table: "users"},
		},
	})

	Register[model.SEOData](site, &ModelAdmin{
		Name:         "seo",
		Verbose:      "SEO Data",
		Table:        "seo_data",
		ListDisplay:  []string{"content", "meta_title", "meta_description", "keywords", "canonical_url"},
		SearchFields: []string{"content__title", "meta_title", "keywords"},
		Preloads:     []string{"Content"},
		Relations:    contentRelation,
	})

	Register[model.MediaFile](site, &ModelAdmin{
		Name:         "media",
		Verbose:      "Media File",
		Table:        "media_files",
		ListDisplay:  []string{"content", "file", "uploaded_at"},
		SearchFields: []string{"content__title", "file"},
		Preloads:     []string{"Content"},
		Relations:    contentRelation,
	})

	Register[model.ContentTranslation](site, &ModelAdmin{
		Name:        "translations",
		Verbose:     "Content Translation",
		Table:       "content_translations",
		ListDisplay: []string{"content", "language", "translated_title"},
		ListFilter: []Filter{
			{Field: "language", Column: "language", Kind: FilterValue},
		},
		SearchFields: []string{"content__title", "language", "translated_title"},
		Preloads:     []string{"Content"},
		Relations:    contentRelation,
	})

	Register[model.ContentAnalytics](site, &ModelAdmin{
		Name:         "analytics",
		Verbose:      "Content Analytics",
		Table:        "content_analytics",
		ListDisplay:  []string{"content", "views", "likes", "shares", "last_accessed"},
		SearchFields: []string{"content__title"},
		Preloads:     []string{"Content"},
		Relations:    contentRelation,
	})

	Register[model.Integration](site, &ModelAdmin{
		Name:        "integrations",
		Verbose:     "Integration",
		Table:       "integrations",
		ListDisplay: []string{"name", "is_active"},
		ListFilter: []Filter{
			{Field: "is_active", Column: "is_active", Kind: FilterBool},
		},
		SearchFields: []string{"name"},
	})

	Register[model.SecurityLog](site, &ModelAdmin{
		Name:        "security-logs",
		Verbose:     "Security Log",
		Table:       "security_logs",
		ListDisplay: []string{"user", "action", "timestamp", "ip_address"},
		ListFilter: []Filter{
			{Field: "timestamp", Column: "timestamp", Kind: FilterDate, Choices: DateChoices},
			{Field: "user", Column: "user_id", Kind: FilterForeignKey},
		},
		SearchFields: []string{"user__username", "action", "ip_address"},
		Preloads:     []string{"User"},
		Relations:    map[string]Relation{"user": {Column: "user_id", Table: "users"}},
	})

	Register[model.PerformanceMetrics](site, &ModelAdmin{
		Name:        "performance-metrics",
		Verbose:     "Performance Metrics",
		Table:       "performance_metrics",
		ListDisplay: []string{"content", "load_time", "cache_status", "optimized"},
		ListFilter: []Filter{
			{Field: "cache_status", Column: "cache_status", Kind: FilterChoice, Choices: model.Values(model.CacheStatuses)},
			{Field: "optimized", Column: "optimized", Kind: FilterBool},
		},
		SearchFields: []string{"content__title"},
		Preloads:     []string{"Content"},
		Relations:    contentRelation,
	})

	return site
}
