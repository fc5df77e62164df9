package model

// ContentStatus 内容发布状态
type ContentStatus string

const (
	ContentDraft     ContentStatus = "draft"
	ContentPending   ContentStatus = "pending"
	ContentPublished ContentStatus = "published"
	ContentArchived  ContentStatus = "archived"
)

var ContentStatuses = []ContentStatus{ContentDraft, ContentPending, ContentPublished, ContentArchived}

func (s ContentStatus) IsValid() bool {
	return contains(ContentStatuses, s)
}

// ApprovalStatus 审核结论
type ApprovalStatus string

const (
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

var ApprovalStatuses = []ApprovalStatus{ApprovalApproved, ApprovalRejected}

func (s ApprovalStatus) IsValid() bool {
	return contains(ApprovalStatuses, s)
}

// IntegrationName 第三方集成类型
type IntegrationName string

const (
	IntegrationGoogleAnalytics IntegrationName = "google_analytics"
	IntegrationCRM             IntegrationName = "crm"
	IntegrationSocialMedia     IntegrationName = "social_media"
)

var IntegrationNames = []IntegrationName{IntegrationGoogleAnalytics, IntegrationCRM, IntegrationSocialMedia}

func (n IntegrationName) IsValid() bool {
	return contains(IntegrationNames, n)
}

// CacheStatus 页面缓存命中情况
type CacheStatus string

const (
	CacheHit  CacheStatus = "hit"
	CacheMiss CacheStatus = "miss"
)

var CacheStatuses = []CacheStatus{CacheHit, CacheMiss}

func (c CacheStatus) IsValid() bool {
	return contains(CacheStatuses, c)
}

func contains[T ~string](values []T, v T) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}

// Values 将枚举切片转换为字符串切片
func Values[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
