package service

import (
	"context"
	"io"

	"Parchment/internal/admin"
	"Parchment/internal/model"
	"Parchment/internal/pkg/es"
	"Parchment/internal/pkg/mongo"
	"Parchment/internal/pkg/redis"
	"Parchment/internal/pkg/security"
	"Parchment/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 手写的函数字段桩，未设置的方法被调用时 panic

var _ repository.UserRepo = &userRepoMock{}

type userRepoMock struct {
	GetUserByIdFunc       func(ctx context.Context, id uint64) (*model.User, error)
	GetUserByUsernameFunc func(ctx context.Context, username string) (*model.User, error)
	CreateUserFunc        func(ctx context.Context, user *model.User) error
	UpdateUserFunc        func(ctx context.Context, id uint64, fields map[string]any) error
	DeleteUserFunc        func(ctx context.Context, id uint64) (*repository.Removed, error)
}

func (m *userRepoMock) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	if m.GetUserByIdFunc == nil {
		panic("userRepoMock.GetUserByIdFunc is nil")
	}
	return m.GetUserByIdFunc(ctx, id)
}

func (m *userRepoMock) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.GetUserByUsernameFunc == nil {
		panic("userRepoMock.GetUserByUsernameFunc is nil")
	}
	return m.GetUserByUsernameFunc(ctx, username)
}

func (m *userRepoMock) CreateUser(ctx context.Context, user *model.User) error {
	if m.CreateUserFunc == nil {
		panic("userRepoMock.CreateUserFunc is nil")
	}
	return m.CreateUserFunc(ctx, user)
}

func (m *userRepoMock) UpdateUser(ctx context.Context, id uint64, fields map[string]any) error {
	if m.UpdateUserFunc == nil {
		panic("userRepoMock.UpdateUserFunc is nil")
	}
	return m.UpdateUserFunc(ctx, id, fields)
}

func (m *userRepoMock) DeleteUser(ctx context.Context, id uint64) (*repository.Removed, error) {
	if m.DeleteUserFunc == nil {
		panic("userRepoMock.DeleteUserFunc is nil")
	}
	return m.DeleteUserFunc(ctx, id)
}

var _ repository.ContentRepo = &contentRepoMock{}

type contentRepoMock struct {
	GetContentByIdFunc   func(ctx context.Context, id uint64) (*model.Content, error)
	GetContentBySlugFunc func(ctx context.Context, slug string) (*model.Content, error)
	CreateContentFunc    func(ctx context.Context, content *model.Content) error
	UpdateContentFunc    func(ctx context.Context, id uint64, fields map[string]any) error
	DeleteContentFunc    func(ctx context.Context, id uint64) (*repository.Removed, error)
}

func (m *contentRepoMock) GetContentById(ctx context.Context, id uint64) (*model.Content, error) {
	if m.GetContentByIdFunc == nil {
		panic("contentRepoMock.GetContentByIdFunc is nil")
	}
	return m.GetContentByIdFunc(ctx, id)
}

func (m *contentRepoMock) GetContentBySlug(ctx context.Context, slug string) (*model.Content, error) {
	if m.GetContentBySlugFunc == nil {
		panic("contentRepoMock.GetContentBySlugFunc is nil")
	}
	return m.GetContentBySlugFunc(ctx, slug)
}

func (m *contentRepoMock) CreateContent(ctx context.Context, content *model.Content) error {
	if m.CreateContentFunc == nil {
		panic("contentRepoMock.CreateContentFunc is nil")
	}
	return m.CreateContentFunc(ctx, content)
}

func (m *contentRepoMock) UpdateContent(ctx context.Context, id uint64, fields map[string]any) error {
	if m.UpdateContentFunc == nil {
		panic("contentRepoMock.UpdateContentFunc is nil")
	}
	return m.UpdateContentFunc(ctx, id, fields)
}

func (m *contentRepoMock) DeleteContent(ctx context.Context, id uint64) (*repository.Removed, error) {
	if m.DeleteContentFunc == nil {
		panic("contentRepoMock.DeleteContentFunc is nil")
	}
	return m.DeleteContentFunc(ctx, id)
}

// contentsByID 以内存 map 实现按主键查询
func contentsByID(contents ...*model.Content) func(context.Context, uint64) (*model.Content, error) {
	return func(_ context.Context, id uint64) (*model.Content, error) {
		for _, c := range contents {
			if c.ID == id {
				return c, nil
			}
		}
		return nil, nil
	}
}

var _ repository.SEODataRepo = &seoRepoMock{}

type seoRepoMock struct {
	GetSEODataByIdFunc        func(ctx context.Context, id uint64) (*model.SEOData, error)
	GetSEODataByContentIdFunc func(ctx context.Context, contentID uint64) (*model.SEOData, error)
	CreateSEODataFunc         func(ctx context.Context, seo *model.SEOData) error
	UpdateSEODataFunc         func(ctx context.Context, id uint64, fields map[string]any) error
	DeleteSEODataFunc         func(ctx context.Context, id uint64) error
}

func (m *seoRepoMock) GetSEODataById(ctx context.Context, id uint64) (*model.SEOData, error) {
	if m.GetSEODataByIdFunc == nil {
		panic("seoRepoMock.GetSEODataByIdFunc is nil")
	}
	return m.GetSEODataByIdFunc(ctx, id)
}

func (m *seoRepoMock) GetSEODataByContentId(ctx context.Context, contentID uint64) (*model.SEOData, error) {
	if m.GetSEODataByContentIdFunc == nil {
		panic("seoRepoMock.GetSEODataByContentIdFunc is nil")
	}
	return m.GetSEODataByContentIdFunc(ctx, contentID)
}

func (m *seoRepoMock) CreateSEOData(ctx context.Context, seo *model.SEOData) error {
	if m.CreateSEODataFunc == nil {
		panic("seoRepoMock.CreateSEODataFunc is nil")
	}
	return m.CreateSEODataFunc(ctx, seo)
}

func (m *seoRepoMock) UpdateSEOData(ctx context.Context, id uint64, fields map[string]any) error {
	if m.UpdateSEODataFunc == nil {
		panic("seoRepoMock.UpdateSEODataFunc is nil")
	}
	return m.UpdateSEODataFunc(ctx, id, fields)
}

func (m *seoRepoMock) DeleteSEOData(ctx context.Context, id uint64) error {
	if m.DeleteSEODataFunc == nil {
		panic("seoRepoMock.DeleteSEODataFunc is nil")
	}
	return m.DeleteSEODataFunc(ctx, id)
}

var _ repository.AnalyticsRepo = &analyticsRepoMock{}

type analyticsRepoMock struct {
	GetAnalyticsByIdFunc  func(ctx context.Context, id uint64) (*model.ContentAnalytics, error)
	CreateAnalyticsFunc   func(ctx context.Context, analytics *model.ContentAnalytics) error
	UpdateAnalyticsFunc   func(ctx context.Context, id uint64, fields map[string]any) error
	DeleteAnalyticsFunc   func(ctx context.Context, id uint64) error
	IncrementCountersFunc func(ctx context.Context, contentID uint64, views, likes, shares uint64) error
}

func (m *analyticsRepoMock) GetAnalyticsById(ctx context.Context, id uint64) (*model.ContentAnalytics, error) {
	if m.GetAnalyticsByIdFunc == nil {
		panic("analyticsRepoMock.GetAnalyticsByIdFunc is nil")
	}
	return m.GetAnalyticsByIdFunc(ctx, id)
}

func (m *analyticsRepoMock) CreateAnalytics(ctx context.Context, analytics *model.ContentAnalytics) error {
	if m.CreateAnalyticsFunc == nil {
		panic("analyticsRepoMock.CreateAnalyticsFunc is nil")
	}
	return m.CreateAnalyticsFunc(ctx, analytics)
}

func (m *analyticsRepoMock) UpdateAnalytics(ctx context.Context, id uint64, fields map[string]any) error {
	if m.UpdateAnalyticsFunc == nil {
		panic("analyticsRepoMock.UpdateAnalyticsFunc is nil")
	}
	return m.UpdateAnalyticsFunc(ctx, id, fields)
}

func (m *analyticsRepoMock) DeleteAnalytics(ctx context.Context, id uint64) error {
	if m.DeleteAnalyticsFunc == nil {
		panic("analyticsRepoMock.DeleteAnalyticsFunc is nil")
	}
	return m.DeleteAnalyticsFunc(ctx, id)
}

func (m *analyticsRepoMock) IncrementCounters(ctx context.Context, contentID uint64, views, likes, shares uint64) error {
	if m.IncrementCountersFunc == nil {
		panic("analyticsRepoMock.IncrementCountersFunc is nil")
	}
	return m.IncrementCountersFunc(ctx, contentID, views, likes, shares)
}

var _ repository.MediaFileRepo = &mediaRepoMock{}

type mediaRepoMock struct {
	GetMediaFileByIdFunc func(ctx context.Context, id uint64) (*model.MediaFile, error)
	CreateMediaFileFunc  func(ctx context.Context, media *model.MediaFile) error
	UpdateMediaFileFunc  func(ctx context.Context, id uint64, fields map[string]any) error
	DeleteMediaFileFunc  func(ctx context.Context, id uint64) error

	CountMediaFilesByFileFunc func(ctx context.Context, file string) (int64, error)
}

func (m *mediaRepoMock) GetMediaFileById(ctx context.Context, id uint64) (*model.MediaFile, error) {
	if m.GetMediaFileByIdFunc == nil {
		panic("mediaRepoMock.GetMediaFileByIdFunc is nil")
	}
	return m.GetMediaFileByIdFunc(ctx, id)
}

func (m *mediaRepoMock) CreateMediaFile(ctx context.Context, media *model.MediaFile) error {
	if m.CreateMediaFileFunc == nil {
		panic("mediaRepoMock.CreateMediaFileFunc is nil")
	}
	return m.CreateMediaFileFunc(ctx, media)
}

func (m *mediaRepoMock) UpdateMediaFile(ctx context.Context, id uint64, fields map[string]any) error {
	if m.UpdateMediaFileFunc == nil {
		panic("mediaRepoMock.UpdateMediaFileFunc is nil")
	}
	return m.UpdateMediaFileFunc(ctx, id, fields)
}

func (m *mediaRepoMock) DeleteMediaFile(ctx context.Context, id uint64) error {
	if m.DeleteMediaFileFunc == nil {
		panic("mediaRepoMock.DeleteMediaFileFunc is nil")
	}
	return m.DeleteMediaFileFunc(ctx, id)
}

func (m *mediaRepoMock) CountMediaFilesByFile(ctx context.Context, file string) (int64, error) {
	if m.CountMediaFilesByFileFunc == nil {
		panic("mediaRepoMock.CountMediaFilesByFileFunc is nil")
	}
	return m.CountMediaFilesByFileFunc(ctx, file)
}

var _ repository.AdminRepo = &adminRepoMock{}

type adminRepoMock struct {
	ListFunc func(ctx context.Context, m *admin.ModelAdmin, q *admin.Query) ([]admin.Row, int64, error)
}

func (m *adminRepoMock) List(ctx context.Context, ma *admin.ModelAdmin, q *admin.Query) ([]admin.Row, int64, error) {
	if m.ListFunc == nil {
		panic("adminRepoMock.ListFunc is nil")
	}
	return m.ListFunc(ctx, ma, q)
}

var _ es.ContentRepo = &contentESRepoMock{}

type contentESRepoMock struct {
	SearchPublishedFunc func(ctx context.Context, queryText string, from, size int) ([]*es.ContentES, int64, error)
}

func (m *contentESRepoMock) SearchPublished(ctx context.Context, queryText string, from, size int) ([]*es.ContentES, int64, error) {
	if m.SearchPublishedFunc == nil {
		panic("contentESRepoMock.SearchPublishedFunc is nil")
	}
	return m.SearchPublishedFunc(ctx, queryText, from, size)
}

func (m *contentESRepoMock) IndexContent(context.Context, *es.ContentES, int64) error {
	panic("contentESRepoMock.IndexContent is not expected")
}

func (m *contentESRepoMock) DeleteContent(context.Context, uint64) error {
	panic("contentESRepoMock.DeleteContent is not expected")
}

var _ mongo.AdminLogRepo = &adminLogRepoMock{}

type adminLogRepoMock struct {
	created     []*mongo.AdminLogModel
	CreateErr   error
	GetListFunc func(ctx context.Context, entity string, limit, offset int64) ([]*mongo.AdminLogModel, error)
}

func (m *adminLogRepoMock) CreateLog(_ context.Context, entry *mongo.AdminLogModel) error {
	m.created = append(m.created, entry)
	return m.CreateErr
}

func (m *adminLogRepoMock) GetLogList(ctx context.Context, entity string, limit, offset int64) ([]*mongo.AdminLogModel, error) {
	if m.GetListFunc == nil {
		panic("adminLogRepoMock.GetListFunc is nil")
	}
	return m.GetListFunc(ctx, entity, limit, offset)
}

// 基础设施桩：记录调用以便断言

var testHasher = security.NewPasswordHasher(bcrypt.MinCost)

type cacheStub struct {
	entries     map[string]*model.Content
	versions    map[string]int64
	invalidated []string
	GetErr      error
}

func newCacheStub() *cacheStub {
	return &cacheStub{entries: map[string]*model.Content{}, versions: map[string]int64{}}
}

func (c *cacheStub) Get(_ context.Context, slug string) (*model.Content, error) {
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	if cached, ok := c.entries[slug]; ok {
		out := *cached
		return &out, nil
	}
	return nil, nil
}

func (c *cacheStub) Version(_ context.Context, slug string) (int64, error) {
	return c.versions[slug], nil
}

func (c *cacheStub) Set(_ context.Context, content *model.Content, version int64) error {
	if c.versions[content.Slug] != version {
		return nil
	}
	cached := *content
	cached.Author = nil
	c.entries[content.Slug] = &cached
	return nil
}

func (c *cacheStub) Invalidate(_ context.Context, slugs ...string) error {
	c.invalidated = append(c.invalidated, slugs...)
	for _, slug := range slugs {
		c.versions[slug]++
		delete(c.entries, slug)
	}
	return nil
}

type queueStub struct {
	keys []string
}

func (q *queueStub) Push(_ context.Context, keys ...string) error {
	q.keys = append(q.keys, keys...)
	return nil
}

func (q *queueStub) Pop(_ context.Context, count int) ([]string, error) {
	if count > len(q.keys) {
		count = len(q.keys)
	}
	out := q.keys[:count]
	q.keys = append([]string(nil), q.keys[count:]...)
	return out, nil
}

type storageStub struct {
	uploaded  map[string]string
	deleted   []string
	UploadErr error
	DeleteErr func(key string) error
}

func newStorageStub() *storageStub {
	return &storageStub{uploaded: map[string]string{}}
}

func (s *storageStub) Upload(_ context.Context, objectName string, reader io.Reader, _ int64, contentType string) (string, error) {
	if s.UploadErr != nil {
		return "", s.UploadErr
	}
	if _, err := io.ReadAll(reader); err != nil {
		return "", err
	}
	s.uploaded[objectName] = contentType
	return objectName, nil
}

func (s *storageStub) Delete(_ context.Context, objectName string) error {
	if s.DeleteErr != nil {
		if err := s.DeleteErr(objectName); err != nil {
			return err
		}
	}
	s.deleted = append(s.deleted, objectName)
	return nil
}

func (s *storageStub) PublicURL(objectName string) string {
	return "http://cdn.test/parchment/" + objectName
}

type hitBufferStub struct {
	incrs    []string
	counts   map[uint64]redis.HitCounts
	drainErr error
	restored map[uint64]redis.HitCounts
}

func (b *hitBufferStub) Incr(_ context.Context, _ uint64, field string, _ int64) error {
	b.incrs = append(b.incrs, field)
	return nil
}

func (b *hitBufferStub) Drain(context.Context) (map[uint64]redis.HitCounts, error) {
	return b.counts, b.drainErr
}

func (b *hitBufferStub) Restore(_ context.Context, contentID uint64, c redis.HitCounts) error {
	if b.restored == nil {
		b.restored = map[uint64]redis.HitCounts{}
	}
	b.restored[contentID] = c
	return nil
}

type metricsStub struct {
	observed []model.CacheStatus
	flushed  uint64
}

func (m *metricsStub) ObservePerformance(_ float64, cacheStatus model.CacheStatus) {
	m.observed = append(m.observed, cacheStatus)
}

func (m *metricsStub) AddFlushedHits(views, likes, shares uint64) {
	m.flushed += views + likes + shares
}

var _ repository.ApprovalRepo = &approvalRepoMock{}

type approvalRepoMock struct {
	GetApprovalByIdFunc func(ctx context.Context, id uint64) (*model.ContentApproval, error)
	CreateApprovalFunc  func(ctx context.Context, approval *model.ContentApproval) error
	UpdateApprovalFunc  func(ctx context.Context, id uint64, fields map[string]any) error
	DeleteApprovalFunc  func(ctx context.Context, id uint64) error
}

func (m *approvalRepoMock) GetApprovalById(ctx context.Context, id uint64) (*model.ContentApproval, error) {
	if m.GetApprovalByIdFunc == nil {
		panic("approvalRepoMock.GetApprovalByIdFunc is nil")
	}
	return m.GetApprovalByIdFunc(ctx, id)
}

func (m *approvalRepoMock) CreateApproval(ctx context.Context, approval *model.ContentApproval) error {
	if m.CreateApprovalFunc == nil {
		panic("approvalRepoMock.CreateApprovalFunc is nil")
	}
	return m.CreateApprovalFunc(ctx, approval)
}

func (m *approvalRepoMock) UpdateApproval(ctx context.Context, id uint64, fields map[string]any) error {
	if m.UpdateApprovalFunc == nil {
		panic("approvalRepoMock.UpdateApprovalFunc is nil")
	}
	return m.UpdateApprovalFunc(ctx, id, fields)
}

func (m *approvalRepoMock) DeleteApproval(ctx context.Context, id uint64) error {
	if m.DeleteApprovalFunc == nil {
		panic("approvalRepoMock.DeleteApprovalFunc is nil")
	}
	return m.DeleteApprovalFunc(ctx, id)
}

var _ repository.TranslationRepo = &translationRepoMock{}

type translationRepoMock struct {
	GetTranslationByIdFunc         func(ctx context.Context, id uint64) (*model.ContentTranslation, error)
	GetTranslationsByContentIdFunc func(ctx context.Context, contentID uint64) ([]*model.ContentTranslation, error)
	CreateTranslationFunc          func(ctx context.Context, translation *model.ContentTranslation) error
	UpdateTranslationFunc          func(ctx context.Context, id uint64, fields map[string]any) error
	DeleteTranslationFunc          func(ctx context.Context, id uint64) error
}

func (m *translationRepoMock) GetTranslationById(ctx context.Context, id uint64) (*model.ContentTranslation, error) {
	if m.GetTranslationByIdFunc == nil {
		panic("translationRepoMock.GetTranslationByIdFunc is nil")
	}
	return m.GetTranslationByIdFunc(ctx, id)
}

func (m *translationRepoMock) GetTranslationsByContentId(ctx context.Context, contentID uint64) ([]*model.ContentTranslation, error) {
	if m.GetTranslationsByContentIdFunc == nil {
		panic("translationRepoMock.GetTranslationsByContentIdFunc is nil")
	}
	return m.GetTranslationsByContentIdFunc(ctx, contentID)
}

func (m *translationRepoMock) CreateTranslation(ctx context.Context, translation *model.ContentTranslation) error {
	if m.CreateTranslationFunc == nil {
		panic("translationRepoMock.CreateTranslationFunc is nil")
	}
	return m.CreateTranslationFunc(ctx, translation)
}

func (m *translationRepoMock) UpdateTranslation(ctx context.Context, id uint64, fields map[string]any) error {
	if m.UpdateTranslationFunc == nil {
		panic("translationRepoMock.UpdateTranslationFunc is nil")
	}
	return m.UpdateTranslationFunc(ctx, id, fields)
}

func (m *translationRepoMock) DeleteTranslation(ctx context.Context, id uint64) error {
	if m.DeleteTranslationFunc == nil {
		panic("translationRepoMock.DeleteTranslationFunc is nil")
	}
	return m.DeleteTranslationFunc(ctx, id)
}

var _ repository.IntegrationRepo = &integrationRepoMock{}

type integrationRepoMock struct {
	GetIntegrationByIdFunc func(ctx context.Context, id uint64) (*model.Integration, error)
	CreateIntegrationFunc  func(ctx context.Context, integration *model.Integration) error
	UpdateIntegrationFunc  func(ctx context.Context, id uint64, fields map[string]any) error
	DeleteIntegrationFunc  func(ctx context.Context, id uint64) error
}

func (m *integrationRepoMock) GetIntegrationById(ctx context.Context, id uint64) (*model.Integration, error) {
	if m.GetIntegrationByIdFunc == nil {
		panic("integrationRepoMock.GetIntegrationByIdFunc is nil")
	}
	return m.GetIntegrationByIdFunc(ctx, id)
}

func (m *integrationRepoMock) CreateIntegration(ctx context.Context, integration *model.Integration) error {
	if m.CreateIntegrationFunc == nil {
		panic("integrationRepoMock.CreateIntegrationFunc is nil")
	}
	return m.CreateIntegrationFunc(ctx, integration)
}

func (m *integrationRepoMock) UpdateIntegration(ctx context.Context, id uint64, fields map[string]any) error {
	if m.UpdateIntegrationFunc == nil {
		panic("integrationRepoMock.UpdateIntegrationFunc is nil")
	}
	return m.UpdateIntegrationFunc(ctx, id, fields)
}

func (m *integrationRepoMock) DeleteIntegration(ctx context.Context, id uint64) error {
	if m.DeleteIntegrationFunc == nil {
		panic("integrationRepoMock.DeleteIntegrationFunc is nil")
	}
	return m.DeleteIntegrationFunc(ctx, id)
}

var _ repository.SecurityLogRepo = &securityLogRepoMock{}

type securityLogRepoMock struct {
	GetSecurityLogByIdFunc func(ctx context.Context, id uint64) (*model.SecurityLog, error)
	CreateSecurityLogFunc  func(ctx context.Context, log *model.SecurityLog) error
	UpdateSecurityLogFunc  func(ctx context.Context, id uint64, fields map[string]any) error
	DeleteSecurityLogFunc  func(ctx context.Context, id uint64) error
}

func (m *securityLogRepoMock) GetSecurityLogById(ctx context.Context, id uint64) (*model.SecurityLog, error) {
	if m.GetSecurityLogByIdFunc == nil {
		panic("securityLogRepoMock.GetSecurityLogByIdFunc is nil")
	}
	return m.GetSecurityLogByIdFunc(ctx, id)
}

func (m *securityLogRepoMock) CreateSecurityLog(ctx context.Context, log *model.SecurityLog) error {
	if m.CreateSecurityLogFunc == nil {
		panic("securityLogRepoMock.CreateSecurityLogFunc is nil")
	}
	return m.CreateSecurityLogFunc(ctx, log)
}

func (m *securityLogRepoMock) UpdateSecurityLog(ctx context.Context, id uint64, fields map[string]any) error {
	if m.UpdateSecurityLogFunc == nil {
		panic("securityLogRepoMock.UpdateSecurityLogFunc is nil")
	}
	return m.UpdateSecurityLogFunc(ctx, id, fields)
}

func (m *securityLogRepoMock) DeleteSecurityLog(ctx context.Context, id uint64) error {
	if m.DeleteSecurityLogFunc == nil {
		panic("securityLogRepoMock.DeleteSecurityLogFunc is nil")
	}
	return m.DeleteSecurityLogFunc(ctx, id)
}

var _ repository.PerformanceRepo = &performanceRepoMock{}

type performanceRepoMock struct {
	GetMetricsByIdFunc func(ctx context.Context, id uint64) (*model.PerformanceMetrics, error)
	CreateMetricsFunc  func(ctx context.Context, metrics *model.PerformanceMetrics) error
	UpdateMetricsFunc  func(ctx context.Context, id uint64, fields map[string]any) error
	DeleteMetricsFunc  func(ctx context.Context, id uint64) error
}

func (m *performanceRepoMock) GetMetricsById(ctx context.Context, id uint64) (*model.PerformanceMetrics, error) {
	if m.GetMetricsByIdFunc == nil {
		panic("performanceRepoMock.GetMetricsByIdFunc is nil")
	}
	return m.GetMetricsByIdFunc(ctx, id)
}

func (m *performanceRepoMock) CreateMetrics(ctx context.Context, metrics *model.PerformanceMetrics) error {
	if m.CreateMetricsFunc == nil {
		panic("performanceRepoMock.CreateMetricsFunc is nil")
	}
	return m.CreateMetricsFunc(ctx, metrics)
}

func (m *performanceRepoMock) UpdateMetrics(ctx context.Context, id uint64, fields map[string]any) error {
	if m.UpdateMetricsFunc == nil {
		panic("performanceRepoMock.UpdateMetricsFunc is nil")
	}
	return m.UpdateMetricsFunc(ctx, id, fields)
}

func (m *performanceRepoMock) DeleteMetrics(ctx context.Context, id uint64) error {
	if m.DeleteMetricsFunc == nil {
		panic("performanceRepoMock.DeleteMetricsFunc is nil")
	}
	return m.DeleteMetricsFunc(ctx, id)
}
