package handler

import (
	"Parchment/internal/pkg/response"
	"Parchment/internal/pkg/util"
	"Parchment/internal/service"
	"context"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
)

// 变更日志中的实体名，与后台注册名一致
const (
	entityUsers              = "users"
	entityContents           = "contents"
	entityApprovals          = "approvals"
	entitySEO                = "seo"
	entityMedia              = "media"
	entityTranslations       = "translations"
	entityAnalytics          = "analytics"
	entityIntegrations       = "integrations"
	entitySecurityLogs       = "security-logs"
	entityPerformanceMetrics = "performance-metrics"
)

// loggable 可写入变更日志的对象
type loggable interface {
	String() string
	PrimaryKey() uint64
}

// bindJSON 解析并校验请求体，失败时已写出响应
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.Fail(c, response.BadRequest, "Json错误")
		return false
	}
	if err := util.ValidateDTO(obj); err != nil {
		response.Error(c, err)
		return false
	}
	return true
}

// pathID 读取路径参数 id，非法时已写出响应
func pathID(c *gin.Context) (uint64, bool) {
	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.BadRequest, "非法的 id")
		return 0, false
	}
	return id, true
}

// changedFields 返回更新请求中非空指针字段的 json 名
func changedFields(updateDTO any) []string {
	v := reflect.Indirect(reflect.ValueOf(updateDTO))
	if v.Kind() != reflect.Struct {
		return nil
	}
	t := v.Type()
	var changed []string
	for i := 0; i < t.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() != reflect.Pointer || f.IsNil() {
			continue
		}
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			name = t.Field(i).Name
		}
		changed = append(changed, name)
	}
	return changed
}

func createEntity[D any, T loggable](c *gin.Context, changeLog service.ChangeLogService, entity string, create func(context.Context, *D) (T, error)) {
	var req D
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	obj, err := create(ctx, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	changeLog.RecordAddition(ctx, entity, obj.PrimaryKey(), obj.String())
	response.Success(c, obj)
}

func getEntity[T any](c *gin.Context, get func(context.Context, uint64) (T, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	obj, err := get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, obj)
}

func updateEntity[D any, T loggable](c *gin.Context, changeLog service.ChangeLogService, entity string, update func(context.Context, uint64, *D) (T, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req D
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	obj, err := update(ctx, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	changeLog.RecordChange(ctx, entity, id, obj.String(), changedFields(&req))
	response.Success(c, obj)
}

func deleteEntity[T loggable](c *gin.Context, changeLog service.ChangeLogService, entity string, del func(context.Context, uint64) (T, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	obj, err := del(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	changeLog.RecordDeletion(ctx, entity, id, obj.String())
	response.Success(c, nil)
}
