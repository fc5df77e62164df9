package service

import (
	"Parchment/internal/api/dto"
	"Parchment/internal/pkg/logger"
	"Parchment/internal/pkg/mongo"
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"
)

const defaultLogLimit = 50

type actorKey struct{}

// WithActor 记录本次请求的后台操作者
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFrom(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}

type ChangeLogService interface {
	RecordAddition(ctx context.Context, entity string, objectID uint64, repr string)
	RecordChange(ctx context.Context, entity string, objectID uint64, repr string, changed []string)
	RecordDeletion(ctx context.Context, entity string, objectID uint64, repr string)
	ListLogs(ctx context.Context, query *dto.AdminLogQueryDTO) ([]*dto.AdminLogDTO, error)
}

type ChangeLogServiceImpl struct {
	adminLogRepo mongo.AdminLogRepo
	now          func() time.Time
}

func NewChangeLogService(adminLogRepo mongo.AdminLogRepo) ChangeLogService {
	return &ChangeLogServiceImpl{
		adminLogRepo: adminLogRepo,
		now:          time.Now,
	}
}

func (s *ChangeLogServiceImpl) RecordAddition(ctx context.Context, entity string, objectID uint64, repr string) {
	s.record(ctx, mongo.ActionAddition, entity, objectID, repr, "Added.")
}

func (s *ChangeLogServiceImpl) RecordChange(ctx context.Context, entity string, objectID uint64, repr string, changed []string) {
	message := "No fields changed."
	if len(changed) > 0 {
		message = fmt.Sprintf("Changed %s.", strings.Join(changed, ", "))
	}
	s.record(ctx, mongo.ActionChange, entity, objectID, repr, message)
}

func (s *ChangeLogServiceImpl) RecordDeletion(ctx context.Context, entity string, objectID uint64, repr string) {
	s.record(ctx, mongo.ActionDeletion, entity, objectID, repr, "Deleted.")
}

// record 写日志失败不影响业务结果
func (s *ChangeLogServiceImpl) record(ctx context.Context, flag, entity string, objectID uint64, repr, message string) {
	entry := &mongo.AdminLogModel{
		ActionFlag:    flag,
		Entity:        entity,
		ObjectID:      objectID,
		ObjectRepr:    repr,
		ChangeMessage: message,
		Actor:         ActorFrom(ctx),
		TraceID:       logger.TraceID(ctx),
		ActionTime:    s.now().UTC(),
	}
	if err := s.adminLogRepo.CreateLog(ctx, entry); err != nil {
		log.ErrorContext(ctx, "write admin log failed", "entity", entity, "object_id", objectID, "err", err)
	}
}

func (s *ChangeLogServiceImpl) ListLogs(ctx context.Context, query *dto.AdminLogQueryDTO) ([]*dto.AdminLogDTO, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}

	entries, err := s.adminLogRepo.GetLogList(ctx, query.Entity, limit, query.Offset)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.AdminLogDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, &dto.AdminLogDTO{
			ID:            e.ID.Hex(),
			ActionFlag:    e.ActionFlag,
			Entity:        e.Entity,
			ObjectID:      e.ObjectID,
			ObjectRepr:    e.ObjectRepr,
			ChangeMessage: e.ChangeMessage,
			Actor:         e.Actor,
			TraceID:       e.TraceID,
			ActionTime:    e.ActionTime,
		})
	}
	return out, nil
}
