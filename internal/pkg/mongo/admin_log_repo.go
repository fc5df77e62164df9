package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AdminLogRepo interface {
	CreateLog(ctx context.Context, entry *AdminLogModel) error
	GetLogList(ctx context.Context, entity string, limit, offset int64) ([]*AdminLogModel, error)
}

type adminLogRepoImpl struct {
	col *mongo.Collection
}

func NewAdminLogRepo(db *mongo.Database) AdminLogRepo {
	return &adminLogRepoImpl{
		col: db.Collection(AdminLogCollection),
	}
}

func (s *adminLogRepoImpl) CreateLog(ctx context.Context, entry *AdminLogModel) error {
	_, err := s.col.InsertOne(ctx, entry)
	return err
}

// GetLogList 按时间倒序分页，entity 为空时返回全部实体
func (s *adminLogRepoImpl) GetLogList(ctx context.Context, entity string, limit, offset int64) ([]*AdminLogModel, error) {
	filter := bson.M{}
	if entity != "" {
		filter["entity"] = entity
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "action_time", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]*AdminLogModel, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}
