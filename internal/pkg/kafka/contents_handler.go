package kafka

import (
	"Parchment/internal/model"
	"Parchment/internal/pkg/es"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// ContentsHandler 消费 contents 表的 binlog，同步 ES 检索索引
type ContentsHandler struct {
	contentESRepo es.ContentRepo
}

func NewContentsHandler(contentESRepo es.ContentRepo) *ContentsHandler {
	return &ContentsHandler{contentESRepo: contentESRepo}
}

func (s *ContentsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("contents consumer setup")
	return nil
}

func (s *ContentsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("contents consumer cleanup")
	return nil
}

func (s *ContentsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-contents process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ContentsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, model.Content{}.TableName())
	if err != nil {
		return err
	}

	for _, row := range canalMsg.Data {
		id := StrToUint64(row["id"])
		if id == 0 {
			continue
		}

		switch canalMsg.Type {
		case DELETE:
			err = s.contentESRepo.DeleteContent(ctx, id)
		case INSERT, UPDATE:
			err = s.contentESRepo.IndexContent(ctx, toContentES(row), canalMsg.TS)
		default:
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "sync content %d (%s)", id, canalMsg.Type)
		}
	}
	return nil
}

func toContentES(row map[string]interface{}) *es.ContentES {
	return &es.ContentES{
		ID:          StrToUint64(row["id"]),
		Title:       StrToString(row["title"]),
		Slug:        StrToString(row["slug"]),
		Body:        StrToString(row["body"]),
		AuthorID:    StrToUint64(row["author_id"]),
		Status:      StrToString(row["status"]),
		CreatedAt:   StrToDateTime(row["created_at"]),
		UpdatedAt:   StrToDateTime(row["updated_at"]),
		PublishedAt: StrToDateTimePtr(row["published_at"]),
	}
}
