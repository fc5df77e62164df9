package es

import (
	"Parchment/internal/api/config"
	"Parchment/internal/pkg/logger"
	"context"
	log "log/slog"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

var Client *elasticsearch.TypedClient

var ContentIndex string

const (
	NotFoundCode = 404
	ConflictCode = 409
)

// InitClient 初始化 Elasticsearch 客户端并确保内容索引存在
func InitClient(elasticCfg config.ElasticConfig) error {
	ContentIndex = elasticCfg.Indices.ContentIndex

	cfg := elasticsearch.Config{
		Addresses: []string{elasticCfg.Address},
		Username:  elasticCfg.Username,
		Password:  elasticCfg.Password,
		Transport: &logger.ESTransport{
			Transport: http.DefaultTransport,
		},
	}

	var err error
	Client, err = elasticsearch.NewTypedClient(cfg)
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}

	ctx := context.Background()
	info, err := Client.Info().Do(ctx)
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}
	log.Info("Connected to Elasticsearch", "version", info.Version.Int)

	return ensureContentIndex(ctx)
}

func ensureContentIndex(ctx context.Context) error {
	exists, err := Client.Indices.Exists(ContentIndex).Do(ctx)
	if err != nil || exists {
		return err
	}

	_, err = Client.Indices.Create(ContentIndex).
		Mappings(&types.TypeMapping{
			Properties: map[string]types.Property{
				"id":           types.NewLongNumberProperty(),
				"title":        types.NewTextProperty(),
				"slug":         types.NewKeywordProperty(),
				"body":         types.NewTextProperty(),
				"author_id":    types.NewLongNumberProperty(),
				"status":       types.NewKeywordProperty(),
				"created_at":   types.NewDateProperty(),
				"updated_at":   types.NewDateProperty(),
				"published_at": types.NewDateProperty(),
			},
		}).
		Do(ctx)
	if err != nil {
		return err
	}
	log.Info("elasticsearch index created", "index", ContentIndex)
	return nil
}
