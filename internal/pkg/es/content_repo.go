package es

import (
	"Parchment/internal/model"
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/versiontype"
	"github.com/goccy/go-json"
)

// MaxSearchDepth 检索分页的最大深度
const MaxSearchDepth = 1000

type ContentRepo interface {
	SearchPublished(ctx context.Context, queryText string, from, size int) ([]*ContentES, int64, error)
	IndexContent(ctx context.Context, content *ContentES, version int64) error
	DeleteContent(ctx context.Context, id uint64) error
}

type ContentRepoImpl struct {
	client *elasticsearch.TypedClient
	index  string
}

func NewContentRepo(client *elasticsearch.TypedClient, index string) ContentRepo {
	return &ContentRepoImpl{client: client, index: index}
}

// SearchPublished 在已发布内容的标题与正文中检索，标题权重加倍
func (s *ContentRepoImpl) SearchPublished(ctx context.Context, queryText string, from, size int) ([]*ContentES, int64, error) {
	if from >= MaxSearchDepth {
		return []*ContentES{}, 0, nil
	}

	resp, err := s.client.Search().
		Index(s.index).
		Query(PublishedQuery(queryText)).
		From(from).
		Size(size).
		Do(ctx)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if resp.Hits.Total != nil {
		total = resp.Hits.Total.Value
	}

	results := make([]*ContentES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var content ContentES
		if err = json.Unmarshal(hit.Source_, &content); err != nil {
			continue
		}
		results = append(results, &content)
	}
	return results, total, nil
}

// PublishedQuery 构造 multi_match 查询并限定 status=published
func PublishedQuery(queryText string) *types.Query {
	return &types.Query{
		Bool: &types.BoolQuery{
			Must: []types.Query{{
				MultiMatch: &types.MultiMatchQuery{
					Query:  queryText,
					Fields: []string{"title^2", "body"},
				},
			}},
			Filter: []types.Query{{
				Term: map[string]types.TermQuery{
					"status": {Value: string(model.ContentPublished)},
				},
			}},
		},
	}
}

// IndexContent 以外部版本号写入，旧版本的写入被忽略
func (s *ContentRepoImpl) IndexContent(ctx context.Context, content *ContentES, version int64) error {
	docID := strconv.FormatUint(content.ID, 10)

	_, err := s.client.Index(s.index).
		Id(docID).
		Document(content).
		Version(strconv.FormatInt(version, 10)).
		VersionType(versiontype.External).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) && e.Status == ConflictCode {
			return nil
		}
		return err
	}

	return nil
}

func (s *ContentRepoImpl) DeleteContent(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)

	_, err := s.client.Delete(s.index, docID).Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) && e.Status == NotFoundCode {
			return nil
		}
		return err
	}

	return nil
}
