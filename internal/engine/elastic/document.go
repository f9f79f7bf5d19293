package elastic

import (
	"bytes"
	"context"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/kailas-cloud/esmcp/internal/engine"
)

const refreshNow = "true"

// Bulk submits an NDJSON body and refreshes affected shards before returning.
func (s *Store) Bulk(ctx context.Context, body []byte) (*engine.BulkResponse, error) {
	bulk := s.client.Bulk
	res, err := bulk(bytes.NewReader(body), bulk.WithContext(ctx), bulk.WithRefresh(refreshNow))
	var out engine.BulkResponse
	if err = decode(engine.OpBulk, res, err, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IndexDocument stores body under id, or under an engine-assigned id when id is empty.
func (s *Store) IndexDocument(ctx context.Context, index, id string, body []byte) (*engine.DocumentResult, error) {
	idx := s.client.Index
	opts := []func(*esapi.IndexRequest){idx.WithContext(ctx), idx.WithRefresh(refreshNow)}
	if id != "" {
		opts = append(opts, idx.WithDocumentID(id))
	}
	res, err := idx(index, bytes.NewReader(body), opts...)
	return documentResult(engine.OpIndexDocument, res, err)
}

// UpdateDocument applies an update body ({"doc": ...}) to id.
func (s *Store) UpdateDocument(ctx context.Context, index, id string, body []byte) (*engine.DocumentResult, error) {
	upd := s.client.Update
	res, err := upd(index, id, bytes.NewReader(body), upd.WithContext(ctx), upd.WithRefresh(refreshNow))
	return documentResult(engine.OpUpdateDocument, res, err)
}

// DeleteDocument removes id from index.
func (s *Store) DeleteDocument(ctx context.Context, index, id string) (*engine.DocumentResult, error) {
	del := s.client.Delete
	res, err := del(index, id, del.WithContext(ctx), del.WithRefresh(refreshNow))
	return documentResult(engine.OpDeleteDocument, res, err)
}

func documentResult(op string, res *esapi.Response, callErr error) (*engine.DocumentResult, error) {
	var out engine.DocumentResult
	if err := decode(op, res, callErr, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
