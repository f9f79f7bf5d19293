package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/esmcp/internal/domain/envelope"
	"github.com/kailas-cloud/esmcp/internal/domain/query"
	reindexuc "github.com/kailas-cloud/esmcp/internal/usecase/reindex"
	searchuc "github.com/kailas-cloud/esmcp/internal/usecase/search"
	templateuc "github.com/kailas-cloud/esmcp/internal/usecase/template"
)

// Tool names.
const (
	ToolListCollections  = "list_collections"
	ToolGetMapping       = "get_mapping"
	ToolSearch           = "search"
	ToolCount            = "count"
	ToolMultiSearch      = "multi_search"
	ToolClusterHealth    = "cluster_health"
	ToolClusterStats     = "cluster_stats"
	ToolNodesInfo        = "nodes_info"
	ToolCreateCollection = "create_collection"
	ToolUpsertMapping    = "upsert_mapping"
	ToolBulkWrite        = "bulk_write"
	ToolReindex          = "reindex"
	ToolCreateTemplate   = "create_template"
	ToolGetTemplate      = "get_template"
	ToolDeleteTemplate   = "delete_template"
	ToolIndexDocument    = "index_document"
	ToolUpdateDocument   = "update_document"
	ToolDeleteDocument   = "delete_document"
)

func inputSchema(properties map[string]any, required ...string) map[string]any {
	sc := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		sc["required"] = required
	}
	return sc
}

func prop(typ, description string) map[string]any {
	return map[string]any{"type": typ, "description": description}
}

func arrayOf(items map[string]any, description string) map[string]any {
	return map[string]any{"type": "array", "items": items, "description": description}
}

// --- argument shapes ---

type listCollectionsArgs struct {
	Pattern string `json:"pattern"`
}

type indexArgs struct {
	Index string `json:"index"`
}

type searchArgs struct {
	Index     string          `json:"index"`
	QueryBody json.RawMessage `json:"queryBody"`
}

type countArgs struct {
	Index string          `json:"index"`
	Query json.RawMessage `json:"query"`
}

type multiSearchArgs struct {
	Searches []searchArgs `json:"searches"`
}

type clusterHealthArgs struct {
	IncludeIndices bool `json:"includeIndices"`
}

type createCollectionArgs struct {
	Index    string         `json:"index"`
	Settings map[string]any `json:"settings"`
	Mappings map[string]any `json:"mappings"`
}

type upsertMappingArgs struct {
	Index   string         `json:"index"`
	Mapping map[string]any `json:"mapping"`
}

type bulkWriteArgs struct {
	Index     string            `json:"index"`
	Documents []json.RawMessage `json:"documents"`
	IDField   string            `json:"idField"`
}

type reindexArgs struct {
	SourceIndex string         `json:"sourceIndex"`
	DestIndex   string         `json:"destIndex"`
	Query       map[string]any `json:"query"`
	Script      map[string]any `json:"script"`
}

type createTemplateArgs struct {
	Name          string         `json:"name"`
	IndexPatterns []string       `json:"indexPatterns"`
	Template      map[string]any `json:"template"`
	Priority      *int           `json:"priority"`
	Version       *int           `json:"version"`
}

type templateNameArgs struct {
	Name string `json:"name"`
}

type documentArgs struct {
	Index    string          `json:"index"`
	ID       string          `json:"id"`
	Document json.RawMessage `json:"document"`
	Doc      json.RawMessage `json:"doc"`
}

// optionalQuery parses raw unless it is absent.
func optionalQuery(raw json.RawMessage) (query.Query, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return query.Query{}, nil
	}
	return query.Parse(raw)
}

func (s *Server) registerTools() {
	s.registerIndexTools()
	s.registerSearchTools()
	s.registerWriteTools()
	s.registerTemplateTools()
	s.registerClusterTools()
}

func (s *Server) registerIndexTools() {
	addTool(s, ToolListCollections,
		"List indices with health, status and document count. The pattern may be a wildcard or a regular expression.",
		inputSchema(map[string]any{
			"pattern": prop("string", "Optional wildcard or regex filter on index names; a regex must match the whole name"),
		}),
		func(ctx context.Context, a listCollectionsArgs) (envelope.Envelope, error) {
			return s.services.Collections.List(ctx, a.Pattern)
		})

	addTool(s, ToolGetMapping,
		"Get the field mapping of an index.",
		inputSchema(map[string]any{
			"index": prop("string", "Index name"),
		}, "index"),
		func(ctx context.Context, a indexArgs) (envelope.Envelope, error) {
			return s.services.Collections.GetMapping(ctx, a.Index)
		})

	addTool(s, ToolCreateCollection,
		"Create an index with optional settings and mappings.",
		inputSchema(map[string]any{
			"index":    prop("string", "Index name"),
			"settings": prop("object", "Index settings, e.g. number_of_shards"),
			"mappings": prop("object", "Field mappings, with or without a properties wrapper"),
		}, "index"),
		func(ctx context.Context, a createCollectionArgs) (envelope.Envelope, error) {
			return s.services.Collections.Create(ctx, a.Index, a.Settings, a.Mappings)
		})

	addTool(s, ToolUpsertMapping,
		"Create the index with the mapping if it does not exist, otherwise merge the mapping into it.",
		inputSchema(map[string]any{
			"index":   prop("string", "Index name"),
			"mapping": prop("object", "Field mappings, with or without a properties wrapper"),
		}, "index", "mapping"),
		func(ctx context.Context, a upsertMappingArgs) (envelope.Envelope, error) {
			return s.services.Collections.UpsertMapping(ctx, a.Index, a.Mapping)
		})
}

func (s *Server) registerSearchTools() {
	addTool(s, ToolSearch,
		"Run a query DSL search. Highlighting is added for text and vector fields.",
		inputSchema(map[string]any{
			"index":     prop("string", "Index name"),
			"queryBody": prop("object", "Query DSL body: query, size, from, sort, ..."),
		}, "index", "queryBody"),
		func(ctx context.Context, a searchArgs) (envelope.Envelope, error) {
			q, err := optionalQuery(a.QueryBody)
			if err != nil {
				return envelope.Envelope{}, err
			}
			return s.services.Search.Search(ctx, a.Index, q)
		})

	addTool(s, ToolCount,
		"Count the documents of an index, optionally matching a query.",
		inputSchema(map[string]any{
			"index": prop("string", "Index name"),
			"query": prop("object", "Optional query clause"),
		}, "index"),
		func(ctx context.Context, a countArgs) (envelope.Envelope, error) {
			q, err := optionalQuery(a.Query)
			if err != nil {
				return envelope.Envelope{}, err
			}
			return s.services.Search.Count(ctx, a.Index, q)
		})

	addTool(s, ToolMultiSearch,
		"Run several searches in one request. Results are reported in request order.",
		inputSchema(map[string]any{
			"searches": arrayOf(inputSchema(map[string]any{
				"index":     prop("string", "Index name"),
				"queryBody": prop("object", "Query DSL body"),
			}, "index", "queryBody"), "Searches to run"),
		}, "searches"),
		func(ctx context.Context, a multiSearchArgs) (envelope.Envelope, error) {
			subs := make([]searchuc.SubQuery, len(a.Searches))
			for i, sa := range a.Searches {
				q, err := optionalQuery(sa.QueryBody)
				if err != nil {
					return envelope.Envelope{}, fmt.Errorf("searches[%d]: %w", i, err)
				}
				subs[i] = searchuc.SubQuery{Index: sa.Index, Query: q}
			}
			return s.services.Search.MultiSearch(ctx, subs)
		})
}

func (s *Server) registerWriteTools() {
	addTool(s, ToolBulkWrite,
		"Index many documents in one request. Per-document failures are reported, not raised.",
		inputSchema(map[string]any{
			"index":     prop("string", "Index name"),
			"documents": arrayOf(map[string]any{"type": "object"}, "Documents to index"),
			"idField":   prop("string", "Optional document field to use as _id"),
		}, "index", "documents"),
		func(ctx context.Context, a bulkWriteArgs) (envelope.Envelope, error) {
			return s.services.Batch.Write(ctx, a.Index, a.Documents, a.IDField)
		})

	addTool(s, ToolReindex,
		"Copy documents from one index to another. Returns a task id without waiting for completion.",
		inputSchema(map[string]any{
			"sourceIndex": prop("string", "Source index"),
			"destIndex":   prop("string", "Destination index"),
			"query":       prop("object", "Optional query selecting source documents"),
			"script":      prop("object", "Optional script applied to each document"),
		}, "sourceIndex", "destIndex"),
		func(ctx context.Context, a reindexArgs) (envelope.Envelope, error) {
			return s.services.Reindex.Start(ctx, reindexuc.Request{
				Source: a.SourceIndex,
				Dest:   a.DestIndex,
				Query:  a.Query,
				Script: a.Script,
			})
		})

	addTool(s, ToolIndexDocument,
		"Index a single document. The id is generated when omitted.",
		inputSchema(map[string]any{
			"index":    prop("string", "Index name"),
			"id":       prop("string", "Optional document id"),
			"document": prop("object", "Document body"),
		}, "index", "document"),
		func(ctx context.Context, a documentArgs) (envelope.Envelope, error) {
			return s.services.Documents.Index(ctx, a.Index, a.ID, a.Document)
		})

	addTool(s, ToolUpdateDocument,
		"Merge fields into an existing document.",
		inputSchema(map[string]any{
			"index": prop("string", "Index name"),
			"id":    prop("string", "Document id"),
			"doc":   prop("object", "Fields to merge"),
		}, "index", "id", "doc"),
		func(ctx context.Context, a documentArgs) (envelope.Envelope, error) {
			return s.services.Documents.Update(ctx, a.Index, a.ID, a.Doc)
		})

	addTool(s, ToolDeleteDocument,
		"Delete a document by id.",
		inputSchema(map[string]any{
			"index": prop("string", "Index name"),
			"id":    prop("string", "Document id"),
		}, "index", "id"),
		func(ctx context.Context, a documentArgs) (envelope.Envelope, error) {
			return s.services.Documents.Delete(ctx, a.Index, a.ID)
		})
}

func (s *Server) registerTemplateTools() {
	addTool(s, ToolCreateTemplate,
		"Create or replace an index template.",
		inputSchema(map[string]any{
			"name":          prop("string", "Template name"),
			"indexPatterns": arrayOf(map[string]any{"type": "string"}, "Index name patterns the template applies to"),
			"template":      prop("object", "Template body: settings, mappings, aliases"),
			"priority":      prop("integer", "Optional priority (order on older clusters)"),
			"version":       prop("integer", "Optional template version"),
		}, "name", "indexPatterns"),
		func(ctx context.Context, a createTemplateArgs) (envelope.Envelope, error) {
			return s.services.Templates.Create(ctx, templateuc.CreateRequest{
				Name:          a.Name,
				IndexPatterns: a.IndexPatterns,
				Template:      a.Template,
				Priority:      a.Priority,
				Version:       a.Version,
			})
		})

	addTool(s, ToolGetTemplate,
		"Get an index template, or list all templates when no name is given.",
		inputSchema(map[string]any{
			"name": prop("string", "Optional template name"),
		}),
		func(ctx context.Context, a templateNameArgs) (envelope.Envelope, error) {
			return s.services.Templates.Get(ctx, a.Name)
		})

	addTool(s, ToolDeleteTemplate,
		"Delete an index template.",
		inputSchema(map[string]any{
			"name": prop("string", "Template name"),
		}, "name"),
		func(ctx context.Context, a templateNameArgs) (envelope.Envelope, error) {
			return s.services.Templates.Delete(ctx, a.Name)
		})
}

func (s *Server) registerClusterTools() {
	addTool(s, ToolClusterHealth,
		"Get cluster health, optionally with per-index detail.",
		inputSchema(map[string]any{
			"includeIndices": prop("boolean", "Include per-index health (default false)"),
		}),
		func(ctx context.Context, a clusterHealthArgs) (envelope.Envelope, error) {
			return s.services.Cluster.Health(ctx, a.IncludeIndices)
		})

	addTool(s, ToolClusterStats,
		"Get cluster-wide node, index, document and storage statistics.",
		inputSchema(map[string]any{}),
		func(ctx context.Context, _ struct{}) (envelope.Envelope, error) {
			return s.services.Cluster.Stats(ctx)
		})

	addTool(s, ToolNodesInfo,
		"Get per-node identity, version, roles and runtime.",
		inputSchema(map[string]any{}),
		func(ctx context.Context, _ struct{}) (envelope.Envelope, error) {
			return s.services.Cluster.Nodes(ctx)
		})
}
