package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Info is the engine self-description.
type Info struct {
	Name        string      `json:"name"`
	ClusterName string      `json:"cluster_name"`
	ClusterUUID string      `json:"cluster_uuid"`
	Version     VersionInfo `json:"version"`
}

// VersionInfo carries the engine version string, e.g. "8.13.4".
type VersionInfo struct {
	Number       string `json:"number"`
	Distribution string `json:"distribution,omitempty"`
}

// IndexSummary is one row of the index listing.
type IndexSummary struct {
	Health   string `json:"health"`
	Status   string `json:"status"`
	Index    string `json:"index"`
	DocCount string `json:"docs.count"`
}

// Total is a hit count. The engine reports it either as a bare number
// or as {"value": n, "relation": "eq|gte"}.
type Total struct {
	Value    int64  `json:"value"`
	Relation string `json:"relation,omitempty"`
}

// UnmarshalJSON accepts both total shapes.
func (t *Total) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] != '{' {
		var n int64
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("decode total: %w", err)
		}
		*t = Total{Value: n, Relation: "eq"}
		return nil
	}
	var obj struct {
		Value    int64  `json:"value"`
		Relation string `json:"relation"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("decode total: %w", err)
	}
	*t = Total{Value: obj.Value, Relation: obj.Relation}
	return nil
}

// SearchResponse is the decoded body of a search call.
type SearchResponse struct {
	Took     int64 `json:"took"`
	TimedOut bool  `json:"timed_out"`
	Hits     Hits  `json:"hits"`
}

// Hits is the hits section of a search response.
type Hits struct {
	Total    *Total   `json:"total,omitempty"`
	MaxScore *float64 `json:"max_score,omitempty"`
	Hits     []Hit    `json:"hits"`
}

// TotalValue returns the normalized total, 0 when the engine did not track totals.
func (h Hits) TotalValue() int64 {
	if h.Total == nil {
		return 0
	}
	return h.Total.Value
}

// Hit is one matched document. Source and Highlight stay raw so callers can
// render fields in engine order.
type Hit struct {
	Index     string          `json:"_index"`
	ID        string          `json:"_id"`
	Score     *float64        `json:"_score"`
	Source    json.RawMessage `json:"_source,omitempty"`
	Highlight json.RawMessage `json:"highlight,omitempty"`
}

// ErrorCause is an engine error object. Some endpoints report it as a plain string.
type ErrorCause struct {
	Type      string       `json:"type,omitempty"`
	Reason    string       `json:"reason,omitempty"`
	RootCause []ErrorCause `json:"root_cause,omitempty"`
}

// UnmarshalJSON accepts an object or a bare reason string.
func (c *ErrorCause) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode error cause: %w", err)
		}
		*c = ErrorCause{Reason: s}
		return nil
	}
	type plain ErrorCause
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("decode error cause: %w", err)
	}
	*c = ErrorCause(p)
	return nil
}

// ErrorResponse is the envelope of a failed engine call.
type ErrorResponse struct {
	Error  *ErrorCause `json:"error"`
	Status int         `json:"status"`
}

// MultiSearchResponse holds per-subquery results in submission order.
type MultiSearchResponse struct {
	Took      int64             `json:"took"`
	Responses []MultiSearchItem `json:"responses"`
}

// MultiSearchItem is either a hit set or an engine error.
type MultiSearchItem struct {
	Hits   Hits        `json:"hits"`
	Error  *ErrorCause `json:"error,omitempty"`
	Status int         `json:"status,omitempty"`
}

// BulkResponse is the decoded body of a bulk call.
type BulkResponse struct {
	Took   int64      `json:"took"`
	Errors bool       `json:"errors"`
	Items  []BulkItem `json:"items"`
}

// BulkItem maps the action name ("index", "create", ...) to its outcome.
type BulkItem map[string]BulkItemResult

// Result returns the outcome of the item's single action.
func (i BulkItem) Result() BulkItemResult {
	for _, action := range []string{"index", "create", "update", "delete"} {
		if r, ok := i[action]; ok {
			return r
		}
	}
	for _, r := range i {
		return r
	}
	return BulkItemResult{}
}

// BulkItemResult is the per-document outcome of a bulk action.
type BulkItemResult struct {
	Index   string      `json:"_index"`
	ID      string      `json:"_id"`
	Version int64       `json:"_version,omitempty"`
	Result  string      `json:"result,omitempty"`
	Status  int         `json:"status"`
	Error   *ErrorCause `json:"error,omitempty"`
}

// DocumentResult is the outcome of a single-document write.
type DocumentResult struct {
	Index   string `json:"_index"`
	ID      string `json:"_id"`
	Version int64  `json:"_version"`
	Result  string `json:"result"`
}

// ClusterHealth is the cluster health summary.
type ClusterHealth struct {
	ClusterName         string                 `json:"cluster_name"`
	Status              string                 `json:"status"`
	NumberOfNodes       int                    `json:"number_of_nodes"`
	NumberOfDataNodes   int                    `json:"number_of_data_nodes"`
	ActiveShards        int                    `json:"active_shards"`
	ActivePrimaryShards int                    `json:"active_primary_shards"`
	RelocatingShards    int                    `json:"relocating_shards"`
	InitializingShards  int                    `json:"initializing_shards"`
	UnassignedShards    int                    `json:"unassigned_shards"`
	PendingTasks        int                    `json:"number_of_pending_tasks"`
	Indices             map[string]IndexHealth `json:"indices,omitempty"`
}

// IndexHealth is the health of one index.
type IndexHealth struct {
	Status              string `json:"status"`
	NumberOfShards      int    `json:"number_of_shards"`
	NumberOfReplicas    int    `json:"number_of_replicas"`
	ActiveShards        int    `json:"active_shards"`
	ActivePrimaryShards int    `json:"active_primary_shards"`
	UnassignedShards    int    `json:"unassigned_shards"`
}

// ClusterStats is the subset of cluster statistics that is reported.
type ClusterStats struct {
	ClusterName string `json:"cluster_name"`
	ClusterUUID string `json:"cluster_uuid"`
	Status      string `json:"status"`
	Timestamp   int64  `json:"timestamp"`
	Nodes       struct {
		Count struct {
			Total int `json:"total"`
		} `json:"count"`
	} `json:"nodes"`
	Indices struct {
		Count  int `json:"count"`
		Shards struct {
			Total int `json:"total"`
		} `json:"shards"`
		Docs struct {
			Count int64 `json:"count"`
		} `json:"docs"`
		Store struct {
			SizeInBytes uint64 `json:"size_in_bytes"`
		} `json:"store"`
	} `json:"indices"`
}

// NodesInfo describes the nodes of the cluster, keyed by node id.
type NodesInfo struct {
	ClusterName string              `json:"cluster_name"`
	Nodes       map[string]NodeInfo `json:"nodes"`
}

// NodeInfo describes one node.
type NodeInfo struct {
	Name             string   `json:"name"`
	TransportAddress string   `json:"transport_address"`
	Version          string   `json:"version"`
	Roles            []string `json:"roles,omitempty"`
	OS               *struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"os,omitempty"`
	JVM *struct {
		VMName  string `json:"vm_name"`
		Version string `json:"version"`
	} `json:"jvm,omitempty"`
}
