package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	dombatch "github.com/kailas-cloud/esmcp/internal/domain/batch"
	"github.com/kailas-cloud/esmcp/internal/domain/envelope"
	"github.com/kailas-cloud/esmcp/internal/engine"
	"github.com/kailas-cloud/esmcp/internal/metrics"
)

// WriteResults classifies every bulk item. A failed item is identified by the
// caller-resolved id, then the engine id, then dombatch.UnknownID.
func WriteResults(items []engine.BulkItem, ids []string) []dombatch.Result {
	results := make([]dombatch.Result, len(items))
	for i, item := range items {
		r := item.Result()
		id := r.ID
		if i < len(ids) && ids[i] != "" {
			id = ids[i]
		}
		if r.Error == nil {
			results[i] = dombatch.NewOK(id)
			continue
		}
		results[i] = dombatch.NewFailure(id, dombatch.Cause{Type: r.Error.Type, Reason: r.Error.Reason})
	}
	return results
}

// AggregateWrite summarizes a bulk write. Partial failure is not an error:
// failures are listed one per line in item order.
func AggregateWrite(items []engine.BulkItem, ids []string, requested int, tookMs int64) envelope.Envelope {
	summary := dombatch.Summarize(WriteResults(items, ids))
	metrics.BulkItemsTotal.WithLabelValues("ok").Add(float64(summary.Successful))
	metrics.BulkItemsTotal.WithLabelValues("error").Add(float64(summary.Failed))

	fragments := []envelope.Fragment{envelope.Text(fmt.Sprintf(
		"Bulk import completed:\nTotal documents: %d\nSuccessfully imported: %d\nFailed: %d\nProcessing time: %dms",
		requested, summary.Successful, summary.Failed, tookMs,
	))}

	if summary.Failed > 0 {
		lines := make([]string, len(summary.Failures))
		for i, f := range summary.Failures {
			lines[i] = fmt.Sprintf("ID: %s - Error type: %s, Reason: %s", f.ID(), f.Cause().Type, f.Cause().Reason)
		}
		fragments = append(fragments, envelope.Labeled("Failed details:", strings.Join(lines, "\n")))
	}
	return envelope.Build(fragments...)
}

// AggregateMulti renders one fragment per subquery in request order after a
// summary line. indices[i] names the collection of subquery i.
func AggregateMulti(items []engine.MultiSearchItem, indices []string) envelope.Envelope {
	fragments := make([]envelope.Fragment, 0, len(indices)+1)
	fragments = append(fragments, envelope.Text(fmt.Sprintf("Multi-search completed with %d results", len(items))))

	for i, index := range indices {
		label := fmt.Sprintf("Search %d (Index: %s):", i+1, index)
		if i >= len(items) {
			fragments = append(fragments, envelope.Labeled(label, "Error: no response for this search"))
			continue
		}
		item := items[i]
		if item.Error != nil {
			fragments = append(fragments, envelope.Labeled(label, "Error: "+describeCause(item.Error)))
			continue
		}
		fragments = append(fragments, envelope.Labeled(label, renderHits(item.Hits)))
	}
	return envelope.Build(fragments...)
}

func describeCause(c *engine.ErrorCause) string {
	switch {
	case c.Type != "" && c.Reason != "":
		return c.Type + ": " + c.Reason
	case c.Reason != "":
		return c.Reason
	case c.Type != "":
		return c.Type
	}
	return "unknown error"
}

func renderHits(h engine.Hits) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total hits: %d\nResults: %d", h.TotalValue(), len(h.Hits))
	for _, hit := range h.Hits {
		fmt.Fprintf(&b, "\n  ID: %s, Score: %s\n  Source: %s", hit.ID, score(hit.Score), indent(hit.Source))
	}
	return b.String()
}

func score(s *float64) string {
	if s == nil {
		return "null"
	}
	return strconv.FormatFloat(*s, 'f', -1, 64)
}

func indent(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
