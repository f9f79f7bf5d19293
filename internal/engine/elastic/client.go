// Package elastic implements engine.Store on top of the official Elasticsearch client.
package elastic

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/kailas-cloud/esmcp/internal/engine"
	"github.com/kailas-cloud/esmcp/internal/metrics"
)

// Compile-time check: Store implements engine.Store.
var _ engine.Store = (*Store)(nil)

// Config holds connection parameters for an Elasticsearch cluster.
type Config struct {
	Addresses []string
	APIKey    string
	Username  string
	Password  string
	// CACert is a PEM bundle that replaces the system roots when set.
	CACert []byte
}

// Store implements engine.Store. It is safe for concurrent use; the client
// pools connections across all configured addresses.
type Store struct {
	client    *elasticsearch.Client
	transport *http.Transport
}

// NewStore creates an Elasticsearch store. It does not contact the cluster.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addresses) == 0 {
		return nil, fmt.Errorf("addresses is required")
	}

	transport, err := newTransport(cfg.CACert)
	if err != nil {
		return nil, err
	}

	esCfg := elasticsearch.Config{
		Addresses:    cfg.Addresses,
		Transport:    transport,
		DisableRetry: true, // failures are surfaced, never retried
	}
	switch {
	case cfg.APIKey != "":
		esCfg.APIKey = cfg.APIKey
	case cfg.Username != "" && cfg.Password != "":
		esCfg.Username = cfg.Username
		esCfg.Password = cfg.Password
	}

	// The client rejects responses without X-Elastic-Product, so clusters before 7.14 are unsupported.
	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{client: client, transport: transport}, nil
}

func newTransport(caCert []byte) (*http.Transport, error) {
	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return nil, errors.New("default transport is not *http.Transport")
	}
	t := base.Clone()
	if len(caCert) > 0 {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caCert) {
			return nil, errors.New("ca cert: no PEM certificates found")
		}
		t.TLSClientConfig = &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}
	}
	return t, nil
}

// Close releases idle connections.
func (s *Store) Close() {
	s.transport.CloseIdleConnections()
}

// Info reads the cluster self-description.
func (s *Store) Info(ctx context.Context) (*engine.Info, error) {
	res, err := s.client.Info(s.client.Info.WithContext(ctx))
	var info engine.Info
	if err = decode(engine.OpInfo, res, err, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Do executes a raw request built by the caller and returns the response body.
func (s *Store) Do(ctx context.Context, req engine.Request) (json.RawMessage, error) {
	var body io.Reader
	if req.HasBody() {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &engine.Error{Op: req.Op, Err: fmt.Errorf("encode body: %w", err)}
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL(), body)
	if err != nil {
		return nil, &engine.Error{Op: req.Op, Err: fmt.Errorf("build request: %w", err)}
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpRes, err := s.client.Perform(httpReq)
	var res *esapi.Response
	if err == nil {
		res = &esapi.Response{StatusCode: httpRes.StatusCode, Body: httpRes.Body, Header: httpRes.Header}
	}

	var raw json.RawMessage
	if err = decode(req.Op, res, err, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// decode closes the response, converts error statuses to *engine.Error and
// unmarshals successful bodies into out when out is non-nil.
func decode(op string, res *esapi.Response, callErr error, out any) (err error) {
	defer func() { record(op, err) }()

	if callErr != nil {
		return engine.NewTransportError(op, callErr)
	}
	defer res.Body.Close()

	if res.IsError() {
		return responseError(op, res)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &engine.Error{Op: op, Status: res.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func responseError(op string, res *esapi.Response) error {
	raw, _ := io.ReadAll(res.Body)
	var er engine.ErrorResponse
	if len(raw) > 0 && json.Unmarshal(raw, &er) == nil && er.Error != nil {
		return engine.NewResponseError(op, res.StatusCode, er.Error)
	}
	return engine.NewResponseError(op, res.StatusCode, nil)
}

func record(op string, err error) {
	metrics.EngineRequestsTotal.WithLabelValues(op, metrics.Outcome(err)).Inc()
}
