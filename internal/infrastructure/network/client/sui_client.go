package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"object_explorer/internal/app/port"
	"object_explorer/internal/domain/entity"
	"object_explorer/internal/pkg/metrics"
	"object_explorer/internal/pkg/utils"
)

// SuiClient implements port.ObjectSource over a Sui JSON-RPC full node.
type SuiClient struct {
	rpcClient      *rpc.Client
	netDef         entity.NetworkDefinition
	rpcCallTimeout time.Duration
	maxBatch       int
	maxConcurrent  int
	limiter        *rate.Limiter
	logger         *zap.Logger
}

// ClientOptions tunes request batching and pacing for a SuiClient.
type ClientOptions struct {
	ConnectionTimeout    time.Duration
	RPCCallTimeout       time.Duration
	MaxObjectsPerBatch   int
	MaxConcurrentBatches int
	RateLimit            float64 // requests per second, 0 means unlimited
	BurstLimit           int
}

var _ port.ObjectSource = (*SuiClient)(nil)

// NewSuiClient connects to the first reachable RPC endpoint of netDef.
func NewSuiClient(netDef entity.NetworkDefinition, opts ClientOptions, logger *zap.Logger) (*SuiClient, error) {
	rpcURLs := append([]string{netDef.PrimaryRPCURL}, netDef.FallbackRPCURLs...)
	var lastErr error

	for _, rpcURL := range rpcURLs {
		if rpcURL == "" {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectionTimeout)
		c, err := rpc.DialContext(ctx, rpcURL)
		cancel()

		if err == nil {
			return newSuiClient(c, netDef, opts, logger), nil
		}
		lastErr = fmt.Errorf("failed to connect to RPC %s: %w", rpcURL, err)
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no RPC endpoint configured")
	}
	return nil, fmt.Errorf("all RPC connection attempts failed for network %s: %w", netDef.Identifier, lastErr)
}

func newSuiClient(c *rpc.Client, netDef entity.NetworkDefinition, opts ClientOptions, logger *zap.Logger) *SuiClient {
	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	burst := opts.BurstLimit
	if burst <= 0 {
		burst = 1
	}
	if opts.RPCCallTimeout <= 0 {
		opts.RPCCallTimeout = 10 * time.Second
	}
	if opts.MaxConcurrentBatches <= 0 {
		opts.MaxConcurrentBatches = 1
	}
	return &SuiClient{
		rpcClient:      c,
		netDef:         netDef,
		rpcCallTimeout: opts.RPCCallTimeout,
		maxBatch:       opts.MaxObjectsPerBatch,
		maxConcurrent:  opts.MaxConcurrentBatches,
		limiter:        rate.NewLimiter(limit, burst),
		logger:         logger.Named("SuiClient").With(zap.String("network", netDef.Identifier)),
	}
}

// ListOwned implements port.ObjectSource.
func (c *SuiClient) ListOwned(ctx context.Context, ownerID string, byParentObject bool) ([]entity.Reference, error) {
	method := methodOwnedByAddress
	if byParentObject {
		method = methodOwnedByObject
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	callCtx, cancel := context.WithTimeout(ctx, c.rpcCallTimeout)
	defer cancel()

	var infos []suiObjectInfo
	if err := c.rpcClient.CallContext(callCtx, &infos, method, ownerID); err != nil {
		metrics.RPCRequests.WithLabelValues(c.netDef.Identifier, method, "error").Inc()
		c.logger.Error("Owned objects listing failed", zap.String("method", method), zap.String("owner", ownerID), zap.Error(err))
		return nil, fmt.Errorf("%s(%s): %w", method, ownerID, err)
	}
	metrics.RPCRequests.WithLabelValues(c.netDef.Identifier, method, "ok").Inc()

	refs := make([]entity.Reference, 0, len(infos))
	for _, info := range infos {
		refs = append(refs, info.toReference())
	}
	c.logger.Debug("Listed owned objects", zap.String("owner", ownerID), zap.Bool("byObject", byParentObject), zap.Int("count", len(refs)))
	return refs, nil
}

// ResolveBatch implements port.ObjectSource. Ids are sent as JSON-RPC batches
// of at most maxBatch elements; any failed element fails the whole call.
func (c *SuiClient) ResolveBatch(ctx context.Context, ids []string) ([]entity.ObjectRecord, error) {
	if len(ids) == 0 {
		return []entity.ObjectRecord{}, nil
	}

	records := make([]entity.ObjectRecord, len(ids))
	batches := utils.BatchStrings(ids, c.maxBatch)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(c.maxConcurrent)

	offset := 0
	for _, batch := range batches {
		start := offset
		offset += len(batch)
		eg.Go(func() error {
			resolved, err := c.resolveChunk(egCtx, batch)
			if err != nil {
				return err
			}
			copy(records[start:], resolved)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *SuiClient) resolveChunk(ctx context.Context, ids []string) ([]entity.ObjectRecord, error) {
	batchElems := make([]rpc.BatchElem, len(ids))
	for i, id := range ids {
		batchElems[i] = rpc.BatchElem{
			Method: methodGetObject,
			Args:   []interface{}{id},
			Result: new(json.RawMessage),
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	callCtx, cancel := context.WithTimeout(ctx, c.rpcCallTimeout)
	defer cancel()

	if err := c.rpcClient.BatchCallContext(callCtx, batchElems); err != nil {
		metrics.RPCRequests.WithLabelValues(c.netDef.Identifier, methodGetObject, "error").Inc()
		c.logger.Error("RPC batch call failed", zap.Int("size", len(ids)), zap.Error(err))
		return nil, fmt.Errorf("RPC batch call failed: %w", err)
	}
	metrics.RPCRequests.WithLabelValues(c.netDef.Identifier, methodGetObject, "ok").Inc()

	records := make([]entity.ObjectRecord, len(ids))
	for i, elem := range batchElems {
		if elem.Error != nil {
			return nil, fmt.Errorf("failed to resolve object %s: %w", ids[i], elem.Error)
		}
		raw, ok := elem.Result.(*json.RawMessage)
		if !ok || raw == nil || len(*raw) == 0 {
			return nil, fmt.Errorf("failed to resolve object %s: empty result", ids[i])
		}
		rec, err := decodeObjectResponse(*raw, ids[i])
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// Definition returns the network definition for this client.
func (c *SuiClient) Definition() entity.NetworkDefinition {
	return c.netDef
}

// Close releases the underlying RPC connection.
func (c *SuiClient) Close() {
	c.rpcClient.Close()
}
