package service

import (
	"context"
	"fmt"
	"strings"

	"object_explorer/internal/app/port"
	"object_explorer/internal/domain/entity"
	"object_explorer/internal/infrastructure/configloader"
	networkdefinition "object_explorer/internal/infrastructure/network/definition"
	"object_explorer/internal/pkg/logger"
)

// fakeSource is an in-memory ObjectSource with injectable failures.
type fakeSource struct {
	owned      map[string][]entity.Reference
	objects    map[string]entity.ObjectRecord
	listErr    error
	resolveErr error
	resolved   [][]string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		owned:   make(map[string][]entity.Reference),
		objects: make(map[string]entity.ObjectRecord),
	}
}

func (s *fakeSource) add(owner string, rec entity.ObjectRecord) {
	s.owned[owner] = append(s.owned[owner], entity.Reference{ObjectID: rec.ID, Type: rec.Type})
	s.objects[rec.ID] = rec
}

func (s *fakeSource) ListOwned(_ context.Context, ownerID string, byParentObject bool) ([]entity.Reference, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	key := ownerID
	if byParentObject {
		key = "object:" + ownerID
	}
	return s.owned[key], nil
}

func (s *fakeSource) ResolveBatch(_ context.Context, ids []string) ([]entity.ObjectRecord, error) {
	s.resolved = append(s.resolved, ids)
	if s.resolveErr != nil {
		return nil, s.resolveErr
	}
	out := make([]entity.ObjectRecord, len(ids))
	for i, id := range ids {
		rec, ok := s.objects[id]
		if !ok {
			rec = entity.ObjectRecord{ID: id, Status: entity.StatusNotExists}
		}
		out[i] = rec
	}
	return out, nil
}

type fakeSourceProvider struct {
	sources map[string]port.ObjectSource
	dialErr error
}

func (p *fakeSourceProvider) GetSource(network string) (port.ObjectSource, error) {
	if p.dialErr != nil {
		return nil, p.dialErr
	}
	src, ok := p.sources[strings.ToLower(network)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownNetwork, network)
	}
	return src, nil
}

func (p *fakeSourceProvider) Mode() entity.SourceMode {
	return entity.SourceStatic
}

func testNetworks() port.NetworkDefinitionProvider {
	return networkdefinition.NewNetworkDefinitionProvider(logger.Nop{}, configloader.Default())
}

func providerFor(src port.ObjectSource) *fakeSourceProvider {
	return &fakeSourceProvider{sources: map[string]port.ObjectSource{"devnet": src}}
}

func coinRecord(id, coinType string, fields map[string]any) entity.ObjectRecord {
	return entity.ObjectRecord{
		ID:     id,
		Status: entity.StatusExists,
		Type:   "0x2::coin::Coin<" + coinType + ">",
		Fields: fields,
	}
}

func nftRecord(id, typeTag string, fields map[string]any) entity.ObjectRecord {
	return entity.ObjectRecord{ID: id, Status: entity.StatusExists, Type: typeTag, Fields: fields}
}
