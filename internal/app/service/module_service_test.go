package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"object_explorer/internal/domain/entity"
	"object_explorer/internal/pkg/logger"
)

func TestBuildModulesPage(t *testing.T) {
	modules := map[string]string{"e": "E", "a": "A", "c": "C", "b": "B", "d": "D"}

	page := BuildModulesPage("Modules", modules, 1, 3)
	assert.Equal(t, "Modules", page.Title)
	assert.Equal(t, []entity.ModuleEntry{{Name: "a", Code: "A"}, {Name: "b", Code: "B"}, {Name: "c", Code: "C"}}, page.Modules)
	assert.Equal(t, entity.Stats{Count: 5, Text: "total modules"}, page.Stats)
	assert.True(t, page.Pagination.ShowControls)

	page = BuildModulesPage("Modules", modules, 2, 3)
	assert.Equal(t, []entity.ModuleEntry{{Name: "d", Code: "D"}, {Name: "e", Code: "E"}}, page.Modules)

	page = BuildModulesPage("Modules", modules, 3, 3)
	assert.Empty(t, page.Modules)

	page = BuildModulesPage("Modules", map[string]string{"x": "X"}, 1, 3)
	assert.False(t, page.Pagination.ShowControls)
	assert.Len(t, page.Modules, 1)
}

func TestModuleService_GetModulesPage(t *testing.T) {
	src := newFakeSource()
	src.objects["0xpkg"] = entity.ObjectRecord{ID: "0xpkg", Status: entity.StatusExists, Modules: map[string]string{"m1": "module m1 {}", "m2": "module m2 {}"}}
	src.objects["0xnft"] = nftRecord("0xnft", "0x2::nft::N", nil)
	svc := NewModuleService(providerFor(src), testNetworks(), 3, logger.Nop{})

	page, err := svc.GetModulesPage(context.Background(), "", "0xpkg", 1)
	require.NoError(t, err)
	assert.Len(t, page.Modules, 2)
	assert.Equal(t, "m1", page.Modules[0].Name)

	_, err = svc.GetModulesPage(context.Background(), "devnet", "0xnft", 1)
	assert.ErrorIs(t, err, entity.ErrNotAPackage)

	_, err = svc.GetModulesPage(context.Background(), "devnet", "0xnone", 1)
	assert.ErrorIs(t, err, entity.ErrObjectNotFound)

	_, err = svc.GetModulesPage(context.Background(), "moonnet", "0xpkg", 1)
	assert.ErrorIs(t, err, entity.ErrUnknownNetwork)

	src.resolveErr = errors.New("timeout")
	_, err = svc.GetModulesPage(context.Background(), "devnet", "0xpkg", 1)
	assert.ErrorIs(t, err, entity.ErrFetchFailed)
}
