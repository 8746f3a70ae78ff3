package snapshotloader

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"object_explorer/internal/domain/entity"
	"object_explorer/internal/pkg/utils"
)

const jsonSnapshot = `{
  "objects": [
    {"id": "0xC1", "objType": "0x2::coin::Coin<0x2::sui::SUI>", "version": 4,
     "owner": {"AddressOwner": "0xA11CE"},
     "data": {"contents": {"balance": 18446744073709551617}}},
    {"id": "0xn1", "objType": "0x2::devnet_nft::DevNetNFT", "version": 1,
     "owner": "0xa11ce",
     "data": {"contents": {"display": "ipfs://bafy"}}},
    {"id": "0xchild", "objType": "0x2::devnet_nft::DevNetNFT",
     "owner": {"ObjectOwner": "0xn1"}},
    {"id": "0xgone", "objType": "0x2::devnet_nft::DevNetNFT", "status": "Deleted", "owner": "0xa11ce"},
    {"id": "0xpkg", "objType": "package", "data": {"modules": {"m": "module m {}"}}}
  ]
}`

const yamlSnapshot = `objects:
  - id: "0xc1"
    objType: "0x2::coin::Coin<0x2::sui::SUI>"
    version: 2
    owner: "0xb0b"
    data:
      contents:
        balance: "42"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoader_LoadJSONFile(t *testing.T) {
	l := NewLoader(0, zap.NewNop())
	snap, err := l.Load(context.Background(), writeFile(t, "objects.json", jsonSnapshot))
	require.NoError(t, err)
	require.Len(t, snap.Objects, 5)

	assert.Equal(t, "0xa11ce", snap.Objects[0].OwnerID())
	assert.Equal(t, "0xa11ce", snap.Objects[1].OwnerID())
	assert.Equal(t, "0xn1", snap.Objects[2].OwnerID())
	assert.Equal(t, "", snap.Objects[4].OwnerID())

	bal, ok := utils.BalanceFromField(snap.Objects[0].Data.Contents["balance"])
	require.True(t, ok)
	want, _ := new(big.Int).SetString("18446744073709551617", 10)
	assert.Equal(t, 0, want.Cmp(bal))
}

func TestLoader_LoadYAMLFile(t *testing.T) {
	l := NewLoader(0, zap.NewNop())
	snap, err := l.Load(context.Background(), writeFile(t, "objects.yaml", yamlSnapshot))
	require.NoError(t, err)
	require.Len(t, snap.Objects, 1)
	assert.Equal(t, "0xb0b", snap.Objects[0].OwnerID())
	assert.Equal(t, "2", snap.Objects[0].Version.String())
}

func TestLoader_LoadYAMLKeepsIntegerPrecision(t *testing.T) {
	doc := `objects:
  - id: "0xc1"
    objType: "0x2::coin::Coin<0x2::sui::SUI>"
    owner: "0xb0b"
    data:
      contents:
        balance: 18446744073709551617
        nested:
          amounts: [9007199254740993, 1]
  - id: "0xc2"
    objType: "0x2::coin::Coin<0x2::sui::SUI>"
    owner: "0xb0b"
    data:
      contents:
        balance: .nan
  - id: "0xc3"
    objType: "0x2::coin::Coin<0x2::sui::SUI>"
    owner: "0xb0b"
    data:
      contents:
        balance: 1.5
`
	l := NewLoader(0, zap.NewNop())
	snap, err := l.Load(context.Background(), writeFile(t, "objects.yml", doc))
	require.NoError(t, err)
	require.Len(t, snap.Objects, 3)

	contents := snap.Objects[0].Data.Contents
	bal, ok := utils.BalanceFromField(contents["balance"])
	require.True(t, ok)
	assert.Equal(t, "18446744073709551617", bal.String())

	nested, ok := contents["nested"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{json.Number("9007199254740993"), json.Number("1")}, nested["amounts"])

	for _, entry := range snap.Objects[1:] {
		assert.NotPanics(t, func() {
			_, ok := utils.BalanceFromField(entry.Data.Contents["balance"])
			assert.False(t, ok, entry.ID)
		})
	}
}

func TestLoader_LoadYAMLRejectsScalarContents(t *testing.T) {
	doc := `objects:
  - id: "0xc1"
    objType: "a"
    data:
      contents: 5
`
	l := NewLoader(0, zap.NewNop())
	_, err := l.Load(context.Background(), writeFile(t, "objects.yaml", doc))
	assert.ErrorContains(t, err, "data contents must be a mapping")
}

func TestLoader_LoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/objects.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(jsonSnapshot))
		case "/snapshot":
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write([]byte(yamlSnapshot))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := NewLoader(0, zap.NewNop())

	snap, err := l.Load(context.Background(), srv.URL+"/objects.json")
	require.NoError(t, err)
	assert.Len(t, snap.Objects, 5)

	snap, err = l.Load(context.Background(), srv.URL+"/snapshot")
	require.NoError(t, err)
	assert.Len(t, snap.Objects, 1)

	_, err = l.Load(context.Background(), srv.URL+"/missing.json")
	assert.Error(t, err)
}

func TestLoader_Invalid(t *testing.T) {
	l := NewLoader(0, zap.NewNop())

	_, err := l.Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)

	dup := `{"objects": [{"id": "0x1", "objType": "a"}, {"id": "0X1", "objType": "b"}]}`
	_, err = l.Load(context.Background(), writeFile(t, "dup.json", dup))
	assert.ErrorContains(t, err, "duplicate object id")

	_, err = l.Load(context.Background(), writeFile(t, "noid.json", `{"objects": [{"objType": "a"}]}`))
	assert.ErrorContains(t, err, "has no id")
}

func TestRemoteFormat(t *testing.T) {
	assert.Equal(t, ".yml", remoteFormat("https://x/y/objects.yml?v=1", ""))
	assert.Equal(t, ".yaml", remoteFormat("https://x/y", "application/x-yaml; charset=utf-8"))
	assert.Equal(t, ".json", remoteFormat("https://x/y", "text/plain"))
}

func TestStaticSource(t *testing.T) {
	l := NewLoader(0, zap.NewNop())
	snap, err := l.Load(context.Background(), writeFile(t, "objects.json", jsonSnapshot))
	require.NoError(t, err)
	src := NewStaticSource(snap)
	assert.Equal(t, 5, src.Len())

	refs := src.ListOwnedStatic("0xA11CE")
	require.Len(t, refs, 3)
	assert.Equal(t, []string{"0xC1", "0xn1", "0xgone"}, []string{refs[0].ObjectID, refs[1].ObjectID, refs[2].ObjectID})
	assert.Equal(t, "4", refs[0].Version)

	assert.Empty(t, src.ListOwnedStatic("0xnobody"))

	// object-owned children are listed under the parent id regardless of mode
	children, err := src.ListOwned(context.Background(), "0xn1", true)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "0xchild", children[0].ObjectID)

	recs, err := src.ResolveBatch(context.Background(), []string{"0xc1", "0xunknown", "0xgone", "0xpkg"})
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.True(t, recs[0].Exists())
	assert.Equal(t, "0x2::coin::Coin<0x2::sui::SUI>", recs[0].Type)
	assert.Equal(t, entity.StatusNotExists, recs[1].Status)
	assert.Equal(t, "0xunknown", recs[1].ID)
	assert.Equal(t, entity.StatusDeleted, recs[2].Status)
	assert.True(t, recs[3].IsPackage())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.ResolveBatch(ctx, []string{"0xc1"})
	assert.ErrorIs(t, err, context.Canceled)
}
