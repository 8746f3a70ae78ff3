package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCoinType(t *testing.T) {
	assert.True(t, IsCoinType("0x2::coin::Coin<0x2::sui::SUI>"))
	assert.True(t, IsCoinType("0x2::Coin::Coin<0xabc::usd::USD>"))
	assert.False(t, IsCoinType("0x2::coin::TreasuryCap<0x2::sui::SUI>"))
	assert.False(t, IsCoinType("0x2::devnet_nft::DevNetNFT"))
	assert.False(t, IsCoinType("0x2::coin::Coin<"))
}

func TestCoinDisplayType(t *testing.T) {
	assert.Equal(t, "SUI", CoinDisplayType("0x2::coin::Coin<0x2::sui::SUI>"))
	assert.Equal(t, "0xabc::usd::USD", CoinDisplayType("0x2::coin::Coin<0xabc::usd::USD>"))
	assert.Equal(t, "0x2::devnet_nft::DevNetNFT", CoinDisplayType("0x2::devnet_nft::DevNetNFT"))
}

func TestTrimStdLibPrefix(t *testing.T) {
	assert.Equal(t, "devnet_nft::DevNetNFT", TrimStdLibPrefix("0x2::devnet_nft::DevNetNFT"))
	assert.Equal(t, "0xabc::m::T", TrimStdLibPrefix("0xabc::m::T"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 19))
	id := "0x4a2e8b7c1d9f06e5a3b2c1d0e9f8a7b6c5d4e3f2"
	got := Truncate(id, 19)
	assert.Len(t, got, 19)
	assert.Equal(t, "0x4a2e8b...c5d4e3f2", got)
	assert.Equal(t, got, AltText(id))
}

func TestTransformURL(t *testing.T) {
	assert.Equal(t, "https://ipfs.io/ipfs/bafyabc", TransformURL("ipfs://bafyabc", ""))
	assert.Equal(t, "https://gw.example/ipfs/bafyabc", TransformURL("ipfs://bafyabc", "https://gw.example/ipfs"))
	assert.Equal(t, "https://img.example/a.png", TransformURL("https://img.example/a.png", ""))
}

func TestParseImageURL(t *testing.T) {
	assert.Equal(t, "ipfs://a", ParseImageURL(map[string]any{"url": "ipfs://a"}))
	assert.Equal(t, "ipfs://b", ParseImageURL(map[string]any{
		"url": map[string]any{"fields": map[string]any{"url": "ipfs://b"}},
	}))
	assert.Equal(t, "https://c", ParseImageURL(map[string]any{"img_url": "https://c"}))
	assert.Equal(t, "https://d", ParseImageURL(map[string]any{"display": "https://d"}))
	assert.Equal(t, "", ParseImageURL(map[string]any{"balance": "1"}))
	assert.Equal(t, "", ParseImageURL(nil))
}
