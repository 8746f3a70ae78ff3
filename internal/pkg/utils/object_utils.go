package utils

import (
	"regexp"
	"strings"
)

const (
	coinTypePrefix  = "0x2::coin::Coin<"
	stdLibPrefix    = "0x2::"
	suiCoinType     = "0x2::coin::Coin<0x2::sui::SUI>"
	ipfsScheme      = "ipfs://"
	DefaultGateway  = "https://ipfs.io/ipfs/"
	truncSeparator  = "..."
	DelegationType  = "0x2::delegation::Delegation"
	defaultAltLimit = 19
)

var genericTypeRe = regexp.MustCompile(`^([a-zA-Z0-9_:]*)<([a-zA-Z0-9_:]*)>$`)

// IsCoinType reports whether a type tag follows the fungible coin convention.
func IsCoinType(typeTag string) bool {
	return len(typeTag) > len(coinTypePrefix) &&
		strings.EqualFold(typeTag[:len(coinTypePrefix)], coinTypePrefix) &&
		strings.HasSuffix(typeTag, ">")
}

// IsDelegationType reports whether a type tag is a staking delegation object.
func IsDelegationType(typeTag string) bool {
	return strings.EqualFold(typeTag, DelegationType)
}

// CoinDisplayType turns 0x2::coin::Coin<X> into X, with the native coin shown as SUI.
func CoinDisplayType(typeTag string) string {
	if strings.EqualFold(typeTag, suiCoinType) {
		return "SUI"
	}
	if m := genericTypeRe.FindStringSubmatch(typeTag); m != nil && m[2] != "" {
		return m[2]
	}
	return typeTag
}

// TrimStdLibPrefix drops the standard library address from a type tag.
func TrimStdLibPrefix(typeTag string) string {
	return strings.TrimPrefix(typeTag, stdLibPrefix)
}

// Truncate shortens s to limit runes by replacing its middle with "...".
func Truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	show := limit - len(truncSeparator)
	if show <= 0 {
		return string(r[:limit])
	}
	front := (show + 1) / 2
	back := show / 2
	return string(r[:front]) + truncSeparator + string(r[len(r)-back:])
}

// AltText is the short label shown for an object id on a card.
func AltText(id string) string {
	return Truncate(id, defaultAltLimit)
}

// TransformURL rewrites content-addressed ipfs:// URLs onto an HTTP gateway.
func TransformURL(raw, gateway string) string {
	if !strings.HasPrefix(raw, ipfsScheme) {
		return raw
	}
	if gateway == "" {
		gateway = DefaultGateway
	}
	if !strings.HasSuffix(gateway, "/") {
		gateway += "/"
	}
	return gateway + strings.TrimPrefix(raw, ipfsScheme)
}

// ParseImageURL finds the raw preview URL inside decoded object fields.
// It understands the legacy nested {url: {fields: {url}}} layout.
func ParseImageURL(fields map[string]any) string {
	if fields == nil {
		return ""
	}
	switch u := fields["url"].(type) {
	case string:
		if u != "" {
			return u
		}
	case map[string]any:
		if inner, ok := u["fields"].(map[string]any); ok {
			if s, ok := inner["url"].(string); ok && s != "" {
				return s
			}
		}
	}
	for _, key := range []string{"img_url", "display"} {
		if s, ok := fields[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
