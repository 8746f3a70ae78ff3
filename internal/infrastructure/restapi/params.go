package restapi

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// queryInt reads an integer query parameter, returning def when it is absent.
func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s must be an integer, got %q", key, raw)
	}
	return v, nil
}

// queryBool reads a boolean query parameter, returning false when it is absent.
func queryBool(c *gin.Context, key string) (bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("query parameter %s must be a boolean, got %q", key, raw)
	}
	return v, nil
}
