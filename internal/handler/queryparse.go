package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// intListParam parses a repeated query parameter into ints. An absent
// parameter returns nil so callers can distinguish "no filter" from an empty
// filter; a non-numeric entry is a type error.
func intListParam(c *gin.Context, name string) ([]int, error) {
	raw, ok := c.GetQueryArray(name)
	if !ok {
		return nil, nil
	}

	values := make([]int, 0, len(raw))
	for _, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s must be a list of numbers", name)
		}
		values = append(values, n)
	}
	return values, nil
}

// stringListParam returns a repeated query parameter, or nil when absent.
func stringListParam(c *gin.Context, name string) []string {
	values, ok := c.GetQueryArray(name)
	if !ok {
		return nil
	}
	return values
}

// floatParam parses an optional numeric query parameter, falling back to the
// given default when absent.
func floatParam(c *gin.Context, name string, fallback float64) (float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

// intParam parses an optional integer query parameter, falling back to the
// given default when absent.
func intParam(c *gin.Context, name string, fallback int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}
