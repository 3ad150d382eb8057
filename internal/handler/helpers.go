package handler

import (
	"fmt"
	"strconv"
)

// parseIntParam converts a path or query parameter to an int, naming the
// parameter in the error so the message can go straight to the client.
func parseIntParam(param, name string) (int, error) {
	v, err := strconv.Atoi(param)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", name)
	}
	return v, nil
}
