package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var errBadID = errors.New("invalid id")

// pathID parses a numeric path parameter. Ids are positive integers;
// anything else is a caller-side validation error.
func pathID(c *fiber.Ctx, name string) (int64, error) {
	n, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || n <= 0 {
		return 0, errBadID
	}
	return n, nil
}
