package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

var (
	errMissingParam = errors.New("missing parameter")
	errInvalidParam = errors.New("invalid parameter")
)

// requiredInt64Param parses a mandatory integer query parameter
func requiredInt64Param(c echo.Context, name string) (int64, error) {
	param := strings.TrimSpace(c.QueryParam(name))
	if param == "" {
		return 0, errMissingParam
	}

	value, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, errInvalidParam
	}

	return value, nil
}

// pathInt64Param parses a positive integer path parameter
func pathInt64Param(c echo.Context, name string) (int64, error) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || value <= 0 {
		return 0, errInvalidParam
	}
	return value, nil
}
