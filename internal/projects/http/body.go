package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

var errBadBody = errors.New(msgBadBody)

// bindBody decodes the JSON body into a T. A missing or syntactically broken
// body yields the zero T when lenient is set. A well-formed body whose field
// has the wrong JSON type is always rejected, naming the field.
func bindBody[T any](c *gin.Context, lenient bool) (T, error) {
	var req T
	if c.Request.Body == nil {
		if lenient {
			return req, nil
		}
		return req, errBadBody
	}

	err := c.ShouldBindJSON(&req)
	if err == nil {
		return req, nil
	}

	var zero T
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return zero, fmt.Errorf("invalid value for %s", typeErr.Field)
	}
	if lenient && isMalformed(err) {
		return zero, nil
	}
	return zero, errBadBody
}

func isMalformed(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
