package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	apperrors "powervoting/pkg/errors"
)

// DecodeJSON decodes a single JSON object from the request body into dst.
// Unknown fields are rejected so typos in field names surface as 400s.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return apperrors.TooLarge(maxBytesErr.Limit)
		}
		if errors.Is(err, io.EOF) {
			return apperrors.InvalidInput("request body is required")
		}
		return apperrors.InvalidInputWrap("invalid request body", err)
	}

	if dec.More() {
		return apperrors.InvalidInput("request body must contain a single JSON object")
	}
	return nil
}

func ParamInt64(ps httprouter.Params, name string) (int64, error) {
	s := ps.ByName(name)
	if s == "" {
		return 0, apperrors.InvalidInput(fmt.Sprintf("%s parameter is required", name))
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", name, s))
	}
	return v, nil
}

func ParamUint64(ps httprouter.Params, name string) (uint64, error) {
	s := ps.ByName(name)
	if s == "" {
		return 0, apperrors.InvalidInput(fmt.Sprintf("%s parameter is required", name))
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", name, s))
	}
	return v, nil
}
