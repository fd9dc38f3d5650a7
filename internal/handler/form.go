package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
)

const multipartMemory = 1 << 20

var errInvalidBody = errors.New("invalid request body")

// readValues collects request body fields into url.Values regardless of
// whether the client sent a urlencoded form, a multipart form, or a flat
// JSON object. JSON numbers and booleans are kept in their literal form so
// the service sees the same strings a form post would carry.
func readValues(r *http.Request) (url.Values, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		return readJSONValues(r)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return nil, wrapBodyError(err)
		}
		return r.PostForm, nil
	default:
		if err := r.ParseForm(); err != nil {
			return nil, wrapBodyError(err)
		}
		return r.PostForm, nil
	}
}

func readJSONValues(r *http.Request) (url.Values, error) {
	values := url.Values{}
	if r.Body == nil || r.Body == http.NoBody {
		return values, nil
	}

	var raw map[string]any
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return values, nil
		}
		return nil, wrapBodyError(err)
	}

	for key, v := range raw {
		switch val := v.(type) {
		case nil:
		case string:
			values.Set(key, val)
		case json.Number:
			values.Set(key, val.String())
		case bool:
			values.Set(key, strconv.FormatBool(val))
		default:
			return nil, fmt.Errorf("%w: field %q must be a scalar", errInvalidBody, key)
		}
	}
	return values, nil
}

// wrapBodyError keeps *http.MaxBytesError reachable through errors.As so
// oversized bodies can be answered with 413.
func wrapBodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return err
	}
	return fmt.Errorf("%w: %v", errInvalidBody, err)
}

// writeBodyError answers a failed readValues call.
func writeBodyError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		writeError(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
}
