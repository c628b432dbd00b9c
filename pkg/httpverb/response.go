package httpverb

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	StatusCode  int
	Status      string
	Header      http.Header
	Body        []byte
	Method      string
	URL         string
	RequestBody []byte
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) Text() string {
	return string(r.Body)
}

func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}
