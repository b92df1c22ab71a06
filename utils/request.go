package utils

import (
	"encoding/json"
	"net/http"
)

// maxRequestBody caps JSON bodies on the public form endpoints. The largest
// legitimate payload is a consultation request with a 2000-character message.
const maxRequestBody = 64 << 10

// DecodeJSONRequest decodes the JSON request body into v, refusing bodies
// over the form-endpoint size cap.
func DecodeJSONRequest(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody)).Decode(v)
}
