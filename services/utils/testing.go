package utils

import (
	"encoding/json"
	"io"
	"testing"
)

func DecodeStruct(t *testing.T, r io.Reader, v any) {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(v)
	if err != nil {
		t.Fatal(err)
	}
}
