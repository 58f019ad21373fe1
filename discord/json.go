package discord

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

func Marshal(v any) ([]byte, error) {
	return jsoniter.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return jsoniter.Unmarshal(data, v)
}

func UnmarshalReader(reader io.Reader, v any) error {
	return jsoniter.NewDecoder(reader).Decode(v)
}

func MarshalToWriter(writer io.Writer, v any) error {
	return jsoniter.NewEncoder(writer).Encode(v)
}
