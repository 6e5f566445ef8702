package types

import (
	"encoding/json"
	"fmt"
	"reflect"

	collcodec "cosmossdk.io/collections/codec"
)

var _ collcodec.ValueCodec[Config] = JSONValue[Config]{}

// JSONValue stores plain Go structs in collections as canonical JSON. Module
// state is not protobuf-generated, so this replaces codec.CollValue.
type JSONValue[T any] struct{}

func (JSONValue[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (JSONValue[T]) Decode(b []byte) (T, error) {
	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return value, fmt.Errorf("failed to decode %s: %w", typeName[T](), err)
	}
	return value, nil
}

func (c JSONValue[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c JSONValue[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c JSONValue[T]) Stringify(value T) string {
	bz, err := c.Encode(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}

func (JSONValue[T]) ValueType() string {
	return "json/" + typeName[T]()
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
