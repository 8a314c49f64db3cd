package segment

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML (or JSON) schema declaration and compiles it.
//
//  order: low-first
//  segments:
//    - key: tag
//      mask: 0xF000_0000
//    - key: flag
//      mask: 0b1
func Parse(data []byte) (l *Layout, err error) {
	schema, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}

	return Compile(schema)
}

// Unmarshal decodes a schema declaration without compiling it. Unknown fields
// are rejected.
func Unmarshal(data []byte) (schema Schema, err error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err = dec.Decode(&schema)
	if errors.Is(err, io.EOF) {
		return schema, Error.New("empty schema")
	}
	if err != nil {
		return schema, Error.Wrap(err)
	}

	return schema, nil
}

// Marshal encodes a schema declaration as YAML.
func Marshal(schema Schema) (data []byte, err error) {
	data, err = yaml.Marshal(schema)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return data, nil
}
