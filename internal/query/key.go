package query

import (
	"encoding/json"
	"fmt"
)

// Key identifies one cached read: a resource namespace plus its serialized
// request parameters.
type Key struct {
	Namespace string
	Params    string
}

// NewKey builds a key from a namespace and any parameters. Parameters are
// serialized as JSON, so maps produce the same key regardless of insertion
// order.
func NewKey(namespace string, params ...any) Key {
	if len(params) == 0 {
		return Key{Namespace: namespace}
	}
	data, err := json.Marshal(params)
	if err != nil {
		return Key{Namespace: namespace, Params: fmt.Sprint(params...)}
	}
	return Key{Namespace: namespace, Params: string(data)}
}

func (k Key) String() string {
	if k.Params == "" {
		return k.Namespace
	}
	return k.Namespace + k.Params
}
