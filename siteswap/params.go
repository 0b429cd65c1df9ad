package siteswap

// Source records where an effective parameter value came from.
type Source string

const (
	SourceForced   Source = "forced"
	SourceSettings Source = "settings"
	SourceBlock    Source = "block"
)

// Param is a single key/value pair of the request sent to the service.
type Param struct {
	Key    string `json:"key"`
	Value  Value  `json:"value"`
	Source Source `json:"source,omitempty"`
}

// Params is an ordered parameter list. Order is significant: it is the order
// of the serialized query string.
type Params []Param

// Get returns the value stored under key.
func (p Params) Get(key string) (Value, bool) {
	if i := p.index(key); i >= 0 {
		return p[i].Value, true
	}
	return Value{}, false
}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	return p.index(key) >= 0
}

// Keys returns the parameter keys in order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for _, param := range p {
		keys = append(keys, param.Key)
	}
	return keys
}

// With returns a copy of p with key set to value. An existing key keeps its
// position; a new key is appended.
func (p Params) With(key string, value Value, source Source) Params {
	out := p.clone()
	if i := out.index(key); i >= 0 {
		out[i].Value = value
		out[i].Source = source
		return out
	}
	return append(out, Param{Key: key, Value: value, Source: source})
}

func (p Params) index(key string) int {
	for i, param := range p {
		if param.Key == key {
			return i
		}
	}
	return -1
}

func (p Params) clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	copy(out, p)
	return out
}

// merge overlays block values onto base. Keys already in base are replaced in
// place, block-only keys are appended in block order.
func merge(base, block Params) Params {
	out := base.clone()
	for _, param := range block {
		out = out.With(param.Key, param.Value, SourceBlock)
	}
	return out
}
