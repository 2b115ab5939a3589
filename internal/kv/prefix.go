package kv

import "context"

type prefixed struct {
	inner  Store
	prefix string
}

// Prefixed scopes every key of inner under prefix, giving each desktop its
// own key space on a shared backend.
func Prefixed(inner Store, prefix string) Store {
	return &prefixed{inner: inner, prefix: prefix}
}

func (p *prefixed) Load(ctx context.Context, key string) ([]byte, error) {
	return p.inner.Load(ctx, p.prefix+key)
}

func (p *prefixed) Save(ctx context.Context, key string, value []byte) error {
	return p.inner.Save(ctx, p.prefix+key, value)
}

func (p *prefixed) Delete(ctx context.Context, key string) error {
	return p.inner.Delete(ctx, p.prefix+key)
}
