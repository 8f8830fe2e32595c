package requestid

import "context"

// Header cabecera de correlación entrante y saliente.
const Header = "X-Request-ID"

type ctxKey struct{}

// With devuelve ctx con el id de petición.
func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext id de petición de ctx, o "" si no hay.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
