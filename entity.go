package hypixel

import (
	"log/slog"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// build normalizes src under schema s and decodes the result into out.
// Fields of the wrong type keep their zero value and are logged at debug
// level. The normalized document is returned so nested entities can be
// built from its source copy.
func build(log *slog.Logger, src map[string]any, s normalize.Schema, extra any, out any) map[string]any {
	doc := normalize.Normalize(src, s, extra)
	if err := normalize.Decode(doc, out); err != nil {
		log.Debug("ignored undecodable fields", "schema", s.String(), "error", err)
	}
	return doc
}

// source returns the unaliased copy kept by build.
func source(doc map[string]any) map[string]any {
	return normalize.Map(doc[normalize.DataKey])
}

func ratio(a, b int) float64 {
	return normalize.SafeDiv(float64(a), float64(b))
}
