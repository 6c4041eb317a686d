// Package openapi publishes field rulesets as OpenAPI 3 component schemas so
// API documentation and client-side forms can show the same requirements the
// engine enforces.
//
//	schemas, err := openapi.Components(fieldvalidation.DefaultRegistry())
//	b, err := openapi.MarshalComponents(schemas)
package openapi
