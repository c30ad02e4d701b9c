// Package enrich derives missing structured case attributes from
// unstructured text. Every function is a best-effort pure lookup over a
// fixed, ordered rule table: no match returns the zero value, and callers
// must never let a derived value overwrite a present structured one.
package enrich
