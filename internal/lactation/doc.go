// Package lactation simulates single-animal lactation curves with Wood's model,
// Y(t) = a * t^b * e^(-c*t), and derives herd totals, milk composition and the
// gain available from better management.
//
// Every function is a pure transformation of its arguments: there is no shared
// state, so callers may run simulations concurrently.
package lactation
