// Package food models the restaurant catalog. A Food entry carries the price a
// customer must pay exactly at submission and the eta an order inherits when the
// restaurant confirms it.
package food
