// Package pq provides the two priority-key structures the vertex-ordering
// engine is built on: a value has an implicit key starting at zero, the
// key only ever increases, and the structure supports incrementing a
// value's key and popping a value with maximum key.
//
// BucketHeap assumes increments are always by exactly one and trades that
// restriction for O(1) increments; WeightHeap accepts arbitrary positive
// increments at O(log n) per increment. Their method signatures differ
// (BucketHeap's Increment takes no amount), so the order package drives
// both through a small adapter interface rather than using them directly.
package pq
