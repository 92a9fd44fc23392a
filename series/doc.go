// Package series defines the immutable observation types shared by the rest
// of the module: a Series of (x, y) pairs with a strictly increasing numeric
// predictor and non-negative responses, and a Dataset bundling one predictor
// column with one or more named response columns.
//
// Response columns are identified by 64-bit xxHash64 IDs of their header
// names, which keeps lookup cheap when the same dataset is fitted column by
// column.
//
// All types are value-copied on construction and on access; nothing in this
// package mutates after creation.
package series
