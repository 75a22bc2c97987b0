package arr

import "errors"

// Sentinel errors returned by arr operations.
//
// Use [errors.Is] for comparisons:
//
//	if err := arr.Multisort(rows, keys, arr.WithDirections(arr.Asc, arr.Desc)); errors.Is(err, arr.ErrConfiguration) {
//	    // directions and keys disagree in length
//	}
var (
	// ErrConfiguration is returned by [Multisort] when the number of
	// directions or sort flags is neither one nor the number of keys.
	ErrConfiguration = errors.New("arr: invalid configuration")

	// ErrInvalidInput is returned when an argument is not of a usable shape,
	// for example a haystack passed to [IsIn] that cannot be traversed.
	ErrInvalidInput = errors.New("arr: invalid input")

	// ErrConversion is returned by [ToArray] when a declared property does
	// not resolve against the source object.
	ErrConversion = errors.New("arr: conversion failed")

	// ErrInvalidExpression is returned by [Expr] when the expression source
	// does not compile.
	ErrInvalidExpression = errors.New("arr: invalid expression")
)
