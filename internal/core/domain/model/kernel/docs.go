// Package kernel provides the value objects shared across the fulfillment
// domain model.
//
// The package includes:
//   - UUID: identifier for carts, orders, rates and customers
//   - Money: non-negative decimal amount used for every price, subtotal and total
//   - Location: free-text place name used to match an order against shipping rates
//   - NormalizePhone: conversion of customer phone numbers to international format
//
// Value objects are immutable and are safe for concurrent use. The zero value of
// UUID and Location fails Validate; use the constructors.
package kernel
