// Package utils provides common utility functions for the flat-monitor application.
// It includes conversion helpers for the loosely typed JSON returned by the listing
// API, where a field may arrive as a number, a numeric string or null. The pointer
// helpers keep absent values (nil) apart from zero values.
package utils
