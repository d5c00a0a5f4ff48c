// Package utils provides helpers for reading loosely typed JSON values.
package utils
