// Package utils provides small platform helpers.
package utils
