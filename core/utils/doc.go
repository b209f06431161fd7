// Package utils provides small conversion helpers shared by the source fetchers.
package utils
