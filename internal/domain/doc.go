// Package domain defines the core data models shared across macconv.
// It contains plain types and the error taxonomy only.
package domain
