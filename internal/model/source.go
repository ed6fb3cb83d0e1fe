// Package model defines the data structures shared by the license scanner.
package model

// Path represents a file system path.
type Path string
