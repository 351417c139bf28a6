// Package model holds the domain entities exchanged between layers.
package model
