// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives raw
// payloads and validated ids from the handler, binds and persists flats
// through the repository, and fires the creation notification.
package service
