// Package events defines the payload structs and topics published on the
// event bus. Payloads are plain tagged structs; subscribers select by
// topic and type-assert, never by inheritance.
package events
