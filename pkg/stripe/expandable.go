package stripe

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Expandable is a reference to another object that the API returns either as
// a bare ID or, when the field was requested with expand, as the full object.
// When present exactly one of the two forms is held.
type Expandable[T any] struct {
	id     string
	object *T
}

// ExpandableID returns a reference holding only an ID.
func ExpandableID[T any](id string) Expandable[T] {
	return Expandable[T]{id: id}
}

// ExpandableObject returns a reference holding a full object with the given ID.
func ExpandableObject[T any](id string, object *T) Expandable[T] {
	return Expandable[T]{id: id, object: object}
}

// ID returns the referenced object's ID in either form.
func (e Expandable[T]) ID() string {
	return e.id
}

// IsExpanded reports whether the full object was received.
func (e Expandable[T]) IsExpanded() bool {
	return e.object != nil
}

// IsZero reports whether the field was absent or null.
func (e Expandable[T]) IsZero() bool {
	return e.id == "" && e.object == nil
}

// Object returns the expanded object, or ErrNotExpanded when only the ID was received.
func (e Expandable[T]) Object() (*T, error) {
	if e.object == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotExpanded, e.id)
	}

	return e.object, nil
}

// UnmarshalJSON decodes the richer object form first and falls back to a bare ID.
func (e *Expandable[T]) UnmarshalJSON(data []byte) error {
	*e = Expandable[T]{}

	if isJSONNull(data) {
		return nil
	}

	var object T

	err := json.Unmarshal(data, &object)
	if err == nil {
		ref, refErr := decodeObjectRef(data)
		if refErr != nil {
			return refErr
		}

		e.id = ref.ID
		e.object = &object

		return nil
	}

	var id string

	idErr := json.Unmarshal(data, &id)
	if idErr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidExpandable, err)
	}

	e.id = id

	return nil
}

// MarshalJSON emits the full object when expanded, otherwise the ID.
func (e Expandable[T]) MarshalJSON() ([]byte, error) {
	if e.object != nil {
		return json.Marshal(e.object)
	}

	if e.id == "" {
		return []byte("null"), nil
	}

	return json.Marshal(e.id)
}

// DynamicExpandable is a reference whose expanded form may be one of several
// object types. The concrete type is chosen from the payload's "object" field.
type DynamicExpandable struct {
	id         string
	objectType string
	object     any
	raw        json.RawMessage
}

// ID returns the referenced object's ID in either form.
func (d DynamicExpandable) ID() string {
	return d.id
}

// ObjectType returns the "object" discriminator of an expanded reference.
func (d DynamicExpandable) ObjectType() string {
	return d.objectType
}

// IsExpanded reports whether an object payload was received.
func (d DynamicExpandable) IsExpanded() bool {
	return d.raw != nil
}

// IsZero reports whether the field was absent or null.
func (d DynamicExpandable) IsZero() bool {
	return d.id == "" && d.raw == nil
}

// Raw returns the JSON payload of an expanded reference.
func (d DynamicExpandable) Raw() json.RawMessage {
	return d.raw
}

// Object returns the decoded object, e.g. *Card or *BankAccount.
func (d DynamicExpandable) Object() (any, error) {
	if d.raw == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotExpanded, d.id)
	}

	if d.object == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownObjectType, d.objectType)
	}

	return d.object, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DynamicExpandable) UnmarshalJSON(data []byte) error {
	*d = DynamicExpandable{}

	if isJSONNull(data) {
		return nil
	}

	ref, err := decodeObjectRef(data)
	if err != nil {
		var id string

		idErr := json.Unmarshal(data, &id)
		if idErr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidExpandable, err)
		}

		d.id = id

		return nil
	}

	d.id = ref.ID
	d.objectType = ref.Object
	d.raw = append(json.RawMessage(nil), data...)

	object, err := decodeDynamicObject(ref.Object, data)
	if err != nil {
		return fmt.Errorf("decoding expanded %s: %w", ref.Object, err)
	}

	d.object = object

	return nil
}

// MarshalJSON re-emits the received object payload, otherwise the ID.
func (d DynamicExpandable) MarshalJSON() ([]byte, error) {
	if d.raw != nil {
		return d.raw, nil
	}

	if d.id == "" {
		return []byte("null"), nil
	}

	return json.Marshal(d.id)
}

// ExpandableAs returns the expanded object of d as a *T.
func ExpandableAs[T any](d DynamicExpandable) (*T, error) {
	object, err := d.Object()
	if err != nil {
		return nil, err
	}

	typed, ok := object.(*T)
	if !ok {
		return nil, fmt.Errorf("%w: got %q", ErrUnexpectedObjectType, d.objectType)
	}

	return typed, nil
}

type objectRef struct {
	ID     string `json:"id"`
	Object string `json:"object"`
}

func decodeObjectRef(data []byte) (objectRef, error) {
	var ref objectRef

	err := json.Unmarshal(data, &ref)
	if err != nil {
		return objectRef{}, fmt.Errorf("reading object reference: %w", err)
	}

	return ref, nil
}

// decodeDynamicObject returns nil without error for object types this
// package does not model; the raw payload is still kept.
func decodeDynamicObject(objectType string, data []byte) (any, error) {
	switch objectType {
	case "account":
		return decodeAs[Account](data)
	case "bank_account":
		return decodeAs[BankAccount](data)
	case "card":
		return decodeAs[Card](data)
	case "charge":
		return decodeAs[Charge](data)
	case "customer":
		return decodeAs[Customer](data)
	case "dispute":
		return decodeAs[Dispute](data)
	case "payment_intent":
		return decodeAs[PaymentIntent](data)
	case "refund":
		return decodeAs[Refund](data)
	case "subscription":
		return decodeAs[Subscription](data)
	case "terminal.reader":
		return decodeAs[TerminalReader](data)
	case "transfer":
		return decodeAs[Transfer](data)
	default:
		return nil, nil
	}
}

func decodeAs[T any](data []byte) (any, error) {
	var object T

	err := json.Unmarshal(data, &object)
	if err != nil {
		return nil, err
	}

	return &object, nil
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
