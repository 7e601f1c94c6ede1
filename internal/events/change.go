package events

import (
	"encoding/json"
	"time"
)

// Entity names the kind of record a change refers to.
type Entity string

const (
	EntityCategory    Entity = "category"
	EntityTransaction Entity = "transaction"
)

// Action names what happened to the record.
type Action string

const (
	ActionSaved   Action = "saved"
	ActionDeleted Action = "deleted"
)

// Change describes one successful mutation of a store.
type Change struct {
	Entity    Entity    `json:"entity"`
	Action    Action    `json:"action"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChange stamps a change with the current time.
func NewChange(entity Entity, action Action, id int64) Change {
	return Change{Entity: entity, Action: action, ID: id, Timestamp: time.Now()}
}

// RoutingKey is the AMQP routing key for the change, e.g. "transaction.saved".
func (c Change) RoutingKey() string {
	return string(c.Entity) + "." + string(c.Action)
}

// ToJSON converts the change to JSON bytes
func (c Change) ToJSON() ([]byte, error) {
	return json.Marshal(c)
}

// ChangePublisher accepts change notifications. *Topic[Change] implements it.
type ChangePublisher interface {
	Publish(Change)
}

// Discard is a ChangePublisher that drops everything.
var Discard ChangePublisher = discard{}

type discard struct{}

func (discard) Publish(Change) {}
