/*
   Copyright 2026 The IABTXT Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package schain models the OpenRTB SupplyChain object: the bid-request
// payload through which each reseller hop in a programmatic transaction is
// disclosed. It is the runtime counterpart of the static ads.txt and
// sellers.json declarations — a node's ASI names an advertising system and
// its SID names a seller account, which buyers cross-check against those
// files.
//
// The package covers the SupplyChain object itself and nothing else of
// OpenRTB.
package schain

import (
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"iabtxt.dev/iabtxt/txtcore/errors"
	"iabtxt.dev/iabtxt/txtcore/model"
)

// DefaultVersion is the current version of the SupplyChain object
// specification.
const DefaultVersion = "1.0"

// Node is one hop of a supply chain: an entity that participated in
// selling the impression.
type Node struct {
	// ASI is the domain of the advertising system the seller account
	// belongs to, the domain its sellers.json lives on. Required.
	ASI string `json:"asi" yaml:"asi"`

	// SID is the seller account id within that system. By convention it
	// matches a sellers.json seller_id and, for the first node, the
	// publisher account id of an ads.txt record; neither link is
	// enforced here. Required.
	SID string `json:"sid" yaml:"sid"`

	// RID is the request id issued by this system. Optional.
	RID string `json:"rid,omitempty" yaml:"rid,omitempty"`

	// Name is the company name of the entity paid for this node.
	// Optional.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Domain is the business domain of that entity. Optional.
	Domain string `json:"domain,omitempty" yaml:"domain,omitempty"`

	// HP states whether this node was involved in the payment flow. 0/1
	// on the wire; version 1.0 requires 1 on every node.
	HP model.BoolInt `json:"hp" yaml:"hp"`

	// Ext is an uninterpreted extension payload. Optional.
	Ext json.RawMessage `json:"ext,omitempty" yaml:"ext,omitempty"`
}

// String returns a single-line summary of the hop.
func (n Node) String() string {
	return fmt.Sprintf("Node{asi:%s, sid:%s, hp:%v}", n.ASI, n.SID, n.HP.Bool())
}

// Redacted returns the same representation as String(); supply chain hops
// are transaction metadata, not PII.
func (n Node) Redacted() string {
	return n.String()
}

// TypeName returns "Node".
func (n Node) TypeName() string {
	return "Node"
}

// IsZero reports whether the node carries no data.
func (n Node) IsZero() bool {
	return n.ASI == "" && n.SID == "" && n.RID == "" &&
		n.Name == "" && n.Domain == "" && !n.HP.Bool() && len(n.Ext) == 0
}

// Equal reports whether two nodes are field-for-field identical, including
// the raw extension payload.
func (n Node) Equal(other Node) bool {
	return n.ASI == other.ASI &&
		n.SID == other.SID &&
		n.RID == other.RID &&
		n.Name == other.Name &&
		n.Domain == other.Domain &&
		n.HP == other.HP &&
		string(n.Ext) == string(other.Ext)
}

// Validate checks that the required ASI and SID fields are present.
func (n Node) Validate() error {
	if n.ASI == "" {
		return &errors.ValidationError{
			Type:   "Node",
			Field:  "ASI",
			Reason: "must not be empty",
			Value:  n.ASI,
		}
	}
	if n.SID == "" {
		return &errors.ValidationError{
			Type:   "Node",
			Field:  "SID",
			Reason: "must not be empty",
			Value:  n.SID,
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, validating before encoding.
func (n Node) MarshalJSON() ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	type alias Node
	return json.Marshal((alias)(n))
}

// UnmarshalJSON implements json.Unmarshaler, validating after decoding.
func (n *Node) UnmarshalJSON(data []byte) error {
	type alias Node
	if err := json.Unmarshal(data, (*alias)(n)); err != nil {
		return &errors.UnmarshalError{Type: "Node", Data: data, Reason: err.Error()}
	}
	return n.Validate()
}

// MarshalYAML implements yaml.Marshaler, validating before encoding.
func (n Node) MarshalYAML() (any, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	type alias Node
	return (alias)(n), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating after decoding.
func (n *Node) UnmarshalYAML(node *yaml.Node) error {
	type alias Node
	if err := node.Decode((*alias)(n)); err != nil {
		return &errors.UnmarshalError{Type: "Node", Data: []byte(node.Value), Reason: err.Error()}
	}
	return n.Validate()
}

// SupplyChain is the complete chain of nodes from the publisher to the
// entity answering the bid request, in selling order: the first node sold
// the publisher's inventory, each following node resold the previous one's.
type SupplyChain struct {
	// Complete states whether the chain reaches all the way back to the
	// publisher. 0/1 on the wire; an incomplete chain (0) is legal but
	// discounted by buyers.
	Complete model.BoolInt `json:"complete" yaml:"complete"`

	// Nodes holds the hops in selling order. At least one is required.
	Nodes []Node `json:"nodes" yaml:"nodes"`

	// Ver is the SupplyChain object version, "1.0".
	Ver string `json:"ver" yaml:"ver"`

	// Ext is an uninterpreted extension payload. Optional.
	Ext json.RawMessage `json:"ext,omitempty" yaml:"ext,omitempty"`
}

// NewSupplyChain returns a complete chain at the default version with the
// given nodes.
func NewSupplyChain(nodes ...Node) SupplyChain {
	return SupplyChain{Complete: true, Nodes: nodes, Ver: DefaultVersion}
}

// String returns a single-line summary of the chain.
func (c SupplyChain) String() string {
	return fmt.Sprintf("SupplyChain{ver:%s, complete:%v, nodes:%d}",
		c.Ver, c.Complete.Bool(), len(c.Nodes))
}

// Redacted returns the same representation as String().
func (c SupplyChain) Redacted() string {
	return c.String()
}

// TypeName returns "SupplyChain".
func (c SupplyChain) TypeName() string {
	return "SupplyChain"
}

// IsZero reports whether the chain carries no data.
func (c SupplyChain) IsZero() bool {
	return !c.Complete.Bool() && len(c.Nodes) == 0 && c.Ver == "" && len(c.Ext) == 0
}

// Equal reports whether two chains are identical, comparing nodes
// element-wise in order.
func (c SupplyChain) Equal(other SupplyChain) bool {
	if c.Complete != other.Complete || c.Ver != other.Ver || string(c.Ext) != string(other.Ext) {
		return false
	}
	if len(c.Nodes) != len(other.Nodes) {
		return false
	}
	for i := range c.Nodes {
		if !c.Nodes[i].Equal(other.Nodes[i]) {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the chain.
func (c SupplyChain) Clone() SupplyChain {
	clone := c
	if c.Nodes != nil {
		clone.Nodes = make([]Node, len(c.Nodes))
		copy(clone.Nodes, c.Nodes)
	}
	if c.Ext != nil {
		clone.Ext = make(json.RawMessage, len(c.Ext))
		copy(clone.Ext, c.Ext)
	}
	return clone
}

// Validate checks that the chain declares a version and at least one node,
// and that every node is valid; all violations are returned combined.
func (c SupplyChain) Validate() error {
	var errs error

	if c.Ver == "" {
		errs = multierr.Append(errs, &errors.ValidationError{
			Type:   "SupplyChain",
			Field:  "Ver",
			Reason: "must not be empty",
			Value:  c.Ver,
		})
	}
	if len(c.Nodes) == 0 {
		errs = multierr.Append(errs, &errors.ValidationError{
			Type:   "SupplyChain",
			Field:  "Nodes",
			Reason: "must contain at least one node",
			Value:  len(c.Nodes),
		})
	}
	for i, n := range c.Nodes {
		if err := n.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("node %d: %w", i, err))
		}
	}

	return errs
}

// MarshalJSON implements json.Marshaler, validating before encoding.
func (c SupplyChain) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid SupplyChain: %w", err)
	}
	type alias SupplyChain
	return json.Marshal((alias)(c))
}

// UnmarshalJSON implements json.Unmarshaler, validating after decoding.
func (c *SupplyChain) UnmarshalJSON(data []byte) error {
	type alias SupplyChain
	if err := json.Unmarshal(data, (*alias)(c)); err != nil {
		return &errors.UnmarshalError{Type: "SupplyChain", Data: data, Reason: err.Error()}
	}
	return c.Validate()
}

// MarshalYAML implements yaml.Marshaler, validating before encoding.
func (c SupplyChain) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid SupplyChain: %w", err)
	}
	type alias SupplyChain
	return (alias)(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating after decoding.
func (c *SupplyChain) UnmarshalYAML(node *yaml.Node) error {
	type alias SupplyChain
	if err := node.Decode((*alias)(c)); err != nil {
		return &errors.UnmarshalError{Type: "SupplyChain", Data: []byte(node.Value), Reason: err.Error()}
	}
	return c.Validate()
}

// Compile-time checks for the model contracts.
var (
	_ model.Model                   = (*Node)(nil)
	_ model.Comparable[Node]        = (*Node)(nil)
	_ model.Model                   = (*SupplyChain)(nil)
	_ model.Comparable[SupplyChain] = (*SupplyChain)(nil)
	_ model.Cloneable[SupplyChain]  = (*SupplyChain)(nil)
)
