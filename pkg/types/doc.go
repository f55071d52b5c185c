// Package types defines the entity types, mutability flags, notification
// contract, configuration, and standard errors for the larder inventory.
//
// An inventory is a keyed collection of quantity entries guarded by three
// mutability flags. The lattice of reachable states is
// extensible > non-extensible > sealed > frozen; each step forbids more.
package types
