// Package party models the registered participants of the marketplace.
//
// A Party is one entry of a role whitelist: customers register themselves,
// restaurants and deliverers are registered by the manager. Each role draws its
// identifiers from its own counter, so customer 1 and restaurant 1 are distinct.
package party
