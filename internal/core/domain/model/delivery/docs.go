// Package delivery models the courier leg of an order. Deliveries are open
// claims: any registered deliverer may pick up a Waiting delivery, and the
// claimant is recorded on it.
package delivery
