// Package profile provides the identity aggregate of the marketplace.
// A Profile carries the participant's contact details, bcrypt credentials,
// and a Role (shipper, driver, admin) that scopes which views and lifecycle
// operations the participant may use.
package profile
