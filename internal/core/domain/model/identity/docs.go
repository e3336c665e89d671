// Package identity models marketplace participants.
//
// A User carries the credential hash and a Role fixed at registration. Depending on
// the role the user owns exactly one Host or Cleaner profile; admins own neither.
// The Cleaner profile carries the running rating aggregate, folded in by AddRating.
//
// Principal is the already-authenticated caller handed to every use case.
package identity
