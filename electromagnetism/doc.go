// Package electromagnetism provides Coulomb's law for the electrostatic force
// between point charges and Faraday's law for the EMF induced by a change in
// magnetic flux.
package electromagnetism
