// Package contracts resolves where PowerVoting contracts are deployed.
//
// An AddressBook is built once from configuration entries and is read-only afterwards,
// so it can be shared between goroutines without locking. A lookup miss is not an
// error: it means the contract is not deployed on that network.
package contracts
