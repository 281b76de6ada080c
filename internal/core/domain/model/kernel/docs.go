// Package kernel provides the identifier value objects shared by the
// dispatch domain model:
//   - ObjectID: integer ids owned by the backend record store (users, orders, pickings)
//   - UUID: ids of records this service writes itself (access keys, audit messages)
package kernel
