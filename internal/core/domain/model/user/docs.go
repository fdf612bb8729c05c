// Package user models the people who use the warehouse management system.
//
// A User carries a Role fixed at creation: OWNER, AGENT, TENANT or ADMIN.
// The role decides which constructor builds the user (see ConstructorFor) and
// has no setter, so a user's kind stays the same for its whole lifetime.
// ADMIN accounts are only created by the startup seeding step; self-service
// registration accepts OWNER, AGENT and TENANT.
package user
