// Package openaccess provides a client for the OpenAccess REST API of
// Lenel OnGuard access-control systems: panels, readers, cardholders,
// directories and remote method execution (e.g. opening a door).
//
// Features:
// - Session-token authentication with a single SignIn transition.
// - Transparent aggregation of paginated instance queries.
// - Strongly typed projections of the vendor's property-value maps.
package openaccess
