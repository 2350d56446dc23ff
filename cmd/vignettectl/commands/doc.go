// Package commands defines the vignettectl CLI, a terminal front end for the
// vignette flow that talks to the upstream API directly.
//
// Commands
//
//   - catalog   Print the vignette catalog
//   - vehicle   Print the registered vehicle
//   - regions   List the regions the vehicle can buy a yearly pass for
//   - quote     Price a selection of regions or a nationwide pass
//   - buy       Price and submit a selection
//
// # Implementation
//
// The root command builds an upstream client, a catalog store and an
// in-memory vignette service before any subcommand runs. Each invocation
// works in a fresh session and records nothing: there is no order ledger.
package commands
