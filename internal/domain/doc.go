// Package domain contains the core domain model for metis-wizard.
//
// The domain is filesystem- and terminal-agnostic: it does not depend on
// namelist parsing, os/exec, or prompting. Infra/adapters map into/from
// these types.
package domain
