package v1

import (
	"github.com/halalflow/backend/internal/ledger"
)

// Controller serves the v1 API on top of a ledger engine.
type Controller struct {
	Ledger  *ledger.Engine
	Version string // Backend version, written into exports
}
