package inscription

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
)

var (
	ErrCapacityInsufficient          = errors.Wrap(errs.InsufficientCapacity, "insufficient free capacity")
	ErrCapacityInsufficientForChange = errors.Wrap(errs.InsufficientCapacity, "insufficient free capacity for the change cell")

	ErrInscriptionNotFound = errors.Wrap(errs.NotFound, "inscription info cell not found")
	ErrTokenNotFound       = errors.Wrap(errs.NotFound, "inscription token cells not found")
	ErrCotaCellNotFound    = errors.Wrap(errs.NotFound, "cota cell not found")
	ErrNoLiveCell          = errors.Wrap(errs.NotFound, "address has no live cells")

	ErrMalformedRecord = errors.Wrap(errs.InvalidArgument, "malformed inscription record")

	ErrInscriptionNotOpen    = errors.Wrap(errs.InvalidState, "inscription is not open for minting")
	ErrInscriptionNotRebased = errors.Wrap(errs.InvalidState, "inscription has not been rebased")
	ErrRebaseMismatch        = errors.Wrap(errs.InvalidState, "rebased token hash does not match the given actual supply")
)
