package primer

import "errors"

// ErrPrimerMissing is returned by callers (block.Encode) when a (pool,
// block) pair has no registered primers.
var ErrPrimerMissing = errors.New("primer: no primers registered for pool/block")

// ErrPrimerDuplicate is advisory: it's never returned by Register (which
// always succeeds and overwrites), but callers that want to detect
// accidental re-registration can check for it themselves by calling
// Lookup before Register.
var ErrPrimerDuplicate = errors.New("primer: pool/block already registered")
