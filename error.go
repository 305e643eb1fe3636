// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"github.com/pkg/errors"
)

// ErrUnknownHandle reports that an [Invoker] was asked to run or remove a
// handle it does not hold. Each handle is owned by exactly one stack slot,
// so this always means the scheduler's bookkeeping is broken.
var ErrUnknownHandle = errors.New("coro: unknown handle")

// IsUnknownHandle reports whether err is or wraps [ErrUnknownHandle].
func IsUnknownHandle(err error) bool {
	return errors.Is(err, ErrUnknownHandle)
}

// unknownHandle returns ErrUnknownHandle annotated with the handle and
// the operation that found it missing.
func unknownHandle(op string, h Handle) error {
	return errors.Wrapf(ErrUnknownHandle, "%s handle %d", op, h)
}

// stackFailure annotates err with the serial of the stack being advanced.
func stackFailure(err error, s Serial) error {
	return errors.WithMessagef(err, "coro: stack %d", s)
}
