// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import "code.hybscloud.com/atomix"

// Handle is the opaque registration token an [Invoker] issues for a step.
// Zero is never issued.
type Handle uint32

// Serial is a monotonically increasing coroutine stack identifier.
type Serial = uint32

var (
	handleCounter atomix.Uint32
	serialCounter atomix.Uint32
)

// NextHandle returns the next process-unique handle.
// Custom [Invoker] implementations may use it to issue tokens.
func NextHandle() Handle {
	return Handle(handleCounter.Add(1))
}

func nextSerial() Serial {
	return serialCounter.Add(1)
}
