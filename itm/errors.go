// Copyright (c) 2023, The OTNS Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package itm

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/openthread/ot-ns/itmtypes"
)

// DomainError is a fatal, caller-facing validation failure. It carries the
// kind of violation, the offending parameter's name, and its value, so a
// caller can report exactly which input pushed the model out of its domain.
type DomainError struct {
	Kind  itmtypes.ErrorKind
	Param string
	Value float64
	cause error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("itm: %s: %s=%v", e.Kind, e.Param, e.Value)
}

// Unwrap exposes the wrapped errors.Errorf cause for errors.Is/As chains.
func (e *DomainError) Unwrap() error {
	return e.cause
}

func newDomainError(kind itmtypes.ErrorKind, param string, value float64) *DomainError {
	return &DomainError{
		Kind:  kind,
		Param: param,
		Value: value,
		cause: errors.Errorf("itm: %s out of range for %s (%v)", kind, param, value),
	}
}
