// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package water

// Handle holds a solvent model and its current state. A Handle may be shared by all species
// of one phase; SetState is the single place where the solvent state changes, thus callers
// sharing a Handle must serialise calls to SetState. Reading after SetState is safe.
type Handle struct {
	Model Model // solvent model
	state State // current state
	isset bool  // state has been computed at least once
}

// NewHandle returns a new handle to a solvent model
func NewHandle(model Model) *Handle {
	return &Handle{Model: model}
}

// SetState sets (T,P) and computes the solvent properties if the state has changed
//  Note: the current state is kept if Calc panics
func (o *Handle) SetState(T, P float64) State {
	if o.isset && o.state.T == T && o.state.P == P {
		return o.state
	}
	var s State
	o.Model.Calc(&s, T, P)
	o.state, o.isset = s, true
	return o.state
}

// State returns a copy of the current state
func (o *Handle) State() State {
	return o.state
}

// Calc computes the solvent properties at (T,P) without changing the state of the handle
func (o *Handle) Calc(T, P float64) (s State) {
	o.Model.Calc(&s, T, P)
	return
}
